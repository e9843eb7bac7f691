// Package report defines the run report and its writers.
package report

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Run accumulates per-file results for one run. A single goroutine
// owns it; workers report through a results channel, never by mutating
// Run directly. Invariant: Transformed + Failed + Copied equals the
// number of regular files visited.
type Run struct {
	Transformed int   // files decrypted (or decompiled) successfully
	Failed      int   // files whose processing failed
	Copied      int   // pass-through files copied verbatim
	BytesOut    int64 // total bytes written to the output tree
}

// AllSucceeded is the exit-status predicate: true iff no file failed.
func (r *Run) AllSucceeded() bool { return r.Failed == 0 }

// Total is the number of files visited.
func (r *Run) Total() int { return r.Transformed + r.Failed + r.Copied }

// Summary renders the final console line. verb names the transform
// ("decrypted", "decompiled").
func (r *Run) Summary(verb string) string {
	return fmt.Sprintf("done: %d %s, %d failed, %d copied (%s written)",
		r.Transformed, verb, r.Failed, r.Copied, humanize.Bytes(uint64(r.BytesOut)))
}

// Status is a tiny machine-readable summary consumed by downstream
// tooling.
type Status struct {
	Status      string `yaml:"status"`
	Transformed int    `yaml:"transformed_files"`
	Failed      int    `yaml:"failed_files"`
	Copied      int    `yaml:"copied_files"`
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
}

// WriteYAML writes the Status document for this run to path.
func (r *Run) WriteYAML(path, input, output string) error {
	st := Status{
		Status:      "ok",
		Transformed: r.Transformed,
		Failed:      r.Failed,
		Copied:      r.Copied,
		Input:       input,
		Output:      output,
	}
	if !r.AllSucceeded() {
		st.Status = "failed"
	}
	b, err := yaml.Marshal(&st)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
