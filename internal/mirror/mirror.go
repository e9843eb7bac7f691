// Package mirror walks an input tree and produces a mirrored output
// tree: every .exdf file is decrypted to .xml, everything else is
// copied through unchanged, and relative paths are preserved.
package mirror

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"exdf/internal/report"
	"exdf/internal/transform"
)

const (
	encExt   = ".exdf"
	plainExt = ".xml"
)

// Entry is one regular file discovered under the input root.
// Directories are traversed but never become entries.
type Entry struct {
	Path string // absolute (or root-joined) input path
	Rel  string // path relative to the input root, OS separators
}

// Result pairs an entry with what happened to it. Exactly one Result
// is produced per entry, whether it was transformed or copied.
type Result struct {
	Rel    string // slash-normalized, stable across platforms
	Copied bool   // pass-through copy rather than a transform
	Bytes  int64
	Err    error
}

// Options control one Mirror run.
type Options struct {
	// Jobs is the number of files processed concurrently; values <= 1
	// give the sequential reference behavior.
	Jobs int
	// Observe, when set, is called once per file from the goroutine
	// that owns the report. Dispatch order is sorted by relative path;
	// with Jobs > 1 completion order is not guaranteed.
	Observe func(Result)
}

// Discover enumerates every regular file under root, sorted by
// slash-normalized relative path so a run is reproducible. A missing
// or unreadable root is the one fatal traversal error.
func Discover(root string) ([]Entry, error) {
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("input directory %s: %w", root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("input %s is not a directory", root)
	}

	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return filepath.ToSlash(entries[i].Rel) < filepath.ToSlash(entries[j].Rel)
	})
	return entries, nil
}

// transformable reports whether rel names an encrypted file. The match
// is case-insensitive on the extension only.
func transformable(rel string) bool {
	return strings.EqualFold(filepath.Ext(rel), encExt)
}

// outRel rewrites the encrypted extension, keeping the base name.
func outRel(rel string) string {
	return rel[:len(rel)-len(filepath.Ext(rel))] + plainExt
}

// Mirror processes every regular file under inRoot into outRoot and
// returns the aggregated report. Per-file failures (unreadable input,
// bad payload, failed copy) are recorded and never abort the run; only
// a missing input root is fatal. Re-running with the same arguments
// rewrites the same output bytes.
func Mirror(inRoot, outRoot string, opts Options) (*report.Run, error) {
	entries, err := Discover(inRoot)
	if err != nil {
		return nil, err
	}

	process := func(e Entry) Result {
		if transformable(e.Rel) {
			oc := transform.File(e.Path, filepath.Join(outRoot, outRel(e.Rel)))
			return Result{Rel: filepath.ToSlash(e.Rel), Bytes: oc.Bytes, Err: oc.Err}
		}
		n, err := CopyFile(e.Path, filepath.Join(outRoot, e.Rel))
		return Result{Rel: filepath.ToSlash(e.Rel), Copied: true, Bytes: n, Err: err}
	}

	results := make(chan Result)
	if opts.Jobs > 1 {
		var wg sync.WaitGroup
		pool, err := ants.NewPoolWithFunc(opts.Jobs, func(v any) {
			defer wg.Done()
			results <- process(v.(Entry))
		})
		if err != nil {
			return nil, fmt.Errorf("worker pool: %w", err)
		}
		go func() {
			defer close(results)
			defer pool.Release()
			for _, e := range entries {
				wg.Add(1)
				if err := pool.Invoke(e); err != nil {
					wg.Done()
					results <- Result{Rel: filepath.ToSlash(e.Rel), Err: err}
				}
			}
			wg.Wait()
		}()
	} else {
		go func() {
			defer close(results)
			for _, e := range entries {
				results <- process(e)
			}
		}()
	}

	// Sole owner of the report: counts stay exact at any job count.
	run := &report.Run{}
	for res := range results {
		switch {
		case res.Err != nil:
			run.Failed++
		case res.Copied:
			run.Copied++
			run.BytesOut += res.Bytes
		default:
			run.Transformed++
			run.BytesOut += res.Bytes
		}
		if opts.Observe != nil {
			opts.Observe(res)
		}
	}
	return run, nil
}
