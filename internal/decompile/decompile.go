// Package decompile shells out to ilspycmd for every .NET assembly in
// a tree, copying every other file through unchanged. It mirrors the
// layout the same way the exdf decryptor does, except each assembly
// expands into a subdirectory named after its stem.
package decompile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"exdf/internal/mirror"
	"exdf/internal/report"
)

const toolName = "ilspycmd"

// Timeout bounds a single ilspycmd invocation; a hung decompilation is
// recorded as that assembly's failure, not the run's.
const Timeout = 300 * time.Second

// ErrToolMissing means the whole run cannot proceed, unlike a
// per-assembly failure.
var ErrToolMissing = errors.New(toolName + " not found; install with: dotnet tool install -g ilspycmd")

func assembly(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dll", ".exe":
		return true
	}
	return false
}

// Tree decompiles every assembly under inRoot into outRoot. Per-file
// results are reported through observe (may be nil) in sorted order;
// a missing tool or input root aborts before any processing.
func Tree(inRoot, outRoot string, observe func(res mirror.Result)) (*report.Run, error) {
	tool, err := exec.LookPath(toolName)
	if err != nil {
		return nil, ErrToolMissing
	}

	entries, err := mirror.Discover(inRoot)
	if err != nil {
		return nil, err
	}

	run := &report.Run{}
	for _, e := range entries {
		res := mirror.Result{Rel: filepath.ToSlash(e.Rel)}
		if assembly(e.Path) {
			res.Err = one(tool, e.Path, filepath.Join(outRoot, filepath.Dir(e.Rel)))
		} else {
			res.Copied = true
			res.Bytes, res.Err = mirror.CopyFile(e.Path, filepath.Join(outRoot, e.Rel))
		}
		switch {
		case res.Err != nil:
			run.Failed++
		case res.Copied:
			run.Copied++
			run.BytesOut += res.Bytes
		default:
			run.Transformed++
		}
		if observe != nil {
			observe(res)
		}
	}
	return run, nil
}

// one runs ilspycmd for a single assembly, writing its sources into
// outBase/<stem>/.
func one(tool, assemblyPath, outBase string) error {
	stem := strings.TrimSuffix(filepath.Base(assemblyPath), filepath.Ext(assemblyPath))
	outDir := filepath.Join(outBase, stem)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", outDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	// -r lets ilspycmd resolve sibling assemblies in the input dir
	cmd := exec.CommandContext(ctx, tool, "-r", filepath.Dir(assemblyPath), "-o", outDir, assemblyPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("decompile %s: timeout after %s", assemblyPath, Timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("decompile %s: %s", assemblyPath, msg)
		}
		return fmt.Errorf("decompile %s: %w", assemblyPath, err)
	}
	return nil
}
