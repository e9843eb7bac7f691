// Package transform applies the full per-file pipeline to one
// encrypted file: read, decrypt, decode as UTF-8, pretty-print, write.
package transform

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"exdf/internal/cipher"
	"exdf/internal/xmlfmt"
)

// Outcome reports what happened to a single file. It is immutable once
// produced; Err is nil exactly when OK is true.
type Outcome struct {
	OK      bool
	OutPath string
	Bytes   int64 // bytes written on success
	Err     error
}

// File decrypts inPath and writes the formatted XML to outPath,
// creating parent directories as needed and overwriting any previous
// output. Every failure mode (unreadable input, payload that is not
// valid UTF-8 after decryption, unwritable output) comes back in the
// Outcome so the caller can keep going with the rest of the tree.
func File(inPath, outPath string) Outcome {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return Outcome{OutPath: outPath, Err: fmt.Errorf("read %s: %w", inPath, err)}
	}

	plain := cipher.Decrypt(raw)
	if !utf8.Valid(plain) {
		return Outcome{OutPath: outPath, Err: fmt.Errorf("decrypt %s: payload is not valid UTF-8", inPath)}
	}

	text := xmlfmt.Format(string(plain))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return Outcome{OutPath: outPath, Err: fmt.Errorf("create dir for %s: %w", outPath, err)}
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return Outcome{OutPath: outPath, Err: fmt.Errorf("write %s: %w", outPath, err)}
	}
	return Outcome{OK: true, OutPath: outPath, Bytes: int64(len(text))}
}
