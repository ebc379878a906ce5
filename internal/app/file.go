package app

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// readFile loads path as text. A missing file is an empty document.
// Invalid UTF-8 is replaced with U+FFFD; replaced reports whether that
// happened.
func readFile(path string) (text string, replaced bool, err error) {
	if path == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &OperationError{Op: "open", Target: path, Err: err}
	}
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), "�"), true, nil
	}
	return string(data), false, nil
}

// writeFile saves text to path, keeping the mode of an existing file.
func writeFile(path, text string) error {
	if path == "" {
		return &OperationError{Op: "save", Err: ErrNoFilePath}
	}
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), perm); err != nil {
		return &OperationError{Op: "save", Target: path, Err: err}
	}
	return nil
}
