// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// MaxInputSize limits text input files to prevent memory exhaustion (default 8MB).
// READMEs and HTML templates are far smaller in practice.
var MaxInputSize int64 = 8 << 20

// ErrInputTooLarge indicates an input file exceeds MaxInputSize.
var ErrInputTooLarge = errors.New("input file exceeds maximum size")

// utf8BOM is the byte order mark some editors prepend to UTF-8 files.
const utf8BOM = "\ufeff"

// ReadTextFile reads a file as UTF-8 text. A leading byte order mark is
// stripped so it cannot end up in the rendered page or defeat the
// heading heuristic on the first line.
func ReadTextFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > MaxInputSize {
		return "", fmt.Errorf("%w: %s (%d bytes, max %d)", ErrInputTooLarge, path, info.Size(), MaxInputSize)
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path is user-provided by design
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return strings.TrimPrefix(string(content), utf8BOM), nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a name. A string containing path separators (/, \) or a file
// extension is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.Contains(s, ".")
}
