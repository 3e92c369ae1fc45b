// Package library locates prompt libraries on disk.
//
// A prompt library is a directory containing a package.json manifest
// alongside the documented content directories (docs, commands, and so
// on). The discovery algorithm mirrors git's approach: starting from
// the given directory, walk up until a manifest is found or the
// filesystem root is reached.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/promptlint/internal/manifest"
)

// ErrNotFound is returned when no prompt library is found.
var ErrNotFound = errors.New("no prompt library found (missing package.json)")

// Discover walks up the directory tree looking for a manifest.
// Starting from start (the current directory if empty), it returns the
// absolute path of the first directory containing package.json.
func Discover(start string) (string, error) {
	dir := start
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, manifest.Filename)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}
