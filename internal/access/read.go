// read.go implements the whole-file read operations.
//
// Separated from access.go to keep the read path in one place. Both
// operations wrap every failure as "<op>(<path>): <cause>" so diagnostics
// name the offending path without ever quoting file contents. Read and
// parse failures share the one wrapped channel; the sandbox denial kind
// still survives the wrapping for errors.Is.

package access

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadText reads the file at path as text.
func (a *Accessor) ReadText(path, root string) (string, error) {
	s, err := a.readFile(path, root)
	if err != nil {
		return "", fmt.Errorf("readText(%s): %w", path, err)
	}
	return s, nil
}

// ReadJSON reads the file at path and unmarshals it into v.
func (a *Accessor) ReadJSON(path, root string, v any) error {
	data, err := a.readFile(path, root)
	if err != nil {
		return fmt.Errorf("readJSON(%s): %w", path, err)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("readJSON(%s): %w", path, err)
	}
	return nil
}

// readFile validates and reads a file within the rooted handle.
func (a *Accessor) readFile(path, root string) (string, error) {
	r, rel, err := a.rooted(path, root)
	if err != nil {
		return "", err
	}
	defer r.Close()

	f, err := r.Open(rel)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() > a.maxFileSize {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), a.maxFileSize)
	}

	content := make([]byte, info.Size())
	if _, err := io.ReadFull(f, content); err != nil {
		return "", err
	}
	return string(content), nil
}
