// Package manifest models the npm-style package.json at a prompt-library
// root. The manifest is the library's identity card: name, version, and
// the declared file inventory the drift check compares against reality.
//
// The manifest is read through the access layer like all library content,
// so a hostile "package.json" path can never be smuggled in from outside
// the root.
package manifest

import (
	"github.com/jpl-au/promptlint/internal/access"
)

// Filename is the manifest's fixed name at the library root.
const Filename = "package.json"

// Manifest is the decoded package.json. Unknown fields are ignored.
type Manifest struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description,omitempty"`
	Author      string            `json:"author,omitempty"`
	License     string            `json:"license,omitempty"`
	Keywords    []string          `json:"keywords,omitempty"`
	Files       []string          `json:"files,omitempty"`
	Scripts     map[string]string `json:"scripts,omitempty"`
}

// Load reads and decodes the manifest at the library root.
func Load(acc *access.Accessor, root string) (*Manifest, error) {
	var m Manifest
	if err := acc.ReadJSON(Filename, root, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
