// Package access performs the filesystem reads promptlint makes on library
// content, every one of them mediated by the sandbox guard.
//
// Semantics follow how the results are used. Presence checks (Exists,
// IsSymlink) and the advisory SymlinkTarget never return errors: a denial,
// a missing file, and an I/O failure all collapse into the zero value,
// because these gate flow decisions and must not surface security detail.
// Read operations (ReadText, ReadJSON, CountFiles) surface failures as
// wrapped errors naming the operation and the path, never file contents.
//
// Security: reads are double-walled. The guard gives a lexical verdict
// first; the I/O then goes through an os.Root handle opened on the library
// root, so a symlink planted inside an allowed directory cannot escape at
// open time. This is defence-in-depth alongside the sandbox package.
package access

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/jpl-au/promptlint/internal/sandbox"
)

// Walk and read bounds applied when no option overrides them. Adversarial
// directory trees are cut off rather than walked to exhaustion.
const (
	DefaultWalkDepth   = 32
	DefaultWalkEntries = 50000
	DefaultMaxFileSize = 10 << 20 // 10 MB
)

var (
	// ErrWalkTooDeep indicates a directory walk exceeded the depth bound.
	ErrWalkTooDeep = errors.New("directory tree too deep")
	// ErrWalkTooLarge indicates a directory walk exceeded the entry bound.
	ErrWalkTooLarge = errors.New("too many directory entries")
	// ErrFileTooLarge indicates a file exceeds the read size bound.
	ErrFileTooLarge = errors.New("file too large")
)

// Accessor reads library content through the sandbox. Safe for concurrent
// use; it holds no per-call state.
type Accessor struct {
	guard       *sandbox.Guard
	walkDepth   int
	walkEntries int
	maxFileSize int64
}

// Option adjusts accessor limits.
type Option func(*Accessor)

// WithWalkLimits bounds CountFiles recursion depth and total entries
// visited. Non-positive values keep the defaults.
func WithWalkLimits(depth, entries int) Option {
	return func(a *Accessor) {
		if depth > 0 {
			a.walkDepth = depth
		}
		if entries > 0 {
			a.walkEntries = entries
		}
	}
}

// WithMaxFileSize bounds ReadText and ReadJSON file sizes.
// Non-positive values keep the default.
func WithMaxFileSize(n int64) Option {
	return func(a *Accessor) {
		if n > 0 {
			a.maxFileSize = n
		}
	}
}

// New creates an accessor gated by guard.
func New(guard *sandbox.Guard, opts ...Option) *Accessor {
	a := &Accessor{
		guard:       guard,
		walkDepth:   DefaultWalkDepth,
		walkEntries: DefaultWalkEntries,
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Guard returns the sandbox guard the accessor validates through.
func (a *Accessor) Guard() *sandbox.Guard {
	return a.guard
}

// rooted validates path through the guard, then opens an os.Root on the
// library root and returns it with the validated root-relative name.
// Callers own closing the returned root.
func (a *Accessor) rooted(path, root string) (*os.Root, string, error) {
	resolved, err := a.guard.Resolve(path, root)
	if err != nil {
		return nil, "", err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, "", err
	}
	rel, err := filepath.Rel(absRoot, resolved)
	if err != nil {
		return nil, "", err
	}

	r, err := os.OpenRoot(absRoot)
	if err != nil {
		return nil, "", err
	}
	return r, rel, nil
}

// Exists reports whether path names an existing file or directory.
// Never errors: denial, nonexistence, and I/O failure are all false.
func (a *Accessor) Exists(path, root string) bool {
	r, rel, err := a.rooted(path, root)
	if err != nil {
		return false
	}
	defer r.Close()

	_, err = r.Stat(rel)
	return err == nil
}

// IsSymlink reports whether path is itself a symlink. The link is never
// followed; this classifies the entry, not its target. Denial or error
// is false.
func (a *Accessor) IsSymlink(path, root string) bool {
	r, rel, err := a.rooted(path, root)
	if err != nil {
		return false
	}
	defer r.Close()

	info, err := r.Lstat(rel)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// SymlinkTarget returns the raw link target of path, or "" on any failure
// (denial, not a symlink, I/O error). Advisory only: the target is
// reported as stored, not validated, so callers must not read through it.
func (a *Accessor) SymlinkTarget(path, root string) string {
	r, rel, err := a.rooted(path, root)
	if err != nil {
		return ""
	}
	defer r.Close()

	target, err := r.Readlink(rel)
	if err != nil {
		return ""
	}
	return target
}

// Stat returns the entry describing path. Lstat semantics: a symlink is
// classified, never followed. The second return is false on denial,
// nonexistence, or I/O failure.
func (a *Accessor) Stat(path, root string) (Entry, bool) {
	r, rel, err := a.rooted(path, root)
	if err != nil {
		return Entry{}, false
	}
	defer r.Close()

	info, err := r.Lstat(rel)
	if err != nil {
		return Entry{}, false
	}
	e := Entry{
		Path:    filepath.ToSlash(rel),
		Dir:     info.IsDir(),
		Symlink: info.Mode()&os.ModeSymlink != 0,
	}
	if !e.Dir && !e.Symlink {
		e.Size = info.Size()
	}
	return e, true
}
