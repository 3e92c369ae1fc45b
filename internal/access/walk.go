// walk.go implements the bounded directory walk shared by CountFiles and
// List.
//
// The walk uses the raw directory listing through the os.Root handle,
// never a shell glob, and descends only into real directories: symlinked
// directories report IsDir() == false from the listing and are never
// followed. Depth and entry bounds cut off adversarial trees; hitting a
// bound is an error, not a silent truncation.

package access

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Entry describes one filesystem entry under a validated directory.
type Entry struct {
	Path    string `json:"path"` // root-relative, forward slashes
	Dir     bool   `json:"dir,omitempty"`
	Symlink bool   `json:"symlink,omitempty"`
	Size    int64  `json:"size"`
}

// List walks dir recursively and returns every entry beneath it, sorted by
// path. A directory that does not exist yields an empty listing, not an
// error.
func (a *Accessor) List(dir, root string) ([]Entry, error) {
	r, rel, err := a.rooted(dir, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list(%s): %w", dir, err)
	}
	defer r.Close()

	var out []Entry
	seen := 0
	err = a.walkIn(r, rel, 0, &seen, func(p string, entry fs.DirEntry) error {
		e := Entry{
			Path:    filepath.ToSlash(p),
			Dir:     entry.IsDir(),
			Symlink: entry.Type()&fs.ModeSymlink != 0,
		}
		if !e.Dir {
			if info, err := entry.Info(); err == nil {
				e.Size = info.Size()
			}
		}
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list(%s): %w", dir, err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// ContentFiles returns the root-relative paths of the regular files the
// policy exposes: everything under the allowed content directories plus
// the allowed root files that exist. Symbolic links are skipped; their
// targets are not the library's content.
func (a *Accessor) ContentFiles(root string) ([]string, error) {
	var files []string
	policy := a.guard.Policy()
	for _, dir := range policy.Dirs() {
		entries, err := a.List(dir, root)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.Dir && !e.Symlink {
				files = append(files, e.Path)
			}
		}
	}
	for _, f := range policy.RootFiles() {
		if a.Exists(f, root) {
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files, nil
}

// walkIn applies fn to every entry under dir, depth-first. A directory
// vanishing mid-walk is skipped, matching the treatment of directories
// that never existed.
func (a *Accessor) walkIn(r *os.Root, dir string, depth int, seen *int, fn func(rel string, entry fs.DirEntry) error) error {
	if depth > a.walkDepth {
		return fmt.Errorf("%w: depth %d at %s", ErrWalkTooDeep, depth, dir)
	}

	f, err := r.Open(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		*seen++
		if *seen > a.walkEntries {
			return fmt.Errorf("%w: more than %d visited", ErrWalkTooLarge, a.walkEntries)
		}

		rel := filepath.Join(dir, entry.Name())
		if err := fn(rel, entry); err != nil {
			return err
		}
		if entry.IsDir() {
			if err := a.walkIn(r, rel, depth+1, seen, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
