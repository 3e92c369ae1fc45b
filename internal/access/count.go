// count.go implements the recursive filename count over the bounded walk.

package access

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jpl-au/promptlint/internal/glob"
)

// CountFiles walks dir recursively and counts entries whose filename
// matches pattern. Pattern is a wildcard ("*" only, see the glob package),
// not a regular expression. A directory that does not exist counts zero
// matches and is not an error.
func (a *Accessor) CountFiles(dir, pattern, root string) (int, error) {
	p, err := glob.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("countFiles(%s): %w", dir, err)
	}

	r, rel, err := a.rooted(dir, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("countFiles(%s): %w", dir, err)
	}
	defer r.Close()

	count := 0
	seen := 0
	err = a.walkIn(r, rel, 0, &seen, func(_ string, entry fs.DirEntry) error {
		if !entry.IsDir() && p.Match(entry.Name()) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("countFiles(%s): %w", dir, err)
	}
	return count, nil
}
