package access

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/promptlint/internal/glob"
	"github.com/jpl-au/promptlint/internal/sandbox"
)

func testAccessor(opts ...Option) *Accessor {
	guard := sandbox.New(sandbox.NewPolicy(
		[]string{"docs", "commands"},
		[]string{"package.json", "README.md"},
	))
	return New(guard, opts...)
}

// writeFile creates rel under root with parent directories as needed.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

// symlink creates a link at rel pointing at target, skipping the test on
// platforms without symlink support.
func symlink(t *testing.T, root, rel, target string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	if err := os.Symlink(target, p); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestExists(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"name":"lib"}`)
	writeFile(t, root, "docs/guide.md", "# Guide")
	writeFile(t, root, "src/secret.js", "token")

	assert.True(t, a.Exists("package.json", root))
	assert.True(t, a.Exists("docs/guide.md", root))
	assert.True(t, a.Exists("docs", root), "directories count as existing")

	assert.False(t, a.Exists("docs/missing.md", root), "missing file")
	assert.False(t, a.Exists("src/secret.js", root), "denied path reads as absent even though the file is on disk")
	assert.False(t, a.Exists("../outside.txt", root), "traversal")
	assert.False(t, a.Exists("docs/guide.md", filepath.Join(root, "nope")), "missing root")
}

func TestIsSymlink(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "# Guide")
	symlink(t, root, "docs/link.md", "guide.md")

	assert.True(t, a.IsSymlink("docs/link.md", root))
	assert.False(t, a.IsSymlink("docs/guide.md", root), "regular file")
	assert.False(t, a.IsSymlink("docs/missing.md", root), "missing file")
	assert.False(t, a.IsSymlink("../etc", root), "denied path")
}

func TestSymlinkTarget(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "# Guide")
	symlink(t, root, "docs/link.md", "guide.md")
	symlink(t, root, "docs/escape.md", "../../outside.txt")

	assert.Equal(t, "guide.md", a.SymlinkTarget("docs/link.md", root))
	// Advisory: the raw target is reported even when it points outside
	assert.Equal(t, "../../outside.txt", a.SymlinkTarget("docs/escape.md", root))

	assert.Empty(t, a.SymlinkTarget("docs/guide.md", root), "not a symlink")
	assert.Empty(t, a.SymlinkTarget("docs/missing.md", root), "missing file")
	assert.Empty(t, a.SymlinkTarget("../outside", root), "denied path")
}

func TestReadText(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "# Guide\n\nBody.\n")
	writeFile(t, root, "src/secret.js", "token")

	got, err := a.ReadText("docs/guide.md", root)
	require.NoError(t, err)
	assert.Equal(t, "# Guide\n\nBody.\n", got)

	_, err = a.ReadText("src/secret.js", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, sandbox.ErrDenied, "denial kind survives wrapping")
	assert.Contains(t, err.Error(), "readText(src/secret.js)")
	assert.NotContains(t, err.Error(), "token", "contents never leak into errors")

	_, err = a.ReadText("docs/missing.md", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, sandbox.ErrDenied, "IO failure is not a denial")
}

func TestReadTextSymlinks(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "# Guide")
	symlink(t, root, "docs/inside.md", "guide.md")
	symlink(t, root, "docs/escape.md", "../../outside.txt")
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(root), "outside.txt"), []byte("secret"), 0644))

	got, err := a.ReadText("docs/inside.md", root)
	require.NoError(t, err, "links within the root may be followed")
	assert.Equal(t, "# Guide", got)

	// The rooted open refuses to follow a link out of the library
	_, err = a.ReadText("docs/escape.md", root)
	require.Error(t, err)
	assert.NotErrorIs(t, err, sandbox.ErrDenied, "escape surfaces as IO failure, the lexical path was fine")
}

func TestReadTextTooLarge(t *testing.T) {
	a := testAccessor(WithMaxFileSize(8))
	root := t.TempDir()
	writeFile(t, root, "docs/big.md", "0123456789abcdef")

	_, err := a.ReadText("docs/big.md", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReadJSON(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"name":"review-kit","version":"1.2.0"}`)
	writeFile(t, root, "docs/broken.json", `{"name":`)

	var m struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	require.NoError(t, a.ReadJSON("package.json", root, &m))
	assert.Equal(t, "review-kit", m.Name)
	assert.Equal(t, "1.2.0", m.Version)

	err := a.ReadJSON("docs/broken.json", root, &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readJSON(docs/broken.json)")

	err = a.ReadJSON("docs/missing.json", root, &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readJSON(docs/missing.json)")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = a.ReadJSON("../package.json", root, &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, sandbox.ErrDenied)
}

func TestCountFiles(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "g")
	writeFile(t, root, "docs/api/auth.md", "a")
	writeFile(t, root, "docs/api/deep/notes.md", "n")
	writeFile(t, root, "docs/logo.png", "p")
	writeFile(t, root, "commands/review.md", "r")

	tests := []struct {
		dir     string
		pattern string
		want    int
	}{
		{"docs", "*.md", 3},
		{"docs", "*", 4},
		{"docs", "*.png", 1},
		{"docs", "auth.md", 1},
		{"docs", "*.txt", 0},
		{"commands", "*.md", 1},
		{"docs/api", "*.md", 2},
	}
	for _, tt := range tests {
		n, err := a.CountFiles(tt.dir, tt.pattern, root)
		require.NoError(t, err, "CountFiles(%q, %q)", tt.dir, tt.pattern)
		assert.Equal(t, tt.want, n, "CountFiles(%q, %q)", tt.dir, tt.pattern)
	}

	// Absent directories are zero matches, not errors
	n, err := a.CountFiles("docs/nothere", "*.md", root)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = a.CountFiles("docs", "*.md", filepath.Join(root, "gone"))
	require.NoError(t, err, "missing root behaves like a missing directory")
	assert.Zero(t, n)

	// Denials and bad patterns stay errors
	_, err = a.CountFiles("src", "*.js", root)
	assert.ErrorIs(t, err, sandbox.ErrDenied)

	_, err = a.CountFiles("docs", "", root)
	assert.ErrorIs(t, err, glob.ErrEmptyPattern)
}

func TestCountFilesDoesNotFollowDirLinks(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "docs/a.md", "a")
	writeFile(t, root, "docs/sub/b.md", "b")
	writeFile(t, root, "commands/review.md", "r")
	symlink(t, root, "docs/cmds", "../commands")
	symlink(t, root, "docs/loop", ".")

	// Neither the commands link nor the self-loop is descended into
	n, err := a.CountFiles("docs", "*.md", root)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestList(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "guide")
	writeFile(t, root, "docs/api/auth.md", "auth")
	symlink(t, root, "docs/link.md", "guide.md")

	entries, err := a.List("docs", root)
	require.NoError(t, err)

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	assert.Equal(t, []string{"docs/api", "docs/api/auth.md", "docs/guide.md", "docs/link.md"}, paths, "sorted, root-relative, forward slashes")

	byPath := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byPath[e.Path] = e
	}
	assert.True(t, byPath["docs/api"].Dir)
	assert.False(t, byPath["docs/guide.md"].Dir)
	assert.True(t, byPath["docs/link.md"].Symlink)
	assert.False(t, byPath["docs/guide.md"].Symlink)
	assert.Equal(t, int64(5), byPath["docs/guide.md"].Size)

	entries, err = a.List("docs/nothere", root)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = a.List("src", root)
	assert.ErrorIs(t, err, sandbox.ErrDenied)
}

func TestCountFilesBounds(t *testing.T) {
	t.Run("depth", func(t *testing.T) {
		a := testAccessor(WithWalkLimits(2, 0))
		root := t.TempDir()
		writeFile(t, root, "docs/d1/d2/d3/deep.md", "x")

		_, err := a.CountFiles("docs", "*.md", root)
		assert.ErrorIs(t, err, ErrWalkTooDeep)
	})

	t.Run("entries", func(t *testing.T) {
		a := testAccessor(WithWalkLimits(0, 3))
		root := t.TempDir()
		for _, name := range []string{"a.md", "b.md", "c.md", "d.md", "e.md"} {
			writeFile(t, root, "docs/"+name, "x")
		}

		_, err := a.CountFiles("docs", "*.md", root)
		assert.ErrorIs(t, err, ErrWalkTooLarge)
	})

	t.Run("defaults pass normal trees", func(t *testing.T) {
		a := testAccessor()
		root := t.TempDir()
		writeFile(t, root, "docs/a.md", "x")
		writeFile(t, root, "docs/sub/b.md", "x")

		n, err := a.CountFiles("docs", "*.md", root)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestContentFiles(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"name":"lib"}`)
	writeFile(t, root, "docs/guide.md", "# Guide")
	writeFile(t, root, "docs/api/auth.md", "# Auth")
	writeFile(t, root, "commands/review.md", "review")
	writeFile(t, root, "src/app.js", "code")
	symlink(t, root, "docs/link.md", "guide.md")

	files, err := a.ContentFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"commands/review.md",
		"docs/api/auth.md",
		"docs/guide.md",
		"package.json",
	}, files, "symlinks and unlisted paths stay out")
}

func TestStat(t *testing.T) {
	a := testAccessor()
	root := t.TempDir()
	writeFile(t, root, "README.md", "# Library")
	writeFile(t, root, "docs/guide.md", "hello")
	symlink(t, root, "docs/link.md", "guide.md")

	e, ok := a.Stat("README.md", root)
	require.True(t, ok)
	assert.Equal(t, "README.md", e.Path)
	assert.False(t, e.Dir)
	assert.Equal(t, int64(9), e.Size)

	e, ok = a.Stat("docs", root)
	require.True(t, ok)
	assert.True(t, e.Dir)
	assert.Zero(t, e.Size, "directories carry no size")

	e, ok = a.Stat("docs/link.md", root)
	require.True(t, ok)
	assert.True(t, e.Symlink, "lstat semantics classify the link itself")

	_, ok = a.Stat("docs/nothere.md", root)
	assert.False(t, ok)

	_, ok = a.Stat("../etc/passwd", root)
	assert.False(t, ok, "denial collapses to absence")
}
