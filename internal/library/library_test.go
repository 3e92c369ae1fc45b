package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0644))
	nested := filepath.Join(root, "docs", "api")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Run("at root", func(t *testing.T) {
		dir, err := Discover(root)
		require.NoError(t, err)
		assert.Equal(t, root, dir)
	})

	t.Run("from nested directory", func(t *testing.T) {
		dir, err := Discover(nested)
		require.NoError(t, err)
		assert.Equal(t, root, dir)
	})

	t.Run("nearest manifest wins", func(t *testing.T) {
		inner := filepath.Join(root, "vendor", "kit")
		require.NoError(t, os.MkdirAll(inner, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(inner, "package.json"), []byte("{}"), 0644))

		dir, err := Discover(inner)
		require.NoError(t, err)
		assert.Equal(t, inner, dir)
	})
}

func TestDiscoverNotFound(t *testing.T) {
	_, err := Discover(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiscoverIgnoresManifestDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "package.json"), 0755))

	_, err := Discover(root)
	assert.ErrorIs(t, err, ErrNotFound)
}
