package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
)

func TestOSFilesystem(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	t.Run("write_and_read_file", func(t *testing.T) {
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, fs.WriteFile(path, []byte("content"), 0644))

		data, err := fs.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))

		info, err := fs.Stat(path)
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})

	t.Run("mkdir_all_and_read_dir", func(t *testing.T) {
		nested := filepath.Join(dir, "a", "b", "c")
		require.NoError(t, fs.MkdirAll(nested, 0755))

		entries, err := fs.ReadDir(filepath.Join(dir, "a"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "b", entries[0].Name())
		assert.True(t, entries[0].IsDir())
	})

	t.Run("remove_all", func(t *testing.T) {
		target := filepath.Join(dir, "tree")
		require.NoError(t, fs.MkdirAll(filepath.Join(target, "sub"), 0755))
		require.NoError(t, fs.WriteFile(filepath.Join(target, "sub", "f"), []byte("x"), 0644))

		require.NoError(t, fs.RemoveAll(target))
		_, err := fs.Stat(target)
		assert.True(t, os.IsNotExist(err))
	})
}
