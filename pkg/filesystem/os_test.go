package filesystem_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/organizer/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := filesystem.NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fsys.MkdirAll(subDir, 0755))

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestOSRename(t *testing.T) {
	fsys := filesystem.NewOS()

	t.Run("moves_to_free_path", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.txt")
		dst := filepath.Join(dir, "b.txt")
		require.NoError(t, os.WriteFile(src, []byte("a"), 0644))

		require.NoError(t, fsys.Rename(src, dst))

		_, err := os.Stat(src)
		assert.True(t, os.IsNotExist(err))
		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "a", string(content))
	})

	t.Run("refuses_to_replace_existing", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.txt")
		dst := filepath.Join(dir, "b.txt")
		require.NoError(t, os.WriteFile(src, []byte("source"), 0644))
		require.NoError(t, os.WriteFile(dst, []byte("keep me"), 0644))

		err := fsys.Rename(src, dst)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrExist)

		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(content))
		content, err = os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "source", string(content))
	})
}

func TestOSSameFile(t *testing.T) {
	fsys := filesystem.NewOS()
	dir := t.TempDir()

	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0644))

	t.Run("identical_path", func(t *testing.T) {
		same, err := fsys.SameFile(a, filepath.Join(dir, ".", "a.txt"))
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("equal_content_is_not_same_file", func(t *testing.T) {
		same, err := fsys.SameFile(a, b)
		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("symlink_resolves_to_target", func(t *testing.T) {
		link := filepath.Join(dir, "link.txt")
		require.NoError(t, os.Symlink(a, link))
		same, err := fsys.SameFile(a, link)
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("hard_link_shares_inode", func(t *testing.T) {
		hard := filepath.Join(dir, "hard.txt")
		require.NoError(t, os.Link(a, hard))
		same, err := fsys.SameFile(a, hard)
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("missing_path_errors", func(t *testing.T) {
		_, err := fsys.SameFile(a, filepath.Join(dir, "missing"))
		assert.Error(t, err)
	})
}
