package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinpack/internal/adapters/fs"
)

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestHasher_Fingerprint(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.deb")
	b := filepath.Join(dir, "b.deb")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0o600))

	h := fs.NewHasher()
	fa, err := h.Fingerprint(a)
	require.NoError(t, err)
	fb, err := h.Fingerprint(b)
	require.NoError(t, err)

	assert.Len(t, fa, 16)
	assert.Equal(t, fa, fb)

	require.NoError(t, os.WriteFile(b, []byte("different"), 0o600))
	fb, err = h.Fingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)

	_, err = h.Fingerprint(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestResolver_GlobAndNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	touch(t, filepath.Join(dir, "python-six_1.9.0_all.deb"), base)
	touch(t, filepath.Join(dir, "python-six_1.10.0_all.deb"), base.Add(time.Minute))
	touch(t, filepath.Join(dir, "python-puka_0.0.7_all.deb"), base.Add(2*time.Minute))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "python-six_dir_all.deb"), 0o750))

	r := fs.NewResolver()

	files, err := r.Glob(dir, "python-six_*_*.deb")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "python-six_1.10.0_all.deb"),
		filepath.Join(dir, "python-six_1.9.0_all.deb"),
	}, files, "directories never match")

	newest, err := r.Newest(dir, "python-six_*_*.deb")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "python-six_1.10.0_all.deb"), newest)

	none, err := r.Newest(dir, "*.rpm")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = r.Glob(dir, "[")
	require.Error(t, err)
}

func TestResolver_RemoveMatching(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, "test-1.deb"), now)
	touch(t, filepath.Join(dir, "test-2.deb"), now)
	touch(t, filepath.Join(dir, "test-3.deb"), now)
	touch(t, filepath.Join(dir, "keep.txt"), now)

	removed, err := fs.NewResolver().RemoveMatching(dir, "*.deb")
	require.NoError(t, err)
	assert.Len(t, removed, 3)

	left, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "keep.txt", left[0].Name())
}

func TestWalker_FindSourceTree(t *testing.T) {
	now := time.Now()

	t.Run("directory named after the package", func(t *testing.T) {
		root := t.TempDir()
		touch(t, filepath.Join(root, "PyYAML", "setup.py"), now)
		touch(t, filepath.Join(root, "other", "setup.py"), now)

		got, err := fs.NewWalker().FindSourceTree(root, "pyyaml")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "PyYAML"), got)
	})

	t.Run("single tree", func(t *testing.T) {
		root := t.TempDir()
		touch(t, filepath.Join(root, "six-1.10.0", "pyproject.toml"), now)
		touch(t, filepath.Join(root, ".cache", "setup.py"), now)
		require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o750))

		got, err := fs.NewWalker().FindSourceTree(root, "six")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "six-1.10.0"), got)
	})

	t.Run("ambiguous", func(t *testing.T) {
		root := t.TempDir()
		touch(t, filepath.Join(root, "a", "setup.py"), now)
		touch(t, filepath.Join(root, "b", "setup.py"), now)

		_, err := fs.NewWalker().FindSourceTree(root, "six")
		require.Error(t, err)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := fs.NewWalker().FindSourceTree(filepath.Join(t.TempDir(), "absent"), "six")
		require.Error(t, err)
	})
}
