package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "session.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	require.NoError(t, EnsureParentDir(path), "must be idempotent")
}

func TestReadUpload(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads and sniffs", func(t *testing.T) {
		p := filepath.Join(dir, "cv.pdf")
		require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4 hello"), 0o600))

		data, ct, err := ReadUpload(p)
		require.NoError(t, err)
		require.Equal(t, "%PDF-1.4 hello", string(data))
		require.Equal(t, "application/pdf", ct)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := ReadUpload(filepath.Join(dir, "nope"))
		require.Error(t, err)
	})

	t.Run("directory rejected", func(t *testing.T) {
		_, _, err := ReadUpload(dir)
		require.Error(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		p := filepath.Join(dir, "big.bin")
		f, err := os.Create(p)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(MaxUploadSize+1))
		require.NoError(t, f.Close())

		_, _, err = ReadUpload(p)
		require.ErrorIs(t, err, ErrTooLarge)
	})
}
