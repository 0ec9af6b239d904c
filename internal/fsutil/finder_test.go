package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.ta", "a.ta", "notes.txt", "nested/c.ta", ".hidden/d.ta"} {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}

	files, err := FindFilesByExtension(root, ".ta")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.ta"),
		filepath.Join(root, "b.ta"),
		filepath.Join(root, "nested", "c.ta"),
	}, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	files, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".ta")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtension_PanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}
