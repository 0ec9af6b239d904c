package adventure

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/textadv/internal/testutil"
)

func TestLoader_Load(t *testing.T) {
	l := NewLoader(testutil.WriteFiles(t, map[string]string{"test.ta": testutil.ClearingAdventure}))

	for _, name := range []string{"test", "test.ta"} {
		t.Run(name, func(t *testing.T) {
			adv, err := l.Load(context.Background(), name)
			require.NoError(t, err)
			assert.Equal(t, "test", adv.Name)
			assert.Len(t, adv.Rooms, 3)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	l := NewLoader(t.TempDir())

	adv, err := l.Load(context.Background(), "ghost")
	require.Error(t, err)
	assert.Nil(t, adv)

	var ferr *FileReadError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, l.Path("ghost"), ferr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_Load_GrammarErrorNamesFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"broken.ta": "map\npam\nrooms\nS=\"x\"\n"})

	_, err := NewLoader(dir).Load(context.Background(), "broken")
	var gerr *GrammarError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "broken.ta", gerr.Filename())
	assert.Equal(t, 4, gerr.Line())
}

func TestLoader_List(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"zeta.ta":       testutil.ClearingAdventure,
		"alpha.ta":      testutil.ClearingAdventure,
		"caves/deep.ta": testutil.ClearingAdventure,
		"readme.md":     "nope",
	})

	names, err := NewLoader(dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "caves/deep", "zeta"}, names)
}

func TestLoader_List_MissingDir(t *testing.T) {
	names, err := NewLoader(filepath.Join(t.TempDir(), "missing")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
