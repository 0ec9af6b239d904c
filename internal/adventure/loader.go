package adventure

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/textadv/internal/ctxlog"
	"github.com/specialistvlad/textadv/internal/fsutil"
)

// Loader reads adventure files from a directory.
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Dir returns the directory adventures are read from.
func (l *Loader) Dir() string {
	return l.dir
}

// Path returns the file path an adventure name resolves to. The ".ta"
// extension is appended when name does not already carry it.
func (l *Loader) Path(name string) string {
	if filepath.Ext(name) != FileExtension {
		name += FileExtension
	}
	return filepath.Join(l.dir, name)
}

// Load reads and parses the named adventure.
func (l *Loader) Load(ctx context.Context, name string) (*Adventure, error) {
	logger := ctxlog.FromContext(ctx)
	path := l.Path(name)
	logger.Debug("Loading adventure.", "name", name, "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	adv, err := Parse(filepath.Base(path), src)
	if err != nil {
		logger.Debug("Adventure rejected by parser.", "path", path, "error", err)
		return nil, err
	}

	logger.Debug("Adventure parsed.", "name", adv.Name, "rooms", len(adv.Rooms))
	return adv, nil
}

// List returns the names of all adventures under the loader's directory,
// sorted, without extension. A missing directory yields an empty list.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	files, err := fsutil.FindFilesByExtension(l.dir, FileExtension)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(l.dir, f)
		if err != nil {
			rel = filepath.Base(f)
		}
		names = append(names, strings.TrimSuffix(filepath.ToSlash(rel), FileExtension))
	}
	sort.Strings(names)
	ctxlog.FromContext(ctx).Debug("Listed adventures.", "dir", l.dir, "count", len(names))
	return names, nil
}
