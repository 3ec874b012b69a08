package snapshot

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DirStore writes snapshots into a directory tree on the local
// filesystem. Page names become relative paths under the root; parent
// directories are created as needed.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir. The directory itself is
// created on the first Put, not here, so constructing a store has no
// side effects.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Dir returns the store's root directory.
func (s *DirStore) Dir() string {
	return s.dir
}

// Put implements Store. The content type is ignored; on a filesystem the
// extension carries it.
func (s *DirStore) Put(_ context.Context, name, _ string, data []byte) error {
	rel, err := cleanName(name)
	if err != nil {
		return err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0644)
}

// cleanName validates a page name and normalizes it to a relative
// slash path. Absolute names and names escaping the root are rejected
// rather than silently rewritten.
func cleanName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty page name")
	}
	cleaned := path.Clean("/" + name)[1:]
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("page name %q resolves to the store root", name)
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
		return "", fmt.Errorf("page name %q must be a relative path inside the store", name)
	}
	return cleaned, nil
}
