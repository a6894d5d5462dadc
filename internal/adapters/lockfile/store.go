// Package lockfile persists the import map document.
package lockfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/core/domain"
)

// Store implements ports.LockfileStore using a flat JSON file.
type Store struct{}

// NewStore creates a lockfile store.
func NewStore() *Store {
	return &Store{}
}

// Read loads the lockfile at path. A missing file is not an error: it means
// no pins exist yet, so Read returns nil, nil.
func (s *Store) Read(path string) (*domain.ImportMap, error) {
	//nolint:gosec // Path comes from the project configuration
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", path)
	}

	var m domain.ImportMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lockfile"), "path", path)
	}

	return &m, nil
}

// Write persists the import map atomically with deterministic formatting.
func (s *Store) Write(path string, m *domain.ImportMap) error {
	data, err := m.MarshalIndent()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}
	data = append(data, '\n')

	if err := atomicWriteFile(filepath.Clean(path), data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", path)
	}
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// and renaming it.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "lockfile-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
