// Package cache implements the persistent module store and the two caching
// policies layered on top of it.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/core/domain"
)

// Store implements ports.ModuleStore with one JSON file per entry, named by
// the xxhash of the entry URL.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create module cache directory")
	}
	return &Store{dir: cleanDir}, nil
}

func (s *Store) entryPath(url string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(url)))
}

// Get retrieves the entry for a URL. Every failure mode (missing file,
// corrupt JSON, key collision) reads as a cache miss.
func (s *Store) Get(url string) (domain.CacheEntry, error) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.entryPath(url))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CacheEntry{}, domain.ErrCacheMiss
		}
		return domain.CacheEntry{}, zerr.Wrap(err, domain.ErrCacheMiss.Error())
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CacheEntry{}, zerr.Wrap(err, domain.ErrCacheMiss.Error())
	}
	if entry.URL != url {
		return domain.CacheEntry{}, domain.ErrCacheMiss
	}

	return entry, nil
}

// Put stores the entry, replacing any previous one for the same URL.
func (s *Store) Put(entry domain.CacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache entry")
	}
	if err := atomicWriteFile(s.entryPath(entry.URL), data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache entry"), "url", entry.URL)
	}
	return nil
}

// Clear removes every entry unconditionally.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.Wrap(err, "failed to clear module cache")
	}
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to recreate module cache directory")
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

	tmpFile, err := os.CreateTemp(dir, "module-cache-*.json")
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
