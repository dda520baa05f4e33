// Package cas implements the persistent fingerprint cache stores.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	shiorifs "go.trai.ch/shiori/internal/adapters/fs"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.BlobStore   = (*FileStore)(nil)
	_ ports.BlobBackend = (*FileBackend)(nil)
)

// FileBackend implements ports.BlobBackend with one directory per namespace below a cache directory.
type FileBackend struct {
	dir    string
	walker *shiorifs.Walker
}

// NewFileBackend creates a FileBackend rooted at dir.
func NewFileBackend(dir string, walker *shiorifs.Walker) *FileBackend {
	return &FileBackend{dir: filepath.Clean(dir), walker: walker}
}

// Open returns the store of namespace.
func (b *FileBackend) Open(namespace string) (ports.BlobStore, error) {
	return NewFileStore(filepath.Join(b.dir, filepath.FromSlash(namespace)), b.walker), nil
}

// Namespaces lists every directory below the cache directory holding a global file state.
func (b *FileBackend) Namespaces() ([]string, error) {
	if _, err := os.Stat(b.dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreListFailed.Error()), "dir", b.dir)
	}

	var namespaces []string
	for path := range b.walker.WalkFiles(b.dir, domain.GlobalStateKey+domain.BlobExt) {
		rel, err := filepath.Rel(b.dir, filepath.Dir(path))
		if err != nil {
			continue
		}
		namespaces = append(namespaces, filepath.ToSlash(rel))
	}
	return namespaces, nil
}

// Clear removes the whole cache directory.
func (b *FileBackend) Clear() error {
	if err := os.RemoveAll(b.dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreClearFailed.Error()), "dir", b.dir)
	}
	return nil
}

// Close does nothing.
func (b *FileBackend) Close() error {
	return nil
}

// FileStore implements ports.BlobStore using a file-per-key strategy.
type FileStore struct {
	dir    string
	walker *shiorifs.Walker
}

// NewFileStore creates a new BlobStore backed by the directory at the given path.
// The directory is created lazily on the first write.
func NewFileStore(dir string, walker *shiorifs.Walker) *FileStore {
	return &FileStore{dir: filepath.Clean(dir), walker: walker}
}

// Dir returns the directory holding the blobs.
func (s *FileStore) Dir() string {
	return s.dir
}

// Read returns the blob stored at key, or nil if it does not exist.
func (s *FileStore) Read(key string) ([]byte, error) {
	filename := s.getFilename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}
	return data, nil
}

// Write stores blob at key.
func (s *FileStore) Write(key string, blob []byte) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", s.dir)
	}

	filename := s.getFilename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, blob, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}

// Keys lists the keys of every blob in the store.
func (s *FileStore) Keys() ([]string, error) {
	if _, err := os.Stat(s.dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreListFailed.Error()), "dir", s.dir)
	}

	var keys []string
	for path := range s.walker.WalkFiles(s.dir, "*"+domain.BlobExt) {
		if filepath.Dir(path) != s.dir {
			continue
		}
		keys = append(keys, strings.TrimSuffix(filepath.Base(path), domain.BlobExt))
	}
	return keys, nil
}

// Clear removes every blob of the store. Nested namespaces are left alone.
func (s *FileStore) Clear() error {
	keys, err := s.Keys()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	for _, key := range keys {
		if err := os.Remove(s.getFilename(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreClearFailed.Error()), "key", key)
		}
	}
	return nil
}

func (s *FileStore) getFilename(key string) string {
	return filepath.Join(s.dir, key+domain.BlobExt)
}
