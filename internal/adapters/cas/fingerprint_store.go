package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*FingerprintStore)(nil)

// FingerprintStore encodes the global file state and the per-test-file caches
// as JSON blobs in a BlobStore.
type FingerprintStore struct {
	blobs ports.BlobStore
}

// NewFingerprintStore creates a FingerprintStore on top of blobs.
func NewFingerprintStore(blobs ports.BlobStore) *FingerprintStore {
	return &FingerprintStore{blobs: blobs}
}

// TestFileKey returns the blob key of the test file at the absolute path.
func TestFileKey(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:])
}

// LoadGlobal returns the persisted global file state.
func (s *FingerprintStore) LoadGlobal() (*domain.GlobalFileState, error) {
	data, err := s.blobs.Read(domain.GlobalStateKey)
	if err != nil {
		return domain.NewGlobalFileState(), err
	}
	if data == nil {
		return domain.NewGlobalFileState(), nil
	}

	state := domain.NewGlobalFileState()
	if err := json.Unmarshal(data, state); err != nil {
		return domain.NewGlobalFileState(), zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "key", domain.GlobalStateKey)
	}
	if state.Libraries == nil {
		state.Libraries = domain.LibraryVersionSet{}
	}
	if state.Files == nil {
		state.Files = map[string]domain.Digest{}
	}
	return state, nil
}

// SaveGlobal persists the global file state.
func (s *FingerprintStore) SaveGlobal(state *domain.GlobalFileState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	return s.blobs.Write(domain.GlobalStateKey, data)
}

// LoadTestFile returns the persisted cache of the test file at path.
func (s *FingerprintStore) LoadTestFile(path string) (*domain.TestFileCache, error) {
	data, err := s.blobs.Read(TestFileKey(path))
	if err != nil {
		return domain.NewTestFileCache(path), err
	}
	if data == nil {
		return domain.NewTestFileCache(path), nil
	}

	cache, err := decodeTestFile(data)
	if err != nil {
		return domain.NewTestFileCache(path), zerr.With(err, "path", path)
	}
	cache.Path = path
	return cache, nil
}

// SaveTestFile persists one test file cache.
func (s *FingerprintStore) SaveTestFile(cache *domain.TestFileCache) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	return s.blobs.Write(TestFileKey(cache.Path), data)
}

// TestFiles loads every readable test file cache in the store.
// Corrupt blobs are skipped and reported in the returned error.
func (s *FingerprintStore) TestFiles() ([]*domain.TestFileCache, error) {
	keys, err := s.blobs.Keys()
	if err != nil {
		return nil, err
	}

	var (
		caches []*domain.TestFileCache
		errs   error
	)
	for _, key := range keys {
		if key == domain.GlobalStateKey {
			continue
		}
		data, err := s.blobs.Read(key)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if data == nil {
			continue
		}
		cache, err := decodeTestFile(data)
		if err != nil {
			errs = errors.Join(errs, zerr.With(err, "key", key))
			continue
		}
		caches = append(caches, cache)
	}
	return caches, errs
}

// Clear removes every persisted blob.
func (s *FingerprintStore) Clear() error {
	return s.blobs.Clear()
}

func decodeTestFile(data []byte) (*domain.TestFileCache, error) {
	var cache domain.TestFileCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	if cache.Units == nil {
		cache.Units = map[string]*domain.TestUnitCacheEntry{}
	}
	return &cache, nil
}
