package ports

import "go.trai.ch/shiori/internal/core/domain"

// BlobStore persists opaque blobs by key.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BlobStore interface {
	// Read returns the blob stored at key.
	// Returns nil, nil if no blob exists.
	Read(key string) ([]byte, error)

	// Write stores blob at key, replacing any previous blob.
	Write(key string, blob []byte) error

	// Keys lists every stored key.
	Keys() ([]string, error)

	// Clear removes every stored blob.
	Clear() error
}

// BlobBackend opens blob stores scoped to a namespace. Each test package owns one namespace.
type BlobBackend interface {
	// Open returns the store of namespace.
	Open(namespace string) (BlobStore, error)

	// Namespaces lists every namespace holding a global file state.
	Namespaces() ([]string, error)

	// Clear removes every blob of every namespace.
	Clear() error

	// Close releases the backend's resources.
	Close() error
}

// FingerprintStore reads and writes the two persisted cache structures.
type FingerprintStore interface {
	// LoadGlobal returns the global file state.
	// A missing blob yields an empty state and no error. A corrupt blob yields
	// an empty state together with the decode error.
	LoadGlobal() (*domain.GlobalFileState, error)

	// SaveGlobal persists the global file state.
	SaveGlobal(state *domain.GlobalFileState) error

	// LoadTestFile returns the cache of the test file at the absolute path.
	// Missing and corrupt blobs behave as in LoadGlobal.
	LoadTestFile(path string) (*domain.TestFileCache, error)

	// SaveTestFile persists one test file cache.
	SaveTestFile(cache *domain.TestFileCache) error

	// TestFiles loads every persisted test file cache.
	TestFiles() ([]*domain.TestFileCache, error)

	// Clear removes every persisted structure.
	Clear() error
}
