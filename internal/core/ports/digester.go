package ports

import "go.trai.ch/shiori/internal/core/domain"

// Digester computes content digests of files.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// Digest returns the digest of the file's current bytes.
	// Results are memoized per path for the lifetime of the digester.
	Digest(path string) (domain.Digest, error)

	// Forget drops the memoized digest of path.
	Forget(path string)
}
