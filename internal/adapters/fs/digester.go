package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// Digester computes xxhash digests of file contents and memoizes them per path.
type Digester struct {
	mu   sync.Mutex
	memo map[string]domain.Digest
}

// NewDigester creates a new Digester with an empty memo.
func NewDigester() *Digester {
	return &Digester{memo: make(map[string]domain.Digest)}
}

// Digest returns the digest of the file at path, reading it at most once.
// Failed reads are not memoized.
func (d *Digester) Digest(path string) (domain.Digest, error) {
	path = filepath.Clean(path)

	d.mu.Lock()
	digest, ok := d.memo[path]
	d.mu.Unlock()
	if ok {
		return digest, nil
	}

	digest, err := ComputeFileDigest(path)
	if err != nil {
		return "", err
	}

	d.mu.Lock()
	d.memo[path] = digest
	d.mu.Unlock()

	return digest, nil
}

// Forget drops the memoized digest of path.
func (d *Digester) Forget(path string) {
	d.mu.Lock()
	delete(d.memo, filepath.Clean(path))
	d.mu.Unlock()
}

// ComputeFileDigest computes the XXHash of a file's content without memoization.
func ComputeFileDigest(path string) (domain.Digest, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return domain.Digest(fmt.Sprintf("%016x", hasher.Sum64())), nil
}
