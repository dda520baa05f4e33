package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shiori/internal/adapters/config"
	"go.trai.ch/shiori/internal/adapters/fs"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// BackendNodeID is the unique identifier for the blob backend Graft node.
	BackendNodeID graft.ID = "adapter.blob_backend"
	// NodeID is the unique identifier for the fingerprint store Graft node.
	NodeID graft.ID = "adapter.fingerprint_store"
)

func init() {
	graft.Register(graft.Node[ports.BlobBackend]{
		ID:        BackendNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.BlobBackend, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewBackend(ctx, cfg, walker)
		},
	})

	graft.Register(graft.Node[ports.FingerprintStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, BackendNodeID},
		Run: func(ctx context.Context) (ports.FingerprintStore, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			backend, err := graft.Dep[ports.BlobBackend](ctx)
			if err != nil {
				return nil, err
			}
			blobs, err := backend.Open(cfg.Namespace)
			if err != nil {
				return nil, err
			}
			return NewFingerprintStore(blobs), nil
		},
	})
}

// NewBackend creates the blob backend selected by cfg.Backend.
func NewBackend(ctx context.Context, cfg domain.Config, walker *fs.Walker) (ports.BlobBackend, error) {
	switch cfg.Backend {
	case domain.BackendFile, "":
		return NewFileBackend(cfg.CacheDir, walker), nil
	case domain.BackendRedis:
		return NewRedisBackend(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", cfg.Backend)
	}
}
