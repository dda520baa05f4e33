package pkgdeps

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shiori/internal/adapters/config"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
)

// NodeID is the unique identifier for the package scanner Graft node.
const NodeID graft.ID = "adapter.package_scanner"

func init() {
	graft.Register(graft.Node[ports.PackageScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.PackageScanner, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(cfg.Root), nil
		},
	})
}
