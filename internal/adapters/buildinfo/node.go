package buildinfo

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/shiori/internal/adapters/config"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
)

// NodeID is the unique identifier for the library inventory Graft node.
const NodeID graft.ID = "adapter.library_inventory"

func init() {
	graft.Register(graft.Node[ports.LibraryInventory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.LibraryInventory, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(filepath.Join(cfg.Root, filepath.FromSlash(cfg.Namespace)))
		},
	})
}
