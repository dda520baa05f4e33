package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shiori/internal/adapters/buildinfo"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shiori/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shiori/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shiori/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shiori/internal/adapters/metrics"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shiori/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shiori/internal/adapters/tracer"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shiori/internal/core/ports"
)

// NodeID is the unique identifier for the session Graft node.
const NodeID graft.ID = "engine.session"

func init() {
	graft.Register(graft.Node[*Session]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			fs.DigesterNodeID,
			buildinfo.NodeID,
			tracer.NodeID,
			logger.NodeID,
			progrock.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Session, error) {
			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			inventory, err := graft.Dep[ports.LibraryInventory](ctx)
			if err != nil {
				return nil, err
			}

			execTracer, err := graft.Dep[ports.ExecutionTracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}

			return Start(ctx, Deps{
				Store:     store,
				Digester:  digester,
				Inventory: inventory,
				Tracer:    execTracer,
				Logger:    log,
				Telemetry: telemetry,
				Metrics:   collector,
			})
		},
	})
}
