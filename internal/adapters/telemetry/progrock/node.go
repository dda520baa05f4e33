package progrock

import (
	"context"

	"github.com/google/uuid"
	"github.com/grindlemire/graft"
	"go.trai.ch/shiori/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return New(uuid.NewString()), nil
		},
	})
}
