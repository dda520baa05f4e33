package ports

import (
	"context"

	"go.trai.ch/shiori/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a suite run.
type Telemetry interface {
	// Record starts a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished (successfully or with an error).
	Complete(err error)
	// Cached marks the vertex as a cache hit.
	Cached()
}

// Metrics counts suite outcomes.
type Metrics interface {
	// UnitFinished counts one unit with its terminal status and the reason of the decision.
	UnitFinished(status domain.UnitStatus, reason string)
	// FilesHashed counts digests computed at suite start.
	FilesHashed(n int)
	// Flush writes the collected metrics to their destination.
	Flush() error
}
