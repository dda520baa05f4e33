// Package telemetry provides telemetry adapters that do not depend on a recording backend.
package telemetry

import (
	"context"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
)

var (
	_ ports.Telemetry = (*NoOp)(nil)
	_ ports.Metrics   = (*NoOp)(nil)
)

// NoOp implements ports.Telemetry and ports.Metrics by discarding everything.
type NoOp struct{}

// NewNoOp creates a new NoOp.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that ignores every call.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noOpVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error { return nil }

// UnitFinished does nothing.
func (n *NoOp) UnitFinished(_ domain.UnitStatus, _ string) {}

// FilesHashed does nothing.
func (n *NoOp) FilesHashed(_ int) {}

// Flush does nothing.
func (n *NoOp) Flush() error { return nil }

type noOpVertex struct{}

func (noOpVertex) Log(_ domain.LogLevel, _ string) {}
func (noOpVertex) Complete(_ error)                {}
func (noOpVertex) Cached()                         {}
