package ports

import "go.trai.ch/shiori/internal/core/domain"

// CallHook is an instrumentation facility that reports call boundaries while enabled.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type CallHook interface {
	// Enable starts delivering events to sink.
	Enable(sink func(domain.CallEvent)) error

	// Disable stops delivering events. Events already delivered are kept by the sink.
	Disable()
}

// Recording is one in-flight trace of a test unit.
type Recording interface {
	// Declare adds files the unit depends on that no call stack reveals.
	Declare(paths ...string)

	// End disables instrumentation and returns the sorted, deduplicated project
	// files the unit touched, always including the unit's own file.
	// It is safe to call End more than once.
	End() []string
}

// ExecutionTracer records the project files exercised by a test unit.
type ExecutionTracer interface {
	// Begin enables instrumentation for unit.
	Begin(unit domain.TestUnitKey) Recording
}
