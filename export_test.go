package shiori

import (
	"io"
	"testing"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/engine/orchestrator"
)

// NewSuite wraps an already started session.
func NewSuite(session *orchestrator.Session, summary io.Writer) *Suite {
	return &Suite{session: session, summary: summary}
}

// RunKeyed is Run with a fixed unit key, as a later process running the same test would compute it.
func (s *Suite) RunKeyed(t *testing.T, key domain.TestUnitKey, fn func(t *testing.T), opts ...UnitOption) {
	t.Helper()
	s.run(t, key, fn, opts)
}
