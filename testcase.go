package shiori

import (
	"testing"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TestCase = (*testCase)(nil)

// testCase adapts a *testing.T and its body to ports.TestCase.
type testCase struct {
	t        *testing.T
	fn       func(t *testing.T)
	key      domain.TestUnitKey
	noCache  bool
	declared []string
	cached   string
}

func (c *testCase) Key() domain.TestUnitKey { return c.key }

func (c *testCase) NoCache() bool { return c.noCache }

func (c *testCase) Declared() []string { return c.declared }

// Run executes the body. A t.FailNow or t.Skip inside it exits the goroutine
// before Run returns, which the session records as a failure.
func (c *testCase) Run() error {
	c.fn(c.t)
	if c.t.Failed() {
		return zerr.With(domain.ErrUnitFailed, "test", c.t.Name())
	}
	return nil
}

// MarkCached remembers the reason; Suite.Run skips t once the session returns.
func (c *testCase) MarkCached(reason string) {
	c.cached = reason
}
