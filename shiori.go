// Package shiori skips Go tests whose dependencies did not change since they last passed.
//
// Wire a suite into a package with TestMain and route tests through Suite.Run:
//
//	var suite = shiori.MustStart()
//
//	func TestMain(m *testing.M) {
//		os.Exit(suite.Main(m))
//	}
//
//	func TestParse(t *testing.T) {
//		suite.Run(t, func(t *testing.T) {
//			// ...
//		})
//	}
//
// Caching is off unless SHIORI=1 is set or shiori.yaml contains enabled: true.
// A disabled or nil Suite runs every test directly.
package shiori

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/grindlemire/graft"
	"go.trai.ch/shiori/internal/adapters/config"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/engine/orchestrator"
	"go.trai.ch/shiori/internal/ui/style"
	_ "go.trai.ch/shiori/internal/wiring" // Register graft nodes.
	"go.trai.ch/zerr"
)

// Suite runs the tests of one package against the fingerprint cache.
type Suite struct {
	session *orchestrator.Session
	summary io.Writer
}

// Option configures Start.
type Option func(*options)

type options struct {
	disabled bool
	summary  io.Writer
}

// Disabled turns caching off regardless of the environment.
func Disabled() Option {
	return func(o *options) {
		o.disabled = true
	}
}

// WithSummary prints a one-line summary of the session to w when the suite finishes.
func WithSummary(w io.Writer) Option {
	return func(o *options) {
		o.summary = w
	}
}

// Start loads the configuration of the package in the working directory and,
// when caching is enabled, starts a session.
func Start(ctx context.Context, opts ...Option) (*Suite, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.disabled {
		return &Suite{}, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	cfg, err := config.NewLoader().Load(cwd)
	if err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return &Suite{}, nil
	}

	session, _, err := graft.ExecuteFor[*orchestrator.Session](ctx)
	if err != nil {
		return nil, err
	}
	return &Suite{session: session, summary: o.summary}, nil
}

// MustStart is like Start but panics on error.
func MustStart(opts ...Option) *Suite {
	s, err := Start(context.Background(), opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Enabled reports whether tests of the suite are checked against the cache.
func (s *Suite) Enabled() bool {
	return s != nil && s.session != nil
}

// Main runs the tests of m and persists the cache. It returns the exit code of m.
func (s *Suite) Main(m *testing.M) int {
	code := m.Run()
	_ = s.Finish()
	return code
}

// Finish persists the cache. It is called by Main and is safe to call more than once.
// Errors are already logged when returned and never affect test results.
func (s *Suite) Finish() error {
	if !s.Enabled() {
		return nil
	}
	err := s.session.Finish(context.Background())
	if s.summary != nil {
		sum := s.session.Summary()
		_, _ = fmt.Fprintf(s.summary, "shiori: %s %d passed  %s %d failed  %s %d cached\n",
			style.RenderStatus(domain.UnitStatusPassed), sum.Passed,
			style.RenderStatus(domain.UnitStatusFailed), sum.Failed,
			style.RenderStatus(domain.UnitStatusCached), sum.Cached,
		)
	}
	return err
}

// UnitOption configures a single Run.
type UnitOption func(*testCase)

// NoCache always executes the test, even when its fingerprint is valid.
func NoCache() UnitOption {
	return func(c *testCase) {
		c.noCache = true
	}
}

// Files declares files the test depends on that its call stack does not reveal,
// such as fixtures and golden files. Relative paths resolve against the project root.
func Files(paths ...string) UnitOption {
	return func(c *testCase) {
		c.declared = append(c.declared, paths...)
	}
}

// Run executes fn as the test t unless t passed before and nothing it depends
// on changed since, in which case t is skipped. The unit is identified by the
// call site of Run and the name of t. Tests using Run must not call t.Parallel.
func (s *Suite) Run(t *testing.T, fn func(t *testing.T), opts ...UnitOption) {
	t.Helper()

	_, file, line, ok := runtime.Caller(1)
	if !s.Enabled() || !ok || !filepath.IsAbs(file) {
		fn(t)
		return
	}

	s.run(t, domain.TestUnitKey{File: file, Line: line, Name: t.Name()}, fn, opts)
}

func (s *Suite) run(t *testing.T, key domain.TestUnitKey, fn func(t *testing.T), opts []UnitOption) {
	t.Helper()

	tc := &testCase{t: t, fn: fn, key: key}
	for _, opt := range opts {
		opt(tc)
	}

	res := s.session.RunUnit(t.Context(), tc)
	if res.Status == domain.UnitStatusCached {
		t.Skipf("shiori: unchanged since last pass (%s)", tc.cached)
	}
}
