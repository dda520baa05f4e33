// Package orchestrator runs test units against the fingerprint cache.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/shiori/internal/engine/decision"
	"go.trai.ch/shiori/internal/engine/fingerprint"
	"go.trai.ch/zerr"
)

// ReasonNoCache is reported for units that opted out of caching.
const ReasonNoCache = "no_cache"

// Deps are the collaborators of a Session.
type Deps struct {
	Store     ports.FingerprintStore
	Digester  ports.Digester
	Inventory ports.LibraryInventory
	Tracer    ports.ExecutionTracer
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Metrics   ports.Metrics
}

// Summary counts the terminal statuses of a session.
type Summary struct {
	Passed int
	Failed int
	Cached int
}

// Total returns the number of units run through the session.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Cached
}

// Session is the state of one suite run. Units are run one at a time.
type Session struct {
	id      string
	deps    Deps
	started time.Time

	libraries domain.LibraryVersionSet
	marker    string
	cache     *fingerprint.Cache

	summary  Summary
	finished bool
}

// Start snapshots the environment and loads the fingerprint cache.
func Start(ctx context.Context, deps Deps) (*Session, error) {
	s := &Session{
		id:        uuid.NewString(),
		deps:      deps,
		started:   time.Now(),
		libraries: deps.Inventory.Libraries().Clone(),
		marker:    deps.Inventory.EnvironmentMarker(),
	}

	cache, err := fingerprint.Load(ctx, deps.Store, deps.Digester, deps.Logger)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	deps.Metrics.FilesHashed(cache.Hashed())

	if name, drifted := cache.Recorded().Drift(s.libraries); drifted {
		deps.Logger.Info("library set changed, every unit will run", "library", name)
	}
	deps.Logger.Debug("session started",
		"session", s.id,
		"marker", s.marker,
		"libraries", len(s.libraries),
		"files", cache.Hashed(),
	)
	return s, nil
}

// ID returns the session identifier stamped into the persisted state.
func (s *Session) ID() string {
	return s.id
}

// Marker returns the environment marker of the session.
func (s *Session) Marker() string {
	return s.marker
}

// Summary returns the statuses counted so far.
func (s *Session) Summary() Summary {
	return s.summary
}

// Decide evaluates whether tc may be skipped without running it.
func (s *Session) Decide(tc ports.TestCase) decision.Verdict {
	key := tc.Key()
	return decision.Evaluate(decision.Input{
		Unit:      key,
		FileCache: s.cache.TestFile(key.File),
		Files:     s.cache.Table(),
		Recorded:  s.cache.Recorded(),
		Current:   s.libraries,
		Marker:    s.marker,
	})
}

// RunUnit skips tc when its fingerprint is still valid and otherwise runs it
// under the tracer and records the outcome. Recording also happens when Run
// panics or exits its goroutine, in which case the unit counts as failed.
func (s *Session) RunUnit(ctx context.Context, tc ports.TestCase) (res domain.UnitResult) {
	key := tc.Key()
	res = domain.UnitResult{Key: key, Status: domain.UnitStatusPending}

	verdict := s.Decide(tc)
	_, vertex := s.deps.Telemetry.Record(ctx, key.String())

	if verdict.Skip && !tc.NoCache() {
		res.Status = domain.UnitStatusCached
		res.Reason = string(verdict.Reason)
		tc.MarkCached(res.Reason)
		vertex.Cached()
		s.finishUnit(res)
		s.deps.Logger.Debug("unit cached", "unit", key.String())
		return res
	}

	res.Reason = string(verdict.Reason)
	if verdict.Skip {
		res.Reason = ReasonNoCache
	}
	vertex.Log(domain.LogLevelDebug, "running: "+describe(verdict, res.Reason))
	s.deps.Logger.Debug("running unit", "unit", key.String(), "reason", res.Reason, "detail", verdict.Detail)

	res.Status = domain.UnitStatusRunning
	rec := s.deps.Tracer.Begin(key)
	rec.Declare(tc.Declared()...)

	var (
		runErr   error
		returned bool
	)
	defer func() {
		res.Files = rec.End()
		passed := returned && runErr == nil
		s.cache.Record(key, s.marker, passed, res.Files)

		res.Status = domain.UnitStatusPassed
		if !passed {
			res.Status = domain.UnitStatusFailed
			if runErr == nil {
				runErr = zerr.With(domain.ErrUnitFailed, "unit", key.String())
			}
			vertex.Complete(runErr)
		} else {
			vertex.Complete(nil)
		}
		s.finishUnit(res)
		s.deps.Logger.Debug("unit recorded",
			"unit", key.String(),
			"status", string(res.Status),
			"files", len(res.Files),
		)
	}()

	runErr = tc.Run()
	returned = true
	return res
}

func (s *Session) finishUnit(res domain.UnitResult) {
	switch res.Status {
	case domain.UnitStatusCached:
		s.summary.Cached++
	case domain.UnitStatusPassed:
		s.summary.Passed++
	default:
		s.summary.Failed++
	}
	s.deps.Metrics.UnitFinished(res.Status, res.Reason)
}

func describe(v decision.Verdict, reason string) string {
	if v.Detail == "" {
		return reason
	}
	return reason + " (" + v.Detail + ")"
}

// Finish persists the cache and closes telemetry and metrics. It is safe to
// call more than once; only the first call does any work. Errors are logged
// and returned joined, they never change a unit's outcome.
func (s *Session) Finish(ctx context.Context) error {
	if s.finished {
		return nil
	}
	s.finished = true

	var errs error

	_, vertex := s.deps.Telemetry.Record(ctx, "flush fingerprint cache")
	flushErr := s.cache.Flush(s.libraries, s.id)
	vertex.Complete(flushErr)
	if flushErr != nil {
		errs = errors.Join(errs, flushErr)
	}

	if err := s.deps.Telemetry.Close(); err != nil {
		errs = errors.Join(errs, err)
	}
	if err := s.deps.Metrics.Flush(); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		s.deps.Logger.Error(errs)
		return errs
	}

	s.deps.Logger.Debug("session finished",
		"session", s.id,
		"passed", s.summary.Passed,
		"failed", s.summary.Failed,
		"cached", s.summary.Cached,
		"elapsed", time.Since(s.started).String(),
	)
	return nil
}
