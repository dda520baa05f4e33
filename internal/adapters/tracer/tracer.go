// Package tracer records which project files a test unit executes.
package tracer

import (
	"slices"
	"sync"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExecutionTracer = (*Tracer)(nil)

// Tracer implements ports.ExecutionTracer on top of a set of call hooks.
type Tracer struct {
	hooks  []ports.CallHook
	filter *Filter
	logger ports.Logger
	// static holds files every unit depends on regardless of what the hooks observe.
	static []string
}

// New creates a Tracer that enables hooks for every unit and keeps the paths filter accepts.
func New(filter *Filter, logger ports.Logger, hooks ...ports.CallHook) *Tracer {
	return &Tracer{hooks: hooks, filter: filter, logger: logger}
}

// WithPackageFiles makes every recording include files, typically the sources the
// test package is compiled from. Files the filter rejects are dropped.
func (t *Tracer) WithPackageFiles(files []string) *Tracer {
	static := make([]string, 0, len(files))
	for _, file := range files {
		if t.filter.Keep(file, "") {
			static = append(static, file)
		}
	}
	t.static = static
	return t
}

// Begin enables every hook for unit. A hook that fails to enable is skipped with a warning.
func (t *Tracer) Begin(unit domain.TestUnitKey) ports.Recording {
	rec := &recording{
		unit:   unit,
		filter: t.filter,
		static: t.static,
		seen:   make(map[string]bool),
	}

	for _, hook := range t.hooks {
		if err := hook.Enable(rec.collect); err != nil {
			t.logger.Warn("call hook unavailable", "unit", unit.String(), "error", zerr.Wrap(err, domain.ErrHookEnableFailed.Error()).Error())
			continue
		}
		rec.enabled = append(rec.enabled, hook)
	}

	return rec
}

// Trace runs fn under a recording of unit and returns the files it touched.
// Hooks are disabled however fn exits. A panic in fn propagates after disablement.
func (t *Tracer) Trace(unit domain.TestUnitKey, fn func() error) (files []string, err error) {
	rec := t.Begin(unit)
	defer func() {
		files = rec.End()
	}()
	return nil, fn()
}

type recording struct {
	unit    domain.TestUnitKey
	filter  *Filter
	static  []string
	enabled []ports.CallHook

	mu       sync.Mutex
	ended    bool
	seen     map[string]bool
	declared []string
	files    []string
}

// collect is the sink handed to every hook. Hooks may call it from any goroutine.
func (r *recording) collect(ev domain.CallEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ended {
		return
	}
	if _, ok := r.seen[ev.File]; ok {
		return
	}
	r.seen[ev.File] = r.filter.Keep(ev.File, ev.Function)
}

func (r *recording) Declare(paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ended {
		return
	}
	for _, path := range paths {
		r.declared = append(r.declared, r.filter.Abs(path))
	}
}

func (r *recording) End() []string {
	r.mu.Lock()
	if r.ended {
		files := r.files
		r.mu.Unlock()
		return files
	}
	r.ended = true
	r.mu.Unlock()

	// Hooks are disabled outside the lock: a sampler may be blocked in collect.
	for i := len(r.enabled) - 1; i >= 0; i-- {
		r.enabled[i].Disable()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	files := make([]string, 0, len(r.seen)+len(r.static)+len(r.declared)+1)
	for file, kept := range r.seen {
		if kept {
			files = append(files, file)
		}
	}
	files = append(files, r.static...)
	files = append(files, r.declared...)
	files = append(files, r.filter.Abs(r.unit.File))

	slices.Sort(files)
	r.files = slices.Compact(files)
	return r.files
}
