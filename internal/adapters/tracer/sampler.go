package tracer

import (
	"runtime"
	"sync"
	"time"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
)

var _ ports.CallHook = (*SamplerHook)(nil)

// SamplerHook observes calls by sampling every goroutine stack at a fixed interval.
type SamplerHook struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewSamplerHook creates a SamplerHook sampling at interval.
func NewSamplerHook(interval time.Duration) *SamplerHook {
	return &SamplerHook{interval: interval}
}

// Enable starts the sampling goroutine.
func (h *SamplerHook) Enable(sink func(domain.CallEvent)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stop != nil {
		return domain.ErrHookBusy
	}

	h.stop = make(chan struct{})
	h.done = make(chan struct{})
	go h.run(sink, h.stop, h.done)
	return nil
}

// Disable stops sampling and waits for the sampling goroutine to exit.
func (h *SamplerHook) Disable() {
	h.mu.Lock()
	stop, done := h.stop, h.done
	h.stop, h.done = nil, nil
	h.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (h *SamplerHook) run(sink func(domain.CallEvent), stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	seen := make(map[uintptr]struct{})
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			sample(sink, seen)
		}
	}
}

// sample emits one event per frame not reported before in this enablement.
func sample(sink func(domain.CallEvent), seen map[uintptr]struct{}) {
	records := goroutineStacks()
	for i := range records {
		stack := records[i].Stack()
		var fresh []uintptr
		for _, pc := range stack {
			if _, ok := seen[pc]; ok {
				continue
			}
			seen[pc] = struct{}{}
			fresh = append(fresh, pc)
		}
		if len(fresh) == 0 {
			continue
		}
		frames := runtime.CallersFrames(fresh)
		for {
			frame, more := frames.Next()
			sink(domain.CallEvent{
				Kind:     domain.CallEnter,
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
			if !more {
				break
			}
		}
	}
}

func goroutineStacks() []runtime.StackRecord {
	n, _ := runtime.GoroutineProfile(nil)
	for {
		records := make([]runtime.StackRecord, n+8)
		count, ok := runtime.GoroutineProfile(records)
		if ok {
			return records[:count]
		}
		n = count
	}
}
