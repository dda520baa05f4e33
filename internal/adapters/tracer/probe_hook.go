package tracer

import (
	"sync"

	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/shiori/probe"
)

var _ ports.CallHook = (*ProbeHook)(nil)

// ProbeHook observes the calls project code reports through the probe package.
type ProbeHook struct {
	mu        sync.Mutex
	uninstall func()
}

// NewProbeHook creates a ProbeHook.
func NewProbeHook() *ProbeHook {
	return &ProbeHook{}
}

// Enable installs sink as the probe destination.
func (h *ProbeHook) Enable(sink func(domain.CallEvent)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.uninstall != nil {
		return domain.ErrHookBusy
	}

	h.uninstall = probe.Install(func(frames []probe.Frame) {
		for _, f := range frames {
			sink(domain.CallEvent{Kind: domain.CallEnter, Function: f.Function, File: f.File, Line: f.Line})
		}
	})
	return nil
}

// Disable removes the probe destination.
func (h *ProbeHook) Disable() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.uninstall != nil {
		h.uninstall()
		h.uninstall = nil
	}
}
