// Package probe lets project code report its execution to a running shiori session.
//
// Calls are no-ops unless a session is recording a test unit. Place Mark at the top
// of functions whose callers should be tracked precisely, and Touch wherever a file
// is read at runtime:
//
//	func LoadFixtures(path string) ([]byte, error) {
//		probe.Mark()
//		probe.Touch(path)
//		return os.ReadFile(path)
//	}
package probe

import (
	"path/filepath"
	"runtime"
	"sync/atomic"
)

const maxDepth = 64

// Frame is one reported stack frame or touched file.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Sink receives reported frames. It may be called from any goroutine.
type Sink func(frames []Frame)

var current atomic.Pointer[Sink]

// Install routes reported frames to sink until the returned function is called.
// Installing replaces any previous sink.
func Install(sink Sink) (uninstall func()) {
	p := &sink
	current.Store(p)
	return func() {
		current.CompareAndSwap(p, nil)
	}
}

// Enabled reports whether a sink is installed.
func Enabled() bool {
	return current.Load() != nil
}

// Mark reports the full call stack of its caller.
func Mark() {
	p := current.Load()
	if p == nil {
		return
	}

	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return
	}

	frames := make([]Frame, 0, n)
	iter := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := iter.Next()
		frames = append(frames, Frame{Function: frame.Function, File: frame.File, Line: frame.Line})
		if !more {
			break
		}
	}
	(*p)(frames)
}

// Touch reports files the caller read or otherwise depends on at runtime.
// Relative paths resolve against the working directory.
func Touch(paths ...string) {
	p := current.Load()
	if p == nil || len(paths) == 0 {
		return
	}

	frames := make([]Frame, 0, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		frames = append(frames, Frame{File: abs})
	}
	(*p)(frames)
}
