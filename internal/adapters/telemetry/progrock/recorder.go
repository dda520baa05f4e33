// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/shiori/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry with one progrock vertex per test unit.
type Recorder struct {
	w       progrock.Writer
	rec     *progrock.Recorder
	session string
}

// New creates a new Recorder on an in-memory tape.
func New(session string) *Recorder {
	return NewRecorder(progrock.NewTape(), session)
}

// NewRecorder creates a new Recorder with the given writer.
// Vertex digests are scoped to session so reruns of a unit never collide.
func NewRecorder(w progrock.Writer, session string) *Recorder {
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(w),
		session: session,
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(r.session + "/" + name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
