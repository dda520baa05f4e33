// Package metrics counts suite outcomes with Prometheus collectors.
package metrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Collector)(nil)

// Collector implements ports.Metrics on a private registry written out as a
// node-exporter textfile when the suite finishes.
type Collector struct {
	path     string
	started  time.Time
	registry *prometheus.Registry

	units    *prometheus.CounterVec
	hashed   prometheus.Counter
	duration prometheus.Gauge
}

// New creates a Collector writing to path on Flush. An empty path disables writing.
func New(path string) *Collector {
	c := &Collector{
		path:     path,
		started:  time.Now(),
		registry: prometheus.NewRegistry(),
		units: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shiori_units_total",
				Help: "Test units finished, by status and decision reason.",
			},
			[]string{"status", "reason"},
		),
		hashed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiori_files_hashed_total",
			Help: "Files digested while preparing the suite.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shiori_session_duration_seconds",
			Help: "Wall time from suite start to flush.",
		}),
	}
	c.registry.MustRegister(c.units, c.hashed, c.duration)
	return c
}

// Registry exposes the collectors, for callers serving them elsewhere.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// UnitFinished counts one unit.
func (c *Collector) UnitFinished(status domain.UnitStatus, reason string) {
	c.units.WithLabelValues(string(status), reason).Inc()
}

// FilesHashed counts digested files.
func (c *Collector) FilesHashed(n int) {
	c.hashed.Add(float64(n))
}

// Flush writes every collector to the textfile.
func (c *Collector) Flush() error {
	if c.path == "" {
		return nil
	}

	c.duration.Set(time.Since(c.started).Seconds())

	if err := os.MkdirAll(filepath.Dir(c.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", c.path)
	}
	if err := prometheus.WriteToTextfile(c.path, c.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", c.path)
	}
	return nil
}
