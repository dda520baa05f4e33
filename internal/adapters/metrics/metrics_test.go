package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shiori/internal/adapters/metrics"
	"go.trai.ch/shiori/internal/core/domain"
)

func TestCollector_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "shiori.prom")
	c := metrics.New(path)

	c.FilesHashed(4)
	c.UnitFinished(domain.UnitStatusCached, "cached")
	c.UnitFinished(domain.UnitStatusCached, "cached")
	c.UnitFinished(domain.UnitStatusPassed, "dependency_changed")

	require.NoError(t, c.Flush())

	//nolint:gosec // Test reads its own temp file
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `shiori_units_total{reason="cached",status="cached"} 2`)
	assert.Contains(t, out, `shiori_units_total{reason="dependency_changed",status="passed"} 1`)
	assert.Contains(t, out, "shiori_files_hashed_total 4")
	assert.Contains(t, out, "shiori_session_duration_seconds")
}

func TestCollector_FlushDisabled(t *testing.T) {
	c := metrics.New("")
	c.UnitFinished(domain.UnitStatusFailed, "no_unit_entry")
	assert.NoError(t, c.Flush())
}

func TestCollector_FlushError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	//nolint:gosec // Test file permissions
	require.NoError(t, os.WriteFile(blocker, []byte("x"), domain.FilePerm))

	c := metrics.New(filepath.Join(blocker, "nested", "shiori.prom"))
	err := c.Flush()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMetricsWriteFailed.Error())
}
