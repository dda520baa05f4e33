package shiori_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shiori"
	"go.trai.ch/shiori/internal/adapters/buildinfo"
	"go.trai.ch/shiori/internal/adapters/cas"
	"go.trai.ch/shiori/internal/adapters/fs"
	"go.trai.ch/shiori/internal/adapters/logger"
	"go.trai.ch/shiori/internal/adapters/telemetry"
	"go.trai.ch/shiori/internal/adapters/tracer"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/engine/orchestrator"
)

func thisFile(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return file
}

func newSuite(t *testing.T, cacheDir string, summary io.Writer) *shiori.Suite {
	t.Helper()
	root := filepath.Dir(thisFile(t))
	log := logger.New(logger.Options{Output: io.Discard})
	noop := telemetry.NewNoOp()

	session, err := orchestrator.Start(context.Background(), orchestrator.Deps{
		Store:     cas.NewFingerprintStore(cas.NewFileStore(cacheDir, fs.NewWalker())),
		Digester:  fs.NewDigester(),
		Inventory: buildinfo.Static(domain.LibraryVersionSet{}, "go test"),
		Tracer:    tracer.New(tracer.NewFilter(root, nil), log, tracer.NewProbeHook()),
		Logger:    log,
		Telemetry: noop,
		Metrics:   noop,
	})
	require.NoError(t, err)
	return shiori.NewSuite(session, summary)
}

func TestSuite_NilRunsDirectly(t *testing.T) {
	var suite *shiori.Suite
	ran := false

	suite.Run(t, func(_ *testing.T) { ran = true })

	assert.True(t, ran)
	assert.False(t, suite.Enabled())
	assert.NoError(t, suite.Finish())
}

func TestStart_Disabled(t *testing.T) {
	t.Run("option", func(t *testing.T) {
		t.Setenv("SHIORI", "1")
		suite, err := shiori.Start(context.Background(), shiori.Disabled())
		require.NoError(t, err)
		assert.False(t, suite.Enabled())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("SHIORI", "")
		suite, err := shiori.Start(context.Background())
		require.NoError(t, err)
		assert.False(t, suite.Enabled())

		ran := false
		suite.Run(t, func(_ *testing.T) { ran = true })
		assert.True(t, ran)
	})
}

func TestStart_Enabled(t *testing.T) {
	cacheDir := t.TempDir()
	metricsFile := filepath.Join(t.TempDir(), "shiori.prom")
	t.Setenv("SHIORI", "1")
	t.Setenv("SHIORI_CACHE_DIR", cacheDir)
	t.Setenv("SHIORI_METRICS_FILE", metricsFile)
	t.Setenv("SHIORI_SAMPLE_INTERVAL", "0")

	var summary bytes.Buffer
	suite, err := shiori.Start(context.Background(), shiori.WithSummary(&summary))
	require.NoError(t, err)
	require.True(t, suite.Enabled())

	ran := false
	t.Run("unit", func(t *testing.T) {
		suite.Run(t, func(_ *testing.T) { ran = true })
	})
	require.NoError(t, suite.Finish())

	assert.True(t, ran)
	assert.FileExists(t, filepath.Join(cacheDir, domain.GlobalStateKey+domain.BlobExt))
	assert.FileExists(t, metricsFile)
	assert.Contains(t, summary.String(), "1 passed")
}

func TestSuite_SkipsUnchangedTests(t *testing.T) {
	cacheDir := t.TempDir()
	key := domain.TestUnitKey{File: thisFile(t), Line: 1, Name: t.Name()}
	calls := 0

	for range 2 {
		suite := newSuite(t, cacheDir, nil)
		t.Run("unit", func(t *testing.T) {
			suite.RunKeyed(t, key, func(_ *testing.T) { calls++ })
		})
		require.NoError(t, suite.Finish())
	}

	assert.Equal(t, 1, calls)
}

func TestSuite_NoCache(t *testing.T) {
	cacheDir := t.TempDir()
	key := domain.TestUnitKey{File: thisFile(t), Line: 1, Name: t.Name()}
	calls := 0

	for range 2 {
		suite := newSuite(t, cacheDir, nil)
		t.Run("unit", func(t *testing.T) {
			suite.RunKeyed(t, key, func(_ *testing.T) { calls++ }, shiori.NoCache())
		})
		require.NoError(t, suite.Finish())
	}

	assert.Equal(t, 2, calls)
}

func TestSuite_DeclaredFiles(t *testing.T) {
	cacheDir := t.TempDir()
	fixture := filepath.Join(t.TempDir(), "golden.txt")
	require.NoError(t, os.WriteFile(fixture, []byte("v1"), domain.FilePerm))
	key := domain.TestUnitKey{File: thisFile(t), Line: 1, Name: t.Name()}
	calls := 0

	session := func() {
		suite := newSuite(t, cacheDir, nil)
		t.Run("unit", func(t *testing.T) {
			suite.RunKeyed(t, key, func(_ *testing.T) { calls++ }, shiori.Files(fixture))
		})
		require.NoError(t, suite.Finish())
	}

	session()
	session()
	assert.Equal(t, 1, calls)

	require.NoError(t, os.WriteFile(fixture, []byte("v2"), domain.FilePerm))
	session()
	assert.Equal(t, 2, calls)
}

func TestSuite_Summary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	suite := newSuite(t, t.TempDir(), &out)

	t.Run("unit", func(t *testing.T) {
		suite.RunKeyed(t, domain.TestUnitKey{File: thisFile(t), Line: 1}, func(_ *testing.T) {})
	})
	require.NoError(t, suite.Finish())

	assert.Contains(t, out.String(), "1 passed")
	assert.Contains(t, out.String(), "0 cached")
}
