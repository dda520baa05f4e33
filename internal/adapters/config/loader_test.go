package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shiori/internal/adapters/config"
	"go.trai.ch/shiori/internal/core/domain"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	//nolint:gosec // Test file permissions
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

// clearEnv pins every override variable to empty so the host environment does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"SHIORI", "SHIORI_CACHE_DIR", "SHIORI_BACKEND", "SHIORI_REDIS_ADDR",
		"SHIORI_SAMPLE_INTERVAL", "SHIORI_METRICS_FILE", "SHIORI_LOG_LEVEL", "SHIORI_LOG_JSON",
	} {
		t.Setenv(name, "")
	}
}

func TestLoader_Load_Defaults(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	createFile(t, root, domain.GoModFileName, "module example.com/x\n")

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.False(t, cfg.Enabled, "caching is off unless switched on")
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, domain.RootNamespace, cfg.Namespace)
	assert.Equal(t, filepath.Join(root, ".shiori", "cache"), cfg.CacheDir)
	assert.Equal(t, domain.BackendFile, cfg.Backend)
	assert.Equal(t, domain.DefaultSampleInterval, cfg.SampleInterval)
	assert.Equal(t, domain.LogLevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoader_Load_File(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, `
enabled: true
cache_dir: tmp/fingerprints
sample_interval: 5ms
exclude:
  - "*_gen.go"
metrics_file: out/shiori.prom
log:
  level: debug
  json: true
`)

	cfg, err := config.NewLoader().Load(filepath.Join(root))
	require.NoError(t, err)

	assert.True(t, cfg.Enabled)
	assert.Equal(t, filepath.Join(root, "tmp", "fingerprints"), cfg.CacheDir)
	assert.Equal(t, 5*time.Millisecond, cfg.SampleInterval)
	assert.Equal(t, []string{"*_gen.go"}, cfg.Exclude)
	assert.Equal(t, filepath.Join(root, "out", "shiori.prom"), cfg.MetricsFile)
	assert.Equal(t, domain.LogLevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "enabled: false\nbackend: file\n")

	t.Setenv("SHIORI", "1")
	t.Setenv("SHIORI_CACHE_DIR", "/var/cache/shiori")
	t.Setenv("SHIORI_SAMPLE_INTERVAL", "0s")
	t.Setenv("SHIORI_LOG_LEVEL", "warn")

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)

	assert.True(t, cfg.Enabled, "SHIORI=1 switches caching on")
	assert.Equal(t, "/var/cache/shiori", cfg.CacheDir)
	assert.Equal(t, time.Duration(0), cfg.SampleInterval)
	assert.Equal(t, domain.LogLevelWarn, cfg.LogLevel)
}

func TestLoader_Load_EnvDisables(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "enabled: true\n")
	t.Setenv("SHIORI", "false")

	cfg, err := config.NewLoader().Load(root)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "enabled: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "bad duration",
			content: "sample_interval: soon",
			wantErr: domain.ErrConfigInvalid,
		},
		{
			name:    "unknown backend",
			content: "backend: s3",
			wantErr: domain.ErrUnknownBackend,
		},
		{
			name:    "bad exclude pattern",
			content: "exclude: [\"[\"]",
			wantErr: domain.ErrConfigInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			root := t.TempDir()
			createFile(t, root, domain.ConfigFileName, tt.content)

			_, err := config.NewLoader().Load(root)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_NamespaceFromPackageDir(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	createFile(t, root, domain.GoModFileName, "module example.com/x\n")
	pkg := filepath.Join(root, "internal", "store")
	require.NoError(t, os.MkdirAll(pkg, domain.DirPerm))

	cfg, err := config.NewLoader().Load(pkg)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "internal/store", cfg.Namespace)
	assert.Equal(t, filepath.Join(root, ".shiori", "cache"), cfg.CacheDir, "namespaces share one cache directory")
}

func TestLoader_DiscoverRoot(t *testing.T) {
	t.Run("prefers shiori.yaml over nearer go.mod", func(t *testing.T) {
		root := t.TempDir()
		createFile(t, root, domain.ConfigFileName, "")
		nested := filepath.Join(root, "svc")
		createFile(t, nested, domain.GoModFileName, "module example.com/svc\n")
		deep := filepath.Join(nested, "pkg", "api")
		require.NoError(t, os.MkdirAll(deep, domain.DirPerm))

		got, err := config.NewLoader().DiscoverRoot(deep)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("falls back to nearest go.mod", func(t *testing.T) {
		root := t.TempDir()
		createFile(t, root, domain.GoModFileName, "module example.com/x\n")
		deep := filepath.Join(root, "internal", "core")
		require.NoError(t, os.MkdirAll(deep, domain.DirPerm))

		got, err := config.NewLoader().DiscoverRoot(deep)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})
}
