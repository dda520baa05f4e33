// Package config provides the configuration loader for shiori.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/shiori/internal/core/domain"
	"go.trai.ch/shiori/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

const defaultRedisAddr = "localhost:6379"

// Environment keys, bound to the SHIORI_* variables.
const (
	keyEnabled        = "enabled"
	keyCacheDir       = "cache_dir"
	keyBackend        = "backend"
	keyRedisAddr      = "redis.addr"
	keySampleInterval = "sample_interval"
	keyMetricsFile    = "metrics_file"
	keyLogLevel       = "log.level"
	keyLogJSON        = "log.json"
)

// Loader implements ports.ConfigLoader using shiori.yaml and SHIORI_* environment variables.
type Loader struct {
	env *viper.Viper
}

// NewLoader creates a new Loader reading overrides from the process environment.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(domain.EnableEnvVar)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The enable switch is the bare prefix itself.
	_ = v.BindEnv(keyEnabled, domain.EnableEnvVar)
	return &Loader{env: v}
}

// Load discovers the project root from cwd and resolves the configuration.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig(root)
	cfg.Namespace = namespaceOf(root, cwd)
	cfg.CacheDir = domain.DefaultCachePath()
	cfg.RedisAddr = defaultRedisAddr

	configPath := filepath.Join(root, domain.ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		var file Shiorifile
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return domain.Config{}, err
		}
		if err := applyFile(&cfg, &file); err != nil {
			return domain.Config{}, zerr.With(err, "file", configPath)
		}
	}

	if err := l.applyEnv(&cfg); err != nil {
		return domain.Config{}, err
	}

	cfg.CacheDir = resolvePath(root, cfg.CacheDir)
	if cfg.MetricsFile != "" {
		cfg.MetricsFile = resolvePath(root, cfg.MetricsFile)
	}

	return cfg, validate(cfg)
}

// DiscoverRoot walks up from cwd to the nearest directory holding shiori.yaml.
// Without one, the nearest directory holding go.mod is the root.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	currentDir := absCwd
	var moduleCandidate string

	for {
		if _, err := os.Stat(filepath.Join(currentDir, domain.ConfigFileName)); err == nil {
			return currentDir, nil
		}

		if moduleCandidate == "" {
			if _, err := os.Stat(filepath.Join(currentDir, domain.GoModFileName)); err == nil {
				moduleCandidate = currentDir
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	if moduleCandidate != "" {
		return moduleCandidate, nil
	}

	return "", zerr.With(domain.ErrRootNotFound, "cwd", absCwd)
}

func applyFile(cfg *domain.Config, file *Shiorifile) error {
	if file.Enabled != nil {
		cfg.Enabled = *file.Enabled
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}
	if file.Backend != "" {
		cfg.Backend = file.Backend
	}
	if file.Redis.Addr != "" {
		cfg.RedisAddr = file.Redis.Addr
	}
	if file.Redis.Prefix != "" {
		cfg.RedisPrefix = file.Redis.Prefix
	}
	if file.SampleInterval != "" {
		interval, err := time.ParseDuration(file.SampleInterval)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "sample_interval", file.SampleInterval)
		}
		cfg.SampleInterval = interval
	}
	cfg.Exclude = append(cfg.Exclude, file.Exclude...)
	if file.MetricsFile != "" {
		cfg.MetricsFile = file.MetricsFile
	}
	if file.Log.Level != "" {
		cfg.LogLevel = domain.ParseLogLevel(file.Log.Level)
	}
	cfg.LogJSON = file.Log.JSON
	return nil
}

func (l *Loader) applyEnv(cfg *domain.Config) error {
	v := l.env
	if v.IsSet(keyEnabled) {
		cfg.Enabled = v.GetBool(keyEnabled)
	}
	if v.IsSet(keyCacheDir) {
		cfg.CacheDir = v.GetString(keyCacheDir)
	}
	if v.IsSet(keyBackend) {
		cfg.Backend = v.GetString(keyBackend)
	}
	if v.IsSet(keyRedisAddr) {
		cfg.RedisAddr = v.GetString(keyRedisAddr)
	}
	if v.IsSet(keySampleInterval) {
		raw := v.GetString(keySampleInterval)
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "sample_interval", raw)
		}
		cfg.SampleInterval = interval
	}
	if v.IsSet(keyMetricsFile) {
		cfg.MetricsFile = v.GetString(keyMetricsFile)
	}
	if v.IsSet(keyLogLevel) {
		cfg.LogLevel = domain.ParseLogLevel(v.GetString(keyLogLevel))
	}
	if v.IsSet(keyLogJSON) {
		cfg.LogJSON = v.GetBool(keyLogJSON)
	}
	return nil
}

func validate(cfg domain.Config) error {
	switch cfg.Backend {
	case domain.BackendFile, domain.BackendRedis:
	default:
		return zerr.With(domain.ErrUnknownBackend, "backend", cfg.Backend)
	}
	if cfg.SampleInterval < 0 {
		return zerr.With(domain.ErrConfigInvalid, "sample_interval", cfg.SampleInterval.String())
	}
	for _, pattern := range cfg.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "exclude", pattern)
		}
	}
	return nil
}

// namespaceOf returns the slash separated path of cwd below root.
func namespaceOf(root, cwd string) string {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return domain.RootNamespace
	}
	rel, err := filepath.Rel(root, absCwd)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return domain.RootNamespace
	}
	return filepath.ToSlash(rel)
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func readAndUnmarshalYAML(path string, v any) error {
	//nolint:gosec // Path is discovered by walking up from the working directory
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", path)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", path)
	}
	return nil
}
