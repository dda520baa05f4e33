package domain

import "time"

const (
	// BackendFile stores blobs as files under the cache directory.
	BackendFile = "file"
	// BackendRedis stores blobs in a shared Redis instance.
	BackendRedis = "redis"

	// RootNamespace is the namespace of the package at the project root.
	RootNamespace = "."

	// DefaultSampleInterval is the default goroutine sampling period of the tracer.
	DefaultSampleInterval = time.Millisecond
)

// Config is the resolved configuration of one suite run.
type Config struct {
	// Root is the absolute project root all relative paths resolve against.
	Root string
	// Namespace is the slash separated package directory relative to Root. Every test
	// binary keeps its fingerprints in its own namespace.
	Namespace string
	// Enabled switches fingerprint caching on. When false every test runs untouched.
	Enabled bool
	// CacheDir is the absolute directory holding the file backend blobs.
	CacheDir string
	// Backend selects the blob store, BackendFile or BackendRedis.
	Backend string
	// RedisAddr is the host:port of the Redis backend.
	RedisAddr string
	// RedisPrefix namespaces the Redis keys.
	RedisPrefix string
	// SampleInterval is the goroutine sampling period. Zero disables the sampler.
	SampleInterval time.Duration
	// Exclude lists glob patterns of project files never tracked as dependencies.
	Exclude []string
	// MetricsFile is the absolute path of the Prometheus textfile written at suite end. Empty disables it.
	MetricsFile string
	// LogLevel is the minimum level of emitted logs.
	LogLevel LogLevel
	// LogJSON switches the logger to JSON output.
	LogJSON bool
}

// DefaultConfig returns the configuration used when no shiori.yaml exists.
func DefaultConfig(root string) Config {
	return Config{
		Root:           root,
		Namespace:      RootNamespace,
		Backend:        BackendFile,
		RedisPrefix:    "shiori",
		SampleInterval: DefaultSampleInterval,
		LogLevel:       LogLevelInfo,
	}
}
