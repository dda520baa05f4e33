package domain

import "go.trai.ch/zerr"

var (
	// ErrStoreCreateFailed is returned when the cache directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create fingerprint cache directory")

	// ErrStoreReadFailed is returned when a cache blob cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read fingerprint cache blob")

	// ErrStoreWriteFailed is returned when a cache blob cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write fingerprint cache blob")

	// ErrStoreMarshalFailed is returned when a cache structure cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal fingerprint cache")

	// ErrStoreUnmarshalFailed is returned when a persisted cache blob is corrupt.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal fingerprint cache")

	// ErrStoreListFailed is returned when the stored keys cannot be enumerated.
	ErrStoreListFailed = zerr.New("failed to list fingerprint cache blobs")

	// ErrStoreClearFailed is returned when the cache cannot be removed.
	ErrStoreClearFailed = zerr.New("failed to clear fingerprint cache")

	// ErrUnknownBackend is returned when the configured cache backend is not supported.
	ErrUnknownBackend = zerr.New("unknown cache backend, expected 'file' or 'redis'")

	// ErrFileOpenFailed is returned when a file cannot be opened for hashing.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a configuration value is out of range.
	ErrConfigInvalid = zerr.New("invalid configuration value")

	// ErrRootNotFound is returned when no project root can be discovered.
	ErrRootNotFound = zerr.New("could not find shiori.yaml or go.mod")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrBuildInfoUnavailable is returned when the running binary carries no module build info.
	ErrBuildInfoUnavailable = zerr.New("module build info is not available")

	// ErrGoModReadFailed is returned when the go.mod of the project cannot be read.
	ErrGoModReadFailed = zerr.New("failed to read go.mod")

	// ErrGoModParseFailed is returned when the go.mod of the project cannot be parsed.
	ErrGoModParseFailed = zerr.New("failed to parse go.mod")

	// ErrPackageScanFailed is returned when the source files of a test package cannot be listed.
	ErrPackageScanFailed = zerr.New("failed to list package source files")

	// ErrHookEnableFailed is returned when a call hook cannot be installed.
	ErrHookEnableFailed = zerr.New("failed to enable call hook")

	// ErrHookBusy is returned when a call hook is enabled while already recording.
	ErrHookBusy = zerr.New("call hook is already recording")

	// ErrSessionFlushFailed is returned when the fingerprint cache cannot be persisted at suite end.
	ErrSessionFlushFailed = zerr.New("failed to persist fingerprint cache")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrUnitFailed is returned by a test case whose execution did not succeed.
	ErrUnitFailed = zerr.New("test unit failed")
)
