package domain

import "path/filepath"

const (
	// ShioriDirName is the name of the internal project directory.
	ShioriDirName = ".shiori"

	// CacheDirName is the name of the fingerprint cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "shiori.yaml"

	// GoModFileName marks a Go module root when no configuration file exists.
	GoModFileName = "go.mod"

	// GlobalStateKey is the fixed key of the global file-state blob.
	GlobalStateKey = "files"

	// BlobExt is the file extension of persisted cache blobs.
	BlobExt = ".json"

	// EnableEnvVar is the environment variable that switches caching on.
	EnableEnvVar = "SHIORI"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultShioriPath returns the default root directory for shiori metadata.
func DefaultShioriPath() string {
	return ShioriDirName
}

// DefaultCachePath returns the default path for the fingerprint cache.
// It joins .shiori and cache.
func DefaultCachePath() string {
	return filepath.Join(ShioriDirName, CacheDirName)
}
