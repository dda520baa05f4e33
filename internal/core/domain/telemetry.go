package domain

import "strings"

// UnitStatus represents the lifecycle state of a test unit within a session.
type UnitStatus string

const (
	// UnitStatusPending indicates the unit has not been evaluated yet.
	UnitStatusPending UnitStatus = "pending"
	// UnitStatusRunning indicates the unit is currently executing under the tracer.
	UnitStatusRunning UnitStatus = "running"
	// UnitStatusPassed indicates the unit executed successfully.
	UnitStatusPassed UnitStatus = "passed"
	// UnitStatusFailed indicates the unit execution failed, panicked or was aborted.
	UnitStatusFailed UnitStatus = "failed"
	// UnitStatusCached indicates the unit was skipped because a valid fingerprint was found.
	UnitStatusCached UnitStatus = "cached"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a config string to a LogLevel, defaulting to info.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// IsTerminal checks if a status is a terminal state (Passed, Failed, Cached).
func (s UnitStatus) IsTerminal() bool {
	switch s {
	case UnitStatusPassed, UnitStatusFailed, UnitStatusCached:
		return true
	default:
		return false
	}
}

// NormalizeUnitStatus converts a string to a UnitStatus, defaulting to pending if unknown.
func NormalizeUnitStatus(s string) UnitStatus {
	switch strings.ToLower(s) {
	case string(UnitStatusRunning):
		return UnitStatusRunning
	case string(UnitStatusPassed):
		return UnitStatusPassed
	case string(UnitStatusFailed):
		return UnitStatusFailed
	case string(UnitStatusCached):
		return UnitStatusCached
	default:
		return UnitStatusPending
	}
}
