// Package decision decides whether a test unit may be skipped.
package decision

import "go.trai.ch/shiori/internal/core/domain"

// Reason explains a verdict.
type Reason string

const (
	// ReasonLibraryChanged means a recorded library is missing or resolved at another version.
	ReasonLibraryChanged Reason = "library_changed"
	// ReasonNoFileCache means nothing was ever recorded for the unit's test file.
	ReasonNoFileCache Reason = "no_file_cache"
	// ReasonNoUnitEntry means the unit itself was never recorded.
	ReasonNoUnitEntry Reason = "no_unit_entry"
	// ReasonEnvironmentChanged means the entry was recorded under another runtime.
	ReasonEnvironmentChanged Reason = "environment_changed"
	// ReasonPriorFailure means the unit did not pass on its last execution.
	ReasonPriorFailure Reason = "prior_failure"
	// ReasonDependencyChanged means a dependent file changed, vanished or was never digested.
	ReasonDependencyChanged Reason = "dependency_changed"
	// ReasonCached means every check passed and the unit may be skipped.
	ReasonCached Reason = "cached"
)

// Input is everything a decision observes. None of it is modified.
type Input struct {
	Unit domain.TestUnitKey
	// FileCache is the cache of the unit's test file, nil if none exists.
	FileCache *domain.TestFileCache
	// Files is the global file-state table computed at suite start.
	Files domain.FileTable
	// Recorded is the library snapshot persisted by the previous session.
	Recorded domain.LibraryVersionSet
	// Current is the library snapshot of this session.
	Current domain.LibraryVersionSet
	// Marker is the environment marker of this session.
	Marker string
}

// Verdict is the outcome of a decision.
type Verdict struct {
	Skip   bool
	Reason Reason
	// Detail names what failed the check: a library, marker or file.
	Detail string
}

// Evaluate runs every check in order and returns the first failure.
func Evaluate(in Input) Verdict {
	if name, drifted := in.Recorded.Drift(in.Current); drifted {
		return Verdict{Reason: ReasonLibraryChanged, Detail: name}
	}

	if in.FileCache == nil {
		return Verdict{Reason: ReasonNoFileCache, Detail: in.Unit.File}
	}

	entry, ok := in.FileCache.Lookup(in.Unit)
	if !ok || entry == nil {
		return Verdict{Reason: ReasonNoUnitEntry, Detail: in.Unit.ID()}
	}

	if entry.Marker != in.Marker {
		return Verdict{Reason: ReasonEnvironmentChanged, Detail: entry.Marker}
	}

	if !entry.Passed {
		return Verdict{Reason: ReasonPriorFailure}
	}

	for _, file := range entry.Files {
		if !in.Files.Unchanged(file) {
			return Verdict{Reason: ReasonDependencyChanged, Detail: file}
		}
	}

	return Verdict{Skip: true, Reason: ReasonCached}
}

// ShouldSkip reports whether the unit may be skipped.
func ShouldSkip(in Input) bool {
	return Evaluate(in).Skip
}

// ChangedFiles lists every dependent file of entry that is not confirmed unchanged.
func ChangedFiles(entry *domain.TestUnitCacheEntry, files domain.FileTable) []string {
	if entry == nil {
		return nil
	}
	var changed []string
	for _, file := range entry.Files {
		if !files.Unchanged(file) {
			changed = append(changed, file)
		}
	}
	return changed
}
