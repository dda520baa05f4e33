package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"
	"strings"
)

// LibraryVersionSet maps a third-party module path to the version resolved for the session.
type LibraryVersionSet map[string]string

// Clone returns an independent copy of the set.
func (s LibraryVersionSet) Clone() LibraryVersionSet {
	if s == nil {
		return LibraryVersionSet{}
	}
	return maps.Clone(s)
}

// Names returns the library names in sorted order.
func (s LibraryVersionSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

// Drift returns the first library (in name order) of s that is missing from current
// or resolved at a different version. Libraries only present in current are ignored.
func (s LibraryVersionSet) Drift(current LibraryVersionSet) (name string, drifted bool) {
	for _, lib := range s.Names() {
		version, ok := current[lib]
		if !ok || version != s[lib] {
			return lib, true
		}
	}
	return "", false
}

// ID creates a deterministic hash of the set, independent of map iteration order.
func (s LibraryVersionSet) ID() string {
	var builder strings.Builder
	for _, name := range s.Names() {
		builder.WriteString(name)
		builder.WriteString("@")
		builder.WriteString(s[name])
		builder.WriteString(";")
	}

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}
