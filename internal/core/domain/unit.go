package domain

import (
	"strconv"
	"strings"
	"time"
)

// TestUnitKey identifies one independently cacheable test unit.
// Name qualifies units that share a line, such as table-driven subtests.
type TestUnitKey struct {
	File string
	Line int
	Name string
}

// ID returns the key of the unit inside its TestFileCache.
func (k TestUnitKey) ID() string {
	id := strconv.Itoa(k.Line)
	if k.Name != "" {
		id += "#" + k.Name
	}
	return id
}

// ParseTestUnitKey rebuilds the key of a unit of the test file at file from its ID.
func ParseTestUnitKey(file, id string) (TestUnitKey, bool) {
	lineStr, name, _ := strings.Cut(id, "#")
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 0 {
		return TestUnitKey{}, false
	}
	return TestUnitKey{File: file, Line: line, Name: name}, true
}

// String renders the key for logs.
func (k TestUnitKey) String() string {
	s := k.File + ":" + strconv.Itoa(k.Line)
	if k.Name != "" {
		s += " (" + k.Name + ")"
	}
	return s
}

// TestUnitCacheEntry is the fingerprint recorded for one test unit.
type TestUnitCacheEntry struct {
	// Marker identifies the runtime the entry was recorded under.
	Marker string `json:"environment"`
	// Passed is the outcome of the last execution.
	Passed bool `json:"passed"`
	// Files is the sorted set of project files the unit depended on.
	Files []string `json:"files"`
	// RecordedAt is when the entry was last written.
	RecordedAt time.Time `json:"recorded_at,omitzero"`
}

// TestFileCache holds every unit entry of one test file.
type TestFileCache struct {
	Path  string                         `json:"path"`
	Units map[string]*TestUnitCacheEntry `json:"units"`
}

// NewTestFileCache returns an empty cache for the test file at path.
func NewTestFileCache(path string) *TestFileCache {
	return &TestFileCache{
		Path:  path,
		Units: make(map[string]*TestUnitCacheEntry),
	}
}

// Lookup returns the entry of the unit, if any.
func (c *TestFileCache) Lookup(key TestUnitKey) (*TestUnitCacheEntry, bool) {
	if c == nil || c.Units == nil {
		return nil, false
	}
	entry, ok := c.Units[key.ID()]
	return entry, ok
}

// Put replaces the entry of the unit.
func (c *TestFileCache) Put(key TestUnitKey, entry *TestUnitCacheEntry) {
	if c.Units == nil {
		c.Units = make(map[string]*TestUnitCacheEntry)
	}
	c.Units[key.ID()] = entry
}

// UnitResult is the outcome of running one unit through the orchestrator.
type UnitResult struct {
	Key    TestUnitKey
	Status UnitStatus
	Reason string
	Files  []string
}
