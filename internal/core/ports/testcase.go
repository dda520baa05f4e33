package ports

import "go.trai.ch/shiori/internal/core/domain"

// TestCase is one test unit as exposed by the test framework.
//
//go:generate mockgen -source=testcase.go -destination=mocks/mock_testcase.go -package=mocks
type TestCase interface {
	// Key identifies the unit.
	Key() domain.TestUnitKey

	// NoCache reports whether the unit explicitly opted out of caching.
	NoCache() bool

	// Declared returns files the unit declares as dependencies.
	Declared() []string

	// Run executes the unit. A nil error means success.
	Run() error

	// MarkCached reports the unit as a cached pass without executing it.
	MarkCached(reason string)
}
