package ports

import "go.trai.ch/shiori/internal/core/domain"

// LibraryInventory describes the execution environment of the running suite.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type LibraryInventory interface {
	// Libraries returns the third-party modules linked into the running binary.
	Libraries() domain.LibraryVersionSet

	// EnvironmentMarker identifies the runtime the suite executes under.
	EnvironmentMarker() string
}
