package ports

import "go.trai.ch/shiori/internal/core/domain"

// ConfigLoader defines the interface for loading the suite configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the project root from cwd, reads shiori.yaml if present
	// and applies environment overrides.
	Load(cwd string) (domain.Config, error)

	// DiscoverRoot walks up from cwd to find the project root.
	// Returns the directory containing shiori.yaml or go.mod.
	DiscoverRoot(cwd string) (string, error)
}
