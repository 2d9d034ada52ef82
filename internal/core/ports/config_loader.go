package ports

import "go.trai.ch/splice/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration reachable from the given working directory and returns
	// the workspace with every unit declared but not yet evaluated.
	Load(cwd string) (*domain.Workspace, error)

	// DiscoverRoot walks up from cwd to find the workspace root.
	// Returns the directory containing splice.work.yaml or splice.yaml.
	DiscoverRoot(cwd string) (string, error)
}
