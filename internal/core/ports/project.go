package ports

import "go.trai.ch/libsync/internal/core/domain"

// ConfigLoader locates a project and loads its configuration.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ConfigLoader interface {
	// DiscoverRoot walks up from cwd to find the project root.
	DiscoverRoot(cwd string) (string, error)

	// Load reads the configuration of the project rooted at root.
	// A project without a config file gets the defaults.
	Load(root string) (*domain.Config, error)
}
