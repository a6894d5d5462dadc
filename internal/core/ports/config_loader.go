package ports

import "go.webpin.dev/webpin/internal/core/domain"

// ConfigLoader loads the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at the given path and applies
	// environment overrides.
	Load(path string) (*domain.Config, error)
}
