package ports

import "go.webpin.dev/webpin/internal/core/domain"

// LockfileStore reads and writes the import map document.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileStore interface {
	// Read loads the lockfile at the given path.
	// Returns nil, nil when no lockfile exists yet.
	Read(path string) (*domain.ImportMap, error)

	// Write persists the import map atomically.
	Write(path string, m *domain.ImportMap) error
}
