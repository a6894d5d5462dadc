package domain

// Default configuration values.
const (
	DefaultOrigin       = "https://cdn.skypack.dev"
	DefaultLockfileName = "webpin.lock"
	DefaultConfigName   = "webpin.yaml"
)

// Config is the resolved project configuration.
type Config struct {
	// Origin is the CDN base URL serving the lookup protocol.
	Origin string

	// LockfilePath is where the import map document is written.
	LockfilePath string

	// CacheDir holds the persistent module cache.
	CacheDir string

	// Dependencies maps import specifiers to requested semver ranges.
	Dependencies map[string]string
}
