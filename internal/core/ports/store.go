package ports

import "go.webpin.dev/webpin/internal/core/domain"

// ModuleStore is the persistent key/value store backing both caching
// policies. Keys are absolute URLs; values are body blobs plus opaque
// metadata owned by the policy wrappers.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ModuleStore interface {
	// Get retrieves the entry for a URL. Returns domain.ErrCacheMiss when no
	// entry exists; any other failure is also treated as a miss by callers.
	Get(url string) (domain.CacheEntry, error)

	// Put stores the entry, replacing any previous one for the same URL.
	Put(entry domain.CacheEntry) error

	// Clear removes every entry unconditionally.
	Clear() error
}
