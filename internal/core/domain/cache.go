package domain

import (
	"encoding/json"
	"time"
)

// CacheEntry is a persisted body blob plus policy-specific metadata, keyed
// by absolute URL. Meta holds the raw metadata document; the typed policy
// wrappers own its shape.
type CacheEntry struct {
	URL  string          `json:"url"`
	Meta json.RawMessage `json:"meta"`
	Body []byte          `json:"body"`
}

// PinMetadata is the permanent-policy metadata shape. Entries under this
// policy are immutable once stored: the origin guarantees hash-addressed
// URLs never change content.
type PinMetadata struct {
	PinnedURL string `json:"pinnedUrl"`
	TypesURL  string `json:"typesUrl,omitempty"`
}

// FreshnessMetadata is the TTL-policy metadata shape. Entries expire at
// FreshUntil and may be served stale only as an error fallback.
type FreshnessMetadata struct {
	Headers    map[string][]string `json:"headers"`
	StatusCode int                 `json:"statusCode"`
	FreshUntil time.Time           `json:"freshUntil"`
}

// LookupResult is what the runtime read path returns: the cached or freshly
// fetched response plus how it was obtained.
type LookupResult struct {
	Body       []byte
	StatusCode int
	Headers    map[string][]string

	// Cached is true when the entry was served from the cache while still
	// fresh, without a network call.
	Cached bool

	// Stale is true when an expired entry was served because the network
	// refresh failed.
	Stale bool
}
