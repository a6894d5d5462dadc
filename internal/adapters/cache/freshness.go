package cache

import (
	"encoding/json"
	"time"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
)

// Freshness is the runtime-lookup caching policy: entries expire at
// FreshUntil and expired entries may still be returned so callers can serve
// them as a fallback when the network refresh fails.
type Freshness struct {
	store ports.ModuleStore
	now   func() time.Time
}

// NewFreshness wraps a store with the TTL policy.
func NewFreshness(store ports.ModuleStore) *Freshness {
	return &Freshness{store: store, now: time.Now}
}

// Get returns the stored body, its metadata, and whether the entry is still
// fresh. Expired entries are returned with fresh=false rather than dropped.
func (f *Freshness) Get(url string) (body []byte, meta domain.FreshnessMetadata, fresh bool, err error) {
	entry, err := f.store.Get(url)
	if err != nil {
		return nil, domain.FreshnessMetadata{}, false, err
	}

	if err := json.Unmarshal(entry.Meta, &meta); err != nil {
		return nil, domain.FreshnessMetadata{}, false, zerr.Wrap(err, domain.ErrCacheMiss.Error())
	}

	return entry.Body, meta, f.now().Before(meta.FreshUntil), nil
}

// Put stores a response with FreshUntil derived from the given TTL.
// Callers only invoke Put when the response carried an explicit TTL signal.
func (f *Freshness) Put(url string, body []byte, statusCode int, headers map[string][]string, ttl time.Duration) error {
	meta := domain.FreshnessMetadata{
		Headers:    headers,
		StatusCode: statusCode,
		FreshUntil: f.now().Add(ttl),
	}
	rawMeta, err := json.Marshal(meta)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal freshness metadata")
	}
	return f.store.Put(domain.CacheEntry{URL: url, Meta: rawMeta, Body: body})
}
