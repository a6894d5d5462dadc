package cache

import (
	"encoding/json"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
)

// Permanent is the install-time caching policy: entries are treated as
// immutable once stored, because the origin guarantees hash-addressed URLs
// never change content. Concurrent writers to the same key write identical
// content, so last-write-wins is benign.
type Permanent struct {
	store ports.ModuleStore
}

// NewPermanent wraps a store with the permanent policy.
func NewPermanent(store ports.ModuleStore) *Permanent {
	return &Permanent{store: store}
}

// Get returns the stored body and pin metadata for a URL.
func (p *Permanent) Get(url string) ([]byte, domain.PinMetadata, error) {
	entry, err := p.store.Get(url)
	if err != nil {
		return nil, domain.PinMetadata{}, err
	}

	var meta domain.PinMetadata
	if err := json.Unmarshal(entry.Meta, &meta); err != nil {
		return nil, domain.PinMetadata{}, zerr.Wrap(err, domain.ErrCacheMiss.Error())
	}

	return entry.Body, meta, nil
}

// Put stores a body under the permanent policy.
func (p *Permanent) Put(url string, body []byte, meta domain.PinMetadata) error {
	rawMeta, err := json.Marshal(meta)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal pin metadata")
	}
	return p.store.Put(domain.CacheEntry{URL: url, Meta: rawMeta, Body: body})
}
