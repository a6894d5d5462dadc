// Package resolve implements specifier resolution against the CDN lookup
// protocol, the permanent-cache URL resolver, the batch lockfile generator,
// and the TTL-based runtime lookup path.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/adapters/cache"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
)

// URLResolver resolves an already-known CDN URL through the permanent cache,
// falling back to the network.
type URLResolver struct {
	cache   *cache.Permanent
	fetcher ports.Fetcher
	origin  string
	logger  ports.Logger
}

// NewURLResolver creates a URLResolver.
func NewURLResolver(permanent *cache.Permanent, fetcher ports.Fetcher, origin string, logger ports.Logger) *URLResolver {
	return &URLResolver{
		cache:   permanent,
		fetcher: fetcher,
		origin:  strings.TrimSuffix(origin, "/"),
		logger:  logger,
	}
}

// Resolve returns the module at url. A cache hit answers without any network
// call; cache read failures of any kind fall through to the fetch.
func (r *URLResolver) Resolve(ctx context.Context, url string) (*domain.Module, error) {
	url = qualifyURL(r.origin, url)

	if body, meta, err := r.cache.Get(url); err == nil {
		return &domain.Module{
			Body:      body,
			PinnedURL: meta.PinnedURL,
			TypesURL:  meta.TypesURL,
			FromCache: true,
		}, nil
	}

	resp, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fetchFailed(resp, url)
	}

	typesURL := resp.TypesURL()

	// The origin marks immutable artifacts with an explicit TTL signal;
	// only those responses are persisted.
	if _, ok := resp.MaxAge(); ok {
		meta := domain.PinMetadata{PinnedURL: url, TypesURL: typesURL}
		if err := r.cache.Put(url, resp.Body, meta); err != nil {
			r.logger.Warn(fmt.Sprintf("module cache write failed for %s: %v", url, err))
		}
	}

	return &domain.Module{Body: resp.Body, PinnedURL: url, TypesURL: typesURL}, nil
}

// qualifyURL makes a URL origin-qualified when given as a path.
func qualifyURL(origin, url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return origin + "/" + strings.TrimPrefix(url, "/")
}

func fetchFailed(resp domain.Response, url string) error {
	err := zerr.With(domain.ErrResolutionFailed, "url", url)
	err = zerr.With(err, "status_code", resp.StatusCode)
	return zerr.With(err, "body", string(resp.Body))
}
