package resolve

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.webpin.dev/webpin/internal/adapters/cache"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
)

// diagnosticsBuffer bounds the background-write failure channel; further
// failures are logged and dropped.
const diagnosticsBuffer = 16

// Lookup is the runtime read path: it shares the persistent store with the
// install path but uses the TTL policy, serving expired entries only when
// the network refresh fails.
type Lookup struct {
	cache   *cache.Freshness
	fetcher ports.Fetcher
	origin  string
	logger  ports.Logger

	writes sync.WaitGroup
	diag   chan error
}

// NewLookup creates a Lookup service.
func NewLookup(freshness *cache.Freshness, fetcher ports.Fetcher, origin string, logger ports.Logger) *Lookup {
	return &Lookup{
		cache:   freshness,
		fetcher: fetcher,
		origin:  strings.TrimSuffix(origin, "/"),
		logger:  logger,
		diag:    make(chan error, diagnosticsBuffer),
	}
}

// Resolve looks up a raw import string. Fresh cache entries answer without a
// network call; on network failure an expired entry is served stale; cache
// writes happen in the background and never block or fail the response.
func (l *Lookup) Resolve(ctx context.Context, raw string) (*domain.LookupResult, error) {
	spec := domain.ParseSpecifier(raw)
	url := qualifyURL(l.origin, "/"+spec.String())

	body, meta, fresh, cacheErr := l.cache.Get(url)
	if cacheErr == nil && fresh {
		return &domain.LookupResult{
			Body:       body,
			StatusCode: meta.StatusCode,
			Headers:    meta.Headers,
			Cached:     true,
		}, nil
	}

	resp, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		if cacheErr == nil {
			return &domain.LookupResult{
				Body:       body,
				StatusCode: meta.StatusCode,
				Headers:    meta.Headers,
				Stale:      true,
			}, nil
		}
		return nil, err
	}

	if ttl, ok := resp.MaxAge(); ok {
		l.writes.Add(1)
		go func() {
			defer l.writes.Done()
			if err := l.cache.Put(url, resp.Body, resp.StatusCode, resp.Header, ttl); err != nil {
				select {
				case l.diag <- err:
				default:
					// Channel full; fall back to the log so the failure
					// is not lost entirely.
					l.logger.Warn(fmt.Sprintf("background cache write failed for %s: %v", url, err))
				}
			}
		}()
	}

	return &domain.LookupResult{
		Body:       resp.Body,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
	}, nil
}

// Diagnostics exposes background cache-write failures.
func (l *Lookup) Diagnostics() <-chan error {
	return l.diag
}

// Flush waits for in-flight background cache writes to settle.
func (l *Lookup) Flush() {
	l.writes.Wait()
}
