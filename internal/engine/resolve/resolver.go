package resolve

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
)

// maxAttempts bounds the lookup loop: the initial request plus the single
// retry permitted after a successful build-status poll.
const maxAttempts = 2

// Resolver turns (specifier, semver range, lockfile) into a resolved module
// using the CDN's build/lookup/poll protocol.
type Resolver struct {
	urls    *URLResolver
	fetcher ports.Fetcher
	origin  string
	logger  ports.Logger
}

// NewResolver creates a Resolver.
func NewResolver(urls *URLResolver, fetcher ports.Fetcher, origin string, logger ports.Logger) *Resolver {
	return &Resolver{
		urls:    urls,
		fetcher: fetcher,
		origin:  strings.TrimSuffix(origin, "/"),
		logger:  logger,
	}
}

// Resolve resolves a specifier. A lockfile pin bypasses the lookup protocol
// entirely and goes through the cache-first URL resolver.
func (r *Resolver) Resolve(ctx context.Context, rawSpec, semverRange string, lock *domain.ImportMap) (*domain.Module, error) {
	if pinned, ok := lock.Pin(rawSpec); ok {
		return r.urls.Resolve(ctx, pinned)
	}

	spec := domain.ParseSpecifier(rawSpec)
	if err := domain.ValidateRequest(spec, semverRange); err != nil {
		return nil, err
	}
	if semverRange == domain.RangeLatest {
		r.logger.Warn(fmt.Sprintf("package %q was not declared, resolving at latest", rawSpec))
	}

	lookupURL := qualifyURL(r.origin, spec.LookupPath(semverRange))

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := r.fetcher.Fetch(ctx, lookupURL)
		if err != nil {
			return nil, err
		}
		if !resp.OK() {
			return nil, fetchFailed(resp, lookupURL)
		}

		switch resp.ImportStatus() {
		case domain.ImportStatusSuccess:
			pinned := resp.PinnedURL()
			if pinned == "" {
				pinned = lookupURL
			}
			return &domain.Module{
				Body:      resp.Body,
				PinnedURL: qualifyURL(r.origin, pinned),
				TypesURL:  resp.TypesURL(),
			}, nil

		case domain.ImportStatusFail:
			err := zerr.With(domain.ErrBuildFailed, "specifier", rawSpec)
			return nil, zerr.With(err, "range", semverRange)

		default:
			// Build still pending.
			if attempt == maxAttempts {
				err := zerr.With(domain.ErrBuildFailed, "specifier", rawSpec)
				return nil, zerr.With(err, "reason", "retries exhausted")
			}
			if err := r.pollBuild(ctx, rawSpec, resp); err != nil {
				return nil, err
			}
		}
	}

	// Unreachable: every branch above returns or continues the bounded loop.
	return nil, zerr.With(domain.ErrBuildFailed, "specifier", rawSpec)
}

// pollBuild polls the pending build once. The server promised a poll
// location; not sending one is a protocol violation, as is a failing poll.
func (r *Resolver) pollBuild(ctx context.Context, rawSpec string, resp domain.Response) error {
	pollURL := resp.ImportURL()
	if pollURL == "" {
		err := zerr.With(domain.ErrProtocol, "specifier", rawSpec)
		return zerr.With(err, "reason", "pending build without poll url")
	}

	pollResp, err := r.fetcher.Fetch(ctx, qualifyURL(r.origin, pollURL))
	if err != nil {
		return err
	}
	if !pollResp.OK() {
		perr := zerr.With(domain.ErrProtocol, "specifier", rawSpec)
		perr = zerr.With(perr, "poll_url", pollURL)
		return zerr.With(perr, "status_code", pollResp.StatusCode)
	}
	return nil
}
