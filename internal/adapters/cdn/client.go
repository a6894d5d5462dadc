// Package cdn implements the ports.Fetcher port against a build-on-demand
// CDN origin.
package cdn

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/build"
	"go.webpin.dev/webpin/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

const httpClientTimeout = 30 * time.Second

// Client implements ports.Fetcher. It normalizes paths against the
// configured origin, memoizes explicitly cacheable responses in the injected
// Memo, and collapses concurrent requests for the same URL.
type Client struct {
	origin     string
	httpClient *http.Client
	memo       *Memo
	group      singleflight.Group
}

// NewClient creates a Client for the given origin.
func NewClient(origin string, memo *Memo) *Client {
	return NewClientWithHTTP(origin, memo, &http.Client{Timeout: httpClientTimeout})
}

// NewClientWithHTTP creates a Client with a custom http client (used for testing).
func NewClientWithHTTP(origin string, memo *Memo, httpClient *http.Client) *Client {
	return &Client{
		origin:     strings.TrimSuffix(origin, "/"),
		httpClient: httpClient,
		memo:       memo,
	}
}

// Normalize makes a URL origin-qualified when given as a path.
func (c *Client) Normalize(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return c.origin + "/" + strings.TrimPrefix(url, "/")
}

// Fetch performs a GET against the URL. Non-2xx statuses are returned, not
// raised, so callers can branch on protocol-level signals. Concurrent
// fetches of the same URL share one network request.
func (c *Client) Fetch(ctx context.Context, url string) (domain.Response, error) {
	url = c.Normalize(url)

	if resp, ok := c.memo.get(url); ok {
		return resp, nil
	}

	result, err, _ := c.group.Do(url, func() (any, error) {
		resp, err := c.get(ctx, url)
		if err != nil {
			return domain.Response{}, err
		}

		// Only explicitly cacheable responses are memoized.
		if _, ok := resp.MaxAge(); ok {
			c.memo.put(url, resp)
		}
		return resp, nil
	})
	if err != nil {
		return domain.Response{}, err
	}

	return result.(domain.Response), nil
}

func (c *Client) get(ctx context.Context, url string) (domain.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return domain.Response{}, zerr.Wrap(err, "failed to build cdn request")
	}
	req.Header.Set("User-Agent", "webpin/"+build.Version)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Response{}, zerr.With(zerr.Wrap(err, "cdn request failed"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Response{}, zerr.With(zerr.Wrap(err, "failed to read cdn response"), "url", url)
	}

	return domain.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
