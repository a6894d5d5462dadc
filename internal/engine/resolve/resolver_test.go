package resolve_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.webpin.dev/webpin/internal/adapters/cache"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
	"go.webpin.dev/webpin/internal/engine/resolve"
)

const testOrigin = "https://cdn.example.com"

// fetcherFunc adapts a function to ports.Fetcher.
type fetcherFunc func(ctx context.Context, url string) (domain.Response, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) (domain.Response, error) {
	return f(ctx, url)
}

// recordingFetcher remembers every requested URL.
type recordingFetcher struct {
	mu      sync.Mutex
	urls    []string
	respond func(url string) (domain.Response, error)
}

func (f *recordingFetcher) Fetch(_ context.Context, url string) (domain.Response, error) {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()
	return f.respond(url)
}

func (f *recordingFetcher) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

type noopLogger struct{}

func (noopLogger) Info(string) {}
func (noopLogger) Warn(string) {}
func (noopLogger) Error(error) {}

func successResponse(body, pinnedURL string) domain.Response {
	header := http.Header{}
	header.Set(domain.HeaderImportStatus, domain.ImportStatusSuccess)
	if pinnedURL != "" {
		header.Set(domain.HeaderPinnedURL, pinnedURL)
	}
	return domain.Response{StatusCode: http.StatusOK, Header: header, Body: []byte(body)}
}

func pendingResponse(pollURL string) domain.Response {
	header := http.Header{}
	header.Set(domain.HeaderImportStatus, domain.ImportStatusPending)
	if pollURL != "" {
		header.Set(domain.HeaderImportURL, pollURL)
	}
	return domain.Response{StatusCode: http.StatusOK, Header: header}
}

func newResolver(t *testing.T, fetcher ports.Fetcher) *resolve.Resolver {
	t.Helper()
	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)
	urls := resolve.NewURLResolver(cache.NewPermanent(store), fetcher, testOrigin, noopLogger{})
	return resolve.NewResolver(urls, fetcher, testOrigin, noopLogger{})
}

func TestResolver_LockfilePinBypassesLookup(t *testing.T) {
	pinned := testOrigin + "/pin/preact@v10.0.0-abc"
	fetcher := &recordingFetcher{respond: func(url string) (domain.Response, error) {
		header := http.Header{}
		header.Set("Cache-Control", "public, max-age=31536000")
		return domain.Response{StatusCode: http.StatusOK, Header: header, Body: []byte("pinned body")}, nil
	}}
	resolver := newResolver(t, fetcher)

	lock := domain.NewImportMap()
	lock.SetPin("preact", pinned)

	module, err := resolver.Resolve(context.Background(), "preact", "^10.0.0", lock)
	require.NoError(t, err)
	assert.Equal(t, pinned, module.PinnedURL)
	assert.Equal(t, "pinned body", string(module.Body))
	require.Len(t, fetcher.requested(), 1, "a pin must skip the lookup protocol")
	assert.Equal(t, pinned, fetcher.requested()[0])
}

func TestResolver_LookupURLConstruction(t *testing.T) {
	tests := []struct {
		name        string
		specifier   string
		semverRange string
		wantURL     string
	}{
		{
			name:        "unscoped",
			specifier:   "preact",
			semverRange: "^10.0.0",
			wantURL:     testOrigin + "/preact@^10.0.0",
		},
		{
			name:        "scoped with subpath",
			specifier:   "@scope/pkg/sub/mod",
			semverRange: "2.1.0",
			wantURL:     testOrigin + "/@scope/pkg@2.1.0/sub/mod",
		},
		{
			name:        "undeclared defaults to latest",
			specifier:   "preact",
			semverRange: "latest",
			wantURL:     testOrigin + "/preact@latest",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := &recordingFetcher{respond: func(url string) (domain.Response, error) {
				return successResponse("ok", "/pin/x"), nil
			}}
			resolver := newResolver(t, fetcher)

			_, err := resolver.Resolve(context.Background(), tc.specifier, tc.semverRange, domain.NewImportMap())
			require.NoError(t, err)
			require.Len(t, fetcher.requested(), 1)
			assert.Equal(t, tc.wantURL, fetcher.requested()[0])
		})
	}
}

func TestResolver_Success(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		header := http.Header{}
		header.Set(domain.HeaderImportStatus, domain.ImportStatusSuccess)
		header.Set(domain.HeaderPinnedURL, "/pin/preact@v10.0.0-abc")
		header.Set(domain.HeaderTypes, "/preact@10.0.0/index.d.ts")
		return domain.Response{StatusCode: http.StatusOK, Header: header, Body: []byte("export default 1;")}, nil
	})
	resolver := newResolver(t, fetcher)

	module, err := resolver.Resolve(context.Background(), "preact", "^10.0.0", domain.NewImportMap())
	require.NoError(t, err)
	assert.Equal(t, "export default 1;", string(module.Body))
	assert.Equal(t, testOrigin+"/pin/preact@v10.0.0-abc", module.PinnedURL, "pinned url must be origin-qualified")
	assert.Equal(t, "/preact@10.0.0/index.d.ts", module.TypesURL)
}

func TestResolver_SuccessWithoutPinnedHeader(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		return successResponse("body", ""), nil
	})
	resolver := newResolver(t, fetcher)

	module, err := resolver.Resolve(context.Background(), "preact", "^10.0.0", domain.NewImportMap())
	require.NoError(t, err)
	assert.Equal(t, testOrigin+"/preact@^10.0.0", module.PinnedURL, "lookup url stands in for a missing pin header")
}

func TestResolver_PendingThenSuccess(t *testing.T) {
	fetcher := &recordingFetcher{}
	fetcher.respond = func(url string) (domain.Response, error) {
		switch {
		case strings.HasSuffix(url, "/poll/abc"):
			return domain.Response{StatusCode: http.StatusOK}, nil
		case len(fetcher.urls) == 1:
			return pendingResponse("/poll/abc"), nil
		default:
			return successResponse("built", "/pin/preact@v10.0.0-abc"), nil
		}
	}
	resolver := newResolver(t, fetcher)

	module, err := resolver.Resolve(context.Background(), "preact", "^10.0.0", domain.NewImportMap())
	require.NoError(t, err)
	assert.Equal(t, "built", string(module.Body))

	urls := fetcher.requested()
	require.Len(t, urls, 3, "lookup, poll, retry")
	assert.Equal(t, testOrigin+"/preact@^10.0.0", urls[0])
	assert.Equal(t, testOrigin+"/poll/abc", urls[1])
	assert.Equal(t, testOrigin+"/preact@^10.0.0", urls[2])
}

func TestResolver_PendingTwiceExhaustsRetries(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		if strings.HasSuffix(url, "/poll/abc") {
			return domain.Response{StatusCode: http.StatusOK}, nil
		}
		return pendingResponse("/poll/abc"), nil
	})
	resolver := newResolver(t, fetcher)

	_, err := resolver.Resolve(context.Background(), "preact", "^10.0.0", domain.NewImportMap())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBuildFailed.Error())
}

func TestResolver_BuildFailed(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		header := http.Header{}
		header.Set(domain.HeaderImportStatus, domain.ImportStatusFail)
		return domain.Response{StatusCode: http.StatusOK, Header: header}, nil
	})
	resolver := newResolver(t, fetcher)

	_, err := resolver.Resolve(context.Background(), "left-pad", "^1.0.0", domain.NewImportMap())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrBuildFailed.Error())
}

func TestResolver_PendingWithoutPollURL(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		return pendingResponse(""), nil
	})
	resolver := newResolver(t, fetcher)

	_, err := resolver.Resolve(context.Background(), "preact", "^10.0.0", domain.NewImportMap())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrProtocol.Error())
}

func TestResolver_PollFailure(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		if strings.HasSuffix(url, "/poll/abc") {
			return domain.Response{StatusCode: http.StatusBadGateway}, nil
		}
		return pendingResponse("/poll/abc"), nil
	})
	resolver := newResolver(t, fetcher)

	_, err := resolver.Resolve(context.Background(), "preact", "^10.0.0", domain.NewImportMap())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrProtocol.Error())
}

func TestResolver_InvalidRangeMakesNoRequest(t *testing.T) {
	tests := []struct {
		name        string
		specifier   string
		semverRange string
		sentinel    error
	}{
		{name: "range with space", specifier: "preact", semverRange: ">=1.0.0 <2.0.0", sentinel: domain.ErrUnsupportedRange},
		{name: "range with colon", specifier: "preact", semverRange: "1:0", sentinel: domain.ErrUnsupportedRange},
		{name: "deprecated pika scope", specifier: "@pika/fetch", semverRange: "^1.0.0", sentinel: domain.ErrDeprecatedPackage},
		{name: "deprecated snowpack scope", specifier: "@snowpack/app", semverRange: "^1.0.0", sentinel: domain.ErrDeprecatedPackage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := &recordingFetcher{respond: func(url string) (domain.Response, error) {
				return domain.Response{}, errors.New("must not be called")
			}}
			resolver := newResolver(t, fetcher)

			_, err := resolver.Resolve(context.Background(), tc.specifier, tc.semverRange, domain.NewImportMap())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.sentinel.Error())
			assert.Empty(t, fetcher.requested(), "validation failures never reach the network")
		})
	}
}

func TestResolver_LookupHTTPFailure(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		return domain.Response{StatusCode: http.StatusNotFound, Body: []byte("no such package")}, nil
	})
	resolver := newResolver(t, fetcher)

	_, err := resolver.Resolve(context.Background(), "nope", "^1.0.0", domain.NewImportMap())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrResolutionFailed.Error())
}
