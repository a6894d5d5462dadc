package resolve_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.webpin.dev/webpin/internal/adapters/cache"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/engine/resolve"
)

func immutableResponse(body string) domain.Response {
	header := http.Header{}
	header.Set("Cache-Control", "public, max-age=31536000")
	header.Set(domain.HeaderTypes, "/preact@10.0.0/index.d.ts")
	return domain.Response{StatusCode: http.StatusOK, Header: header, Body: []byte(body)}
}

func TestURLResolver_CachesImmutableArtifacts(t *testing.T) {
	var calls atomic.Int64
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		calls.Add(1)
		return immutableResponse("artifact body"), nil
	})

	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)
	resolver := resolve.NewURLResolver(cache.NewPermanent(store), fetcher, testOrigin, noopLogger{})

	url := testOrigin + "/pin/preact@v10.0.0-abc"

	first, err := resolver.Resolve(context.Background(), url)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, "artifact body", string(first.Body))
	assert.Equal(t, url, first.PinnedURL)

	second, err := resolver.Resolve(context.Background(), url)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, first.PinnedURL, second.PinnedURL)
	assert.Equal(t, first.TypesURL, second.TypesURL)

	assert.Equal(t, int64(1), calls.Load(), "a permanently cached url never refetches")
}

func TestURLResolver_SkipsCacheWithoutTTLSignal(t *testing.T) {
	var calls atomic.Int64
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		calls.Add(1)
		return domain.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte("mutable")}, nil
	})

	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)
	resolver := resolve.NewURLResolver(cache.NewPermanent(store), fetcher, testOrigin, noopLogger{})

	url := testOrigin + "/preact@latest"
	for range 2 {
		module, err := resolver.Resolve(context.Background(), url)
		require.NoError(t, err)
		assert.False(t, module.FromCache)
	}
	assert.Equal(t, int64(2), calls.Load(), "responses without max-age are never persisted")
}

func TestURLResolver_QualifiesRelativeURLs(t *testing.T) {
	var gotURL string
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		gotURL = url
		return immutableResponse("x"), nil
	})

	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)
	resolver := resolve.NewURLResolver(cache.NewPermanent(store), fetcher, testOrigin, noopLogger{})

	module, err := resolver.Resolve(context.Background(), "/pin/preact@v10.0.0-abc")
	require.NoError(t, err)
	assert.Equal(t, testOrigin+"/pin/preact@v10.0.0-abc", gotURL)
	assert.Equal(t, testOrigin+"/pin/preact@v10.0.0-abc", module.PinnedURL)
}

func TestURLResolver_FetchFailure(t *testing.T) {
	fetcher := fetcherFunc(func(_ context.Context, url string) (domain.Response, error) {
		return domain.Response{StatusCode: http.StatusInternalServerError, Body: []byte("boom")}, nil
	})

	store, err := cache.NewStore(t.TempDir())
	require.NoError(t, err)
	resolver := resolve.NewURLResolver(cache.NewPermanent(store), fetcher, testOrigin, noopLogger{})

	_, err = resolver.Resolve(context.Background(), "/pin/preact@v10.0.0-abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrResolutionFailed.Error())
}
