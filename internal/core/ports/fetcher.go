package ports

import (
	"context"

	"go.webpin.dev/webpin/internal/core/domain"
)

// Fetcher issues CDN requests.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch performs a GET against the given URL or origin-relative path.
	// It returns an error only on transport failure; protocol statuses are
	// reported through the response so callers can branch on them.
	Fetch(ctx context.Context, url string) (domain.Response, error)
}
