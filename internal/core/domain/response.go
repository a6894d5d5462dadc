package domain

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CDN lookup protocol headers.
const (
	HeaderImportStatus = "X-Import-Status"
	HeaderImportURL    = "X-Import-Url"
	HeaderPinnedURL    = "X-Pinned-Url"
	HeaderTypes        = "X-Typescript-Types"
)

// Import build statuses reported by the CDN.
const (
	ImportStatusSuccess = "SUCCESS"
	ImportStatusPending = "PENDING"
	ImportStatusFail    = "FAIL"
)

// Response is a CDN answer. Non-2xx statuses are data, not errors, so
// callers can branch on protocol-level signals.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the response carries a meaningful body and headers.
func (r Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// ImportStatus returns the build status header, empty when absent.
func (r Response) ImportStatus() string {
	return r.Header.Get(HeaderImportStatus)
}

// ImportURL returns the poll location for a pending build, empty when absent.
func (r Response) ImportURL() string {
	return r.Header.Get(HeaderImportURL)
}

// PinnedURL returns the content-addressed artifact path, empty when absent.
func (r Response) PinnedURL() string {
	return r.Header.Get(HeaderPinnedURL)
}

// TypesURL returns the type-declaration artifact path, empty when absent.
func (r Response) TypesURL() string {
	return r.Header.Get(HeaderTypes)
}

// MaxAge extracts the max-age directive from the cache-control header.
// The second return is false when the response carries no TTL signal;
// such responses must not be persisted.
func (r Response) MaxAge() (time.Duration, bool) {
	cc := r.Header.Get("Cache-Control")
	if cc == "" {
		return 0, false
	}
	for _, directive := range strings.Split(cc, ",") {
		directive = strings.TrimSpace(directive)
		value, found := strings.CutPrefix(directive, "max-age=")
		if !found {
			continue
		}
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds) * time.Second, true
	}
	return 0, false
}

// Module is a resolved module: its source plus the canonical URL it is
// recorded under in the import map.
type Module struct {
	// Body is the module source.
	Body []byte

	// PinnedURL is the absolute, origin-qualified canonical URL.
	PinnedURL string

	// TypesURL optionally locates the package's type declarations.
	TypesURL string

	// FromCache is true when the module was served from the persistent
	// cache without a network call.
	FromCache bool
}
