package domain_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.webpin.dev/webpin/internal/core/domain"
)

func TestResponse_MaxAge(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		want     time.Duration
		wantOK   bool
	}{
		{name: "plain max-age", header: "max-age=600", want: 600 * time.Second, wantOK: true},
		{name: "with other directives", header: "public, max-age=31536000, immutable", want: 31536000 * time.Second, wantOK: true},
		{name: "zero max-age", header: "max-age=0", want: 0, wantOK: true},
		{name: "missing header", header: "", wantOK: false},
		{name: "no max-age directive", header: "no-store", wantOK: false},
		{name: "malformed value", header: "max-age=soon", wantOK: false},
		{name: "negative value", header: "max-age=-5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Cache-Control", tt.header)
			}
			resp := domain.Response{Header: header}

			got, ok := resp.MaxAge()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestResponse_ProtocolHeaders(t *testing.T) {
	header := http.Header{}
	header.Set(domain.HeaderImportStatus, domain.ImportStatusPending)
	header.Set(domain.HeaderImportURL, "/-/building/preact@10.0.0")
	header.Set(domain.HeaderPinnedURL, "/pin/preact@v10.0.0-abcdef")
	header.Set(domain.HeaderTypes, "/preact@10.0.0/dist/preact.d.ts")

	resp := domain.Response{StatusCode: http.StatusOK, Header: header}

	assert.True(t, resp.OK())
	assert.Equal(t, domain.ImportStatusPending, resp.ImportStatus())
	assert.Equal(t, "/-/building/preact@10.0.0", resp.ImportURL())
	assert.Equal(t, "/pin/preact@v10.0.0-abcdef", resp.PinnedURL())
	assert.Equal(t, "/preact@10.0.0/dist/preact.d.ts", resp.TypesURL())
}
