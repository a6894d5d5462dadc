package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RangeLatest is the permitted but discouraged wildcard range. Resolving it
// means the caller never declared the package, so callers log a warning.
const RangeLatest = "latest"

// deprecatedPrefixes names retired workaround packages from the early CDN
// era. Their shims are no longer served and requesting them is a caller
// mistake, so validation still rejects them.
var deprecatedPrefixes = []string{
	"@pika/",
	"@snowpack/",
}

// ValidateRequest checks that a specifier and semver range are eligible for
// a remote lookup. Complex ranges (embedded space or colon) cannot be
// expressed in a lookup URL and fail with ErrUnsupportedRange; retired
// workaround packages fail with ErrDeprecatedPackage. Both are fatal and
// never retried.
func ValidateRequest(spec Specifier, semverRange string) error {
	if strings.ContainsAny(semverRange, " :") {
		err := zerr.With(ErrUnsupportedRange, "specifier", spec.String())
		return zerr.With(err, "range", semverRange)
	}

	for _, prefix := range deprecatedPrefixes {
		if strings.HasPrefix(spec.Name, prefix) {
			return zerr.With(ErrDeprecatedPackage, "specifier", spec.String())
		}
	}

	return nil
}
