package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedRange is returned when a semver range uses syntax the CDN
	// lookup protocol cannot express (embedded spaces or colons).
	ErrUnsupportedRange = zerr.New("unsupported semver range")

	// ErrDeprecatedPackage is returned when a specifier names a retired
	// workaround package that must no longer be requested.
	ErrDeprecatedPackage = zerr.New("deprecated workaround package")

	// ErrResolutionFailed is returned when a lookup or direct URL fetch
	// answers with a non-200 status.
	ErrResolutionFailed = zerr.New("resolution failed")

	// ErrProtocol is returned when the CDN violates the lookup protocol,
	// e.g. a pending build without a poll URL or a failing poll request.
	ErrProtocol = zerr.New("protocol violation")

	// ErrBuildFailed is returned when the CDN reports a failed package build
	// or the single permitted retry is exhausted while still pending.
	ErrBuildFailed = zerr.New("package build failed")

	// ErrCacheMiss is returned by cache reads when no usable entry exists.
	// It never escapes a resolution; callers fall through to the network.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrNoDependencies is returned when an install is requested but the
	// configuration declares no dependencies.
	ErrNoDependencies = zerr.New("no dependencies declared")

	// ErrInstallFailed marks a batch generation that recorded at least one
	// resolution error; the CLI maps it to a non-zero exit.
	ErrInstallFailed = zerr.New("install failed")
)
