package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.webpin.dev/webpin/internal/adapters/cdn"
	"go.webpin.dev/webpin/internal/adapters/config"
	"go.webpin.dev/webpin/internal/adapters/lockfile"
	"go.webpin.dev/webpin/internal/adapters/logger"
	"go.webpin.dev/webpin/internal/adapters/telemetry"
	"go.webpin.dev/webpin/internal/app"
	"go.webpin.dev/webpin/internal/build"
)

func testComponents() *app.Components {
	a := app.New(&config.FileConfigLoader{}, lockfile.NewStore(), telemetry.NewNoop(), logger.New(), cdn.NewMemo())
	return &app.Components{App: a, Logger: logger.New(), Telemetry: telemetry.NewNoop()}
}

func TestRun_ProviderFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), nil, &stdout, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("wiring failed")
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_CommandFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer

	components := testComponents()
	code := run(context.Background(), []string{"install", "-c", "definitely-missing.yaml"}, &stdout, &stderr, func(context.Context) (*app.Components, error) {
		return components, nil
	})

	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	components := testComponents()
	code := run(context.Background(), []string{"version"}, &stdout, &stderr, func(context.Context) (*app.Components, error) {
		return components, nil
	})

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), build.Version)
	assert.Empty(t, stderr.String())
}
