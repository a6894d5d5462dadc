// Package telemetry provides progress recording adapters.
package telemetry

import (
	"context"

	"go.webpin.dev/webpin/internal/core/ports"
)

// Noop is a Telemetry implementation that records nothing.
type Noop struct{}

// NewNoop creates a no-op telemetry recorder.
func NewNoop() ports.Telemetry {
	return Noop{}
}

// Record implements ports.Telemetry.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close implements ports.Telemetry.
func (Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Complete(error) {}
func (noopVertex) Cached()        {}
