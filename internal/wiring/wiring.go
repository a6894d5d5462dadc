// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.webpin.dev/webpin/internal/adapters/cdn"
	_ "go.webpin.dev/webpin/internal/adapters/config"
	_ "go.webpin.dev/webpin/internal/adapters/lockfile"
	_ "go.webpin.dev/webpin/internal/adapters/logger"
	_ "go.webpin.dev/webpin/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.webpin.dev/webpin/internal/app"
)
