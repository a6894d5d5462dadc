package app

import "go.webpin.dev/webpin/internal/core/ports"

// Components bundles the fully wired application surface handed to main.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
