// Package app implements the application layer for webpin.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/adapters/cache"
	"go.webpin.dev/webpin/internal/adapters/cdn"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
	"go.webpin.dev/webpin/internal/engine/resolve"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	locks        ports.LockfileStore
	telemetry    ports.Telemetry
	logger       ports.Logger
	memo         *cdn.Memo
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locks ports.LockfileStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	memo *cdn.Memo,
) *App {
	return &App{
		configLoader: loader,
		locks:        locks,
		telemetry:    telemetry,
		logger:       logger,
		memo:         memo,
	}
}

// Install resolves every declared dependency and writes the lockfile.
// On any resolution failure the whole run fails and no lockfile is written:
// a partial import map is never usable.
func (a *App) Install(ctx context.Context, configPath string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return err
	}
	if len(cfg.Dependencies) == 0 {
		return zerr.With(domain.ErrNoDependencies, "config", configPath)
	}

	lock, err := a.locks.Read(cfg.LockfilePath)
	if err != nil {
		return err
	}

	generator, err := a.buildGenerator(cfg)
	if err != nil {
		return err
	}

	importMap, err := generator.Generate(ctx, cfg.Dependencies, lock)
	if err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	if err := a.locks.Write(cfg.LockfilePath, importMap); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("locked %d packages into %s", len(importMap.Imports), cfg.LockfilePath))
	return nil
}

// Lookup resolves a raw import string through the TTL-based read path and
// returns the module response.
func (a *App) Lookup(ctx context.Context, configPath, specifier string) (*domain.LookupResult, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, err
	}

	store, err := cache.NewStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	client := cdn.NewClient(cfg.Origin, a.memo)
	lookup := resolve.NewLookup(cache.NewFreshness(store), client, cfg.Origin, a.logger)

	result, err := lookup.Resolve(ctx, specifier)
	lookup.Flush()
	a.drainDiagnostics(lookup)
	return result, err
}

// drainDiagnostics reports background cache-write failures captured during a
// lookup. They never fail the lookup itself.
func (a *App) drainDiagnostics(lookup *resolve.Lookup) {
	for {
		select {
		case err := <-lookup.Diagnostics():
			a.logger.Error(err)
		default:
			return
		}
	}
}

// Clean wipes the persistent module cache unconditionally.
func (a *App) Clean(_ context.Context, configPath string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return err
	}

	store, err := cache.NewStore(cfg.CacheDir)
	if err != nil {
		return err
	}

	if err := store.Clear(); err != nil {
		return err
	}
	a.logger.Info("module cache cleared")
	return nil
}

// buildGenerator wires the per-run resolution pipeline from the loaded
// configuration. The response memo is shared across runs in one process.
func (a *App) buildGenerator(cfg *domain.Config) (*resolve.Generator, error) {
	store, err := cache.NewStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	client := cdn.NewClient(cfg.Origin, a.memo)
	urls := resolve.NewURLResolver(cache.NewPermanent(store), client, cfg.Origin, a.logger)
	resolver := resolve.NewResolver(urls, client, cfg.Origin, a.logger)
	return resolve.NewGenerator(resolver, a.telemetry, a.logger), nil
}
