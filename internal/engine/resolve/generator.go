package resolve

import (
	"context"
	"sync"

	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/core/domain"
	"go.webpin.dev/webpin/internal/core/ports"
	"golang.org/x/sync/semaphore"
)

// maxConcurrentResolutions caps the number of in-flight resolution tasks.
const maxConcurrentResolutions = 16

// Generator drives the Resolver over a set of specifiers under bounded
// concurrency and assembles the import map.
type Generator struct {
	resolver  *Resolver
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(resolver *Resolver, telemetry ports.Telemetry, logger ports.Logger) *Generator {
	return &Generator{
		resolver:  resolver,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Generate resolves every specifier in deps and returns the completed import
// map. Every specifier is attempted even after a failure; the first recorded
// error fails the whole call once all tasks have drained, and the partial
// map is discarded by the caller.
func (g *Generator) Generate(ctx context.Context, deps map[string]string, lock *domain.ImportMap) (*domain.ImportMap, error) {
	sem := semaphore.NewWeighted(maxConcurrentResolutions)
	result := domain.NewImportMap()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	recordErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for specifier, semverRange := range deps {
		wg.Add(1)
		go func(specifier, semverRange string) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				recordErr(zerr.With(zerr.Wrap(err, "resolution not scheduled"), "specifier", specifier))
				return
			}
			defer sem.Release(1)

			_, vertex := g.telemetry.Record(ctx, specifier)
			module, err := g.resolver.Resolve(ctx, specifier, semverRange, lock)
			if err != nil {
				vertex.Complete(err)
				recordErr(zerr.With(err, "specifier", specifier))
				return
			}
			if module.FromCache {
				vertex.Cached()
			}
			vertex.Complete(nil)

			mu.Lock()
			result.SetPin(specifier, module.PinnedURL)
			mu.Unlock()
		}(specifier, semverRange)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}
