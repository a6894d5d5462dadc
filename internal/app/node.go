package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.webpin.dev/webpin/internal/adapters/cdn"       //nolint:depguard // Wired in app layer
	"go.webpin.dev/webpin/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.webpin.dev/webpin/internal/adapters/lockfile"  //nolint:depguard // Wired in app layer
	"go.webpin.dev/webpin/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.webpin.dev/webpin/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.webpin.dev/webpin/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lockfile.NodeID,
			telemetry.NodeID,
			logger.NodeID,
			cdn.MemoNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	locks, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	memo, err := graft.Dep[*cdn.Memo](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locks, tel, log, memo), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
