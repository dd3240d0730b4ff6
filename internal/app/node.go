package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/leashdev/leash/internal/adapters/config"
	"github.com/leashdev/leash/internal/adapters/logger"
	"github.com/leashdev/leash/internal/adapters/registry"
	"github.com/leashdev/leash/internal/core/ports"
	"github.com/leashdev/leash/internal/engine/installer"
	"github.com/leashdev/leash/internal/engine/resolver"
	"github.com/leashdev/leash/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components
	// Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			runner.NodeID,
			installer.NodeID,
			resolver.NodeID,
			registry.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}
	inst, err := graft.Dep[*installer.Installer](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	reg, err := graft.Dep[ports.Registry](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[*config.Store](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(run, inst, res, reg, store, log), nil
}
