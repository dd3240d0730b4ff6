package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"github.com/leashdev/leash/internal/adapters/config"
	"github.com/leashdev/leash/internal/adapters/logger"
	"github.com/leashdev/leash/internal/adapters/pipx"
	"github.com/leashdev/leash/internal/adapters/registry"
	"github.com/leashdev/leash/internal/adapters/shell"
	"github.com/leashdev/leash/internal/adapters/telemetry"
	"github.com/leashdev/leash/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pipx.NodeID,
			registry.NodeID,
			shell.NodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			proc, err := graft.Dep[ports.Executor](ctx)
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
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(pm, reg, proc, store, log, tel, clockwork.NewRealClock()), nil
		},
	})
}
