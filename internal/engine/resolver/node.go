package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/leashdev/leash/internal/adapters/config"
	"github.com/leashdev/leash/internal/adapters/logger"
	"github.com/leashdev/leash/internal/core/ports"
	"github.com/leashdev/leash/internal/engine/installer"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			installer.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			store, err := graft.Dep[*config.Store](ctx)
			if err != nil {
				return nil, err
			}
			inst, err := graft.Dep[*installer.Installer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			r := New(store, inst, log)
			// Configuration changes invalidate the cached spec; the
			// installer's fatal-error cache deliberately survives them.
			store.OnChange(r.Invalidate)
			return r, nil
		},
	})
}
