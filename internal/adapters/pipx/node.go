package pipx

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/leashdev/leash/internal/adapters/logger"
	"github.com/leashdev/leash/internal/core/ports"
)

// NodeID is the unique identifier for the package manager adapter Graft node.
const NodeID graft.ID = "adapter.package_manager"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(log), nil
		},
	})
}
