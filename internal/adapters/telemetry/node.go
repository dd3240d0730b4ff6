package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/leashdev/leash/internal/adapters/telemetry/progrock"
	"github.com/leashdev/leash/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

// EnvProgress enables the progrock recorder when set to a non-empty value.
const EnvProgress = "LEASH_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			if os.Getenv(EnvProgress) != "" {
				return progrock.New(), nil
			}
			return NewNoOp(), nil
		},
	})
}
