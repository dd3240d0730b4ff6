// Package telemetry provides the no-op telemetry adapter and the node that
// selects the active recorder.
package telemetry

import (
	"context"

	"github.com/leashdev/leash/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new no-op telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &noopVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

type noopVertex struct{}

func (v *noopVertex) Write(p []byte) (int, error) { return len(p), nil }

func (v *noopVertex) Complete(_ error) {}
