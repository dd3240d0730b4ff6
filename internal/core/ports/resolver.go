package ports

import (
	"context"

	"github.com/leashdev/leash/internal/core/domain"
)

// ToolResolver chooses which invocation spec to use for the wrapped tool
// and memoizes the answer.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ToolResolver interface {
	// Resolve returns the cached RunSpec, running the strategy chain on a
	// cache miss. It returns a *domain.NotFoundError when no strategy
	// succeeds.
	Resolve(ctx context.Context) (domain.RunSpec, error)
	// Invalidate clears the cached spec. Called whenever an inbound
	// configuration signal changes.
	Invalidate()
}

// ToolInstaller guarantees a compatible managed binary exists, installing
// or upgrading through the package manager when needed.
type ToolInstaller interface {
	// EnsureAvailable returns the path of a compatible binary. It returns a
	// *domain.NotFoundError on failure; after the first fatal failure every
	// later call replays the same error silently without any I/O.
	EnsureAvailable(ctx context.Context) (string, error)
	// Reset clears the sticky fatal-error cache and the update-check timer,
	// allowing a retry without restarting the process.
	Reset()
}
