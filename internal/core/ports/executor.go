// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/leashdev/leash/internal/core/domain"
)

// Executor spawns the wrapped tool (or any probe subprocess) and classifies
// the result.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs spec with the given request and returns a typed outcome.
	// It blocks for the duration of the subprocess; the request timeout is
	// enforced by killing the child. It never returns an error: every
	// terminal state maps to an ExecutionOutcome variant.
	Execute(ctx context.Context, spec domain.RunSpec, req domain.ExecutionRequest) domain.ExecutionOutcome
}
