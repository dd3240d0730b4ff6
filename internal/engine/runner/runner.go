// Package runner turns a resolved invocation spec and a call request into a
// typed execution outcome.
package runner

import (
	"context"
	"errors"

	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
)

// Runner implements the execute(args, stdin?, timeout, cwd) contract the
// host process consumes. Resolution failures become NotFound or Unavailable
// outcomes; everything that actually ran is classified by the executor.
type Runner struct {
	resolver ports.ToolResolver
	proc     ports.Executor
	log      ports.Logger
	tel      ports.Telemetry
}

// New creates a Runner with its collaborators injected.
func New(resolver ports.ToolResolver, proc ports.Executor, log ports.Logger, tel ports.Telemetry) *Runner {
	return &Runner{
		resolver: resolver,
		proc:     proc,
		log:      log,
		tel:      tel,
	}
}

// Execute resolves the tool and runs it with the given request. The stdin
// sentinel stays in the argument vector (the wrapped tool consumes it), but
// a request that names it without carrying a payload is rejected before
// anything spawns: the tool would block on an input stream that never comes.
func (r *Runner) Execute(ctx context.Context, req domain.ExecutionRequest) domain.ExecutionOutcome {
	if req.UsesStdinSentinel() && req.Stdin == "" {
		out := domain.Failed(-1, "", "")
		out.Message = "argument " + domain.StdinSentinel + " requires a stdin payload"
		return out
	}

	spec, err := r.resolver.Resolve(ctx)
	if err != nil {
		return r.classifyResolution(err)
	}

	ctx, vtx := r.tel.Record(ctx, "run "+spec.Command)
	out := r.proc.Execute(ctx, spec, req)
	switch out.Kind {
	case domain.OutcomeSuccess:
		vtx.Complete(nil)
	default:
		vtx.Complete(errors.New(out.Kind.String()))
	}
	return out
}

// classifyResolution maps resolver errors onto the outcome taxonomy. A
// silent replay of a cached fatal error becomes Unavailable so the caller
// can log it without alerting the user again.
func (r *Runner) classifyResolution(err error) domain.ExecutionOutcome {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		if nf.Silent {
			return domain.UnavailableOutcome(nf.Message)
		}
		return domain.NotFoundOutcome(nf.Message, false)
	}
	r.log.Error(err)
	return domain.NotFoundOutcome(err.Error(), false)
}
