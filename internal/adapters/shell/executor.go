// Package shell implements the Executor port using os/exec.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// waitDelay bounds how long Wait blocks on the child's I/O after the
// context kills it, so a timed-out process can never wedge the caller.
const waitDelay = 5 * time.Second

// Executor implements ports.Executor. It spawns the resolved invocation,
// feeds stdin concurrently with the output capture, enforces the request
// timeout by killing the child, and maps the terminal state to a typed
// outcome. Stdout and stderr are preserved verbatim on every branch.
type Executor struct {
	log ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(log ports.Logger) *Executor {
	return &Executor{log: log}
}

// Execute runs spec with the given request.
func (e *Executor) Execute(ctx context.Context, spec domain.RunSpec, req domain.ExecutionRequest) domain.ExecutionOutcome {
	runCtx := ctx
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, spec.Command, spec.Argv(req.Args)...) //nolint:gosec // invocation spec is resolver-provided
	cmd.Dir = req.WorkingDir
	cmd.Env = overlayEnv(os.Environ())
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// The stdin write runs concurrently with the child's output capture.
	// Writing sequentially before draining can deadlock on large payloads
	// once both pipe buffers fill up.
	var g errgroup.Group
	if req.Stdin != "" {
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return domain.Failed(-1, "", err.Error())
		}
		payload := req.Stdin
		g.Go(func() error {
			defer func() { _ = stdin.Close() }()
			_, werr := io.WriteString(stdin, payload)
			return werr
		})
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		_ = g.Wait()
		return classifyStartError(spec.Command, err)
	}

	waitErr := cmd.Wait()
	elapsed := time.Since(start)
	if werr := g.Wait(); werr != nil && waitErr == nil && !isIgnorableStdinError(werr) {
		waitErr = werr
	}

	if runCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		e.log.Warn("killed " + spec.Command + " after " + elapsed.Round(time.Millisecond).String())
		return domain.TimedOut(elapsed)
	}

	if waitErr == nil {
		return domain.Succeeded(stdout.String(), stderr.String())
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return domain.Failed(exitErr.ExitCode(), stdout.String(), stderr.String())
	}
	out := domain.Failed(-1, stdout.String(), stderr.String())
	out.Message = waitErr.Error()
	return out
}

// isIgnorableStdinError reports whether a stdin-write failure can be
// discarded. A child that exits cleanly without draining its input breaks
// the pipe under the writer; that must not turn a successful run into a
// failure.
func isIgnorableStdinError(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}

// classifyStartError maps a spawn failure to an outcome: a missing or
// non-executable binary is a resolution problem, not a run failure.
func classifyStartError(command string, err error) domain.ExecutionOutcome {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return domain.NotFoundOutcome("cannot start "+command+": "+err.Error(), false)
	}
	return domain.Failed(-1, "", err.Error())
}

// overlayEnv pins the child to deterministic text behavior regardless of
// the host platform's locale and terminal.
func overlayEnv(env []string) []string {
	return append(env,
		"PYTHONIOENCODING=utf-8",
		"PYTHONUTF8=1",
		"NO_COLOR=1",
	)
}
