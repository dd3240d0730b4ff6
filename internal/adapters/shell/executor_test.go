package shell_test

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/leashdev/leash/internal/adapters/shell"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func shSpec(script string) domain.RunSpec {
	return domain.RunSpec{Command: "/bin/sh", PrefixArgs: []string{"-c", script}}
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests drive /bin/sh")
	}
}

func TestExecute_CapturesOutputAndFeedsStdin(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	out := e.Execute(context.Background(), shSpec("cat"), domain.ExecutionRequest{
		Stdin: "hello\n",
	})

	require.Equal(t, domain.OutcomeSuccess, out.Kind)
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Empty(t, out.Stderr)
}

func TestExecute_LargeStdinDoesNotDeadlock(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	// Larger than a pipe buffer on every supported platform.
	payload := strings.Repeat("x", 1<<20)
	out := e.Execute(context.Background(), shSpec("cat"), domain.ExecutionRequest{
		Stdin:   payload,
		Timeout: 30 * time.Second,
	})

	require.Equal(t, domain.OutcomeSuccess, out.Kind)
	assert.Len(t, out.Stdout, len(payload))
}

func TestExecute_ChildIgnoringStdinStillSucceeds(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	// The payload exceeds the pipe buffer, so the child's clean exit breaks
	// the pipe mid-write. That is the child's prerogative, not a failure.
	out := e.Execute(context.Background(), shSpec("exit 0"), domain.ExecutionRequest{
		Stdin:   strings.Repeat("x", 1<<20),
		Timeout: 30 * time.Second,
	})

	require.Equal(t, domain.OutcomeSuccess, out.Kind)
}

func TestExecute_TimeoutKillsAndClassifies(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	start := time.Now()
	out := e.Execute(context.Background(), shSpec("sleep 5"), domain.ExecutionRequest{
		Timeout: 100 * time.Millisecond,
	})

	require.Equal(t, domain.OutcomeTimeout, out.Kind)
	assert.Less(t, time.Since(start), 5*time.Second, "the child must be killed, not waited out")
	assert.NotZero(t, out.Elapsed)
}

func TestExecute_NonZeroExitPreservesOutput(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	out := e.Execute(context.Background(), shSpec("echo partial; echo oops >&2; exit 3"), domain.ExecutionRequest{})

	require.Equal(t, domain.OutcomeFailure, out.Kind)
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "partial\n", out.Stdout)
	assert.Equal(t, "oops\n", out.Stderr)
}

func TestExecute_MissingBinaryIsNotFound(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	spec := domain.RunSpec{Command: filepath.Join(t.TempDir(), "no-such-binary")}
	out := e.Execute(context.Background(), spec, domain.ExecutionRequest{})

	require.Equal(t, domain.OutcomeNotFound, out.Kind)
	assert.Contains(t, out.Message, "no-such-binary")
}

func TestExecute_WorkingDirectoryIsApplied(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	dir := t.TempDir()
	out := e.Execute(context.Background(), shSpec("pwd"), domain.ExecutionRequest{
		WorkingDir: dir,
	})

	require.Equal(t, domain.OutcomeSuccess, out.Kind)
	// macOS reports /private-prefixed paths for temp dirs.
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.Stdout), filepath.Base(dir)))
}

func TestExecute_ParentCancellationIsNotATimeout(t *testing.T) {
	skipOnWindows(t)
	e := shell.NewExecutor(nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	out := e.Execute(ctx, shSpec("sleep 5"), domain.ExecutionRequest{Timeout: time.Minute})

	// An interrupt kills the child too, but it must not be reported as the
	// tool overrunning its deadline.
	assert.NotEqual(t, domain.OutcomeTimeout, out.Kind)
}
