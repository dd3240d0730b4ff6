package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leashdev/leash/cmd/leash/commands"
	"github.com/leashdev/leash/internal/adapters/config"
	"github.com/leashdev/leash/internal/adapters/telemetry"
	"github.com/leashdev/leash/internal/app"
	"github.com/leashdev/leash/internal/build"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports/mocks"
	"github.com/leashdev/leash/internal/engine/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	cli       *commands.CLI
	resolver  *mocks.MockToolResolver
	installer *mocks.MockToolInstaller
	executor  *mocks.MockExecutor
	registry  *mocks.MockRegistry
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		resolver:  mocks.NewMockToolResolver(ctrl),
		installer: mocks.NewMockToolInstaller(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		registry:  mocks.NewMockRegistry(ctrl),
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	settings := domain.DefaultSettings()
	settings.Tool = domain.ToolSpec{Package: "aider-chat", Binary: "aider"}
	settings.RequiredVersion = domain.Version{Major: 0, Minor: 10}
	store := config.NewStore(settings)

	run := runner.New(h.resolver, h.executor, log, telemetry.NewNoOp())
	a := app.New(run, h.installer, h.resolver, h.registry, store, log)

	h.cli = commands.New(a)
	h.cli.SetOutput(h.stdout, h.stderr)
	return h
}

func (h *harness) execute(t *testing.T, args ...string) error {
	t.Helper()
	h.cli.SetArgs(args)
	return h.cli.Execute(context.Background())
}

func TestRun_ForwardsOutputAndExitsClean(t *testing.T) {
	h := newHarness(t)
	spec := domain.RunSpec{Command: "/opt/tools/aider"}
	h.resolver.EXPECT().Resolve(gomock.Any()).Return(spec, nil)
	h.executor.EXPECT().Execute(gomock.Any(), spec, gomock.Any()).
		Return(domain.Succeeded("all good\n", "warned\n"))

	require.NoError(t, h.execute(t, "run", "--", "--yes", "file.py"))
	assert.Equal(t, "all good\n", h.stdout.String())
	assert.Equal(t, "warned\n", h.stderr.String())
}

func TestRun_PassesFlagsIntoRequest(t *testing.T) {
	h := newHarness(t)
	spec := domain.RunSpec{Command: "/opt/tools/aider"}
	h.resolver.EXPECT().Resolve(gomock.Any()).Return(spec, nil)
	h.executor.EXPECT().Execute(gomock.Any(), spec, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RunSpec, req domain.ExecutionRequest) domain.ExecutionOutcome {
			assert.Equal(t, []string{"--help"}, req.Args)
			assert.Equal(t, "/work", req.WorkingDir)
			assert.Equal(t, "30s", req.Timeout.String())
			return domain.Succeeded("", "")
		})

	require.NoError(t, h.execute(t, "run", "--timeout", "30s", "--cwd", "/work", "--", "--help"))
}

func TestRun_StdinSentinelImpliesStdinRead(t *testing.T) {
	h := newHarness(t)

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	_, err = f.WriteString("a large prompt")
	require.NoError(t, err)
	_, err = f.Seek(0, 0)
	require.NoError(t, err)
	orig := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = orig })

	spec := domain.RunSpec{Command: "/opt/tools/aider"}
	h.resolver.EXPECT().Resolve(gomock.Any()).Return(spec, nil)
	h.executor.EXPECT().Execute(gomock.Any(), spec, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RunSpec, req domain.ExecutionRequest) domain.ExecutionOutcome {
			assert.Equal(t, []string{"--message", domain.StdinSentinel}, req.Args)
			assert.Equal(t, "a large prompt", req.Stdin)
			return domain.Succeeded("", "")
		})

	require.NoError(t, h.execute(t, "run", "--", "--message", domain.StdinSentinel))
}

func TestRun_NonZeroExitBecomesExecutionError(t *testing.T) {
	h := newHarness(t)
	h.resolver.EXPECT().Resolve(gomock.Any()).Return(domain.RunSpec{Command: "/opt/tools/aider"}, nil)
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Failed(3, "partial\n", "boom\n"))

	err := h.execute(t, "run")
	require.ErrorIs(t, err, domain.ErrExecutionFailed)
	// Output is forwarded even on failure.
	assert.Equal(t, "partial\n", h.stdout.String())
	assert.Equal(t, "boom\n", h.stderr.String())
}

func TestRun_TimeoutBecomesExecutionError(t *testing.T) {
	h := newHarness(t)
	h.resolver.EXPECT().Resolve(gomock.Any()).Return(domain.RunSpec{Command: "/opt/tools/aider"}, nil)
	h.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.TimedOut(0))

	require.ErrorIs(t, h.execute(t, "run"), domain.ErrExecutionFailed)
}

func TestRun_UnresolvableToolBecomesNotFoundError(t *testing.T) {
	h := newHarness(t)
	h.resolver.EXPECT().Resolve(gomock.Any()).
		Return(domain.RunSpec{}, &domain.NotFoundError{Message: "no usable aider binary"})

	require.ErrorIs(t, h.execute(t, "run"), domain.ErrToolNotFound)
}

func TestInstall_PrintsResolvedPath(t *testing.T) {
	h := newHarness(t)
	h.installer.EXPECT().EnsureAvailable(gomock.Any()).Return("/home/user/.local/bin/aider", nil)
	h.resolver.EXPECT().Invalidate()

	require.NoError(t, h.execute(t, "install"))
	assert.Equal(t, "/home/user/.local/bin/aider\n", h.stdout.String())
}

func TestReset_ClearsInstallerAndResolverState(t *testing.T) {
	h := newHarness(t)
	h.installer.EXPECT().Reset()
	h.resolver.EXPECT().Invalidate()

	require.NoError(t, h.execute(t, "reset"))
}

func TestStatus_ReportsVersionsAndUpdateHint(t *testing.T) {
	h := newHarness(t)
	spec := domain.RunSpec{Command: "/opt/tools/aider"}
	h.resolver.EXPECT().Resolve(gomock.Any()).Return(spec, nil).Times(2)
	h.executor.EXPECT().Execute(gomock.Any(), spec, gomock.Any()).
		Return(domain.Succeeded("aider 0.10.1\n", ""))
	h.registry.EXPECT().LatestVersion(gomock.Any(), "aider-chat").
		Return(domain.Version{Major: 0, Minor: 10, Patch: 7}, nil)

	require.NoError(t, h.execute(t, "status"))
	out := h.stdout.String()
	assert.Contains(t, out, "command:   /opt/tools/aider")
	assert.Contains(t, out, "installed: 0.10.1")
	assert.Contains(t, out, "latest:    0.10.7")
	assert.Contains(t, out, "an update is available")
}

func TestVersion_PrintsBuildVersion(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.execute(t, "version"))
	assert.Contains(t, h.stdout.String(), build.Version)
}

func TestConfigFlag_ReloadsSettingsBeforeTheCommand(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "leash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tool:
  package: aider-chat
  binary: aider
required_version: "0.12"
`), 0o600))

	spec := domain.RunSpec{Command: "/opt/tools/aider"}
	h.resolver.EXPECT().Resolve(gomock.Any()).Return(spec, nil).Times(2)
	h.executor.EXPECT().Execute(gomock.Any(), spec, gomock.Any()).
		Return(domain.Succeeded("aider 0.12.0\n", ""))
	h.registry.EXPECT().LatestVersion(gomock.Any(), "aider-chat").
		Return(domain.Version{}, domain.ErrRegistryUnavailable)

	require.NoError(t, h.execute(t, "--config", path, "status"))
	assert.Contains(t, h.stdout.String(), "required:  0.12.0")
}

func TestConfigFlag_RejectsMissingFile(t *testing.T) {
	h := newHarness(t)

	err := h.execute(t, "--config", "/does/not/exist.yaml", "status")
	require.Error(t, err)
}
