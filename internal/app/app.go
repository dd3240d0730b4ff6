// Package app implements the application layer for leash.
package app

import (
	"context"

	"github.com/leashdev/leash/internal/adapters/config"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
	"github.com/leashdev/leash/internal/engine/runner"
)

// App is the facade the CLI (or any embedding host) drives.
type App struct {
	runner    *runner.Runner
	installer ports.ToolInstaller
	resolver  ports.ToolResolver
	registry  ports.Registry
	store     *config.Store
	log       ports.Logger
}

// New creates an App with its collaborators injected.
func New(
	run *runner.Runner,
	inst ports.ToolInstaller,
	res ports.ToolResolver,
	reg ports.Registry,
	store *config.Store,
	log ports.Logger,
) *App {
	return &App{
		runner:    run,
		installer: inst,
		resolver:  res,
		registry:  reg,
		store:     store,
		log:       log,
	}
}

// Execute runs the wrapped tool with the given request.
func (a *App) Execute(ctx context.Context, req domain.ExecutionRequest) domain.ExecutionOutcome {
	return a.runner.Execute(ctx, req)
}

// Install ensures a compatible managed binary exists and returns its path.
func (a *App) Install(ctx context.Context) (string, error) {
	path, err := a.installer.EnsureAvailable(ctx)
	if err != nil {
		return "", err
	}
	// A fresh install may supersede a cached negative resolution.
	a.resolver.Invalidate()
	return path, nil
}

// Reset clears the installer's fatal-error cache and the resolver cache so
// a user-driven retry starts from scratch.
func (a *App) Reset() {
	a.installer.Reset()
	a.resolver.Invalidate()
	a.log.Info("installer breaker and resolver cache reset")
}

// ReloadSettings loads the settings file at path and publishes it, which
// invalidates the resolver cache through the store's change notification.
func (a *App) ReloadSettings(path string) error {
	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	a.store.Update(settings)
	return nil
}

// ToolStatus is the answer to "what would run, and is it current?".
type ToolStatus struct {
	Spec      domain.RunSpec
	Installed domain.Version
	Latest    domain.Version
	Required  domain.Version
}

// Status resolves the tool, probes its version, and asks the registry for
// the latest published one. Registry failures degrade to an unknown latest
// version rather than an error.
func (a *App) Status(ctx context.Context) (ToolStatus, error) {
	spec, err := a.resolver.Resolve(ctx)
	if err != nil {
		return ToolStatus{}, err
	}

	st := a.store.Current()
	status := ToolStatus{Spec: spec, Required: st.RequiredVersion}

	out := a.runner.Execute(ctx, domain.ExecutionRequest{Args: []string{"--version"}})
	if out.Kind == domain.OutcomeSuccess {
		status.Installed = domain.ParseVersion(out.Stdout)
		if status.Installed.IsZero() {
			status.Installed = domain.ParseVersion(out.Stderr)
		}
	}

	if latest, err := a.registry.LatestVersion(ctx, st.Tool.Package); err == nil {
		status.Latest = latest
	}
	return status, nil
}
