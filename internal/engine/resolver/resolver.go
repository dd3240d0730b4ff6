// Package resolver chooses which invocation spec to use for the wrapped
// tool and memoizes the answer until a configuration change invalidates it.
package resolver

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/leashdev/leash/internal/adapters/fs"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
)

// Resolver implements ports.ToolResolver. The strategy chain, first
// success wins:
//
//  1. an explicitly configured executable path
//  2. the configured system interpreter plus module-invocation prefix
//  3. the installer's managed binary
//
// The first successful RunSpec is cached; every later Resolve returns it
// without re-running any strategy until Invalidate.
type Resolver struct {
	settings  ports.SettingsSource
	installer ports.ToolInstaller
	log       ports.Logger

	cached atomic.Pointer[domain.RunSpec]
}

// New creates a Resolver with its collaborators injected.
func New(settings ports.SettingsSource, installer ports.ToolInstaller, log ports.Logger) *Resolver {
	return &Resolver{
		settings:  settings,
		installer: installer,
		log:       log,
	}
}

// Resolve returns the invocation spec for the wrapped tool.
func (r *Resolver) Resolve(ctx context.Context) (domain.RunSpec, error) {
	if spec := r.cached.Load(); spec != nil {
		return *spec, nil
	}

	st := r.settings.Current()
	var trail []string

	if spec, reason := r.explicitPath(st); reason == "" {
		return r.memoize(spec), nil
	} else { //nolint:revive // keep the strategy trail linear
		trail = append(trail, reason)
	}

	if spec, reason := r.systemInterpreter(st); reason == "" {
		return r.memoize(spec), nil
	} else { //nolint:revive // keep the strategy trail linear
		trail = append(trail, reason)
	}

	if !st.Managed {
		trail = append(trail, "managed install disabled")
	} else {
		path, err := r.installer.EnsureAvailable(ctx)
		if err == nil {
			return r.memoize(domain.RunSpec{Command: path}), nil
		}
		if nf, ok := err.(*domain.NotFoundError); ok && nf.Silent {
			// A replayed fatal error stays silent; re-wrapping it in the
			// trail would defeat the suppression.
			return domain.RunSpec{}, nf
		}
		trail = append(trail, "managed install failed: "+err.Error())
	}

	msg := fmt.Sprintf("no usable %s binary: %s", st.Tool.Binary, strings.Join(trail, "; "))
	return domain.RunSpec{}, &domain.NotFoundError{Message: msg}
}

// Invalidate clears the cached spec so the next Resolve re-runs the full
// strategy chain. Called whenever an inbound configuration signal changes.
func (r *Resolver) Invalidate() {
	r.cached.Store(nil)
	r.log.Info("resolver cache invalidated")
}

func (r *Resolver) memoize(spec domain.RunSpec) domain.RunSpec {
	r.cached.Store(&spec)
	return spec
}

// explicitPath is strategy 1. The empty reason marks success.
func (r *Resolver) explicitPath(st domain.Settings) (domain.RunSpec, string) {
	if st.ExecutablePath == "" {
		return domain.RunSpec{}, "no explicit executable path configured"
	}
	if !fs.IsExecutable(st.ExecutablePath) {
		return domain.RunSpec{}, fmt.Sprintf("configured path %q is not an executable file", st.ExecutablePath)
	}
	return domain.RunSpec{Command: st.ExecutablePath}, ""
}

// systemInterpreter is strategy 2: trust the user's interpreter environment
// and invoke the tool as a module.
func (r *Resolver) systemInterpreter(st domain.Settings) (domain.RunSpec, string) {
	if st.Strategy != domain.StrategySystem {
		return domain.RunSpec{}, "install strategy is not 'system'"
	}
	if st.InterpreterPath == "" || st.Tool.Module == "" {
		return domain.RunSpec{}, "system strategy needs an interpreter path and a tool module"
	}
	if !fs.IsExecutable(st.InterpreterPath) {
		return domain.RunSpec{}, fmt.Sprintf("configured interpreter %q is not an executable file", st.InterpreterPath)
	}
	return domain.RunSpec{
		Command:    st.InterpreterPath,
		PrefixArgs: []string{"-m", st.Tool.Module},
	}, ""
}
