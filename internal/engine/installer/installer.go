// Package installer guarantees a compatible managed binary exists,
// installing or upgrading through the package manager when needed.
package installer

import (
	"context"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/leashdev/leash/internal/adapters/fs"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// updateCheckTTL is how long a "no update available" answer stays
	// trusted before the registry is asked again.
	updateCheckTTL = 24 * time.Hour

	probeTimeout = 10 * time.Second
)

// Installer implements ports.ToolInstaller.
//
// The mutex guards install and upgrade execution only; the common case
// (binary present and compatible, no update due) concludes on the fast
// path without ever touching the lock. fatal and lastCheck are read
// lock-free on that path and written only while holding the lock, so the
// atomics carry the memory-visibility guarantees the fast path needs.
type Installer struct {
	pm       ports.PackageManager
	registry ports.Registry
	proc     ports.Executor
	settings ports.SettingsSource
	log      ports.Logger
	tel      ports.Telemetry
	clock    clockwork.Clock

	mu        sync.Mutex
	fatal     atomic.Pointer[string]
	lastCheck atomic.Pointer[time.Time]
}

// New creates an Installer with its collaborators injected.
func New(
	pm ports.PackageManager,
	registry ports.Registry,
	proc ports.Executor,
	settings ports.SettingsSource,
	log ports.Logger,
	tel ports.Telemetry,
	clock clockwork.Clock,
) *Installer {
	return &Installer{
		pm:       pm,
		registry: registry,
		proc:     proc,
		settings: settings,
		log:      log,
		tel:      tel,
		clock:    clock,
	}
}

// EnsureAvailable returns the path of a compatible binary, installing or
// upgrading first when needed. After a fatal failure every later call
// replays the cached error silently without any I/O until Reset or a
// process restart.
func (i *Installer) EnsureAvailable(ctx context.Context) (string, error) {
	if msg := i.fatal.Load(); msg != nil {
		return "", &domain.NotFoundError{Message: *msg, Silent: true}
	}

	st := i.settings.Current()
	if st.Tool.Package == "" || st.Tool.Binary == "" {
		// A configuration gap, not an environment failure: the host can fix
		// it by pushing settings, so it must not trip the breaker.
		return "", &domain.NotFoundError{Message: "no managed tool configured"}
	}

	// Fast path: installed, compatible, and no update check due.
	if path, ok := i.locate(ctx, st.Tool); ok {
		if i.probeVersion(ctx, path).Compatible(st.RequiredVersion) && !i.updateDue() {
			return path, nil
		}
	}

	return i.ensure(ctx, st)
}

// ensure is the slow path. It re-checks all state after acquiring the lock:
// a caller that queued behind a completed install must not reinstall, and a
// caller that queued behind a fatal failure must replay it silently.
func (i *Installer) ensure(ctx context.Context, st domain.Settings) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if msg := i.fatal.Load(); msg != nil {
		return "", &domain.NotFoundError{Message: *msg, Silent: true}
	}

	if err := i.pm.Probe(ctx); err != nil {
		return "", i.trip(zerr.Wrap(err,
			"package manager unavailable; install pipx or configure an explicit tool path"))
	}

	window := domain.ConstraintFor(st.RequiredVersion)
	path, installed := i.locate(ctx, st.Tool)
	var current domain.Version
	if installed {
		current = i.probeVersion(ctx, path)
	}

	switch {
	case !installed:
		if err := i.install(ctx, st.Tool, window); err != nil {
			return "", i.trip(err)
		}
	case !current.Compatible(st.RequiredVersion):
		if err := i.upgrade(ctx, st.Tool, window); err != nil {
			return "", i.trip(err)
		}
	case i.updateDue():
		latest, err := i.registry.LatestVersion(ctx, st.Tool.Package)
		// A failed network probe still resets the timer so we don't hammer
		// the registry on every call.
		i.stampCheck()
		if err != nil {
			i.log.Warn("update check failed: " + err.Error())
			return path, nil
		}
		if !latest.Newer(current) || !latest.Compatible(st.RequiredVersion) {
			return path, nil
		}
		i.log.Info("upgrading " + st.Tool.Package + " " + current.String() + " -> " + latest.String())
		if err := i.upgrade(ctx, st.Tool, window); err != nil {
			return "", i.trip(err)
		}
	default:
		return path, nil
	}

	path, ok := i.locate(ctx, st.Tool)
	if !ok {
		verifyErr := zerr.With(domain.ErrInstallFailed, "package", st.Tool.Package)
		return "", i.trip(zerr.With(verifyErr, "reason", "binary not locatable after install"))
	}
	i.stampCheck()
	return path, nil
}

// Reset clears the sticky fatal-error cache and the update-check timer so a
// retry can run without restarting the process.
func (i *Installer) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.fatal.Store(nil)
	i.lastCheck.Store(nil)
}

func (i *Installer) install(ctx context.Context, tool domain.ToolSpec, window domain.Range) error {
	ctx, vtx := i.tel.Record(ctx, "install "+tool.Package)
	err := i.pm.Install(ctx, tool.Package, window)
	vtx.Complete(err)
	return err
}

// upgrade runs uninstall-then-reinstall. The sequence is not atomic: when
// the reinstall fails the tool is left absent, which must surface as a
// fatal error rather than a silent retry loop.
func (i *Installer) upgrade(ctx context.Context, tool domain.ToolSpec, window domain.Range) error {
	ctx, vtx := i.tel.Record(ctx, "upgrade "+tool.Package)

	if err := i.pm.Uninstall(ctx, tool.Package); err != nil {
		vtx.Complete(err)
		return err
	}
	if err := i.pm.Install(ctx, tool.Package, window); err != nil {
		err = zerr.With(zerr.Wrap(err, "reinstall failed after uninstall, tool is now absent"),
			"package", tool.Package)
		vtx.Complete(err)
		return err
	}
	vtx.Complete(nil)
	return nil
}

// trip records a fatal error. The first occurrence is returned loud; every
// replay for the rest of the session is silent.
func (i *Installer) trip(err error) error {
	msg := err.Error()
	i.fatal.Store(&msg)
	i.log.Error(err)
	return &domain.NotFoundError{Message: msg}
}

// locate finds the installed binary: direct PATH lookup first, then the
// package manager's managed-binaries directory.
func (i *Installer) locate(ctx context.Context, tool domain.ToolSpec) (string, bool) {
	if p, err := exec.LookPath(tool.Binary); err == nil {
		return p, true
	}
	dir, err := i.pm.BinDir(ctx)
	if err != nil {
		return "", false
	}
	p := filepath.Join(dir, tool.Binary)
	if fs.IsExecutable(p) {
		return p, true
	}
	return "", false
}

// probeVersion runs "<binary> --version" and parses the answer. A failed
// probe degrades to the zero version, which reads as incompatible.
func (i *Installer) probeVersion(ctx context.Context, path string) domain.Version {
	out := i.proc.Execute(ctx, domain.RunSpec{Command: path}, domain.ExecutionRequest{
		Args:    []string{"--version"},
		Timeout: probeTimeout,
	})
	if out.Kind != domain.OutcomeSuccess {
		return domain.Version{}
	}
	v := domain.ParseVersion(out.Stdout)
	if v.IsZero() {
		v = domain.ParseVersion(out.Stderr)
	}
	return v
}

func (i *Installer) updateDue() bool {
	last := i.lastCheck.Load()
	return last == nil || i.clock.Since(*last) >= updateCheckTTL
}

func (i *Installer) stampCheck() {
	now := i.clock.Now()
	i.lastCheck.Store(&now)
}
