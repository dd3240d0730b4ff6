package domain

// InstallStrategy selects where the wrapped tool comes from.
type InstallStrategy string

const (
	// StrategyManaged lets leash install and update the tool itself through
	// the package manager.
	StrategyManaged InstallStrategy = "managed"
	// StrategySystem trusts a user-provided interpreter environment and
	// never touches the package manager.
	StrategySystem InstallStrategy = "system"
)

// ToolSpec identifies the wrapped tool across its distribution channels.
type ToolSpec struct {
	// Package is the distribution name on the package registry.
	Package string
	// Binary is the console-script name the installer exposes on PATH.
	Binary string
	// Module is the interpreter module entry point, used for
	// "<interpreter> -m <module>" invocation.
	Module string
}

// Settings are the inbound configuration signals this subsystem consumes.
// Any change to them must invalidate the resolver cache; the installer's
// fatal-error cache deliberately survives settings changes.
type Settings struct {
	// ExecutablePath, when set, points at an explicit tool binary that
	// bypasses every other resolution strategy.
	ExecutablePath string
	// InterpreterPath is the interpreter used for module invocation under
	// StrategySystem.
	InterpreterPath string
	// Strategy selects between managed installs and the system environment.
	Strategy InstallStrategy
	// Managed gates the managed-install fallback. When false the resolver
	// never triggers an install, which developers use to pin a local build.
	Managed bool
	// Tool describes the wrapped tool.
	Tool ToolSpec
	// RequiredVersion is the compatibility anchor: any installed version
	// sharing its major.minor is acceptable.
	RequiredVersion Version
}

// DefaultSettings returns the baseline configuration before a settings file
// is applied.
func DefaultSettings() Settings {
	return Settings{
		Strategy: StrategyManaged,
		Managed:  true,
	}
}
