package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when no resolution strategy produced a
	// usable binary.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrPackageManagerMissing is returned when the package manager itself
	// is not reachable on this machine.
	ErrPackageManagerMissing = zerr.New("package manager not found")

	// ErrInstallFailed is returned when an install or upgrade subprocess
	// failed or the binary could not be located afterwards.
	ErrInstallFailed = zerr.New("tool install failed")

	// ErrRegistryUnavailable is returned when the package registry could not
	// be queried. It is always recovered locally and never escalates to a
	// caller-visible outcome.
	ErrRegistryUnavailable = zerr.New("registry unavailable")

	// ErrInvalidSettings is returned when a settings file fails validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrExecutionFailed is returned by the CLI layer when the wrapped tool
	// ran but did not succeed. The outcome itself carries the detail.
	ErrExecutionFailed = zerr.New("execution failed")
)

// NotFoundError carries the diagnostic message for a failed resolution or
// installation. Silent marks a replay of an already-reported fatal error:
// the first occurrence in a session is loud, every later one is suppressed
// so a condition that cannot self-heal does not storm the user.
type NotFoundError struct {
	Message string
	Silent  bool
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrToolNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrToolNotFound
}
