package ports

import (
	"context"

	"github.com/leashdev/leash/internal/core/domain"
)

// Registry fetches the latest published version of a package from the
// remote registry metadata endpoint. Implementations are best-effort: a
// network or parse failure returns an error the caller recovers locally.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type Registry interface {
	// LatestVersion returns the newest published version of pkg.
	LatestVersion(ctx context.Context, pkg string) (domain.Version, error)
}

// PackageManager wraps the external package manager's own CLI. Every method
// runs a separate short-timeout subprocess.
type PackageManager interface {
	// Probe verifies the package manager itself is reachable.
	Probe(ctx context.Context) error
	// Install installs pkg constrained to the given version window.
	Install(ctx context.Context, pkg string, window domain.Range) error
	// Uninstall removes pkg.
	Uninstall(ctx context.Context, pkg string) error
	// BinDir returns the directory the package manager links managed
	// binaries into.
	BinDir(ctx context.Context) (string, error)
}
