// Package build carries version information stamped at link time.
package build

// Version is the leash release version, overridden with
// -ldflags "-X github.com/leashdev/leash/internal/build.Version=...".
var Version = "dev"
