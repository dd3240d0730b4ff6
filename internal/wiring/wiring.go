// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/leashdev/leash/internal/adapters/config"
	_ "github.com/leashdev/leash/internal/adapters/logger"
	_ "github.com/leashdev/leash/internal/adapters/pipx"
	_ "github.com/leashdev/leash/internal/adapters/registry"
	_ "github.com/leashdev/leash/internal/adapters/shell"
	_ "github.com/leashdev/leash/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/leashdev/leash/internal/app"
	_ "github.com/leashdev/leash/internal/engine/installer"
	_ "github.com/leashdev/leash/internal/engine/resolver"
	_ "github.com/leashdev/leash/internal/engine/runner"
)
