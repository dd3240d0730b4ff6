// Package main is the entry point for the leash CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/leashdev/leash/cmd/leash/commands"
	"github.com/leashdev/leash/internal/app"
	"github.com/leashdev/leash/internal/core/domain"
	_ "github.com/leashdev/leash/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A parent cancellation propagates into every in-flight subprocess.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrExecutionFailed) {
			// The tool's own stderr already went to the terminal.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
