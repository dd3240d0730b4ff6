// Package pipx implements the PackageManager port over the pipx CLI.
package pipx

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	probeTimeout   = 5 * time.Second
	queryTimeout   = 10 * time.Second
	installTimeout = 5 * time.Minute
)

// Client implements ports.PackageManager by shelling out to pipx. Every
// method runs its own short-lived subprocess with its own timeout.
type Client struct {
	binary string
	log    ports.Logger
}

// NewClient creates a PackageManager backed by the pipx CLI.
func NewClient(log ports.Logger) *Client {
	return &Client{binary: "pipx", log: log}
}

// Probe verifies pipx itself is callable.
func (c *Client) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := c.run(ctx, "--version")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageManagerMissing.Error()), "binary", c.binary)
	}
	c.log.Info(fmt.Sprintf("pipx %s detected", strings.TrimSpace(out)))
	return nil
}

// Install installs pkg constrained to the given version window. The window
// is passed through as a pip requirement specifier so pipx can never jump
// past the compatible minor.
func (c *Client) Install(ctx context.Context, pkg string, window domain.Range) error {
	ctx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()

	target := pkg + window.String()
	out, err := c.run(ctx, "install", "--force", target)
	if err != nil {
		installErr := zerr.Wrap(err, domain.ErrInstallFailed.Error())
		installErr = zerr.With(installErr, "package", pkg)
		return zerr.With(installErr, "constraint", window.String())
	}
	c.logOutput(out)
	return nil
}

// Uninstall removes pkg.
func (c *Client) Uninstall(ctx context.Context, pkg string) error {
	ctx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()

	out, err := c.run(ctx, "uninstall", pkg)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "pipx uninstall failed"), "package", pkg)
	}
	c.logOutput(out)
	return nil
}

// BinDir queries pipx for the directory it links managed binaries into.
func (c *Client) BinDir(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out, err := c.run(ctx, "environment", "--value", "PIPX_BIN_DIR")
	if err != nil {
		return "", zerr.Wrap(err, "pipx bin dir query failed")
	}
	dir := firstLine(out)
	if dir == "" {
		return "", zerr.New("pipx reported an empty bin dir")
	}
	return dir, nil
}

// run executes pipx with the given arguments and returns stdout. Stderr is
// folded into the error's metadata so install failures stay diagnosable.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", zerr.With(zerr.Wrap(ctx.Err(), "pipx call timed out"), "args", strings.Join(args, " "))
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			runErr := zerr.Wrap(exitErr, "pipx exited non-zero")
			runErr = zerr.With(runErr, "args", strings.Join(args, " "))
			return "", zerr.With(runErr, "stderr", stderr)
		}
		return "", zerr.With(zerr.Wrap(err, "pipx could not be started"), "binary", c.binary)
	}
	return string(output), nil
}

func (c *Client) logOutput(out string) {
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			c.log.Info(line)
		}
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
