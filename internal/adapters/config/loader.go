// Package config provides the settings loader and the settings store.
package config

import (
	"os"
	"path/filepath"

	"github.com/leashdev/leash/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default settings file location under the user
// config base, e.g. $XDG_CONFIG_HOME/leash/leash.yaml on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "cannot determine config directory")
	}
	return filepath.Join(base, "leash", "leash.yaml"), nil
}

// Load reads a settings file from the given path and returns validated
// domain settings layered over the defaults.
func Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to read settings file")
	}

	var file Leashfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse settings file")
	}
	return fromFile(file)
}

func fromFile(file Leashfile) (domain.Settings, error) {
	s := domain.DefaultSettings()

	s.Tool = domain.ToolSpec{
		Package: file.Tool.Package,
		Binary:  file.Tool.Binary,
		Module:  file.Tool.Module,
	}
	s.ExecutablePath = file.ExecutablePath
	s.InterpreterPath = file.InterpreterPath
	if file.Managed != nil {
		s.Managed = *file.Managed
	}

	switch file.InstallStrategy {
	case "":
		// keep default
	case string(domain.StrategyManaged):
		s.Strategy = domain.StrategyManaged
	case string(domain.StrategySystem):
		s.Strategy = domain.StrategySystem
	default:
		strategyErr := zerr.With(domain.ErrInvalidSettings, "install_strategy", file.InstallStrategy)
		return domain.Settings{}, zerr.With(strategyErr, "allowed", "managed|system")
	}

	if file.Tool.Package == "" {
		return domain.Settings{}, zerr.With(domain.ErrInvalidSettings, "missing", "tool.package")
	}
	if file.Tool.Binary == "" {
		return domain.Settings{}, zerr.With(domain.ErrInvalidSettings, "missing", "tool.binary")
	}

	s.RequiredVersion = domain.ParseVersion(file.RequiredVersion)
	if s.RequiredVersion.IsZero() && s.Strategy == domain.StrategyManaged {
		return domain.Settings{}, zerr.With(domain.ErrInvalidSettings, "missing", "required_version")
	}

	return s, nil
}
