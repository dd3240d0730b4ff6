package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leashdev/leash/internal/adapters/config"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeSettings(t, `
tool:
  package: aider-chat
  binary: aider
  module: aider
required_version: "0.86"
executable_path: /opt/tools/aider
interpreter_path: /usr/bin/python3
install_strategy: system
managed: false
`)

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "aider-chat", s.Tool.Package)
	assert.Equal(t, "aider", s.Tool.Binary)
	assert.Equal(t, "aider", s.Tool.Module)
	assert.Equal(t, domain.Version{Major: 0, Minor: 86}, s.RequiredVersion)
	assert.Equal(t, "/opt/tools/aider", s.ExecutablePath)
	assert.Equal(t, "/usr/bin/python3", s.InterpreterPath)
	assert.Equal(t, domain.StrategySystem, s.Strategy)
	assert.False(t, s.Managed)
}

func TestLoad_MinimalFileGetsDefaults(t *testing.T) {
	path := writeSettings(t, `
tool:
  package: aider-chat
  binary: aider
required_version: "0.86.1"
`)

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyManaged, s.Strategy)
	assert.True(t, s.Managed, "managed defaults to on when omitted")
	assert.Empty(t, s.ExecutablePath)
}

func TestLoad_UnknownStrategyIsRejected(t *testing.T) {
	path := writeSettings(t, `
tool:
  package: aider-chat
  binary: aider
required_version: "0.86"
install_strategy: yolo
`)

	_, err := config.Load(path)
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestLoad_MissingToolFieldsAreRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no package", "tool:\n  binary: aider\nrequired_version: \"0.86\"\n"},
		{"no binary", "tool:\n  package: aider-chat\nrequired_version: \"0.86\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeSettings(t, tt.body))
			require.ErrorIs(t, err, domain.ErrInvalidSettings)
		})
	}
}

func TestLoad_ManagedRequiresVersion(t *testing.T) {
	path := writeSettings(t, `
tool:
  package: aider-chat
  binary: aider
`)

	_, err := config.Load(path)
	require.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestLoad_SystemStrategyAllowsNoVersion(t *testing.T) {
	path := writeSettings(t, `
tool:
  package: aider-chat
  binary: aider
  module: aider
install_strategy: system
`)

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, s.RequiredVersion.IsZero())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := config.Load(writeSettings(t, "tool: [unterminated"))
	require.Error(t, err)
}

func TestStore_UpdateNotifiesListeners(t *testing.T) {
	store := config.NewStore(domain.DefaultSettings())

	var notified int
	store.OnChange(func() { notified++ })
	store.OnChange(func() { notified++ })

	next := domain.DefaultSettings()
	next.ExecutablePath = "/opt/tools/aider"
	store.Update(next)

	assert.Equal(t, 2, notified)
	assert.Equal(t, "/opt/tools/aider", store.Current().ExecutablePath)
}

func TestStore_ListenerMayReadCurrent(t *testing.T) {
	store := config.NewStore(domain.DefaultSettings())

	var seen string
	store.OnChange(func() { seen = store.Current().ExecutablePath })

	next := domain.DefaultSettings()
	next.ExecutablePath = "/opt/tools/aider"
	store.Update(next)

	assert.Equal(t, "/opt/tools/aider", seen, "listeners observe the new snapshot")
}
