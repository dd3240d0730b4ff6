package domain_test

import (
	"testing"

	"github.com/leashdev/leash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Version
	}{
		{"plain", "0.10.3", domain.Version{Major: 0, Minor: 10, Patch: 3}},
		{"embedded", "tool 1.2.3 (release)", domain.Version{Major: 1, Minor: 2, Patch: 3}},
		{"v prefix", "v2.5.0", domain.Version{Major: 2, Minor: 5, Patch: 0}},
		{"missing patch", "0.9", domain.Version{Major: 0, Minor: 9, Patch: 0}},
		{"missing minor", "7", domain.Version{Major: 7}},
		{"garbage", "no digits here", domain.Version{}},
		{"empty", "", domain.Version{}},
		{"multiline banner", "aider 0.86.1\npython 3.12.4", domain.Version{Major: 0, Minor: 86, Patch: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseVersion(tt.in))
		})
	}
}

func TestConstraintFor(t *testing.T) {
	window := domain.ConstraintFor(domain.Version{Major: 0, Minor: 10, Patch: 0})

	assert.True(t, window.Contains(domain.ParseVersion("0.10.0")))
	assert.True(t, window.Contains(domain.ParseVersion("0.10.7")))
	assert.False(t, window.Contains(domain.ParseVersion("0.9.9")))
	assert.False(t, window.Contains(domain.ParseVersion("0.11.0")))

	assert.Equal(t, ">=0.10.0,<0.11.0", window.String())
}

func TestCompatible(t *testing.T) {
	required := domain.Version{Major: 0, Minor: 10}

	assert.True(t, domain.ParseVersion("0.10.3").Compatible(required))
	assert.False(t, domain.ParseVersion("0.11.0").Compatible(required))
	assert.False(t, domain.ParseVersion("1.10.0").Compatible(required))
}

func TestNewer(t *testing.T) {
	assert.True(t, domain.ParseVersion("0.9.3").Newer(domain.ParseVersion("0.9.2")))
	assert.False(t, domain.ParseVersion("0.9.2").Newer(domain.ParseVersion("0.9.2")))
	assert.True(t, domain.ParseVersion("1.0.0").Newer(domain.ParseVersion("0.99.99")))
	assert.False(t, domain.ParseVersion("0.9.2").Newer(domain.ParseVersion("0.10.0")))
}

func TestRunSpecArgv(t *testing.T) {
	spec := domain.RunSpec{
		Command:    "/usr/bin/python3",
		PrefixArgs: []string{"-m", "aider"},
	}

	argv := spec.Argv([]string{"--yes", "file.py"})
	require.Equal(t, []string{"-m", "aider", "--yes", "file.py"}, argv)

	// The spec itself must stay untouched.
	assert.Equal(t, []string{"-m", "aider"}, spec.PrefixArgs)
}
