package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

func TestSettings_ShowDefaults(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := executeCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Current Settings")
	assert.Contains(t, stdout, "Ignore case: no")
	assert.Contains(t, stdout, "Line numbers: no")
	assert.Contains(t, stdout, "Color: "+domain.ColorAuto.Description())
	assert.Contains(t, stdout, "Keys: output.color, output.line_numbers, search.ignore_case")
	assert.Contains(t, stdout, "File: :memory:")
}

func TestSettings_ShowSubcommand(t *testing.T) {
	setupTestServices(t)

	direct, _, err := executeCommand(t, "settings")
	require.NoError(t, err)

	show, _, err := executeCommand(t, "settings", "show")
	require.NoError(t, err)

	assert.Equal(t, direct, show)
}

func TestSettings_Set(t *testing.T) {
	env := setupTestServices(t)

	stdout, _, err := executeCommand(t, "settings", "set", "search.ignore_case", "true")
	require.NoError(t, err)
	assert.Equal(t, "search.ignore_case = true\n", stdout)

	stdout, _, err = executeCommand(t, "settings", "set", "output.color", "never")
	require.NoError(t, err)
	assert.Equal(t, "output.color = never\n", stdout)

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.True(t, settings.Search.IgnoreCase)
	assert.Equal(t, domain.ColorNever, settings.Output.Color)

	shown, _, err := executeCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, shown, "Ignore case: yes")
}

func TestSettings_SetInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"settings", "set", "search.regex", "true"}},
		{"bad bool", []string{"settings", "set", "output.line_numbers", "maybe"}},
		{"bad colour", []string{"settings", "set", "output.color", "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)

			_, stderr, err := executeCommand(t, tt.args...)

			require.ErrorIs(t, err, domain.ErrInvalidSetting)
			assert.Contains(t, stderr, "Application error:")
		})
	}
}

func TestSettings_SetRequiresTwoArgs(t *testing.T) {
	setupTestServices(t)

	_, _, err := executeCommand(t, "settings", "set", "output.color")

	assert.Error(t, err)
}

func TestSettings_ServiceNotConfigured(t *testing.T) {
	setupTestServices(t)
	SetServices(Services{})

	_, _, err := executeCommand(t, "settings", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")

	_, _, err = executeCommand(t, "settings", "set", "output.color", "never")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
