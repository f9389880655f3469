package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMode_IsValid(t *testing.T) {
	tests := []struct {
		mode     ColorMode
		expected bool
	}{
		{ColorAuto, true},
		{ColorAlways, true},
		{ColorNever, true},
		{ColorMode("sometimes"), false},
		{ColorMode(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.IsValid())
		})
	}
}

func TestColorMode_Description(t *testing.T) {
	assert.Equal(t, "Auto (terminal only)", ColorAuto.Description())
	assert.Equal(t, "Always", ColorAlways.Description())
	assert.Equal(t, "Never", ColorNever.Description())
	assert.Equal(t, "Unknown", ColorMode("x").Description())
	assert.Equal(t, "always", ColorAlways.String())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.False(t, settings.Search.IgnoreCase)
	assert.False(t, settings.Output.LineNumbers)
	assert.Equal(t, ColorAuto, settings.Output.Color)
}

func TestChangeType_String(t *testing.T) {
	assert.Equal(t, "updated", ChangeUpdated.String())
	assert.Equal(t, "deleted", ChangeDeleted.String())
	assert.Equal(t, "unknown", ChangeType(9).String())
}
