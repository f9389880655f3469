package driving

import "github.com/custodia-labs/minigrep/internal/core/domain"

// SettingsService manages persistent defaults.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.AppSettings, error)

	// Save persists settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting from its textual form.
	// Returns domain.ErrInvalidSetting for unknown keys or bad values.
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
