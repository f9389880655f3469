package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyIgnoreCase  = "search.ignore_case"
	KeyLineNumbers = "output.line_numbers"
	KeyColor       = "output.color"
)

// SettingsService manages persistent defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Search: domain.SearchSettings{
			IgnoreCase: s.getBool(KeyIgnoreCase, defaults.Search.IgnoreCase),
		},
		Output: domain.OutputSettings{
			LineNumbers: s.getBool(KeyLineNumbers, defaults.Output.LineNumbers),
			Color:       s.getColor(defaults.Output.Color),
		},
	}, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if !settings.Output.Color.IsValid() {
		return fmt.Errorf("%w: color %q", domain.ErrInvalidSetting, settings.Output.Color)
	}

	if err := s.configStore.Set(KeyIgnoreCase, settings.Search.IgnoreCase); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyIgnoreCase, err)
	}
	if err := s.configStore.Set(KeyLineNumbers, settings.Output.LineNumbers); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyLineNumbers, err)
	}
	if err := s.configStore.Set(KeyColor, settings.Output.Color.String()); err != nil {
		return fmt.Errorf("failed to save %s: %w", KeyColor, err)
	}
	return nil
}

// Set updates one setting from its textual form.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case KeyIgnoreCase, KeyLineNumbers:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidSetting, key, value)
		}
		return s.configStore.Set(key, b)
	case KeyColor:
		mode := domain.ColorMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("%w: %s expects auto, always or never, got %q", domain.ErrInvalidSetting, key, value)
		}
		return s.configStore.Set(key, mode.String())
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}
}

// Keys lists the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := []string{KeyIgnoreCase, KeyLineNumbers, KeyColor}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	b, ok := val.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

func (s *SettingsService) getColor(defaultVal domain.ColorMode) domain.ColorMode {
	mode := domain.ColorMode(s.configStore.GetString(KeyColor))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
