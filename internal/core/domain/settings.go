package domain

// ColorMode controls when matched text is highlighted.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto highlights only when writing to a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways highlights unconditionally.
	ColorAlways ColorMode = "always"

	// ColorNever disables highlighting.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ColorMode) Description() string {
	switch m {
	case ColorAuto:
		return "Auto (terminal only)"
	case ColorAlways:
		return "Always"
	case ColorNever:
		return "Never"
	default:
		return "Unknown"
	}
}

// SearchSettings holds search behaviour defaults.
type SearchSettings struct {
	// IgnoreCase makes case-insensitive search the default when neither
	// the flag nor the environment variable is given.
	IgnoreCase bool
}

// OutputSettings holds printer defaults.
type OutputSettings struct {
	// LineNumbers prefixes each printed line with its line number.
	LineNumbers bool

	// Color controls match highlighting.
	Color ColorMode
}

// AppSettings aggregates all persistent settings.
type AppSettings struct {
	Search SearchSettings
	Output OutputSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			IgnoreCase: false,
		},
		Output: OutputSettings{
			LineNumbers: false,
			Color:       ColorAuto,
		},
	}
}
