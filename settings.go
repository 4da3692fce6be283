package startpage

import "context"

// Theme is the stored colour scheme preference. The zero value means
// "follow the operating environment".
type Theme string

// Theme values.
const (
	ThemeUnset Theme = ""
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// TimeFormat is the stored clock format preference. The zero value means
// "locale default".
type TimeFormat string

// TimeFormat values.
const (
	TimeFormatUnset TimeFormat = ""
	TimeFormat12    TimeFormat = "12"
	TimeFormat24    TimeFormat = "24"
)

// Settings holds the persisted display and search preferences.
type Settings struct {
	Theme          Theme      `json:"theme"`
	TimeFormat     TimeFormat `json:"timeFormat"`
	SelectedEngine string     `json:"selectedEngine"`
}

// Validate returns an error if the settings contain unknown values.
func (s *Settings) Validate() error {
	switch s.Theme {
	case ThemeUnset, ThemeDark, ThemeLight:
	default:
		return Errorf(EINVALID, "unknown theme %q", s.Theme)
	}
	switch s.TimeFormat {
	case TimeFormatUnset, TimeFormat12, TimeFormat24:
	default:
		return Errorf(EINVALID, "unknown time format %q", s.TimeFormat)
	}
	return nil
}

// ResolveTheme returns the theme to apply: the stored preference if set,
// otherwise dark when the environment prefers dark, otherwise light.
func ResolveTheme(pref Theme, prefersDark bool) Theme {
	if pref != ThemeUnset {
		return pref
	}
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// SettingsService represents a service for reading and writing preferences.
type SettingsService interface {
	// Settings returns the stored preferences with defaults applied to
	// SelectedEngine.
	Settings(ctx context.Context) (Settings, error)

	// SaveDisplay stores theme and time format. Empty values remove the key.
	SaveDisplay(ctx context.Context, theme Theme, format TimeFormat) error

	// SelectEngine records id as the selected engine. When persist is false
	// only the in-memory selection changes.
	SelectEngine(ctx context.Context, id string, persist bool) error
}
