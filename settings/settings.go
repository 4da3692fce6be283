// Package settings persists the display and search preferences.
package settings

import (
	"context"
	"sync"

	"github.com/fwojciec/startpage"
)

var _ startpage.SettingsService = (*Service)(nil)

// Service implements startpage.SettingsService over a startpage.Store.
// Theme and time format are read from the store on every call; the selected
// engine is held in memory after Load.
type Service struct {
	store         startpage.Store
	defaultEngine string

	mu       sync.Mutex
	selected string
}

// NewService creates a Service. defaultEngine is used until Load finds a
// stored selection; empty means startpage.DefaultEngineID.
func NewService(store startpage.Store, defaultEngine string) *Service {
	if defaultEngine == "" {
		defaultEngine = startpage.DefaultEngineID
	}
	return &Service{
		store:         store,
		defaultEngine: defaultEngine,
		selected:      defaultEngine,
	}
}

// Load restores the selected engine from the store without writing it back.
func (s *Service) Load(ctx context.Context) error {
	id, ok, err := s.store.Get(ctx, startpage.KeySelectedEngine)
	if err != nil {
		return err
	}
	if !ok || id == "" {
		id = s.defaultEngine
	}
	return s.SelectEngine(ctx, id, false)
}

// Settings returns the current preferences. Unknown stored theme or time
// format values read as unset.
func (s *Service) Settings(ctx context.Context) (startpage.Settings, error) {
	theme, _, err := s.store.Get(ctx, startpage.KeyTheme)
	if err != nil {
		return startpage.Settings{}, err
	}
	format, _, err := s.store.Get(ctx, startpage.KeyTimeFormat)
	if err != nil {
		return startpage.Settings{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return startpage.Settings{
		Theme:          knownTheme(theme),
		TimeFormat:     knownTimeFormat(format),
		SelectedEngine: s.selected,
	}, nil
}

func knownTheme(v string) startpage.Theme {
	switch t := startpage.Theme(v); t {
	case startpage.ThemeDark, startpage.ThemeLight:
		return t
	}
	return startpage.ThemeUnset
}

func knownTimeFormat(v string) startpage.TimeFormat {
	switch f := startpage.TimeFormat(v); f {
	case startpage.TimeFormat12, startpage.TimeFormat24:
		return f
	}
	return startpage.TimeFormatUnset
}

// SaveDisplay stores theme and time format. Empty values remove the key so
// the computed default applies again.
func (s *Service) SaveDisplay(ctx context.Context, theme startpage.Theme, format startpage.TimeFormat) error {
	candidate := startpage.Settings{Theme: theme, TimeFormat: format}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if err := s.setOrRemove(ctx, startpage.KeyTheme, string(theme)); err != nil {
		return err
	}
	return s.setOrRemove(ctx, startpage.KeyTimeFormat, string(format))
}

// SelectEngine makes id the selected engine, persisting it when asked.
func (s *Service) SelectEngine(ctx context.Context, id string, persist bool) error {
	if id == "" {
		return startpage.Errorf(startpage.EINVALID, "engine id required")
	}
	if persist {
		if err := s.store.Set(ctx, startpage.KeySelectedEngine, id); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	return nil
}

// SelectedEngine returns the selected engine id.
func (s *Service) SelectedEngine() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Service) setOrRemove(ctx context.Context, key, value string) error {
	if value == "" {
		return s.store.Remove(ctx, key)
	}
	return s.store.Set(ctx, key, value)
}
