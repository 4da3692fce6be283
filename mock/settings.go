package mock

import (
	"context"

	"github.com/fwojciec/startpage"
)

var _ startpage.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of startpage.SettingsService.
type SettingsService struct {
	SettingsFn     func(ctx context.Context) (startpage.Settings, error)
	SaveDisplayFn  func(ctx context.Context, theme startpage.Theme, format startpage.TimeFormat) error
	SelectEngineFn func(ctx context.Context, id string, persist bool) error
}

func (s *SettingsService) Settings(ctx context.Context) (startpage.Settings, error) {
	return s.SettingsFn(ctx)
}

func (s *SettingsService) SaveDisplay(ctx context.Context, theme startpage.Theme, format startpage.TimeFormat) error {
	return s.SaveDisplayFn(ctx, theme, format)
}

func (s *SettingsService) SelectEngine(ctx context.Context, id string, persist bool) error {
	return s.SelectEngineFn(ctx, id, persist)
}
