package main

import (
	"fmt"

	"github.com/fwojciec/startpage"
)

// Run executes the settings command. Without flags it prints the stored
// preferences.
func (c *SettingsCmd) Run(deps *Dependencies) error {
	s, err := deps.Settings.Settings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
		return err
	}

	if c.Theme != "" || c.TimeFormat != "" {
		theme, format := s.Theme, s.TimeFormat
		if c.Theme != "" {
			theme = themeFlag(c.Theme)
		}
		if c.TimeFormat != "" {
			format = timeFormatFlag(c.TimeFormat)
		}
		if err := deps.Settings.SaveDisplay(deps.Ctx, theme, format); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
			return err
		}
		s.Theme, s.TimeFormat = theme, format
	}

	if c.Engine != "" {
		if _, ok := deps.Dispatcher.Engine(c.Engine); !ok {
			err := startpage.Errorf(startpage.ENOTFOUND, "unknown engine %q", c.Engine)
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'startpage engines' to see available engines.\n", startpage.ErrorMessage(err))
			return err
		}
		if err := deps.Settings.SelectEngine(deps.Ctx, c.Engine, true); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", startpage.ErrorMessage(err))
			return err
		}
		s.SelectedEngine = c.Engine
	}

	fmt.Fprintf(deps.Stdout, "theme        %s\n", orDefault(string(s.Theme), "system"))
	fmt.Fprintf(deps.Stdout, "time format  %s\n", orDefault(string(s.TimeFormat), "locale"))
	fmt.Fprintf(deps.Stdout, "engine       %s\n", s.SelectedEngine)
	return nil
}

// themeFlag maps the "system" flag value to the unset theme. Other values
// are checked by SaveDisplay.
func themeFlag(v string) startpage.Theme {
	if v == "system" {
		return startpage.ThemeUnset
	}
	return startpage.Theme(v)
}

// timeFormatFlag maps the "locale" flag value to the unset format.
func timeFormatFlag(v string) startpage.TimeFormat {
	if v == "locale" {
		return startpage.TimeFormatUnset
	}
	return startpage.TimeFormat(v)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
