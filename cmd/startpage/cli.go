package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/clock"
	"github.com/fwojciec/startpage/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Config     *startpage.Config
	Bookmarks  startpage.BookmarkService
	Settings   SettingsService
	Dispatcher *search.Dispatcher
	Clock      *clock.Clock
	Navigator  startpage.Navigator
	Clipboard  startpage.Clipboard
}

// SettingsService extends startpage.SettingsService with the in-memory
// engine selection.
type SettingsService interface {
	startpage.SettingsService
	SelectedEngine() string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"STARTPAGE_CONFIG" help:"Config file (default ~/.config/startpage/config.toml)"`
	DB      string `name:"db" type:"path" env:"STARTPAGE_DB" help:"Store path, overrides the config file"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Serve    ServeCmd    `cmd:"" help:"Serve the start page"`
	List     ListCmd     `cmd:"" help:"List bookmarks"`
	Add      AddCmd      `cmd:"" help:"Add a bookmark"`
	Edit     EditCmd     `cmd:"" help:"Edit a bookmark"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a bookmark"`
	Import   ImportCmd   `cmd:"" help:"Replace bookmarks from a JSON, Netscape HTML or XBEL file"`
	Export   ExportCmd   `cmd:"" help:"Export bookmarks"`
	Search   SearchCmd   `cmd:"" help:"Search the web with the selected engine"`
	Settings SettingsCmd `cmd:"" help:"Show or change display settings"`
	Clock    ClockCmd    `cmd:"" help:"Show the current date and time"`
	Engines  EnginesCmd  `cmd:"" help:"List search engines"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string `env:"STARTPAGE_ADDR" help:"Listen address, overrides the config file"`
	NoFavicons bool   `help:"Disable favicon discovery"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Title string `arg:"" help:"Bookmark title"`
	URL   string `arg:"" help:"Bookmark URL"`
	Chord string `short:"c" help:"Keyboard chord, e.g. \"G H\""`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	Index int    `arg:"" help:"Bookmark index as shown by list"`
	Title string `short:"t" help:"New title"`
	URL   string `short:"u" name:"url" help:"New URL"`
	Chord string `short:"c" help:"New chord"`
	Clear bool   `name:"clear-chord" help:"Remove the chord"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Index int  `arg:"" help:"Bookmark index as shown by list"`
	Force bool `help:"Confirm deletion"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File   string `arg:"" type:"existingfile" help:"File to import"`
	Format string `short:"f" help:"File format: json, netscape or xbel (default from extension)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `short:"o" type:"path" help:"Output file (default stdout)"`
	Format string `short:"f" help:"File format: json, netscape or xbel (default from output extension)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  []string `arg:"" help:"Search terms"`
	Engine string   `short:"e" help:"Engine id (default selected engine)"`
	Print  bool     `short:"p" help:"Print the URL without opening it"`
}

// SettingsCmd is the "settings" subcommand.
type SettingsCmd struct {
	Theme      string `help:"Theme: dark, light or system"`
	TimeFormat string `name:"time-format" help:"Time format: 12, 24 or locale"`
	Engine     string `short:"e" help:"Select and persist a search engine"`
}

// ClockCmd is the "clock" subcommand.
type ClockCmd struct {
	Copy bool `short:"c" help:"Copy the timestamp to the clipboard"`
}

// EnginesCmd is the "engines" subcommand.
type EnginesCmd struct{}
