package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/clipboard"
	"github.com/fwojciec/startpage/clock"
	"github.com/fwojciec/startpage/exec"
	"github.com/fwojciec/startpage/fs"
	"github.com/fwojciec/startpage/registry"
	"github.com/fwojciec/startpage/search"
	"github.com/fwojciec/startpage/settings"
	spslog "github.com/fwojciec/startpage/slog"
	"github.com/fwojciec/startpage/sqlite"
	"github.com/fwojciec/startpage/toml"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration loaded from disk. Set before calling Run() to skip
	// reading the config file.
	Config *startpage.Config

	// SQLite database used when the store driver is sqlite.
	DB *sqlite.DB

	// Store holding bookmarks and preferences. Set before calling Run() to
	// skip opening the configured store.
	Store startpage.Store

	// Navigator and Clipboard default to the system implementations.
	Navigator startpage.Navigator
	Clipboard startpage.Clipboard
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("startpage"),
		kong.Description("A keyboard-driven browser start page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'startpage --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if m.Config == nil {
		m.Config, err = loadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set STARTPAGE_CONFIG to use a different config file\n")
			return err
		}
	}
	if cli.DB != "" {
		m.Config.Store.Path = cli.DB
	}
	deps.Config = m.Config

	if m.Store == nil {
		if err := m.openStore(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set STARTPAGE_DB to use a different store path\n")
			return err
		}
		defer m.Close()
	}
	if m.Navigator == nil {
		m.Navigator = exec.NewNavigator()
	}
	if m.Clipboard == nil {
		m.Clipboard = clipboard.New()
	}

	store := spslog.NewLoggingStore(m.Store, deps.Logger)

	reg := registry.NewRegistry(store, deps.Logger)
	reg.Load(ctx)

	settingsService := settings.NewService(store, m.Config.Search.Default)
	if err := settingsService.Load(ctx); err != nil {
		return err
	}

	deps.Bookmarks = spslog.NewLoggingBookmarkService(reg, deps.Logger)
	deps.Settings = settingsService
	deps.Dispatcher = search.NewDefaultDispatcher(m.Config.Search.Engines...)
	deps.Clock = clock.New(startpage.LookupLocale(m.Config.Clock.Locale), func() startpage.TimeFormat {
		s, err := settingsService.Settings(ctx)
		if err != nil {
			return startpage.TimeFormatUnset
		}
		return s.TimeFormat
	})
	deps.Navigator = spslog.NewLoggingNavigator(m.Navigator, deps.Logger)
	deps.Clipboard = m.Clipboard

	return kongCtx.Run(deps)
}

// openStore opens the store selected by the configuration.
func (m *Main) openStore() error {
	path := m.Config.Store.Path
	if path == "" {
		path = defaultStorePath(m.Config.Store.Driver)
	}

	switch m.Config.Store.Driver {
	case startpage.StoreFile:
		m.Store = fs.NewStore(path)
	default:
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		m.Store = sqlite.NewStore(m.DB)
	}
	return nil
}

func loadConfig(path string) (*startpage.Config, error) {
	if path == "" {
		p, err := toml.DefaultPath()
		if err != nil {
			return startpage.DefaultConfig(), nil
		}
		path = p
	}
	cfg, err := toml.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultStorePath(driver string) string {
	name := "startpage.db"
	if driver == startpage.StoreFile {
		name = "startpage.json"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	dir := filepath.Join(home, ".startpage")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, name)
}
