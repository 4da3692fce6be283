package startpage

// Store drivers.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

// Config holds the start page configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Store    StoreConfig    `toml:"store"`
	Search   SearchConfig   `toml:"search"`
	Clock    ClockConfig    `toml:"clock"`
	Favicons FaviconsConfig `toml:"favicons"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects the persisted store.
type StoreConfig struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path"`
}

// SearchConfig configures the search dispatcher. Engines with a known id
// replace the built-in definition; others are appended.
type SearchConfig struct {
	Default string   `toml:"default"`
	Engines []Engine `toml:"engines"`
}

// ClockConfig configures the clock.
type ClockConfig struct {
	Locale string `toml:"locale"`
}

// FaviconsConfig configures favicon discovery.
type FaviconsConfig struct {
	Enabled     bool    `toml:"enabled"`
	RPS         float64 `toml:"rps"`
	Concurrency int     `toml:"concurrency"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: "127.0.0.1:8642"},
		Store:  StoreConfig{Driver: StoreSQLite},
		Search: SearchConfig{Default: DefaultEngineID},
		Clock:  ClockConfig{Locale: LocaleEN.Name},
		Favicons: FaviconsConfig{
			Enabled:     true,
			RPS:         1.0,
			Concurrency: 4,
		},
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreSQLite, StoreFile:
	default:
		return Errorf(EINVALID, "unknown store driver %q", c.Store.Driver)
	}
	for i := range c.Search.Engines {
		if err := c.Search.Engines[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
