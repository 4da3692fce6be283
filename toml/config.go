// Package toml loads the start page configuration file.
package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/startpage"
)

// DefaultPath returns the configuration file location,
// $XDG_CONFIG_HOME/startpage/config.toml or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "startpage", "config.toml"), nil
}

// LoadConfig reads the file at path and layers it over
// startpage.DefaultConfig. A missing file yields the defaults.
func LoadConfig(path string) (*startpage.Config, error) {
	cfg := startpage.DefaultConfig()

	user, md, err := decodeFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	result := merge(cfg, user, md)
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeConfig parses TOML from data and layers it over the defaults.
func DecodeConfig(data string) (*startpage.Config, error) {
	var user startpage.Config
	md, err := toml.Decode(data, &user)
	if err != nil {
		return nil, startpage.Errorf(startpage.EINVALID, "parsing config TOML: %v", err)
	}
	result := merge(startpage.DefaultConfig(), &user, md)
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func decodeFile(path string) (*startpage.Config, toml.MetaData, error) {
	var cfg startpage.Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, md, err
		}
		return nil, md, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, md, nil
}

// merge layers user config on top of defaults. Keys the file sets replace
// the default, including explicit false and zero values.
func merge(defaults, user *startpage.Config, md toml.MetaData) *startpage.Config {
	result := *defaults

	if md.IsDefined("server", "addr") {
		result.Server.Addr = user.Server.Addr
	}

	if md.IsDefined("store", "driver") {
		result.Store.Driver = user.Store.Driver
	}
	if md.IsDefined("store", "path") {
		result.Store.Path = user.Store.Path
	}

	if md.IsDefined("search", "default") {
		result.Search.Default = user.Search.Default
	}
	if md.IsDefined("search", "engines") {
		result.Search.Engines = user.Search.Engines
	}

	if md.IsDefined("clock", "locale") {
		result.Clock.Locale = user.Clock.Locale
	}

	if md.IsDefined("favicons", "enabled") {
		result.Favicons.Enabled = user.Favicons.Enabled
	}
	if md.IsDefined("favicons", "rps") {
		result.Favicons.RPS = user.Favicons.RPS
	}
	if md.IsDefined("favicons", "concurrency") {
		result.Favicons.Concurrency = user.Favicons.Concurrency
	}

	return &result
}
