package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))

		require.NoError(t, err)
		assert.Equal(t, startpage.DefaultConfig(), cfg)
	})

	t.Run("layers file over defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[server]
addr = ":9000"

[store]
driver = "file"
path = "/tmp/sp.json"

[search]
default = "google"

[[search.engines]]
id = "ddg"
name = "DuckDuckGo"
template = "https://duckduckgo.com/?q="
key = "g"

[clock]
locale = "pl"

[favicons]
enabled = false
`), 0o644))

		cfg, err := toml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.Equal(t, startpage.StoreFile, cfg.Store.Driver)
		assert.Equal(t, "/tmp/sp.json", cfg.Store.Path)
		assert.Equal(t, "google", cfg.Search.Default)
		assert.Equal(t, []startpage.Engine{{ID: "ddg", Name: "DuckDuckGo", Template: "https://duckduckgo.com/?q=", Key: "g"}}, cfg.Search.Engines)
		assert.Equal(t, "pl", cfg.Clock.Locale)
		assert.False(t, cfg.Favicons.Enabled)
		assert.Equal(t, 1.0, cfg.Favicons.RPS, "unset keys keep defaults")
		assert.Equal(t, 4, cfg.Favicons.Concurrency)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\naddr = "), 0o644))

		_, err := toml.LoadConfig(path)

		require.Error(t, err)
	})
}

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.DecodeConfig("")

		require.NoError(t, err)
		assert.Equal(t, startpage.DefaultConfig(), cfg)
	})

	t.Run("rejects unknown store driver", func(t *testing.T) {
		t.Parallel()

		_, err := toml.DecodeConfig("[store]\ndriver = \"redis\"\n")

		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
	})

	t.Run("rejects engine without id", func(t *testing.T) {
		t.Parallel()

		_, err := toml.DecodeConfig("[[search.engines]]\nname = \"x\"\ntemplate = \"https://x/?q=\"\n")

		assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
	})
}
