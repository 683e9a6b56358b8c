package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("WIDGETDEMO_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "02/01/2006", cfg.UI.DateFormat)
	require.Equal(t, "Local", cfg.UI.Timezone)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, 10, cfg.Progress.Step)
	require.Equal(t, 500*time.Millisecond, cfg.Progress.Delay)
	require.False(t, cfg.Journal.Enabled)
	require.Equal(t, filepath.Join(home, ".local", "share", "widgetdemo", "journal.db"), cfg.Journal.Path)
	require.Empty(t, cfg.Log.Path)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(home, "custom.toml")
	data := `
[ui]
date_format = "2006-01-02"
timezone = "UTC"

[progress]
step = 25
delay = "250ms"

[journal]
enabled = true
path = "/tmp/journal.db"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("WIDGETDEMO_PROGRESS_STEP", "20")
	t.Setenv("WIDGETDEMO_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	require.Equal(t, 20, cfg.Progress.Step)
	require.Equal(t, 250*time.Millisecond, cfg.Progress.Delay)
	require.True(t, cfg.Journal.Enabled)
	require.Equal(t, "/tmp/journal.db", cfg.Journal.Path)

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadDefaultDirectory(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".config", "widgetdemo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[progress]\nstep = 5\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Progress.Step)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	home := isolate(t)

	_, err := Load(filepath.Join(home, "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)

	cases := map[string]func(*Config){
		"zero step":     func(c *Config) { c.Progress.Step = 0 },
		"step over 100": func(c *Config) { c.Progress.Step = 101 },
		"zero delay":    func(c *Config) { c.Progress.Delay = 0 },
		"empty format":  func(c *Config) { c.UI.DateFormat = " " },
		"bad timezone":  func(c *Config) { c.UI.Timezone = "Mars/Olympus" },
		"bad level":     func(c *Config) { c.Log.Level = "loud" },
		"journal path":  func(c *Config) { c.Journal.Enabled = true; c.Journal.Path = "" },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		require.Error(t, cfg.Validate(), name)
	}
}
