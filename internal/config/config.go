package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig       `mapstructure:"ui"`
	Progress ProgressConfig `mapstructure:"progress"`
	Journal  JournalConfig  `mapstructure:"journal"`
	Log      LogConfig      `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string `mapstructure:"timezone"`
	AltScreen  bool   `mapstructure:"alt_screen"`
}

// ProgressConfig tunes the simulated progress task.
type ProgressConfig struct {
	Step  int           `mapstructure:"step"`
	Delay time.Duration `mapstructure:"delay"`
}

// JournalConfig controls the interaction journal.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig controls the log file. An empty path discards logs.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// WIDGETDEMO_. An explicit path must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("progress.step", 10)
	v.SetDefault("progress.delay", "500ms")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "widgetdemo", "journal.db"))
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("WIDGETDEMO_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "widgetdemo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WIDGETDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects values the application cannot run with.
func (c Config) Validate() error {
	if c.Progress.Step <= 0 || c.Progress.Step > 100 {
		return fmt.Errorf("progress.step must be in 1..100, got %d", c.Progress.Step)
	}
	if c.Progress.Delay <= 0 {
		return fmt.Errorf("progress.delay must be positive, got %s", c.Progress.Delay)
	}
	if strings.TrimSpace(c.UI.DateFormat) == "" {
		return errors.New("ui.date_format must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return errors.New("journal.path is required when the journal is enabled")
	}
	return nil
}

// Location resolves ui.timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("ui.timezone: %w", err)
	}
	return loc, nil
}

// LogLevel parses log.level.
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
