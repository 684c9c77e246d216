package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/idilsaglam/reminders/internal/apperr"
)

// Store drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	Theme string      `yaml:"theme" mapstructure:"theme"`
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

type StoreConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
	Path   string `yaml:"path" mapstructure:"path"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

// Dir is the per-user directory for data, logs and the config file.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reminders")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "reminders")
}

func DefaultConfig() *Config {
	return &Config{
		Theme: "classic",
		Store: StoreConfig{
			Driver: DriverJSON,
			Path:   DefaultStorePath(DriverJSON),
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(Dir(), "reminders.log"),
		},
	}
}

// DefaultStorePath is where a driver keeps its data when no path is
// configured. The memory driver has none.
func DefaultStorePath(driver string) string {
	switch driver {
	case DriverJSON:
		return filepath.Join(Dir(), "reminders.json")
	case DriverSQLite:
		return filepath.Join(Dir(), "reminders.db")
	}
	return ""
}

// Load reads config.yaml from an explicit path, or searches ., the XDG dir and
// ~/.config/reminders. REMINDERS_* environment variables override file values.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("store.driver", cfg.Store.Driver)
	v.SetDefault("store.path", "")
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix("REMINDERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Theme = strings.ToLower(cfg.Theme)
	cfg.Store.Driver = strings.ToLower(cfg.Store.Driver)
	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath(cfg.Store.Driver)
	}
	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Log.File = expandHome(cfg.Log.File)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Theme, validation.Required, validation.In("classic", "neon", "mono")),
	)
	if err == nil {
		err = c.Store.Validate()
	}
	if err == nil {
		err = c.Log.Validate()
	}
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidConfig, err)
	}
	return nil
}

func (c *StoreConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverJSON, DriverSQLite, DriverMemory)),
		validation.Field(&c.Path, validation.When(c.Driver != DriverMemory, validation.Required)),
	)
}

func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
	)
}

// SlogLevel maps the configured level name onto slog.
func (c LogConfig) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
