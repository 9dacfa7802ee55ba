// Package config loads pickforme settings from flags, environment and an
// optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (PICKFORME_DELAY, ...).
const EnvPrefix = "PICKFORME"

// Defaults
const (
	DefaultDelay     = 2 * time.Second
	DefaultSearchURL = "https://duckduckgo.com/?q=%s"
)

// Config holds application configuration.
type Config struct {
	// Delay is how long the picker "thinks" before revealing a pick.
	Delay time.Duration `mapstructure:"delay"`
	// Seed makes picks reproducible. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
	// LogFile receives structured logs. Empty disables logging.
	LogFile string `mapstructure:"log_file"`
	// SearchURL is a format string with one %s for the picked option.
	SearchURL string `mapstructure:"search_url"`
	// Options are pre-loaded as cards on start.
	Options []string `mapstructure:"options"`
}

// Load reads configuration. Flags in fs (if non-nil) override env vars,
// which override the config file, which overrides defaults.
// A missing config file is not an error.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("delay", DefaultDelay)
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")
	v.SetDefault("search_url", DefaultSearchURL)
	v.SetDefault("options", []string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv(EnvPrefix + "_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(defaultConfigDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if fs != nil {
		for key, flag := range map[string]string{
			"delay":      "delay",
			"seed":       "seed",
			"log_file":   "log-file",
			"search_url": "search-url",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Only a missing default file is tolerated; an explicit path must exist
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if strings.Count(c.SearchURL, "%s") != 1 {
		return fmt.Errorf("search_url must contain exactly one %%s, got %q", c.SearchURL)
	}
	return nil
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(defaultConfigDir(), "config.toml")
}

func defaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "pickforme")
}
