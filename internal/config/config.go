// Package config loads schedfilter settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all schedfilter settings.
type Config struct {
	Output OutputConfig `toml:"output"`
	Filter FilterConfig `toml:"filter"`
}

// OutputConfig sets defaults for the global output flags.
type OutputConfig struct {
	JSON    bool `toml:"json"`
	Quiet   bool `toml:"quiet"`
	NoColor bool `toml:"no_color"`
}

// FilterConfig sets evaluation defaults.
type FilterConfig struct {
	// Operator applies when is_due runs without an explicit one.
	Operator string `toml:"operator"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Filter: FilterConfig{Operator: "=="},
	}
}

// DefaultPath returns the config file location: $SCHEDFILTER_CONFIG if
// set, otherwise ~/.config/schedfilter/config.toml.
func DefaultPath() string {
	if env := os.Getenv("SCHEDFILTER_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "schedfilter", "config.toml")
}

// Load reads the config file at path. A missing file is not an error;
// built-in defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Filter.Operator == "" {
		cfg.Filter.Operator = "=="
	}
	return cfg, nil
}
