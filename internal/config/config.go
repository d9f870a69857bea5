// Package config loads cutsheet settings: built-in defaults, then an optional
// TOML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all runtime settings.
type Config struct {
	DBPath       string `toml:"db_path"`
	LogUseCases  bool   `toml:"log_use_cases"`
	TicketPrefix string `toml:"ticket_prefix"`
	NumberLength int    `toml:"number_length"`
}

// DefaultConfig returns the settings used when nothing is configured.
// Paths are rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:       filepath.Join(home, ".cutsheet", "cutsheet.db"),
		LogUseCases:  false,
		TicketPrefix: "T-",
		NumberLength: 6,
	}
}

// DefaultPath is the config file location when CUTSHEET_CONFIG is unset.
func DefaultPath(home string) string {
	return filepath.Join(home, ".cutsheet", "config.toml")
}

// Load resolves the configuration for the current user.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	path := os.Getenv("CUTSHEET_CONFIG")
	if path == "" {
		path = DefaultPath(home)
	}
	cfg, err := LoadFile(path, DefaultConfig(home))
	if err != nil {
		return Config{}, err
	}
	return ApplyEnv(cfg, os.Getenv), nil
}

// LoadFile decodes the TOML file at path over base. A missing file is not an
// error and returns base unchanged.
func LoadFile(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("reading config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.NumberLength < 4 {
		return Config{}, fmt.Errorf("reading config %s: number_length must be at least 4", path)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any CUTSHEET_* variables returned by getenv.
// Unparseable values are ignored.
func ApplyEnv(cfg Config, getenv func(string) string) Config {
	if v := getenv("CUTSHEET_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("CUTSHEET_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := getenv("CUTSHEET_TICKET_PREFIX"); v != "" {
		cfg.TicketPrefix = v
	}
	return cfg
}
