package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Values come from the optional YAML
// config file, overridden by environment variables.
type Config struct {
	DBPath          string `yaml:"db_path"`
	DisplayTimeZone string `yaml:"display_timezone"`
	Color           bool   `yaml:"color"`
	LogUseCases     bool   `yaml:"log_use_cases"`
}

// DefaultConfig returns a Config with sensible defaults. The database
// lands under ~/.facilops unless overridden.
func DefaultConfig() Config {
	return Config{
		DisplayTimeZone: "Asia/Jakarta",
		Color:           true,
	}
}

// Load reads configuration from the given YAML file (missing files are
// fine), then applies FACILOPS_* environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if v := os.Getenv("FACILOPS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("FACILOPS_TZ"); v != "" {
		cfg.DisplayTimeZone = v
	}
	if v := os.Getenv("FACILOPS_COLOR"); v != "" {
		cfg.Color, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FACILOPS_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".facilops", "facilops.db")
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location, or "" when
// the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".facilops", "config.yaml")
}

// Location loads the display timezone, falling back to UTC when the
// configured zone is unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
