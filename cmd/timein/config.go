package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hlop3z/timein/internal/tzerr"
)

// Config represents the timein config file.
type Config struct {
	DefaultZones []string `yaml:"default_zones"`
	Format       string   `yaml:"format"`
	Round        string   `yaml:"round"`
	Hours        int      `yaml:"hours"`
	PrintLocal   *bool    `yaml:"print_local"`
	PrintInfo    *bool    `yaml:"print_info"`
	SortDiffs    *bool    `yaml:"sort_diffs"`
}

// configPath resolves the config file location: the --config flag when
// given, else $XDG_CONFIG_HOME/timein/config.yml, else
// ~/.config/timein/config.yml. Returns "" when no location can be derived.
func configPath() string {
	if configFile != "" {
		return configFile
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, DefaultConfigDir, DefaultConfigFile)
}

// loadConfig loads configuration from file and env vars.
// Precedence: CLI flags (applied by the caller) > env vars > config file >
// defaults. A missing config file is not an error.
func loadConfig() (*Config, error) {
	cfg := &Config{}

	if path := configPath(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, tzerr.Wrapf(tzerr.ErrConfigParse, err, "malformed config file %s", path).
					WithHelp("expected YAML, e.g. 'default_zones: [US/Pacific]'")
			}
			for i, zone := range cfg.DefaultZones {
				cfg.DefaultZones[i] = expandEnvVars(zone)
			}
			cfg.Format = expandEnvVars(cfg.Format)
		case errors.Is(err, fs.ErrNotExist):
			// no config file, run on defaults
		default:
			return nil, tzerr.Wrapf(tzerr.ErrConfigRead, err, "failed to read config file %s", path)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides config file values with TIMEIN_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TIMEIN_ZONES"); v != "" {
		cfg.DefaultZones = splitList(v)
	}
	if v := os.Getenv("TIMEIN_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("TIMEIN_ROUND"); v != "" {
		cfg.Round = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string.
func expandEnvVars(s string) string {
	return os.Expand(s, os.Getenv)
}

// splitList splits a comma-separated value into trimmed non-empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
