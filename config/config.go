// Package config loads application configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration. Everything is optional; the
// zero value plays the built-in world in the TUI.
type Config struct {
	Plain    bool   `yaml:"plain"`     // force line-mode output
	WorldDir string `yaml:"world_dir"` // directory of .lua world files
}

// Load reads ~/.hoard/config.yaml if present, then applies HOARD_*
// environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("HOARD_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".hoard", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if v := os.Getenv("HOARD_PLAIN"); v != "" {
		cfg.Plain = v == "1" || v == "true"
	}
	if v := os.Getenv("HOARD_WORLD"); v != "" {
		cfg.WorldDir = v
	}

	return cfg, nil
}
