// Package config loads the optional rustvet YAML configuration.
//
// Rule enablement is deliberately NOT a concern of the analysis core: config
// only decides which rules make it into the catalog and how output looks.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rustvet/rustvet/internal/rules"
)

// DefaultPath is where the CLI looks when no --config is given.
const DefaultPath = ".rustvet.yaml"

// Config mirrors the YAML file.
type Config struct {
	// Disable lists rule ids excluded from the catalog, e.g. ["S1", "S2"].
	Disable []string `yaml:"disable"`

	// Jobs bounds concurrent file analyses. 0 lets the runner decide.
	Jobs int `yaml:"jobs"`

	// Format selects the report rendering: "text" (default) or "json".
	Format string `yaml:"format"`
}

// Load reads and validates a config file. A missing file at the default
// path is not an error, it just means defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return &c, nil
}

func (c *Config) validate() error {
	for _, id := range c.Disable {
		if _, err := rules.ParseCode(id); err != nil {
			return fmt.Errorf("disable list: %w", err)
		}
	}
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	return nil
}

// Catalog builds the rule catalog this config asks for.
func (c *Config) Catalog() (*rules.Catalog, error) {
	cat, err := rules.DefaultCatalog(c.Disable...)
	if err != nil {
		return nil, fmt.Errorf("apply config: %w", err)
	}

	return cat, nil
}
