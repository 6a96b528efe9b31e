// Package config holds the eratos CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all eratos configuration.
type Config struct {
	// Sieve settings
	Sieve SieveConfig `yaml:"sieve"`

	// Output rendering
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SieveConfig bounds what the CLI will ask of the sieve. The library itself
// is uncapped; the cap protects interactive use from accidental huge bounds.
type SieveConfig struct {
	MaxBound int `yaml:"max_bound"`
	Workers  int `yaml:"workers"` // parallel sieve workers, 0 = GOMAXPROCS
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Format  string `yaml:"format"`  // text, json
	Columns int    `yaml:"columns"` // primes per text line
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Sieve: SieveConfig{
			MaxBound: 100000000,
			Workers:  0,
		},
		Output: OutputConfig{
			Format:  "text",
			Columns: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a config file, applies defaults for missing fields, then
// applies environment overrides. A missing file is not an error: defaults
// plus environment win.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate rejects configurations the CLI cannot run with.
func (c *Config) Validate() error {
	if c.Sieve.MaxBound < 2 {
		return fmt.Errorf("sieve.max_bound must be at least 2, got %d", c.Sieve.MaxBound)
	}
	if c.Sieve.Workers < 0 {
		return fmt.Errorf("sieve.workers must be non-negative, got %d", c.Sieve.Workers)
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	if c.Output.Columns < 1 {
		return fmt.Errorf("output.columns must be positive, got %d", c.Output.Columns)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ERATOS_MAX_BOUND"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Sieve.MaxBound = n
		}
	}
	if v := os.Getenv("ERATOS_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Sieve.Workers = n
		}
	}
	if v := os.Getenv("ERATOS_FORMAT"); v != "" {
		c.Output.Format = v
	}
}
