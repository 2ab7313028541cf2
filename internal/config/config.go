// Package config loads run settings for the polytri CLI from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the CLI reads from a file.
type Config struct {
	// N is the default vertex count when a command is given none.
	N int `yaml:"n"`
	// IncludeCache toggles the symmetry cache.
	IncludeCache bool `yaml:"include_cache"`
	// CacheCapacity bounds cached shapes per reference triangle, 0 = unbounded.
	CacheCapacity int `yaml:"cache_capacity"`

	Bench   BenchConfig   `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
}

// BenchConfig configures the bench command.
type BenchConfig struct {
	Samples int `yaml:"samples"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns the defaults used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		N:             7,
		IncludeCache:  true,
		CacheCapacity: 0,
		Bench:         BenchConfig{Samples: 1},
		Logging:       LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.N < 3 {
		return fmt.Errorf("config: n must be at least 3, got %d", c.N)
	}
	if c.CacheCapacity < 0 {
		return fmt.Errorf("config: cache_capacity must be non-negative, got %d", c.CacheCapacity)
	}
	if c.Bench.Samples < 1 {
		return fmt.Errorf("config: bench.samples must be positive, got %d", c.Bench.Samples)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}

	return nil
}

// ZapLevel parses Level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: logging.level: %w", err)
	}

	return lvl, nil
}
