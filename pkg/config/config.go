// Package config loads the settings shared by the commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "OUSD_"

type Config struct {
	// TrialCount is the number of bootstrap trials per comparison.
	TrialCount int `yaml:"trial_count" env:"TRIAL_COUNT" envDefault:"10000"`
	// SignificanceThreshold separates significant p-values (<=) from
	// pairs reported as not significantly different (>).
	SignificanceThreshold float64 `yaml:"significance_threshold" env:"SIGNIFICANCE_THRESHOLD" envDefault:"0.05"`
	// Seed fixes the bootstrap random source; 0 draws a fresh seed.
	Seed int64 `yaml:"seed" env:"SEED" envDefault:"0"`
	// Workers bounds the comparisons of an all-pairs sweep run at once.
	Workers int `yaml:"workers" env:"WORKERS" envDefault:"1"`
	// Sources maps subject names to source files or URLs. Subjects not
	// listed keep their default file name.
	Sources map[string]string `yaml:"sources" env:"SOURCES"`
	// DataDir is the base of relative source paths.
	DataDir  string `yaml:"data_dir" env:"DATA_DIR" envDefault:"."`
	Database string `yaml:"database" env:"DATABASE" envDefault:"/tmp/ousd-readiness.json"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment and then, when path is
// not empty, from the YAML file at path, whose values take precedence.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.TrialCount <= 0 {
		errs = append(errs, fmt.Errorf("trial_count must be positive, got %d", c.TrialCount))
	}
	if c.SignificanceThreshold <= 0 || c.SignificanceThreshold >= 1 {
		errs = append(errs, fmt.Errorf("significance_threshold must be in (0, 1), got %v", c.SignificanceThreshold))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Selectors(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Selectors returns the default selectors overridden by Sources, with
// relative paths resolved against DataDir.
func (c *Config) Selectors() (zone.Selectors, error) {
	sel := zone.DefaultSelectors()
	for name, location := range c.Sources {
		subject, err := zone.ParseSubject(name)
		if err != nil {
			return nil, fmt.Errorf("sources: %w", err)
		}
		sel[subject] = location
	}

	for subject, location := range sel {
		sel[subject] = c.resolve(location)
	}
	return sel, nil
}

func (c *Config) resolve(location string) string {
	if location == "" || filepath.IsAbs(location) ||
		strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return location
	}
	return filepath.Join(c.DataDir, location)
}
