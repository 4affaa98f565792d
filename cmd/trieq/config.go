package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/parway/pkg/logging"
)

type runConfig struct {
	// Words is the path to the word-list file, one entry per line.
	Words string `yaml:"words"`
	// Queries is the path to the query file, one query per line.
	Queries string `yaml:"queries"`
	// Mode is one of exact, predictive, prefix.
	Mode string `yaml:"mode"`
	// Workers overrides the worker-count hint when positive.
	Workers int `yaml:"workers"`

	Logging logging.Config `yaml:"logging"`
}

func defaultConfig() *runConfig {
	return &runConfig{
		Mode:    "exact",
		Logging: logging.Config{Level: "info", Format: "console", Output: "stdout"},
	}
}

func loadConfig(path string) (*runConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *runConfig) validate() error {
	switch c.Mode {
	case "exact", "predictive", "prefix":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
