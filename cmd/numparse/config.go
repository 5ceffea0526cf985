package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lukaszgryglicki/numparse"
	"github.com/lukaszgryglicki/numparse/mp"
)

// Config holds the CLI's defaults; command-line flags override it.
type Config struct {
	// Precision in bits for the arbitrary-precision backend.
	Precision uint `yaml:"precision"`
	// Rounding mode for the arbitrary-precision backend:
	// nearest, zero, up, down.
	Rounding string `yaml:"rounding"`
	// Base is the default radix for integer conversion (0 = auto-detect).
	Base int `yaml:"base"`
	// DefaultUnit is the magnitude applied when a byte size carries no
	// suffix, e.g. "B", "kB", "MB".
	DefaultUnit string `yaml:"default_unit"`
}

// DefaultConfig matches the demo defaults used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		Precision:   512,
		Rounding:    "nearest",
		Base:        10,
		DefaultUnit: "MB",
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path means
// defaults only.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if _, ok := mp.ParseRounding(cfg.Rounding); !ok {
		return nil, fmt.Errorf("config: unknown rounding mode %q", cfg.Rounding)
	}
	if _, ok := numparse.ParseMagnitude(cfg.DefaultUnit); !ok {
		return nil, fmt.Errorf("config: unknown byte unit %q", cfg.DefaultUnit)
	}
	return cfg, nil
}

func (c *Config) rounding() mp.Rounding {
	r, _ := mp.ParseRounding(c.Rounding)
	return r
}

func (c *Config) defaultUnit() numparse.Magnitude {
	m, _ := numparse.ParseMagnitude(c.DefaultUnit)
	return m
}
