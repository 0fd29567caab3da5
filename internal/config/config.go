// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "200ms", "1s".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all monitor configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Collection CollectionConfig `yaml:"collection"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds HTTP listener settings and the optional bearer secret.
// An empty Token disables authentication on /api/metrics.
type ServerConfig struct {
	Listen string `yaml:"listen"`
	Token  string `yaml:"token"`
}

// CollectionConfig holds metric collection settings.
type CollectionConfig struct {
	// CPUSample is the blocking window used to measure CPU utilization.
	CPUSample Duration `yaml:"cpu_sample"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8000",
			Token:  "",
		},
		Collection: CollectionConfig{
			CPUSample: Duration{200 * time.Millisecond},
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
// Environment variables take highest precedence and override values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults and environment
// variables are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Locate()
	}
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have the highest precedence. MONITOR_TOKEN is the one
// variable the probe requires for protected deployments; leaving it unset
// keeps the metrics endpoint open.
func applyEnvOverrides(cfg *Config) {
	if token, ok := os.LookupEnv("MONITOR_TOKEN"); ok {
		cfg.Server.Token = token
	}
	if listen := os.Getenv("MONITOR_LISTEN"); listen != "" {
		cfg.Server.Listen = listen
	}
	if level := os.Getenv("MONITOR_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.Collection.CPUSample.Duration < 0 {
		return fmt.Errorf("cpu_sample must not be negative")
	}
	return nil
}
