// Package config loads tool configuration from an optional YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the practice tool.
// It is immutable after creation via LoadConfig().
type Config struct {
	// APIKey authenticates against the generative-language endpoint. It is
	// read from the environment only, never from the config file, and is
	// deliberately not validated at load time: an absent or invalid key
	// fails at the first model call.
	APIKey string `yaml:"-"`

	// Model is the generative model identifier
	Model string `yaml:"model"`

	// BaseURL is the generative-language API root
	BaseURL string `yaml:"base_url"`

	// Timeout is the per-call HTTP timeout as a Go duration string
	Timeout string `yaml:"timeout"`

	// LogLevel controls slog verbosity: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// LogFile receives structured logs while the TUI owns the terminal
	LogFile string `yaml:"log_file"`
}

// TimeoutDuration parses the configured timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.Timeout)
}

// LoadConfig builds a Config for the given directory: defaults, then the
// config file if present, then environment overrides (after loading a .env
// file if one exists), then validation.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ConfigFileName)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	// A missing .env is fine; the environment may carry the key directly.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
