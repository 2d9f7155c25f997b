// Package config loads the optional config file with defaults for the
// picker invocation. Flags always win over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir  = ".config/niri-select"
	defaultConfigFile = "config.yaml"
)

// Config holds the file-configurable defaults.
type Config struct {
	// Width of the picker menu in characters.
	Width int `yaml:"width"`
	// Prompt overrides the mode-specific default prompt.
	Prompt string `yaml:"prompt"`
	// FuzzelArgs are appended to every fuzzel invocation, before any
	// passthrough args from the command line.
	FuzzelArgs []string `yaml:"fuzzel_args"`
	// LogLevel is a zerolog level name; empty means info.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in defaults used when no file exists.
func Default() Config {
	return Config{Width: 80}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, defaultConfigDir, defaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw YAML config bytes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("unknown log level %q", c.LogLevel)
		}
	}
	return nil
}
