// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for outfitgen configuration.
	DefaultConfigDir = ".outfitgen"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultTOMLConfigFile is read when no YAML config exists.
	DefaultTOMLConfigFile = "config.toml"
)

// Environment variables that override file settings.
const (
	EnvLogLevel  = "OUTFITGEN_LOG_LEVEL"
	EnvLogFormat = "OUTFITGEN_LOG_FORMAT"
	EnvWorkers   = "OUTFITGEN_WORKERS"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Config holds the settings for a generation run (read-only after load).
type Config struct {
	Scan ScanConfig `yaml:"scan,omitempty" toml:"scan"`
	Log  LogConfig  `yaml:"log,omitempty" toml:"log"`
}

// ScanConfig controls file discovery and reading.
type ScanConfig struct {
	Extension      string `yaml:"extension,omitempty" toml:"extension"`
	Workers        int    `yaml:"workers,omitempty" toml:"workers"`
	SkipUnreadable bool   `yaml:"skip_unreadable,omitempty" toml:"skip_unreadable"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" toml:"level"`
	Format string `yaml:"format,omitempty" toml:"format"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Extension: ".lua",
			Workers:   8,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from the .outfitgen directory in the given path.
// A missing config file is not an error; defaults apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(basePath); err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFile decodes the first config file found, YAML before TOML.
func (c *Config) loadFile(basePath string) error {
	yamlFile := ConfigFilePath(basePath)
	data, err := os.ReadFile(yamlFile)
	if err == nil {
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("reading config file: %w", err)
	}

	tomlFile := filepath.Join(basePath, DefaultConfigDir, DefaultTOMLConfigFile)
	data, err = os.ReadFile(tomlFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.Log.Format = format
	}
	if workers := os.Getenv(EnvWorkers); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvWorkers, workers, err)
		}
		c.Scan.Workers = n
	}
	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Scan.Extension, ".") {
		return fmt.Errorf("scan.extension %q must start with a dot", c.Scan.Extension)
	}
	if c.Scan.Workers < 1 {
		return errors.New("scan.workers must be at least 1")
	}
	if !contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level %q is invalid (valid: %s)", c.Log.Level, strings.Join(validLevels, ", "))
	}
	if !contains(validFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format %q is invalid (valid: %s)", c.Log.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

// ConfigDir returns the path to the .outfitgen config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the YAML config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
