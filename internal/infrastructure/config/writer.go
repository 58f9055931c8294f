package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# outfitgen configuration

scan:
  # File suffix of the scripts to scan.
  extension: .lua
  # Number of files read and parsed in parallel.
  workers: 8
  # Log and skip files that cannot be read instead of failing the run.
  skip_unreadable: false

log:
  # debug, info, warn or error (or set OUTFITGEN_LOG_LEVEL env var)
  level: info
  # console or json (or set OUTFITGEN_LOG_FORMAT env var)
  format: console
`

// WriteDefault creates the .outfitgen directory and writes a default config file.
func WriteDefault(basePath string) error {
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(ConfigDir(basePath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if an outfitgen YAML config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
