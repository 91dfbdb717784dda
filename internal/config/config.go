// Package config provides configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds user-level defaults for the CLI. Every field can be
// overridden by an environment variable with the EXPRESSFORGE prefix.
type Config struct {
	// PackageManager is the binary used for dependency installs:
	// npm (default), yarn or pnpm.
	PackageManager string `mapstructure:"packageManager"`

	// DefaultLanguage preselects the language prompt: typed or untyped.
	DefaultLanguage string `mapstructure:"defaultLanguage"`

	// DefaultArchitecture preselects the architecture prompt:
	// simple or layered.
	DefaultArchitecture string `mapstructure:"defaultArchitecture"`

	// GitInit preselects the version-control prompt.
	GitInit bool `mapstructure:"gitInit"`
}

// ApplyDefaults fills unset fields with built-in defaults.
func (c *Config) ApplyDefaults() {
	if c.PackageManager == "" {
		c.PackageManager = "npm"
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "typed"
	}
	if c.DefaultArchitecture == "" {
		c.DefaultArchitecture = "simple"
	}
}

// DefaultConfigFile returns the default config file path
// (~/.expressforge/config.yaml).
func DefaultConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".expressforge", "config.yaml"), nil
}

// GetConfigFile returns the config file path.
// If EXPRESSFORGE_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("EXPRESSFORGE_CONFIG"); envPath != "" {
		return envPath, nil
	}
	return DefaultConfigFile()
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
