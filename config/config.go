// Package config provides configuration loading and management for cobaya runs
// and the external packages installation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/cobayaconv/vocabulary/cobaya"
	"gopkg.in/yaml.v3"
)

// Config represents the run and installation settings
type Config struct {
	// PackagesPath is where external codes and data are installed
	PackagesPath string `yaml:"packages_path,omitempty"`
	// Output is the output prefix (empty = no output)
	Output string `yaml:"output,omitempty"`
	// Debug enables debug-level console output
	Debug bool `yaml:"debug"`
	// Resume continues an existing run with the same prefix
	Resume bool `yaml:"resume"`
	// Force overwrites an existing run with the same prefix
	Force bool `yaml:"force"`
	// Test initializes all components without sampling
	Test bool `yaml:"test"`
	// Timing reports per-component evaluation times
	Timing bool `yaml:"timing"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PackagesPath: "", // Resolved by the Loader
		Debug:        cobaya.DebugDefault,
		Resume:       cobaya.ResumeDefault,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.PackagesPath != "" && !filepath.IsAbs(c.PackagesPath) {
		return fmt.Errorf("%s must be an absolute path, got %q", cobaya.KeyPackagesPath, c.PackagesPath)
	}
	if strings.Contains(c.Output, cobaya.Separator) {
		return fmt.Errorf("%s must not contain %q", cobaya.KeyOutput, cobaya.Separator)
	}
	if c.Resume && c.Force {
		return fmt.Errorf("%s and %s are mutually exclusive", cobaya.KeyResume, cobaya.KeyForce)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.PackagesPath != "" {
		c.PackagesPath = other.PackagesPath
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	c.Debug = c.Debug || other.Debug
	c.Resume = c.Resume || other.Resume
	c.Force = c.Force || other.Force
	c.Test = c.Test || other.Test
	c.Timing = c.Timing || other.Timing
}

// CodePath returns the installation folder of an external code.
func CodePath(packagesPath, name string) string {
	return filepath.Join(packagesPath, cobaya.CodePath, name)
}

// DataPath returns the installation folder of an external data set.
func DataPath(packagesPath, name string) string {
	return filepath.Join(packagesPath, cobaya.DataPath, name)
}
