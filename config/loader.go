package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/c360studio/cobayaconv/vocabulary/cobaya"
)

// UserConfigDir is the directory for user-level config, relative to the
// platform config root
const UserConfigDir = "cobaya"

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
	// configRoot overrides os.UserConfigDir, mostly for tests
	configRoot string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// WithConfigRoot returns a copy of the loader reading user config from root.
func (l *Loader) WithConfigRoot(root string) *Loader {
	return &Loader{logger: l.logger, configRoot: root}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (<user config dir>/cobaya/config.yaml)
// 3. COBAYA_PACKAGES_PATH environment variable
// 4. Explicit packages path (command line), if not empty
func (l *Loader) Load(packagesPath string) (*Config, error) {
	config := DefaultConfig()

	// Load user config
	if userConfigPath := l.UserConfigPath(); userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	if env := strings.TrimSpace(os.Getenv(cobaya.PackagesPathEnv)); env != "" {
		l.logger.Debug("Packages path from environment", slog.String("env", cobaya.PackagesPathEnv), slog.String("path", env))
		config.PackagesPath = env
	}

	if packagesPath != "" {
		config.PackagesPath = packagesPath
	}

	if config.PackagesPath == "" && InContainer() {
		config.PackagesPath = cobaya.PackagesPathContainers
		l.logger.Debug("Using container packages path", slog.String("path", config.PackagesPath))
	}

	if config.PackagesPath != "" {
		abs, err := filepath.Abs(config.PackagesPath)
		if err == nil {
			config.PackagesPath = abs
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SavePackagesPath stores the packages path in the user config file,
// preserving any other settings already there.
func (l *Loader) SavePackagesPath(packagesPath string) error {
	userConfigPath := l.UserConfigPath()

	config, err := LoadFromFile(userConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		config = &Config{}
	} else if err != nil {
		return fmt.Errorf("refusing to overwrite user config %s: %w", userConfigPath, err)
	}

	abs, err := filepath.Abs(packagesPath)
	if err != nil {
		return err
	}
	config.PackagesPath = abs

	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Saved packages path", slog.String("path", abs), slog.String("config", userConfigPath))
	return nil
}

// UserConfigPath returns the path to the user config file
func (l *Loader) UserConfigPath() string {
	root := l.configRoot
	if root == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		root = dir
	}
	return filepath.Join(root, UserConfigDir, cobaya.PackagesPathConfigFile)
}

// InContainer reports whether the container packages path exists.
func InContainer() bool {
	info, err := os.Stat(cobaya.PackagesPathContainers)
	return err == nil && info.IsDir()
}

// SkipList returns the names listed in an environment variable, split on
// commas and whitespace.
func SkipList(envName string) []string {
	return strings.FieldsFunc(os.Getenv(envName), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// InstallSkip returns the components the installer should skip.
func InstallSkip() []string {
	return SkipList(cobaya.InstallSkipEnv)
}

// TestSkip returns the components the test suite should skip.
func TestSkip() []string {
	return SkipList(cobaya.TestSkipEnv)
}

// ShouldSkip reports whether name matches any entry of skip, ignoring case.
// Entries match as substrings so "planck" skips every planck likelihood.
func ShouldSkip(name string, skip []string) bool {
	lower := strings.ToLower(name)
	for _, s := range skip {
		if s != "" && strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
