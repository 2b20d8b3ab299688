// Package config handles droidset configuration parsing and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dongho-jung/droidset/internal/constants"
)

// Provider selects where settings are read from and written to.
type Provider string

const (
	ProviderADB   Provider = constants.ProviderADB   // A device reached through adb
	ProviderLocal Provider = constants.ProviderLocal // An emulated settings store on disk
)

// Theme selects the TUI color scheme.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config represents the droidset configuration.
type Config struct {
	Provider    Provider `yaml:"provider"`
	Serial      string   `yaml:"serial"`       // adb device serial, empty means the only attached device
	Package     string   `yaml:"package"`      // Package whose WRITE_SETTINGS grant is checked
	DB          string   `yaml:"db"`           // Path of the local provider database
	Theme       Theme    `yaml:"theme"`
	DefaultType string   `yaml:"default_type"` // Value type preselected in the TUI
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderADB,
		Package:     constants.DefaultPackage,
		Theme:       ThemeAuto,
		DefaultType: constants.DefaultType,
	}
}

// Load reads the configuration from the given droidset home directory.
func Load(homeDir string) (*Config, error) {
	configPath := filepath.Join(homeDir, constants.ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(string(data))
}

// Normalize resets invalid values to their defaults and returns a warning
// for each value it replaced.
func (c *Config) Normalize() []string {
	var warnings []string
	def := DefaultConfig()

	if !isValidProvider(c.Provider) {
		if c.Provider != "" {
			warnings = append(warnings, fmt.Sprintf("unknown provider %q, using %q", c.Provider, def.Provider))
		}
		c.Provider = def.Provider
	}
	if !isValidTheme(c.Theme) {
		if c.Theme != "" {
			warnings = append(warnings, fmt.Sprintf("unknown theme %q, using %q", c.Theme, def.Theme))
		}
		c.Theme = def.Theme
	}
	if c.Package == "" {
		c.Package = def.Package
	}
	if c.DefaultType == "" {
		c.DefaultType = def.DefaultType
	}

	return warnings
}

// DBPath returns the local provider database path, defaulting to a file
// inside homeDir.
func (c *Config) DBPath(homeDir string) string {
	if c.DB != "" {
		return expandHome(c.DB)
	}
	return filepath.Join(homeDir, constants.DBFileName)
}

// Save writes the configuration to the given droidset home directory.
func (c *Config) Save(homeDir string) error {
	configPath := filepath.Join(homeDir, constants.ConfigFileName)

	content := fmt.Sprintf(`# droidset configuration

# Where settings live: adb or local
# - adb: a device or emulator reached through adb
# - local: an emulated settings store (see db)
provider: %s

# adb device serial (empty: the only attached device)
serial: %s

# Package whose WRITE_SETTINGS permission is checked
package: %s

# Local provider database (empty: ~/.droidset/settings.db)
db: %s

# Color theme: auto, light or dark
theme: %s

# Value type preselected in the TUI: Int, String, Long or Float
default_type: %s
`, c.Provider, c.Serial, c.Package, c.DB, c.Theme, c.DefaultType)

	return os.WriteFile(configPath, []byte(content), 0644)
}

// Exists checks if a configuration file exists in the given home directory.
func Exists(homeDir string) bool {
	configPath := filepath.Join(homeDir, constants.ConfigFileName)
	_, err := os.Stat(configPath)
	return err == nil
}

// ValidProviders returns all valid providers.
func ValidProviders() []Provider {
	return []Provider{ProviderADB, ProviderLocal}
}

// ValidThemes returns all valid themes.
func ValidThemes() []Theme {
	return []Theme{ThemeAuto, ThemeLight, ThemeDark}
}

func isValidProvider(p Provider) bool {
	for _, v := range ValidProviders() {
		if v == p {
			return true
		}
	}
	return false
}

func isValidTheme(t Theme) bool {
	for _, v := range ValidThemes() {
		if v == t {
			return true
		}
	}
	return false
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
