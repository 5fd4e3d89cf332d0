package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It carries session preferences; the combine behavior itself is fixed.
type Config struct {
	Directories struct {
		LastUsed string `yaml:"last_used"` // Directory the file dialogs open in
	} `yaml:"directories"`
	Output struct {
		NamePattern string `yaml:"name_pattern"` // Suggested output filename; %s is replaced by the date
		// Separator between file contents in the output. Fixed: it is not
		// read from the config file, it lives here so the engine and tests
		// share one default.
		Separator string `yaml:"-"`
	} `yaml:"output"`
	Settings struct {
		EnableNotifications bool `yaml:"enable_notifications"` // Show desktop notifications from the GUI
		WatchFiles          bool `yaml:"watch_files"`          // Watch listed files for on-disk changes
		Debug               bool `yaml:"debug"`                // Enable debug logging
	} `yaml:"settings"`
	Theme struct {
		Name string `yaml:"name"` // Theme name for the TUI (default, dark, light)
	} `yaml:"theme"`
}

// LoadConfig loads configuration from the default location
// (~/.config/combind/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "combind", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Directories.LastUsed != "" {
		cfg.Directories.LastUsed = tempCfg.Directories.LastUsed
	}
	if tempCfg.Output.NamePattern != "" {
		cfg.Output.NamePattern = tempCfg.Output.NamePattern
	}
	cfg.Settings.EnableNotifications = tempCfg.Settings.EnableNotifications
	cfg.Settings.WatchFiles = tempCfg.Settings.WatchFiles
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Theme.Name != "" {
		cfg.Theme.Name = tempCfg.Theme.Name
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg.Directories.LastUsed = home
	cfg.Output.NamePattern = "combined_%s.txt"
	cfg.Output.Separator = "\n---\n"
	cfg.Settings.EnableNotifications = true
	cfg.Settings.WatchFiles = true
	cfg.Settings.Debug = false
	cfg.Theme.Name = "default"

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Save writes the configuration back to the default location.
func (c *Config) Save() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return SaveConfig(c, filepath.Join(home, ".config", "combind", "config.yaml"))
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Output.NamePattern == "" {
		return fmt.Errorf("output name pattern is required")
	}
	if !strings.Contains(c.Output.NamePattern, "%s") {
		return fmt.Errorf("output name pattern must contain %%s for the date: %s", c.Output.NamePattern)
	}

	validThemes := map[string]bool{"default": true, "dark": true, "light": true}
	if !validThemes[c.Theme.Name] {
		return fmt.Errorf("invalid theme name: %s", c.Theme.Name)
	}

	return nil
}

// outputDateLayout is the date stamp embedded in suggested output filenames.
const outputDateLayout = "20060102"

// OutputFileName returns the suggested output filename for the given moment,
// e.g. combined_20241018.txt.
func (c *Config) OutputFileName(now time.Time) string {
	return fmt.Sprintf(c.Output.NamePattern, now.Format(outputDateLayout))
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Directories.LastUsed = "."
	cfg.Settings.EnableNotifications = false
	cfg.Settings.WatchFiles = false
	return cfg
}
