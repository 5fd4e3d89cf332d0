package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"combind/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const (
	validYAML = `
directories:
  last_used: "/home/test/documents"
output:
  name_pattern: "merged_%s.txt"
settings:
  enable_notifications: false
  watch_files: true
  debug: true
theme:
  name: "dark"
`
	invalidSyntaxYAML = `
directories:
  last_used: "/home/test
settings: # Missing closing quote
`
	invalidThemeYAML = `
theme:
  name: "neon"
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		configFile := createTestYAML(t, validYAML)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "/home/test/documents", cfg.Directories.LastUsed)
		assert.Equal(t, "merged_%s.txt", cfg.Output.NamePattern)
		assert.Equal(t, false, cfg.Settings.EnableNotifications)
		assert.Equal(t, true, cfg.Settings.WatchFiles)
		assert.Equal(t, true, cfg.Settings.Debug)
		assert.Equal(t, "dark", cfg.Theme.Name)
	})

	t.Run("load non-existent file returns defaults", func(t *testing.T) {
		nonExistentPath := filepath.Join(t.TempDir(), "does_not_exist.yaml")
		cfg, err := config.LoadConfigFile(nonExistentPath)

		require.NoError(t, err, "Loading non-existent file should return default config, not an error")
		require.NotNil(t, cfg)

		defaultCfg := config.New()
		assert.Equal(t, defaultCfg.Output.NamePattern, cfg.Output.NamePattern)
		assert.Equal(t, defaultCfg.Theme.Name, cfg.Theme.Name)
		assert.Equal(t, defaultCfg.Settings.EnableNotifications, cfg.Settings.EnableNotifications)
	})

	t.Run("invalid syntax is an error", func(t *testing.T) {
		configFile := createTestYAML(t, invalidSyntaxYAML)
		_, err := config.LoadConfigFile(configFile)
		require.Error(t, err)
	})

	t.Run("invalid theme is rejected", func(t *testing.T) {
		configFile := createTestYAML(t, invalidThemeYAML)
		_, err := config.LoadConfigFile(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid theme name")
	})

	t.Run("partial config keeps defaults for unset fields", func(t *testing.T) {
		configFile := createTestYAML(t, "theme:\n  name: \"light\"\n")
		cfg, err := config.LoadConfigFile(configFile)
		require.NoError(t, err)

		assert.Equal(t, "light", cfg.Theme.Name)
		assert.Equal(t, config.New().Output.NamePattern, cfg.Output.NamePattern)
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := config.NewTestConfig()
	cfg.Directories.LastUsed = "/somewhere"
	cfg.Theme.Name = "dark"

	require.NoError(t, config.SaveConfig(cfg, path))

	// Round trip
	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/somewhere", loaded.Directories.LastUsed)
	assert.Equal(t, "dark", loaded.Theme.Name)
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	assert.NoError(t, cfg.Validate())

	cfg.Output.NamePattern = ""
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Output.NamePattern = "no-date-slot.txt"
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Theme.Name = "sparkle"
	assert.Error(t, cfg.Validate())
}

func TestSeparatorIsNotConfigurable(t *testing.T) {
	// The separator is fixed; a config file naming one is ignored
	path := createTestYAML(t, "output:\n  separator: \"@@\"\n")

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\n---\n", cfg.Output.Separator)
}

func TestOutputFileName(t *testing.T) {
	cfg := config.New()
	now := time.Date(2024, 10, 18, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "combined_20241018.txt", cfg.OutputFileName(now))
}
