package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kamholtz/trak/internal/timeline"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	Timeline    Timeline    `yaml:"timeline"`
}

// Timeline holds timeline and dashboard window settings.
type Timeline struct {
	// DefaultZoom is one of "day", "week", "month".
	DefaultZoom string `yaml:"default_zoom"`

	// WeekStart is "monday" or "sunday" and sets the first day of the
	// dashboard's week window.
	WeekStart string `yaml:"week_start"`
}

// Zoom resolves the configured default zoom, falling back to week view
// for unknown values.
func (t Timeline) Zoom() timeline.Zoom {
	switch timeline.Zoom(t.DefaultZoom) {
	case timeline.ZoomDay, timeline.ZoomWeek, timeline.ZoomMonth:
		return timeline.Zoom(t.DefaultZoom)
	default:
		return timeline.ZoomWeek
	}
}

// WeekStartDay resolves the configured first day of the week, falling
// back to Monday for unknown values.
func (t Timeline) WeekStartDay() time.Weekday {
	if t.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// loadThemeFile loads and merges theme from TRAK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TRAK_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		config := defaultConfig()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "trak", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "trak", "config.yaml"), nil
}

func defaultConfig() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
