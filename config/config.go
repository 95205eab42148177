// Package config provides configuration management for Network Profile Cleaner.
// It handles loading, saving, and managing application settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/netclean/netprofile-cleaner/common"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// ConfirmDelete asks before deleting checked entries.
	ConfirmDelete bool `yaml:"confirm_delete"`
	// BackupBeforeDelete snapshots each key into the history database
	// before it is deleted so it can be restored later.
	BackupBeforeDelete bool `yaml:"backup_before_delete"`
	// ShowNotifications enables desktop notifications after deletions.
	ShowNotifications bool `yaml:"show_notifications"`
	// ShowTray shows a system tray indicator with entry counts.
	ShowTray bool `yaml:"show_tray"`
	// HistoryLimit caps the number of deletion records kept.
	HistoryLimit int `yaml:"history_limit"`

	path string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:              common.ThemeAuto,
		ConfirmDelete:      true,
		BackupBeforeDelete: true,
		ShowNotifications:  true,
		ShowTray:           false,
		HistoryLimit:       common.DefaultHistoryLimit,
	}
}

// Load loads the configuration from the default config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from path, writing defaults there when
// the file does not exist yet.
func LoadFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cfg.path = configPath
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening configuration: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // reject unknown fields

	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("%w: error parsing configuration: %v", common.ErrConfigLoad, err)
	}

	config.validate()
	config.path = configPath

	return config, nil
}

// validate replaces out-of-range values with their defaults.
func (c *Config) validate() {
	validThemes := []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark}
	isValidTheme := false
	for _, t := range validThemes {
		if c.Theme == t {
			isValidTheme = true
			break
		}
	}
	if !isValidTheme {
		c.Theme = common.ThemeAuto
	}

	if c.HistoryLimit <= 0 {
		c.HistoryLimit = common.DefaultHistoryLimit
	}
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save saves the configuration to the file it was loaded from,
// or to the default location.
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return err
		}
		c.path = configPath
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the configuration to configPath.
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %v", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: error serializing configuration: %v", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("%w: error saving configuration: %v", common.ErrConfigSave, err)
	}

	return nil
}

func getConfigPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}

	return filepath.Join(configDir, common.ConfigFileName), nil
}
