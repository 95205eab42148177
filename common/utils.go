// Package common provides shared constants, types, and utilities
// used across the Network Profile Cleaner application.
package common

import (
	"os"
	"path/filepath"
	"strings"
)

// GetConfigDir returns the path to the application configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	baseDir, err := os.UserConfigDir()
	if err != nil {
		return "", WrapError(err, "failed to get user config directory")
	}

	configDir := filepath.Join(baseDir, ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}

	return configDir, nil
}

// GetDataDir returns the path to the application data directory.
// On Windows this resolves to %LocalAppData%, elsewhere to the user cache dir.
func GetDataDir() (string, error) {
	baseDir := os.Getenv("LOCALAPPDATA")
	if baseDir == "" {
		var err error
		baseDir, err = os.UserCacheDir()
		if err != nil {
			return "", WrapError(err, "failed to get user data directory")
		}
	}

	dataDir := filepath.Join(baseDir, ConfigDirName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", WrapError(err, "failed to create data directory")
	}

	return dataDir, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ShortKey shortens a registry key name for table output.
// GUID keys keep their braces so they stay recognizable.
func ShortKey(key string, n int) string {
	if n <= 0 || len(key) <= n {
		return key
	}
	if strings.HasPrefix(key, "{") && n > 2 {
		return key[:n-1] + "…"
	}
	return key[:n] + "…"
}

// ContainsFold reports whether s equals one of the values, ignoring case.
func ContainsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
