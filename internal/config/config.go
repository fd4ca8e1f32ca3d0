package config

import (
	"os"
	"path/filepath"
)

const (
	AppName    = "datekit"
	ConfigName = "config.yaml"
)

// DataDir returns the path to the datekit data directory (~/.datekit/)
// Creates the directory if it doesn't exist
// Can be overridden with DATEKIT_DATA_DIR environment variable (primarily for testing)
func DataDir() (string, error) {
	if dataDir := os.Getenv("DATEKIT_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// ConfigPath returns the path to the settings file (~/.datekit/config.yaml).
// The file itself is optional.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, ConfigName), nil
}

// LogDir returns the path to the log directory (~/.datekit/logs/)
// Creates the directory if it doesn't exist
func LogDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}

	return logDir, nil
}
