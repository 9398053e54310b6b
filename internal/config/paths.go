package config

import (
	"os"
	"path/filepath"
)

// GetIntervoHome returns INTERVO_HOME or ~/.intervo default
func GetIntervoHome() string {
	intervoHome := os.Getenv("INTERVO_HOME")
	if intervoHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".intervo"
		}
		return filepath.Join(homeDir, ".intervo")
	}
	return ExpandPath(intervoHome)
}

// GetSettingsPath returns $INTERVO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetIntervoHome(), "settings.json")
}

// GetSSHDir returns $INTERVO_HOME/ssh, used for the serve command's host key
func GetSSHDir() string {
	return filepath.Join(GetIntervoHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
