package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultRoles are the interview roles offered on the dashboard when the
// settings file does not override them
var DefaultRoles = []string{
	"Frontend Engineer",
	"Backend Engineer",
	"Full Stack Engineer",
	"Data Scientist",
	"Machine Learning Engineer",
	"DevOps Engineer",
	"Mobile Engineer",
	"Product Manager",
}

// DefaultServerURL points at a locally running interview service
const DefaultServerURL = "http://localhost:3000"

// Settings represents the structure of ~/.intervo/settings.json
type Settings struct {
	Debug           *bool       `json:"debug,omitempty"`
	ErrorClearDelay *int        `json:"error_clear_delay,omitempty"`
	MaxLogFiles     *int        `json:"max_log_files,omitempty"`
	Roles           StringArray `json:"roles,omitempty"`
	ServerURL       string      `json:"server_url,omitempty"`
	Token           string      `json:"token,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $INTERVO_HOME/settings.json (or
// ~/.intervo/settings.json if not set).
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $INTERVO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
