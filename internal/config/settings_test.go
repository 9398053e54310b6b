package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{
			name: "array format",
			json: `["Backend Engineer", "Data Scientist"]`,
			want: []string{"Backend Engineer", "Data Scientist"},
		},
		{
			name: "comma-separated string",
			json: `"Backend Engineer, Data Scientist,DevOps Engineer"`,
			want: []string{"Backend Engineer", "Data Scientist", "DevOps Engineer"},
		},
		{
			name: "empty string",
			json: `""`,
			want: []string{},
		},
		{
			name: "trailing commas and blanks skipped",
			json: `"Backend Engineer, ,"`,
			want: []string{"Backend Engineer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sa StringArray
			require.NoError(t, json.Unmarshal([]byte(tt.json), &sa))
			assert.Equal(t, tt.want, []string(sa))
		})
	}
}

func TestLoadSettings_MissingFileIsNotAnError(t *testing.T) {
	t.Setenv("INTERVO_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Nil(t, settings.Debug)
	assert.Empty(t, settings.ServerURL)
}

func TestLoadSettings_ReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("INTERVO_HOME", home)

	content := `{
		"debug": true,
		"error_clear_delay": 5,
		"roles": "SRE, Platform Engineer",
		"server_url": "https://interviews.example.com",
		"token": "secret"
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.ErrorClearDelay)
	assert.Equal(t, 5, *settings.ErrorClearDelay)
	assert.Equal(t, StringArray{"SRE", "Platform Engineer"}, settings.Roles)
	assert.Equal(t, "https://interviews.example.com", settings.ServerURL)
	assert.Equal(t, "secret", settings.Token)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("INTERVO_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{not json"), 0644))

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("INTERVO_HOME", t.TempDir())

	debug := true
	original := &Settings{
		Debug:     &debug,
		Roles:     StringArray{"Backend Engineer"},
		ServerURL: "http://localhost:3000",
	}
	require.NoError(t, SaveSettings(original))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded.Debug)
	assert.True(t, *loaded.Debug)
	assert.Equal(t, original.Roles, loaded.Roles)
	assert.Equal(t, original.ServerURL, loaded.ServerURL)
}
