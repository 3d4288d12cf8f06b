package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/handiism/discman/internal/model"
)

// Environment variables that override the settings file.
const (
	EnvSaveDir    = "DISCMAN_SAVE_DIR"
	EnvLogLevel   = "DISCMAN_LOG_LEVEL"
	EnvLogFile    = "DISCMAN_LOG_FILE"
	EnvTagWorkers = "DISCMAN_TAG_WORKERS"
)

// Settings holds all configuration options.
type Settings struct {
	// Editor settings
	SaveDir      string   `json:"save_dir"`
	DefaultType  string   `json:"default_type"`
	ReleaseTypes []string `json:"release_types"`

	// Logging
	LogLevel string `json:"log_level"` // debug, info, warn, error
	LogFile  string `json:"log_file"`

	// Tagging
	TagWorkers    int  `json:"tag_workers"`
	CoverMaxSize  int  `json:"cover_max_size"`
	WritePlaylist bool `json:"write_playlist"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	wd, _ := os.Getwd()
	return &Settings{
		SaveDir:      wd,
		DefaultType:  "",
		ReleaseTypes: append([]string(nil), model.ReleaseTypes...),

		LogLevel: "info",

		TagWorkers:    4,
		CoverMaxSize:  1000,
		WritePlaylist: false,
	}
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "discman", "settings.json")
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv loads envFile (if it exists) into the process environment
// without overriding variables that are already set, then applies the
// DISCMAN_* variables on top of s.
func (s *Settings) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	if v := os.Getenv(EnvSaveDir); v != "" {
		s.SaveDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.LogFile = v
	}
	if v := os.Getenv(EnvTagWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.TagWorkers = n
		}
	}
	return nil
}

// Workers returns TagWorkers, at least 1.
func (s *Settings) Workers() int {
	if s.TagWorkers < 1 {
		return 1
	}
	return s.TagWorkers
}
