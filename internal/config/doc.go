// Package config provides configuration management for discman.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Overrides from a .env file and DISCMAN_* environment variables
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Saves to the working directory
//	// Four tagging workers, covers scaled to 1000px
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Malformed file; a missing file gives defaults
//	}
//	err = settings.ApplyEnv(".env")
//
// # Saving Settings
//
//	settings.SaveDir = "/home/me/discography"
//	err := settings.Save(config.DefaultPath())
package config
