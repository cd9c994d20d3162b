// Package config provides configuration management for osu-music-export.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides, including a .env file in the working directory
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Exports to ./MusicParserOSU
//	// ID3 tagging enabled, no cover art, no playlist
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
//	OSU_PATH=C:\Games\osu!
//	OSU_EXPORT_OUTPUT=D:\Music\osu
//	OSU_EXPORT_MODIFY_TAGS=false
//
// ApplyEnv reads these after loading .env:
//
//	if err := settings.ApplyEnv(); err != nil {
//	    log.Fatal(err)
//	}
//
// Precedence, lowest first: defaults, settings file, environment, flags.
package config
