package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/handiism/osu-music-export/internal/audio"
	"github.com/joho/godotenv"
)

// DefaultOutputFolder is created in the working directory when no output
// path is configured.
const DefaultOutputFolder = "MusicParserOSU"

// Environment variables read by ApplyEnv.
const (
	EnvOsuPath    = "OSU_PATH"
	EnvOutputPath = "OSU_EXPORT_OUTPUT"
	EnvModifyTags = "OSU_EXPORT_MODIFY_TAGS"
)

// Settings holds all configuration options.
type Settings struct {
	// Discovery
	OsuPath string `json:"osu_path"` // checked after the registry, before common folders

	// Export
	OutputPath   string   `json:"output_path"`
	SkipPatterns []string `json:"skip_patterns"` // glob patterns of song folder names to skip

	// Tag settings
	ModifyTags      bool `json:"modify_tags"`
	EmbedBackground bool `json:"embed_background"`
	CoverMaxSize    int  `json:"cover_max_size"`

	// Playlist settings
	CreatePlaylist   bool   `json:"create_playlist"`
	PlaylistFormat   string `json:"playlist_format"` // m3u, pls, wpl, zpl
	PlaylistFileName string `json:"playlist_file_name"`
	M3UExtended      bool   `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	return &Settings{
		OutputPath: filepath.Join(workDir, DefaultOutputFolder),

		ModifyTags:      true,
		EmbedBackground: false,
		CoverMaxSize:    500,

		CreatePlaylist:   false,
		PlaylistFormat:   "m3u",
		PlaylistFileName: "osu!",
		M3UExtended:      true,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// ApplyEnv loads the given .env files (".env" when none are named; missing
// files are ignored) and overrides settings from the environment.
func (s *Settings) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvOsuPath)); v != "" {
		s.OsuPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputPath)); v != "" {
		s.OutputPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvModifyTags)); v != "" {
		modify, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %q", EnvModifyTags, v)
		}
		s.ModifyTags = modify
	}

	return nil
}

// Validate checks settings that would otherwise fail halfway through a run.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.OutputPath) == "" {
		return errors.New("output path is required")
	}
	if _, err := audio.ParsePlaylistFormat(s.PlaylistFormat); err != nil {
		return err
	}
	if s.CreatePlaylist && strings.TrimSpace(s.PlaylistFileName) == "" {
		return errors.New("playlist file name is required when creating a playlist")
	}
	for _, pattern := range s.SkipPatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid skip pattern %q", pattern)
		}
	}
	return nil
}

// PlaylistPath returns the playlist file inside the output folder.
func (s *Settings) PlaylistPath() string {
	format, _ := audio.ParsePlaylistFormat(s.PlaylistFormat)
	return filepath.Join(s.OutputPath, s.PlaylistFileName+format.Extension())
}
