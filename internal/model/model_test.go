package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSongDir(t *testing.T, name string, files ...string) SongFolder {
	t.Helper()
	songs := t.TempDir()
	folder := NewSongFolder(songs, name)
	require.NoError(t, os.MkdirAll(folder.Path, 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(folder.Path, f), []byte("audio"), 0o644))
	}
	return folder
}

func TestSplitArtistTitle(t *testing.T) {
	tests := []struct {
		input      string
		wantArtist string
		wantTitle  string
	}{
		{"Artist - Song Title", "Artist", "Song Title"},
		{"  Artist   -   Song Title  ", "Artist", "Song Title"},
		{"artist - song title", "artist", "song title"},
		{"Artist - Song - Remix", "Artist", "Song - Remix"},
		{"OnlyTitle", UnknownArtist, "OnlyTitle"},
		{"  Spaced Title  ", UnknownArtist, "Spaced Title"},
		{"Dash-Without-Spaces", UnknownArtist, "Dash-Without-Spaces"},
		{"", UnknownArtist, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			artist, title := SplitArtistTitle(tt.input)
			assert.Equal(t, tt.wantArtist, artist)
			assert.Equal(t, tt.wantTitle, title)
		})
	}
}

func TestNewExportPlan(t *testing.T) {
	tests := []struct {
		name         string
		folder       string
		audio        string
		wantArtist   string
		wantTitle    string
		wantFileName string
	}{
		{
			name:         "artist and title",
			folder:       "123 Artist - Song Title",
			audio:        "track.mp3",
			wantArtist:   "Artist",
			wantTitle:    "Song Title",
			wantFileName: "Artist - Song Title.mp3",
		},
		{
			name:         "no separator",
			folder:       "456 OnlyTitle",
			audio:        "audio.ogg",
			wantArtist:   UnknownArtist,
			wantTitle:    "OnlyTitle",
			wantFileName: "Unknown - OnlyTitle.ogg",
		},
		{
			name:         "no space falls back to audio name",
			folder:       "789",
			audio:        "Someone - Something.mp3",
			wantArtist:   "Someone",
			wantTitle:    "Something",
			wantFileName: "Someone - Something.mp3",
		},
		{
			name:         "no space and plain audio name",
			folder:       "789",
			audio:        "audio.mp3",
			wantArtist:   UnknownArtist,
			wantTitle:    "audio",
			wantFileName: "Unknown - audio.mp3",
		},
		{
			name:         "path separators replaced",
			folder:       "1 AC/DC - Back\\In Black",
			audio:        "song.mp3",
			wantArtist:   "AC/DC",
			wantTitle:    "Back\\In Black",
			wantFileName: "AC_DC - Back_In Black.mp3",
		},
		{
			name:         "extension case preserved",
			folder:       "2 A - B",
			audio:        "Audio.MP3",
			wantArtist:   "A",
			wantTitle:    "B",
			wantFileName: "A - B.MP3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var folder SongFolder
			if filepath.Base(tt.folder) != tt.folder {
				// Names with separators cannot exist on disk; build the
				// folder by hand around a real directory.
				real := newSongDir(t, "real", tt.audio)
				folder = SongFolder{Name: tt.folder, Path: real.Path}
			} else {
				folder = newSongDir(t, tt.folder, tt.audio)
			}

			plan, err := NewExportPlan(folder, tt.audio)
			require.NoError(t, err)
			assert.Equal(t, tt.wantArtist, plan.Artist)
			assert.Equal(t, tt.wantTitle, plan.Title)
			assert.Equal(t, tt.wantFileName, plan.FileName)
			assert.Equal(t, filepath.Join(folder.Path, tt.audio), plan.SourcePath)
			assert.Equal(t, filepath.Join("/out", tt.wantFileName), plan.TargetPath("/out"))
		})
	}
}

func TestNewExportPlan_MissingAudio(t *testing.T) {
	folder := newSongDir(t, "123 Artist - Title", "other.mp3")

	plan, err := NewExportPlan(folder, "track.mp3")
	assert.Nil(t, plan)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingAudio))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNewExportPlan_AudioIsDirectory(t *testing.T) {
	folder := newSongDir(t, "123 Artist - Title")
	require.NoError(t, os.Mkdir(filepath.Join(folder.Path, "track.mp3"), 0o755))

	_, err := NewExportPlan(folder, "track.mp3")
	assert.ErrorIs(t, err, ErrMissingAudio)
}

func TestExportPlan_IsMP3(t *testing.T) {
	assert.True(t, (&ExportPlan{Extension: ".mp3"}).IsMP3())
	assert.True(t, (&ExportPlan{Extension: ".MP3"}).IsMP3())
	assert.False(t, (&ExportPlan{Extension: ".ogg"}).IsMP3())
	assert.False(t, (&ExportPlan{Extension: ""}).IsMP3())
}

func TestSongFolder_IsReserved(t *testing.T) {
	for _, name := range []string{"failed", "Failed", "FAILED", "fAiLeD"} {
		assert.True(t, SongFolder{Name: name}.IsReserved(), name)
	}
	for _, name := range []string{"failed songs", "123 Failed", "fail"} {
		assert.False(t, SongFolder{Name: name}.IsReserved(), name)
	}
}
