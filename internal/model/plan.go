package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/osu-music-export/internal/io"
)

// UnknownArtist is used when a song name carries no "Artist - Title" separator.
const UnknownArtist = "Unknown"

// artistTitleSeparator splits artist from title in song folder names.
const artistTitleSeparator = " - "

// ExportPlan describes how one song folder is exported.
//
// Example:
//
//	folder := NewSongFolder("/osu/Songs", "123 Artist - Song Title")
//	plan, err := NewExportPlan(folder, "track.mp3")
//	// plan.Artist   = "Artist"
//	// plan.Title    = "Song Title"
//	// plan.FileName = "Artist - Song Title.mp3"
type ExportPlan struct {
	// Folder is the song folder the plan was derived from.
	Folder SongFolder

	// Artist is the derived artist, "Unknown" when none could be derived.
	Artist string

	// Title is the derived title.
	Title string

	// SourcePath is the full path of the audio file inside the song folder.
	SourcePath string

	// Extension is the audio file extension including the dot, as found on disk.
	Extension string

	// FileName is the exported file name: "{artist} - {title}{ext}" with
	// path separators replaced by underscores.
	FileName string
}

// NewExportPlan derives the export plan for a song folder and the audio file
// name read from its descriptor.
//
// The folder name is split on its first space. The leading token (the beatmap
// set id) is discarded and the remainder is split into artist and title by
// SplitArtistTitle. A folder name without any space falls back to the audio
// file's base name without extension.
//
// Returns ErrMissingAudio if the audio file does not exist in the folder.
func NewExportPlan(folder SongFolder, audioFilename string) (*ExportPlan, error) {
	source := filepath.Join(folder.Path, audioFilename)
	info, err := os.Stat(source)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s in %s", ErrMissingAudio, audioFilename, folder.Path)
	}

	ext := filepath.Ext(source)

	remainder, ok := songName(folder.Name)
	if !ok {
		remainder = strings.TrimSuffix(filepath.Base(source), ext)
	}

	artist, title := SplitArtistTitle(remainder)

	return &ExportPlan{
		Folder:     folder,
		Artist:     artist,
		Title:      title,
		SourcePath: source,
		Extension:  ext,
		FileName:   ioutils.SanitizeFileName(artist + artistTitleSeparator + title + ext),
	}, nil
}

// TargetPath returns the full path of the exported file inside outputDir.
func (p *ExportPlan) TargetPath(outputDir string) string {
	return filepath.Join(outputDir, p.FileName)
}

// IsMP3 reports whether the exported file is an MP3 and can carry ID3 tags.
func (p *ExportPlan) IsMP3() bool {
	return strings.EqualFold(p.Extension, ".mp3")
}

// SplitArtistTitle splits "Artist - Title" on the first " - ".
//
// Both parts are trimmed. Without a separator the artist is UnknownArtist
// and the whole trimmed text is the title.
//
// Example:
//
//	SplitArtistTitle("Artist - Song - Remix") // "Artist", "Song - Remix"
//	SplitArtistTitle("OnlyTitle")             // "Unknown", "OnlyTitle"
func SplitArtistTitle(s string) (artist, title string) {
	if before, after, ok := strings.Cut(s, artistTitleSeparator); ok {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return UnknownArtist, strings.TrimSpace(s)
}

// songName strips the leading token of a folder name. ok is false when the
// name has no space at all.
func songName(folderName string) (string, bool) {
	_, rest, ok := strings.Cut(folderName, " ")
	return rest, ok
}
