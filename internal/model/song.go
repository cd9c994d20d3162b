package model

import (
	"path/filepath"
	"strings"
)

// ReservedFolderName is the name of the folder osu! moves broken imports
// into. It is never exported, whatever its letter case.
const ReservedFolderName = "failed"

// SongFolder is a single song directory under the installation's Songs folder.
//
// osu! names these folders "<beatmap set id> <artist> - <title>", for example
// "123 Camellia - Exit This Earth's Atomosphere". Name is kept verbatim;
// artist and title are derived from it by NewExportPlan.
type SongFolder struct {
	// Name is the raw directory name.
	Name string

	// Path is the full path of the directory.
	Path string
}

// NewSongFolder creates a SongFolder for the directory name inside songsDir.
func NewSongFolder(songsDir, name string) SongFolder {
	return SongFolder{
		Name: name,
		Path: filepath.Join(songsDir, name),
	}
}

// IsReserved reports whether the folder is the reserved "failed" folder.
func (f SongFolder) IsReserved() bool {
	return strings.EqualFold(f.Name, ReservedFolderName)
}

// String returns the folder name.
func (f SongFolder) String() string {
	return f.Name
}
