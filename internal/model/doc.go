// Package model defines the core data structures used throughout
// osu-music-export.
//
// # Song Folder
//
// SongFolder is one directory under the osu! Songs folder:
//
//	folder := model.NewSongFolder("/osu/Songs", "123 Artist - Song Title")
//	folder.IsReserved() // false; only "failed" (any case) is reserved
//
// # Export Plan
//
// ExportPlan holds the derived artist, title and exported file name:
//
//	plan, err := model.NewExportPlan(folder, "track.mp3")
//	fmt.Println(plan.FileName)                 // "Artist - Song Title.mp3"
//	fmt.Println(plan.TargetPath("/music/osu")) // "/music/osu/Artist - Song Title.mp3"
//
// Folder names are expected in osu!'s "<id> <artist> - <title>" form. Names
// without a separator export as "Unknown - <title>".
package model
