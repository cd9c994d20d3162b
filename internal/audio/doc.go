// Package audio provides audio file manipulation services including
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to exported MP3 files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SetTags(path, audio.Tags{Artist: "Artist", Title: "Title", Cover: jpegBytes})
//
// The tagger supports:
//   - Artist
//   - Track Title
//   - Cover Art (embedded in MP3)
//
// Other audio formats (.ogg, .wav) are copied untagged.
//
// # Playlist Generation
//
// Generate a playlist of everything exported in a run:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist("osu!", plans)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
