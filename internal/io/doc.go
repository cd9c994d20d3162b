// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File copying and writing
//   - Path separator replacement in exported file names
//   - Directory creation and listing
//   - Existence checks used by installation discovery
//   - Image resizing and format conversion for cover art
//
// # File Operations
//
//	// Copy a file, overwriting the destination
//	n, err := ioutils.CopyFile(ctx, "/src/audio.mp3", "/dst/Artist - Title.mp3")
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
//	// Subdirectories in lexicographic order
//	names, err := ioutils.ListDirs("/osu/Songs")
//
// # Filename Sanitization
//
// Use SanitizeFileName to keep exported names inside the output folder:
//
//	safe := ioutils.SanitizeFileName("AC/DC - Thunder.mp3") // Returns "AC_DC - Thunder.mp3"
//
// # Image Processing
//
// The ImageService turns song backgrounds into cover art:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 500x500, re-encoded as JPEG
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//
//	// Convert to JPEG
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
