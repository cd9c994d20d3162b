// Package ioutils provides file system utilities for osu-music-export.
//
// This package contains functions for:
//   - File copying
//   - File writing
//   - Filename sanitization
//   - Directory creation and listing
//   - Existence checks
//
// All functions that accept a context.Context check for cancellation
// before starting, though file operations themselves are not interruptible.
package ioutils

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
//
// Parameters:
//   - ctx: Context checked before the copy starts
//   - src: Source file path (must exist)
//   - dst: Destination file path (will be created/overwritten)
//
// Returns the number of bytes copied and an error if:
//   - The context is already cancelled
//   - Source file cannot be opened
//   - Destination file cannot be created
//   - Copy operation fails
//
// A partially written destination is left in place on failure.
//
// Example:
//
//	n, err := CopyFile(ctx, "/osu/Songs/123 A - B/audio.mp3", "/out/A - B.mp3")
func CopyFile(ctx context.Context, src, dst string) (written int64, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := destFile.Close(); err == nil {
			err = cerr
		}
	}()

	return io.Copy(destFile, sourceFile)
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/out/osu!.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName replaces path separators in a file name with underscores.
//
// Only '/' and '\' are replaced. Other characters that some file systems
// reject (such as ':' or '?') are kept as they are.
//
// Example:
//
//	SanitizeFileName("AC/DC - Back\\In Black.mp3") // Returns "AC_DC - Back_In Black.mp3"
func SanitizeFileName(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(name)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/home/user/MusicParserOSU")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListDirs returns the names of the immediate subdirectories of dir,
// sorted lexicographically. Symlinks and junctions that resolve to a
// directory are included. Regular files and dangling links are ignored.
func ListDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || (isLink(entry.Type()) && DirExists(filepath.Join(dir, entry.Name()))) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// isLink reports whether mode describes a symlink, or a Windows junction
// (reported as irregular).
func isLink(mode fs.FileMode) bool {
	return mode&(fs.ModeSymlink|fs.ModeIrregular) != 0
}
