package osu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/handiism/osu-music-export/internal/model"
)

const (
	// DescriptorPattern matches beatmap difficulty files inside a song folder.
	DescriptorPattern = "*.osu"

	audioFilenameKey = "AudioFilename:"
	eventsSection    = "[Events]"
)

// Descriptor is the part of a .osu beatmap file the exporter cares about.
type Descriptor struct {
	// Path is the descriptor file that was read.
	Path string

	// AudioFilename is the audio file name relative to the song folder.
	// Never empty.
	AudioFilename string

	// BackgroundFilename is the background image relative to the song
	// folder. Empty when the beatmap has none.
	BackgroundFilename string
}

// BackgroundPath returns the full background image path, or "" when the
// beatmap declares no background.
func (d *Descriptor) BackgroundPath() string {
	if d.BackgroundFilename == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(d.Path), d.BackgroundFilename)
}

// FindDescriptors lists the .osu files directly inside dir, sorted
// lexicographically so the first one is stable across runs and platforms.
// The extension is matched case-insensitively.
//
// Returns ErrNoDescriptor if there are none.
func FindDescriptors(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), DescriptorPattern,
		doublestar.WithFilesOnly(), doublestar.WithCaseInsensitive())
	if err != nil {
		return nil, fmt.Errorf("list descriptors in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no .osu files in %s", ErrNoDescriptor, dir)
	}

	sort.Strings(matches)
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	return paths, nil
}

// ReadSong reads the first descriptor of a song folder. Other difficulties
// of the same beatmap set are not opened.
func ReadSong(folder model.SongFolder) (*Descriptor, error) {
	paths, err := FindDescriptors(folder.Path)
	if err != nil {
		return nil, err
	}
	return ReadDescriptor(paths[0])
}

// ReadDescriptor parses a .osu file.
//
// The first line starting with "AudioFilename:" wins; its value is the text
// after the first colon, trimmed. Lines with an empty value are ignored.
// The first background event ("0,0,\"bg.jpg\",0,0") in the [Events] section
// is recorded as well. Lines may be of any length.
//
// Returns ErrMalformedDescriptor if no AudioFilename line is found.
func ReadDescriptor(path string) (*Descriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	desc := &Descriptor{Path: path}
	section := ""
	leftEvents := false

	reader := bufio.NewReader(file)
	first := true
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}

		line = strings.TrimRight(line, "\r\n")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			if section == eventsSection {
				leftEvents = true
			}
			section = trimmed
		case desc.AudioFilename == "" && strings.HasPrefix(line, audioFilenameKey):
			_, value, _ := strings.Cut(line, ":")
			desc.AudioFilename = strings.TrimSpace(value)
		case section == eventsSection && desc.BackgroundFilename == "":
			desc.BackgroundFilename = parseBackgroundEvent(trimmed)
		}

		// Nothing of interest follows the [Events] section.
		if desc.AudioFilename != "" && (desc.BackgroundFilename != "" || leftEvents) {
			break
		}
		if readErr == io.EOF {
			break
		}
	}

	if desc.AudioFilename == "" {
		return nil, fmt.Errorf("%w: AudioFilename not found in %s", ErrMalformedDescriptor, path)
	}

	return desc, nil
}

// parseBackgroundEvent returns the file name of a background event line,
// or "" if the line is anything else.
func parseBackgroundEvent(line string) string {
	if line == "" || strings.HasPrefix(line, "//") {
		return ""
	}

	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return ""
	}
	if kind := strings.TrimSpace(fields[0]); kind != "0" && kind != "Background" {
		return ""
	}

	return strings.Trim(strings.TrimSpace(fields[2]), "\"")
}
