package osu

import (
	"context"
	"fmt"
	"path/filepath"

	ioutils "github.com/handiism/osu-music-export/internal/io"
	"github.com/handiism/osu-music-export/internal/model"
)

const (
	// ExecutableName is the game executable every installation root contains.
	ExecutableName = "osu!.exe"

	// SongsFolderName is the folder under the installation root that holds
	// one directory per beatmap set.
	SongsFolderName = "Songs"
)

// Installation is a resolved osu! installation root.
type Installation struct {
	// Dir is the directory containing osu!.exe.
	Dir string

	// Source names the strategy that found Dir.
	Source string
}

// SongsDir returns the Songs folder of the installation.
func (i *Installation) SongsDir() string {
	return filepath.Join(i.Dir, SongsFolderName)
}

// HasExecutable reports whether dir directly contains osu!.exe.
func HasExecutable(dir string) bool {
	if dir == "" {
		return false
	}
	return ioutils.FileExists(filepath.Join(dir, ExecutableName))
}

// Locator resolves the installation root by trying each probe in order and
// falling back to asking the user.
//
// Example:
//
//	locator := osu.NewLocator(osu.DefaultProbes(settings.OsuPath), osu.NewLinePrompter(os.Stdin, os.Stdout), onProgress)
//	inst, err := locator.Locate(ctx)
type Locator struct {
	probes     []Probe
	prompter   Prompter
	onProgress model.ProgressFunc
}

// NewLocator creates a Locator. prompter may be nil, in which case Locate
// fails with ErrNotInstalled when every probe misses.
func NewLocator(probes []Probe, prompter Prompter, onProgress model.ProgressFunc) *Locator {
	return &Locator{
		probes:     probes,
		prompter:   prompter,
		onProgress: onProgress,
	}
}

// Locate returns the first installation found.
//
// Probe misses are never errors. When all probes miss, the prompter is asked
// repeatedly until it returns a directory containing osu!.exe. An error is
// returned only when the prompter cannot deliver input (end of input,
// cancelled context) or there is no prompter.
func (l *Locator) Locate(ctx context.Context) (*Installation, error) {
	for _, probe := range l.probes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		l.onProgress.Emit(model.LevelInfo, fmt.Sprintf("Searching for osu! via %s...", probe.Name()))
		if dir, ok := probe.Probe(); ok {
			l.onProgress.Emit(model.LevelSuccess, fmt.Sprintf("Found via %s: %s", probe.Name(), dir))
			return &Installation{Dir: dir, Source: probe.Name()}, nil
		}
	}

	l.onProgress.Emit(model.LevelWarning, "Automatic search failed")
	if l.prompter == nil {
		return nil, ErrNotInstalled
	}

	return l.ask(ctx)
}

func (l *Locator) ask(ctx context.Context) (*Installation, error) {
	for {
		input, err := l.prompter.PromptPath(ctx, "Enter the full path to the osu! folder: ")
		if err != nil {
			return nil, fmt.Errorf("read osu! folder: %w", err)
		}

		dir := CleanPathInput(input)
		if HasExecutable(dir) {
			l.onProgress.Emit(model.LevelSuccess, fmt.Sprintf("Using folder entered by user: %s", dir))
			return &Installation{Dir: dir, Source: "prompt"}, nil
		}

		l.onProgress.Emit(model.LevelError, fmt.Sprintf("No %s in %q", ExecutableName, dir))
	}
}
