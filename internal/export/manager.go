package export

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/handiism/osu-music-export/internal/audio"
	"github.com/handiism/osu-music-export/internal/config"
	ioutils "github.com/handiism/osu-music-export/internal/io"
	"github.com/handiism/osu-music-export/internal/model"
	"github.com/handiism/osu-music-export/internal/osu"
)

// Tagger writes artist/title metadata into an exported file.
type Tagger interface {
	SetTags(path string, tags audio.Tags) error
}

// Manager coordinates the export of every song folder of an installation.
type Manager struct {
	settings   *config.Settings
	tagger     Tagger
	images     *ioutils.ImageService
	playlist   *audio.PlaylistCreator
	onProgress model.ProgressFunc

	totalFolders     int32
	processedFolders int32
}

// NewManager creates a new export Manager.
//
// Tagging is decided here, once: with settings.ModifyTags the ID3 tagger is
// enabled, otherwise exported files are left untagged for the whole run.
func NewManager(settings *config.Settings, onProgress model.ProgressFunc) *Manager {
	playlistFormat, err := audio.ParsePlaylistFormat(settings.PlaylistFormat)
	if err != nil {
		playlistFormat = audio.FormatM3U
	}

	m := &Manager{
		settings:   settings,
		images:     ioutils.NewImageService(),
		playlist:   audio.NewPlaylistCreator(playlistFormat, settings.M3UExtended),
		onProgress: onProgress,
	}
	if settings.ModifyTags {
		m.tagger = audio.NewTagger(audio.DefaultTagConfig())
	}
	return m
}

// UseTagger replaces the tagger. A nil tagger disables tagging.
func (m *Manager) UseTagger(t Tagger) {
	m.tagger = t
}

// TaggingEnabled reports whether exported MP3 files get ID3 tags.
func (m *Manager) TaggingEnabled() bool {
	return m.tagger != nil
}

// GetProgress returns how many song folders have been handled so far and
// how many there are in total. Safe to call from another goroutine.
func (m *Manager) GetProgress() (processed, total int32) {
	return atomic.LoadInt32(&m.processedFolders), atomic.LoadInt32(&m.totalFolders)
}

// Run exports every song folder of the installation into the output folder.
//
// A missing Songs folder is fatal and returns ErrSongsNotFound with no
// results. Errors of individual folders are recorded in the returned Results
// and never stop the run. If ctx is cancelled, Run stops before the next
// folder and returns the results so far together with ctx.Err().
func (m *Manager) Run(ctx context.Context, inst *osu.Installation) (*Results, error) {
	return m.process(ctx, inst, false)
}

// Plan resolves every song folder like Run but copies nothing.
func (m *Manager) Plan(ctx context.Context, inst *osu.Installation) (*Results, error) {
	return m.process(ctx, inst, true)
}

func (m *Manager) process(ctx context.Context, inst *osu.Installation, dryRun bool) (*Results, error) {
	songsDir := inst.SongsDir()
	if !ioutils.DirExists(songsDir) {
		return nil, fmt.Errorf("%w: %s", ErrSongsNotFound, songsDir)
	}
	m.progress(model.LevelInfo, fmt.Sprintf("Songs folder: %s", songsDir))

	names, err := ioutils.ListDirs(songsDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", songsDir, err)
	}

	if !dryRun {
		if err := ioutils.EnsureDir(m.settings.OutputPath); err != nil {
			return nil, fmt.Errorf("create output folder: %w", err)
		}
		if !m.TaggingEnabled() {
			m.progress(model.LevelInfo, "ID3 tagging is disabled for this run")
		}
	}

	atomic.StoreInt32(&m.totalFolders, int32(len(names)))
	atomic.StoreInt32(&m.processedFolders, 0)

	results := NewResults()
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		folder := model.NewSongFolder(songsDir, name)
		if m.skip(folder) {
			m.progress(model.LevelVerbose, fmt.Sprintf("Skipping %s", folder.Name))
			atomic.AddInt32(&m.processedFolders, 1)
			continue
		}

		var plan *model.ExportPlan
		if dryRun {
			plan, _, err = m.planFolder(folder)
		} else {
			plan, err = m.exportFolder(ctx, folder)
		}

		if err != nil {
			results.RecordFailure(folder, err)
			m.progress(model.LevelError, err.Error())
		} else {
			results.RecordSuccess(folder, plan)
			if dryRun {
				m.progress(model.LevelInfo, fmt.Sprintf("%s -> %s", folder.Name, plan.FileName))
			} else {
				m.progress(model.LevelSuccess, fmt.Sprintf("Copied: %s", plan.FileName))
			}
		}
		atomic.AddInt32(&m.processedFolders, 1)
	}

	if !dryRun && m.settings.CreatePlaylist {
		m.writePlaylist(ctx, results.Plans())
	}

	return results, nil
}

// skip reports whether a folder stays out of the pipeline entirely.
func (m *Manager) skip(folder model.SongFolder) bool {
	if folder.IsReserved() {
		return true
	}
	for _, pattern := range m.settings.SkipPatterns {
		if ok, _ := doublestar.Match(pattern, folder.Name); ok {
			return true
		}
	}
	return false
}

// planFolder reads the descriptor and derives the export plan.
func (m *Manager) planFolder(folder model.SongFolder) (*model.ExportPlan, *osu.Descriptor, error) {
	desc, err := osu.ReadSong(folder)
	if err != nil {
		return nil, nil, err
	}

	plan, err := model.NewExportPlan(folder, desc.AudioFilename)
	if err != nil {
		return nil, nil, err
	}
	return plan, desc, nil
}

// exportFolder copies the song's audio into the output folder and tags it.
// Tagging problems are reported as warnings and do not fail the export.
func (m *Manager) exportFolder(ctx context.Context, folder model.SongFolder) (*model.ExportPlan, error) {
	plan, desc, err := m.planFolder(folder)
	if err != nil {
		return nil, err
	}

	target := plan.TargetPath(m.settings.OutputPath)
	if _, err := ioutils.CopyFile(ctx, plan.SourcePath, target); err != nil {
		return nil, fmt.Errorf("copy %s: %w", plan.SourcePath, err)
	}

	if m.tagger != nil && plan.IsMP3() {
		tags := audio.Tags{
			Artist: plan.Artist,
			Title:  plan.Title,
			Cover:  m.loadCover(ctx, desc),
		}
		if err := m.tagger.SetTags(target, tags); err != nil {
			m.progress(model.LevelWarning, fmt.Sprintf("Could not set tags for %s: %v", plan.FileName, err))
		}
	}

	return plan, nil
}

// loadCover returns the song background as JPEG cover art, or nil when
// covers are disabled or the background cannot be used.
func (m *Manager) loadCover(ctx context.Context, desc *osu.Descriptor) []byte {
	if !m.settings.EmbedBackground {
		return nil
	}
	path := desc.BackgroundPath()
	if path == "" {
		return nil
	}

	cover, err := m.images.LoadCover(ctx, path, m.settings.CoverMaxSize)
	if err != nil {
		m.progress(model.LevelVerbose, fmt.Sprintf("No cover from %s: %v", filepath.Base(path), err))
		return nil
	}
	return cover
}

func (m *Manager) writePlaylist(ctx context.Context, plans []*model.ExportPlan) {
	if len(plans) == 0 {
		return
	}

	content := m.playlist.CreatePlaylist(m.settings.PlaylistFileName, plans)
	path := m.settings.PlaylistPath()
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		m.progress(model.LevelWarning, fmt.Sprintf("Error creating playlist: %v", err))
		return
	}
	m.progress(model.LevelSuccess, fmt.Sprintf("Created playlist %s", filepath.Base(path)))
}

func (m *Manager) progress(level model.ProgressLevel, message string) {
	m.onProgress.Emit(level, message)
}
