package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/osu-music-export/internal/config"
	"github.com/handiism/osu-music-export/internal/export"
	"github.com/handiism/osu-music-export/internal/model"
	"github.com/handiism/osu-music-export/internal/osu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	settings := config.DefaultSettings()
	settings.OutputPath = filepath.Join(t.TempDir(), config.DefaultOutputFolder)
	return NewModel(settings, false)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func typePath(t *testing.T, m Model, path string) Model {
	t.Helper()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(path)})
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_NotFoundAsksForPath(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, StateLocating, m.state)

	m = update(t, m, LocateDoneMsg{Err: osu.ErrNotInstalled})
	assert.Equal(t, StateInput, m.state)
	assert.Contains(t, m.View(), "Enter the full path to the osu! folder")
}

func TestModel_LocateFailure(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LocateDoneMsg{Err: errors.New("boom")})
	assert.Equal(t, StateError, m.state)
	assert.Contains(t, m.View(), "boom")
}

func TestModel_InvalidPathAsksAgain(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LocateDoneMsg{Err: osu.ErrNotInstalled})

	m = typePath(t, m, t.TempDir())
	assert.Equal(t, StateInput, m.state)
	assert.Empty(t, m.textInput.Value())
	require.NotEmpty(t, m.logs)
	assert.Equal(t, model.LevelError, m.logs[len(m.logs)-1].Level)
}

func TestModel_ValidPathStartsExport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, osu.ExecutableName), nil, 0o644))

	m := newTestModel(t)
	m = update(t, m, LocateDoneMsg{Err: osu.ErrNotInstalled})
	m = typePath(t, m, `"`+dir+`"`)

	assert.Equal(t, StateExporting, m.state)
	require.NotNil(t, m.installation)
	assert.Equal(t, dir, m.installation.Dir)
	assert.Equal(t, "prompt", m.installation.Source)
	assert.NotNil(t, m.manager)
}

func TestModel_ExportComplete(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LocateDoneMsg{Installation: &osu.Installation{Dir: t.TempDir(), Source: "test"}})
	require.Equal(t, StateExporting, m.state)

	results := export.NewResults()
	results.RecordSuccess(model.SongFolder{Name: "1 A - B"}, &model.ExportPlan{FileName: "A - B.mp3"})
	results.RecordFailure(model.SongFolder{Name: "2 Broken"}, errors.New("no descriptor"))

	m = update(t, m, ExportDoneMsg{Results: results})
	assert.Equal(t, StateComplete, m.state)

	view := m.View()
	assert.Contains(t, view, "Successfully processed: 1")
	assert.Contains(t, view, "With errors: 1")
	assert.Contains(t, view, "2 Broken")
}

func TestModel_EscCancelsExport(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, LocateDoneMsg{Installation: &osu.Installation{Dir: t.TempDir(), Source: "test"}})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateError, m.state)
	assert.ErrorIs(t, m.err, errCancelled)
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)
}

func TestModel_VerboseLogsFiltered(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, ProgressMsg{Event: model.ProgressEvent{Message: "hidden", Level: model.LevelVerbose}})
	m = update(t, m, ProgressMsg{Event: model.ProgressEvent{Message: "shown", Level: model.LevelInfo}})

	require.Len(t, m.logs, 1)
	assert.Equal(t, "shown", m.logs[0].Message)
}

func TestModel_LogsAreCapped(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: model.ProgressEvent{Message: "line", Level: model.LevelInfo}})
	}
	assert.Len(t, m.logs, maxLogs)
}

func TestPromptModel(t *testing.T) {
	m := newPromptModel("Enter the full path to the osu! folder: ")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(`D:\Games\osu!`)})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result := next.(promptModel)
	assert.True(t, result.done)
	assert.Equal(t, `D:\Games\osu!`, result.value)
	assert.NotNil(t, cmd)
	assert.Empty(t, result.View())
}

func TestPromptModel_Abort(t *testing.T) {
	next, _ := newPromptModel("path: ").Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(promptModel).aborted)
}

func TestPathPrompt_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPathPrompt().PromptPath(ctx, "path: ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestModel_EmitKeepsEveryEvent(t *testing.T) {
	m := newTestModel(t)
	total := cap(m.events) * 2

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			m.emit(model.ProgressEvent{Message: "line", Level: model.LevelError})
		}
	}()

	received := 0
	for received < total {
		msg := m.waitForEvent()()
		require.IsType(t, ProgressMsg{}, msg)
		received++
	}
	<-done
	assert.Equal(t, total, received)
}

func TestModel_EmitStopsAfterCancel(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < cap(m.events); i++ {
		m.emit(model.ProgressEvent{Message: "fill", Level: model.LevelInfo})
	}
	m.cancel()

	done := make(chan struct{})
	go func() {
		m.emit(model.ProgressEvent{Message: "late", Level: model.LevelInfo})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("emit blocked after cancellation")
	}
}
