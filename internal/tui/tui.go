// Package tui provides a Bubble Tea terminal user interface for osu-music-export.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/osu-music-export/internal/config"
	"github.com/handiism/osu-music-export/internal/export"
	"github.com/handiism/osu-music-export/internal/model"
	"github.com/handiism/osu-music-export/internal/osu"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF66AA")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// errCancelled is shown when the user stops an export.
var errCancelled = errors.New("cancelled by user")

const (
	maxLogs     = 10
	maxFailures = 5
)

// State represents the current UI state.
type State int

const (
	StateLocating State = iota
	StateInput
	StateExporting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   model.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	// events carries progress from the locator and the export manager,
	// which run outside the Bubble Tea event loop.
	events chan model.ProgressEvent

	installation *osu.Installation
	manager      *export.Manager
	results      *export.Results

	processedFolders int32
	totalFolders     int32

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, verbose bool) Model {
	ti := textinput.New()
	ti.Placeholder = `C:\Users\you\AppData\Local\osu!`
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF66AA"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateLocating,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan model.ProgressEvent, 256),
		verbose:   verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.locate(), m.waitForEvent())
}

// Message types
type (
	// ProgressMsg is sent for every progress event.
	ProgressMsg struct {
		Event model.ProgressEvent
	}

	// LocateDoneMsg is sent when the automatic search completes.
	LocateDoneMsg struct {
		Installation *osu.Installation
		Err          error
	}

	// ExportDoneMsg is sent when the export run returns.
	ExportDoneMsg struct {
		Results *export.Results
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				m.cancel()
				return m, tea.Quit
			}
			if m.state == StateExporting || m.state == StateLocating {
				m.cancel()
				m.state = StateError
				m.err = errCancelled
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				return m.submitPath()
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		m.addLog(msg.Event)
		cmds = append(cmds, m.waitForEvent())

	case LocateDoneMsg:
		if m.state != StateLocating {
			break
		}
		switch {
		case msg.Err == nil:
			return m.startExport(msg.Installation)
		case errors.Is(msg.Err, osu.ErrNotInstalled):
			m.state = StateInput
			cmds = append(cmds, m.textInput.Focus())
		default:
			m.state = StateError
			m.err = msg.Err
		}

	case ExportDoneMsg:
		m.results = msg.Results
		if m.manager != nil {
			m.processedFolders, m.totalFolders = m.manager.GetProgress()
		}
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateExporting {
			m.processedFolders, m.totalFolders = m.manager.GetProgress()

			var percent float64
			if m.totalFolders > 0 {
				percent = float64(m.processedFolders) / float64(m.totalFolders)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submitPath checks the entered folder and starts the export, or asks again.
func (m Model) submitPath() (tea.Model, tea.Cmd) {
	dir := osu.CleanPathInput(m.textInput.Value())
	if !osu.HasExecutable(dir) {
		m.addLog(model.ProgressEvent{
			Message: fmt.Sprintf("No %s in %q", osu.ExecutableName, dir),
			Level:   model.LevelError,
		})
		m.textInput.SetValue("")
		return m, nil
	}

	m.textInput.Blur()
	m.addLog(model.ProgressEvent{
		Message: fmt.Sprintf("Using folder entered by user: %s", dir),
		Level:   model.LevelSuccess,
	})
	return m.startExport(&osu.Installation{Dir: dir, Source: "prompt"})
}

func (m Model) startExport(inst *osu.Installation) (tea.Model, tea.Cmd) {
	m.installation = inst
	m.manager = export.NewManager(m.settings, m.emit)
	m.state = StateExporting
	return m, tea.Batch(m.runExport(), m.tickProgress(), m.spinner.Tick)
}

func (m *Model) addLog(event model.ProgressEvent) {
	if event.Level == model.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// emit forwards a progress event to the UI, waiting for room in the
// buffer. It gives up once the run is cancelled.
func (m Model) emit(event model.ProgressEvent) {
	select {
	case m.events <- event:
	case <-m.ctx.Done():
	}
}

// waitForEvent returns a command that delivers the next progress event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// locate runs the automatic search without a prompter; the UI asks for the
// folder itself when nothing is found.
func (m Model) locate() tea.Cmd {
	ctx := m.ctx
	locator := osu.NewLocator(osu.DefaultProbes(m.settings.OsuPath), nil, m.emit)
	return func() tea.Msg {
		inst, err := locator.Locate(ctx)
		return LocateDoneMsg{Installation: inst, Err: err}
	}
}

// runExport exports in the background.
func (m Model) runExport() tea.Cmd {
	ctx, manager, inst := m.ctx, m.manager, m.installation
	return func() tea.Msg {
		results, err := manager.Run(ctx, inst)
		return ExportDoneMsg{Results: results, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ osu! Music Export"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Copy beatmap audio into a music folder"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLocating:
		b.WriteString(m.viewLocating())
	case StateInput:
		b.WriteString(m.viewInput())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLocating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Searching for osu!..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter the full path to the osu! folder:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output path: %s", m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	if m.installation != nil {
		b.WriteString(successStyle.Render("osu! folder: "))
		b.WriteString(pathStyle.Render(m.installation.Dir))
		b.WriteString("\n\n")
	}

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Folders: %d/%d", m.processedFolders, m.totalFolders)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	succeeded, failed := 0, 0
	if m.results != nil {
		succeeded, failed = m.results.Summary()
	}

	box := boxStyle.Render(fmt.Sprintf(
		"Export Complete!\n\n"+
			"Successfully processed: %d\n"+
			"With errors: %d\n"+
			"Output: %s",
		succeeded,
		failed,
		m.settings.OutputPath,
	))
	b.WriteString(box)
	b.WriteString("\n")

	if m.results != nil {
		failures := m.results.Failures()
		for i, f := range failures {
			if i == maxFailures {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(failures)-maxFailures)))
				b.WriteString("\n")
				break
			}
			b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", f.Folder.Name, f.Err)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}
	if m.results != nil {
		succeeded, failed := m.results.Summary()
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Successfully processed: %d, with errors: %d", succeeded, failed)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) percent() float64 {
	if m.totalFolders == 0 {
		return 0
	}
	return float64(m.processedFolders) / float64(m.totalFolders)
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case model.LevelError:
			style = errorStyle
			prefix = "✗"
		case model.LevelWarning:
			style = warningStyle
			prefix = "!"
		case model.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case model.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: confirm • esc: quit"
	case StateLocating, StateExporting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, verbose bool) error {
	m := NewModel(settings, verbose)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
