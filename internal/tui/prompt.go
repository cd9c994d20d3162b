package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptAborted is returned when the user leaves the path prompt
// without entering anything.
var ErrPromptAborted = errors.New("prompt aborted")

// PathPrompt asks for a folder with an inline text input. It satisfies
// osu.Prompter and is meant for interactive terminals.
type PathPrompt struct {
	options []tea.ProgramOption
}

// NewPathPrompt creates a PathPrompt. Options are passed to the underlying
// Bubble Tea program (for example tea.WithInput in tests).
func NewPathPrompt(options ...tea.ProgramOption) *PathPrompt {
	return &PathPrompt{options: options}
}

// PromptPath shows prompt and returns the entered text once the user
// presses enter.
func (p *PathPrompt) PromptPath(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.options...)
	final, err := tea.NewProgram(newPromptModel(prompt), options...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", err
	}

	result := final.(promptModel)
	if result.aborted {
		return "", ErrPromptAborted
	}
	return result.value, nil
}

// promptModel is a single-line text input that quits on enter.
type promptModel struct {
	prompt  string
	input   textinput.Model
	value   string
	done    bool
	aborted bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Placeholder = `C:\Users\you\AppData\Local\osu!`
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	return promptModel{prompt: strings.TrimSpace(prompt), input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return subtitleStyle.Render(m.prompt) + "\n" +
		m.input.View() + "\n" +
		dimStyle.Render("enter: confirm • esc: cancel") + "\n"
}
