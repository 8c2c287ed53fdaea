// Package tui renders the session listing and reads one line of input.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simon/muxpick/internal/session"
)

// ErrCancelled is returned when the user aborts the prompt. It is distinct
// from submitting an empty line.
var ErrCancelled = errors.New("prompt cancelled")

// Request describes one prompt.
type Request struct {
	Authority   string
	Host        string
	Sessions    []session.Record
	Letters     *session.LetterMap
	Placeholder string
	// Validate may reject the submitted line; the reason is shown inline
	// and the prompt stays open.
	Validate func(string) error
}

type Model struct {
	req       Request
	input     textinput.Model
	err       error
	now       time.Time
	Value     string // submitted line, set once the prompt completes
	Cancelled bool
	done      bool
}

func NewModel(req Request) Model {
	if req.Letters == nil {
		req.Letters = session.NewLetterMap(req.Sessions)
	}

	ti := textinput.New()
	ti.Placeholder = req.Placeholder
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{
		req:   req,
		input: ti,
		now:   time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 8 {
			m.input.Width = msg.Width - 4
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.CtrlC) || key.Matches(msg, keys.Escape) {
		m.Cancelled = true
		m.done = true
		return m, tea.Quit
	}

	if key.Matches(msg, keys.Enter) {
		value := m.input.Value()
		if m.req.Validate != nil {
			if err := m.req.Validate(value); err != nil {
				m.err = err
				return m, nil
			}
		}
		m.Value = value
		m.done = true
		return m, tea.Quit
	}

	// Editing clears a stale validation message
	m.err = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Err returns the current validation message, if any.
func (m Model) Err() error {
	return m.err
}

// Prompt shows the listing and blocks until the user submits a valid line
// or cancels.
func Prompt(ctx context.Context, req Request) (string, error) {
	p := tea.NewProgram(NewModel(req), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt: %w", err)
	}

	m := final.(Model)
	if m.Cancelled {
		return "", ErrCancelled
	}
	return m.Value, nil
}
