package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ainews/types"
)

// State represents the viewer state machine
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateBrowsing State = "browsing"
	StateDetail   State = "detail"
	StateError    State = "error"
)

// Runner produces the combined entry list for a look-back window.
type Runner interface {
	Run(ctx context.Context, hours int) []types.Entry
}

// Model represents the viewer state
type Model struct {
	Runner Runner
	Hours  int

	State   State
	Entries []types.Entry
	Cursor  int
	Err     error
}

// NewModel creates a new viewer model
func NewModel(runner Runner, hours int) Model {
	return Model{
		Runner: runner,
		Hours:  hours,
		State:  StateIdle,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateIdle:
		return HighlightStyle.Render("Ready to fetch") + "\n\n" +
			InfoStyle.Render(fmt.Sprintf("Press 'f' to fetch the last %d hours", m.Hours))
	case StateFetching:
		return StatusStyle.Render(fmt.Sprintf("Fetching all sources (last %d hours)...", m.Hours))
	case StateBrowsing, StateDetail:
		return HighlightStyle.Render(fmt.Sprintf("%d entries", len(m.Entries)))
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render("Error: " + errMsg)
	default:
		return ""
	}
}

func (m Model) selected() types.Entry {
	if m.Cursor < 0 || m.Cursor >= len(m.Entries) {
		return nil
	}
	return m.Entries[m.Cursor]
}
