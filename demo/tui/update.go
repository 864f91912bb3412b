package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case FetchCompleteMsg:
		return m.handleFetchComplete(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.State == StateDetail {
			m.State = StateBrowsing
			return m, nil
		}
		return m, tea.Quit
	case "f", "F":
		if m.State == StateIdle || m.State == StateError {
			m.State = StateFetching
			return m, fetchEntries(m.Runner, m.Hours)
		}
	case "up", "k":
		if m.State == StateBrowsing && m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.State == StateBrowsing && m.Cursor < len(m.Entries)-1 {
			m.Cursor++
		}
	case "enter":
		if m.State == StateBrowsing && m.selected() != nil {
			m.State = StateDetail
		}
	case "esc":
		if m.State == StateDetail {
			m.State = StateBrowsing
		}
	}
	return m, nil
}

// handleFetchComplete processes aggregator completion
func (m Model) handleFetchComplete(msg FetchCompleteMsg) (tea.Model, tea.Cmd) {
	m.Entries = msg.Entries
	m.Cursor = 0
	m.State = StateBrowsing
	return m, nil
}
