package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchEntries creates a command that runs the aggregator
func fetchEntries(runner Runner, hours int) tea.Cmd {
	return func() tea.Msg {
		entries := runner.Run(context.Background(), hours)
		return FetchCompleteMsg{Entries: entries}
	}
}
