package tui

import "ainews/types"

// FetchCompleteMsg is sent when the aggregator run finishes
type FetchCompleteMsg struct {
	Entries []types.Entry
}
