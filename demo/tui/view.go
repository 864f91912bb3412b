package tui

import (
	"fmt"
	"strings"

	"ainews/types"
)

const maxVisibleEntries = 15

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("AI News Aggregator"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	if m.State == StateDetail {
		if e := m.selected(); e != nil {
			b.WriteString(BoxStyle.Render(formatEntryDetail(e)))
			b.WriteString("\n\n")
		}
		b.WriteString(InfoStyle.Render("Press 'esc' to go back | Press Ctrl+C to quit"))
		return b.String()
	}

	if m.State == StateBrowsing {
		b.WriteString(m.renderEntryList())
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Up/Down to move | Enter for detail | Press 'q' to quit"))
		return b.String()
	}

	// Help text
	if m.State == StateIdle || m.State == StateError {
		b.WriteString(InfoStyle.Render("Press 'f' to fetch | Press 'q' or Ctrl+C to quit"))
	} else {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}

// renderEntryList renders a window of the entry list around the cursor
func (m Model) renderEntryList() string {
	if len(m.Entries) == 0 {
		return InfoStyle.Render("No entries in the window. Nothing new today.") + "\n"
	}

	start := 0
	if m.Cursor >= maxVisibleEntries {
		start = m.Cursor - maxVisibleEntries + 1
	}
	end := start + maxVisibleEntries
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %s", cursor, kindBadge(m.Entries[i]), entryTitle(m.Entries[i]))
		if i == m.Cursor {
			b.WriteString(StatusStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	if end < len(m.Entries) {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("   ... %d more", len(m.Entries)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func kindBadge(e types.Entry) string {
	return fmt.Sprintf("[%-6s]", e.EntryKind())
}

func entryTitle(e types.Entry) string {
	switch v := e.(type) {
	case types.VideoEntry:
		return v.Title
	case types.NewsEntry:
		return v.Title
	case types.DigestEntry:
		return v.Title
	default:
		return string(e.EntryKind())
	}
}

// formatEntryDetail formats one entry for the detail box
func formatEntryDetail(e types.Entry) string {
	var b strings.Builder

	switch v := e.(type) {
	case types.VideoEntry:
		b.WriteString(HighlightStyle.Render(v.Title))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Video: %s\n", v.VideoID))
		b.WriteString(fmt.Sprintf("URL: %s\n", v.URL))
		b.WriteString(fmt.Sprintf("Published: %s\n", v.PublishedAt.Format("2006-01-02 15:04 MST")))
		if v.Description != "" {
			b.WriteString("\n" + truncate(v.Description, 400) + "\n")
		}
		if v.Transcript != "" {
			b.WriteString("\nTranscript:\n" + InfoStyle.Render(truncate(v.Transcript, 600)) + "\n")
		} else {
			b.WriteString("\n" + InfoStyle.Render("No transcript available") + "\n")
		}
	case types.NewsEntry:
		b.WriteString(HighlightStyle.Render(v.Title))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("URL: %s\n", v.URL))
		b.WriteString(fmt.Sprintf("Published: %s\n", v.PublishedAt.Format("2006-01-02 15:04 MST")))
		if v.Content != "" {
			b.WriteString("\n" + truncate(v.Content, 800) + "\n")
		}
	case types.DigestEntry:
		b.WriteString(HighlightStyle.Render(v.Title))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("URL: %s\n", v.URL))
		b.WriteString(fmt.Sprintf("Published: %s\n", v.PublishedAt.Format("2006-01-02 15:04 MST")))
		if v.Content != "" {
			b.WriteString("\n" + truncate(v.Content, 800) + "\n")
		}
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
