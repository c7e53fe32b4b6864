package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/pkg/timeutil"
	"github.com/user/tagging-football-cli/tui/styles"
)

// EventsListState holds the state for the events list column.
type EventsListState struct {
	// Events is the current projection (filtered/sorted) being shown
	Events []db.Event
	// SelectedIndex is the currently selected row
	SelectedIndex int
	// ScrollOffset is the scroll position
	ScrollOffset int
}

// MoveUp moves the selection one row up.
func (s *EventsListState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection one row down.
func (s *EventsListState) MoveDown() {
	if s.SelectedIndex < len(s.Events)-1 {
		s.SelectedIndex++
	}
}

// Selected returns the selected event, or nil when the list is empty.
func (s *EventsListState) Selected() *db.Event {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Events) {
		return nil
	}
	return &s.Events[s.SelectedIndex]
}

// EventsList renders the scrollable events column. Each row shows the
// template colour swatch and name, the time (or time range) and any notes.
// The selected row is highlighted.
func EventsList(state EventsListState, width, height int) string {
	var lines []string

	header := fmt.Sprintf(" Events (%d)", len(state.Events))
	lines = append(lines, styles.Header.Render(header))

	visibleRows := height - 1
	if visibleRows < 1 {
		visibleRows = 1
	}

	if len(state.Events) == 0 {
		empty := lipgloss.NewStyle().Foreground(styles.Steel).Italic(true)
		lines = append(lines, empty.Render(" No events yet"))
		lines = append(lines, empty.Render(" Start tagging to see events here"))
		return strings.Join(lines, "\n")
	}

	// Keep the selected row within the visible window.
	offset := state.ScrollOffset
	if state.SelectedIndex < offset {
		offset = state.SelectedIndex
	} else if state.SelectedIndex >= offset+visibleRows {
		offset = state.SelectedIndex - visibleRows + 1
	}
	if offset < 0 {
		offset = 0
	}

	for i := offset; i < len(state.Events) && i < offset+visibleRows; i++ {
		ev := state.Events[i]

		timeStr := timeutil.FormatRange(ev.TimestampStart, ev.TimestampEnd)
		name := ev.TemplateName
		if name == "" {
			name = "?"
		}

		row := fmt.Sprintf(" %s %-13s %s", styles.Swatch(ev.TemplateColor), name, timeStr)
		if ev.Notes != nil && *ev.Notes != "" {
			notes := *ev.Notes
			maxNotes := width - lipgloss.Width(row) - 4
			if maxNotes > 3 && len(notes) > maxNotes {
				notes = notes[:maxNotes-3] + "..."
			}
			if maxNotes > 0 {
				row += "  " + styles.SecondaryText.Render(notes)
			}
		}

		if i == state.SelectedIndex {
			row = styles.Highlight.Width(width).Render(row)
		} else {
			row = styles.PrimaryText.Render(row)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}
