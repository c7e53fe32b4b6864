package components

import (
	"fmt"
	"strings"

	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/pkg/timeutil"
	"github.com/user/tagging-football-cli/tui/styles"
)

// PaletteState holds what the template palette column needs to render.
type PaletteState struct {
	// Templates is the full name-ordered catalog
	Templates []db.EventTemplate
	// Counts maps template id to the number of events carrying it
	Counts map[int64]int
	// FilterID is the active category filter, 0 for all
	FilterID int64
	// SortByType is true when the list is ordered by template name
	SortByType bool
	// MarkIn is the pending in-point for a range event, nil when unset
	MarkIn *float64
}

// Palette renders the template palette column: one row per template with
// colour swatch, name, shortcut key, and event count, plus the current
// filter/sort state and any pending in-point.
func Palette(state PaletteState, width int) string {
	var lines []string

	lines = append(lines, styles.Header.Render(" Templates"))

	for _, t := range state.Templates {
		shortcut := " "
		if t.ShortcutKey != nil && *t.ShortcutKey != "" {
			shortcut = *t.ShortcutKey
		}
		count := state.Counts[t.ID]
		row := fmt.Sprintf(" %s [%s] %-13s %3d", styles.Swatch(t.Color), shortcut, t.Name, count)

		if state.FilterID == t.ID {
			row = styles.Highlight.Width(width).Render(row)
		} else {
			row = styles.PrimaryText.Render(row)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "")
	if state.FilterID == 0 {
		lines = append(lines, styles.SecondaryText.Render(" Filter: all  [c]"))
	} else {
		lines = append(lines, styles.SecondaryText.Render(" Filter: on   [c]"))
	}
	if state.SortByType {
		lines = append(lines, styles.SecondaryText.Render(" Sort: type   [o]"))
	} else {
		lines = append(lines, styles.SecondaryText.Render(" Sort: time   [o]"))
	}

	if state.MarkIn != nil {
		lines = append(lines, "")
		mark := fmt.Sprintf(" In point: %s", timeutil.FormatTime(*state.MarkIn))
		lines = append(lines, styles.Success.Render(mark))
		lines = append(lines, styles.SecondaryText.Render(" Press a shortcut to close the range"))
	}

	return strings.Join(lines, "\n")
}
