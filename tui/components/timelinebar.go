package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/pkg/timeutil"
	"github.com/user/tagging-football-cli/tui/styles"
)

// TimelineBar renders a full-width progress bar with one marker per event,
// coloured by the event's template. Marker and fill positions use the
// time/duration fraction; while the duration is unknown everything maps
// to position 0.
func TimelineBar(timePos, duration float64, events []db.Event, width int) string {
	if width < 20 {
		return ""
	}

	filledStyle := lipgloss.NewStyle().Foreground(styles.Accent)
	unfilledStyle := lipgloss.NewStyle().Foreground(styles.Steel)
	timeStyle := lipgloss.NewStyle().Foreground(styles.Chalk).Bold(true)
	posStyle := lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)

	currentStr := timeutil.FormatTime(timePos)
	totalStr := timeutil.FormatTime(duration)
	timeDisplay := fmt.Sprintf(" %s / %s", currentStr, totalStr)
	timeDisplayWidth := lipgloss.Width(timeDisplay)

	barWidth := width - timeDisplayWidth - 2
	if barWidth < 10 {
		barWidth = 10
	}

	var fillPos int
	if duration > 0 {
		fillPos = int(math.Round(float64(barWidth) * timePos / duration))
	}
	if fillPos < 0 {
		fillPos = 0
	}
	if fillPos > barWidth {
		fillPos = barWidth
	}

	// One marker colour per cell; the last event landing on a cell wins.
	markerColors := make([]string, barWidth)
	if duration > 0 {
		for _, ev := range events {
			pos := int(math.Round(float64(barWidth-1) * ev.TimestampStart / duration))
			if pos >= 0 && pos < barWidth {
				markerColors[pos] = ev.TemplateColor
			}
		}
	}

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		switch {
		case markerColors[i] != "":
			bar.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(markerColors[i])).Render("◆"))
		case i < fillPos:
			bar.WriteString(filledStyle.Render("━"))
		case i == fillPos:
			bar.WriteString(posStyle.Render("╸"))
		default:
			bar.WriteString(unfilledStyle.Render("─"))
		}
	}

	return " " + bar.String() + " " + timeStyle.Render(timeDisplay)
}
