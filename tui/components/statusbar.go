// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/tagging-football-cli/pkg/timeutil"
	"github.com/user/tagging-football-cli/tui/styles"
)

// StatusBarState holds the current playback state for the status bar.
type StatusBarState struct {
	// MatchName is the display name of the open match
	MatchName string
	// Playing indicates if playback is advancing
	Playing bool
	// Ready is false until the video duration is known
	Ready bool
	// Muted indicates if audio is muted
	Muted bool
	// TimePos is the current playback position in seconds
	TimePos float64
	// Duration is the total video duration in seconds
	Duration float64
	// StepSize is the current seek step size in seconds
	StepSize float64
	// Speed is the playback rate
	Speed float64
}

// StatusBar renders the status bar component: match name, play state,
// position/duration, step size, and speed/mute indicators.
func StatusBar(state StatusBarState, width int) string {
	var playIcon string
	switch {
	case !state.Ready:
		playIcon = "…"
	case state.Playing:
		playIcon = "▶"
	default:
		playIcon = "⏸"
	}

	timeStr := timeutil.FormatTime(state.TimePos)
	durationStr := timeutil.FormatTime(state.Duration)

	var muteIcon string
	if state.Muted {
		muteIcon = " 🔇"
	}
	var speedStr string
	if state.Speed > 0 && state.Speed != 1 {
		speedStr = fmt.Sprintf(" %.2gx", state.Speed)
	}

	leftContent := fmt.Sprintf(" %s %s / %s  %s", playIcon, timeStr, durationStr, state.MatchName)
	rightContent := fmt.Sprintf("Step: %s%s%s ", formatStepSize(state.StepSize), speedStr, muteIcon)

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	padding := width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	content := leftContent + spaces(padding) + rightContent

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.Slate).
		Foreground(styles.Chalk).
		Bold(true).
		Width(width)

	return statusBarStyle.Render(content)
}

// formatStepSize formats the step size for display.
// Shows a decimal for values less than 1, otherwise a whole number.
func formatStepSize(stepSize float64) string {
	if stepSize < 1 {
		return fmt.Sprintf("%.1fs", stepSize)
	}
	return fmt.Sprintf("%.0fs", stepSize)
}

func spaces(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
