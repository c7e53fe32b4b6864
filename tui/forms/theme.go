// Package forms provides huh-based forms for match, template, and player
// creation, plus confirmation prompts.
package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/tagging-football-cli/tui/styles"
)

// Theme returns a custom huh theme that matches the TUI color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Accent).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Mist)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Card).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Card)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		SetString("▸ ").
		Foreground(styles.Grass)

	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Chalk)

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Grass)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Grass)

	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Steel)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Grass)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Chalk)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Accent).
		Foreground(styles.Chalk).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Steel).
		Foreground(styles.Mist).
		Padding(0, 1)

	t.Focused.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)

	t.Focused.Next = t.Focused.FocusedButton

	// Blurred field styles
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Mist)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(styles.Steel)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Mist)

	t.Blurred.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Mist)

	return t
}
