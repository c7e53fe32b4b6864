package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/user/tagging-football-cli/tui/styles"
)

// NoteInputState holds the inline notes editor for the selected event.
// While Active, all tagging and transport keys are suppressed so typing a
// note never triggers a tag.
type NoteInputState struct {
	// Active indicates the editor has focus
	Active bool
	// EventID is the event being edited
	EventID int64
	// Value is the current text
	Value string
}

// Open starts editing the given event's notes with an initial value.
func (s *NoteInputState) Open(eventID int64, initial string) {
	s.Active = true
	s.EventID = eventID
	s.Value = initial
}

// Clear resets the editor.
func (s *NoteInputState) Clear() {
	s.Active = false
	s.EventID = 0
	s.Value = ""
}

// InsertRune appends a character.
func (s *NoteInputState) InsertRune(r rune) {
	s.Value += string(r)
}

// Backspace deletes the last character.
func (s *NoteInputState) Backspace() {
	if len(s.Value) > 0 {
		runes := []rune(s.Value)
		s.Value = string(runes[:len(runes)-1])
	}
}

// NoteInput renders the notes editor line.
func NoteInput(state NoteInputState, width int) string {
	promptStyle := lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)
	inputStyle := lipgloss.NewStyle().Foreground(styles.Chalk)
	hintStyle := lipgloss.NewStyle().Foreground(styles.Steel)

	line := promptStyle.Render(" notes> ") + inputStyle.Render(state.Value) +
		inputStyle.Render("█") + hintStyle.Render("  (enter to save, esc to cancel)")
	if lipgloss.Width(line) > width {
		return line[:width]
	}
	return line
}
