// Package styles provides Lipgloss styles for the TUI using a slate/night
// palette matched to the dark pitch-side look of the app.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	// Night is the main background colour.
	Night = lipgloss.Color("#0f172a")
	// Slate is a secondary dark background.
	Slate = lipgloss.Color("#1e293b")
	// Steel is the border/dim accent colour.
	Steel = lipgloss.Color("#475569")
	// Mist is a secondary text colour.
	Mist = lipgloss.Color("#94a3b8")
	// Chalk is the primary text colour.
	Chalk = lipgloss.Color("#e2e8f0")
	// Accent is the primary accent for headers and focus states.
	Accent = lipgloss.Color("#3b82f6")
	// Grass is used for success messages and live indicators.
	Grass = lipgloss.Color("#22c55e")
	// Card is used for warnings and errors.
	Card = lipgloss.Color("#ef4444")
	// Amber is a warm accent for sub-headers and marks.
	Amber = lipgloss.Color("#f59e0b")
)

// Header is the style for section headers.
var Header = lipgloss.NewStyle().
	Foreground(Accent).
	Bold(true)

// PrimaryText is the style for primary text content.
var PrimaryText = lipgloss.NewStyle().
	Foreground(Chalk)

// SecondaryText is the style for less prominent text.
var SecondaryText = lipgloss.NewStyle().
	Foreground(Mist)

// Highlight is the style for selected/highlighted items.
var Highlight = lipgloss.NewStyle().
	Background(Steel).
	Foreground(Chalk).
	Bold(true)

// Warning is the style for warning and error messages.
var Warning = lipgloss.NewStyle().
	Foreground(Card).
	Bold(true)

// Success is the style for success messages.
var Success = lipgloss.NewStyle().
	Foreground(Grass).
	Bold(true)

// Swatch renders a template colour chip for the given hex colour.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
