package forms

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

// MatchFormResult holds the data returned by a completed match form.
type MatchFormResult struct {
	Name      string
	Date      string
	VideoPath string
}

// NewMatchForm creates a huh form for match creation. The video file is
// chosen through a file picker constrained to the configured video
// extensions; picking a file is the app's only file-dialog surface.
func NewMatchForm(result *MatchFormResult, videoExtensions []string) *huh.Form {
	allowed := make([]string, len(videoExtensions))
	for i, ext := range videoExtensions {
		allowed[i] = "." + ext
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New Match"),

			huh.NewInput().
				Title("Name").
				Description("e.g. Arsenal vs Chelsea").
				Value(&result.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&result.Date).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("date is required")
					}
					return nil
				}),

			huh.NewFilePicker().
				Title("Video file").
				AllowedTypes(allowed).
				ShowHidden(false).
				ShowSize(true).
				ShowPermissions(false).
				Value(&result.VideoPath),
		),
	).WithTheme(Theme())
}

// TemplateFormResult holds the data returned by a completed template form.
type TemplateFormResult struct {
	Name     string
	Color    string
	Shortcut string
}

// NewTemplateForm creates a huh form for event template creation.
func NewTemplateForm(result *TemplateFormResult) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New Event Template"),

			huh.NewInput().
				Title("Name").
				Description("Must be unique").
				Value(&result.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Color").
				Description("Hex, e.g. #3b82f6").
				Value(&result.Color).
				Validate(func(s string) error {
					if len(s) != 7 || s[0] != '#' {
						return fmt.Errorf("expected #rrggbb")
					}
					return nil
				}),

			huh.NewInput().
				Title("Shortcut key").
				Description("Optional single character").
				Value(&result.Shortcut).
				Validate(func(s string) error {
					if len(s) > 1 {
						return fmt.Errorf("one character only")
					}
					return nil
				}),
		),
	).WithTheme(Theme())
}

// PlayerFormResult holds the data returned by a completed player form.
type PlayerFormResult struct {
	Name   string
	Team   string
	Jersey string
}

// JerseyNumber parses the jersey field, returning nil when empty.
func (r *PlayerFormResult) JerseyNumber() (*int64, error) {
	if r.Jersey == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(r.Jersey, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid jersey number: %s", r.Jersey)
	}
	return &n, nil
}

// NewPlayerForm creates a huh form for player creation.
func NewPlayerForm(result *PlayerFormResult) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New Player"),

			huh.NewInput().
				Title("Name").
				Value(&result.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Team").
				Description("Optional").
				Value(&result.Team),

			huh.NewInput().
				Title("Jersey number").
				Description("Optional").
				Value(&result.Jersey).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := strconv.ParseInt(s, 10, 64); err != nil {
						return fmt.Errorf("must be a number")
					}
					return nil
				}),
		),
	).WithTheme(Theme())
}

// NewConfirmDeleteForm creates a huh confirm form gating event deletion.
// The result pointer is bound to the confirm field value.
func NewConfirmDeleteForm(what string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", what)).
				Description("There is no undo.").
				Affirmative("Delete").
				Negative("Keep").
				Value(confirmed),
		),
	).WithTheme(Theme())
}
