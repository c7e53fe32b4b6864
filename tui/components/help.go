package components

import (
	"strings"

	"github.com/user/tagging-football-cli/tui/styles"
)

// helpRows lists every key binding shown in the help overlay.
var helpRows = []struct {
	key, action string
}{
	{"space", "Play / pause"},
	{"← / →", "Seek back / forward by step"},
	{"< / >", "Decrease / increase step size"},
	{"[ / ]", "Decrease / increase playback speed"},
	{"p s t i d f …", "Tag with the template bound to that key"},
	{"m", "Mark in-point; the next tag closes a range event"},
	{"esc", "Clear pending in-point"},
	{"j / k", "Move selection down / up"},
	{"enter", "Jump playback to the selected event"},
	{"n", "Edit notes of the selected event"},
	{"x", "Delete the selected event (asks first)"},
	{"c", "Cycle category filter"},
	{"o", "Toggle sort: time / type"},
	{"r", "Reload events from the database"},
	{"u", "Toggle mute"},
	{"?", "Toggle this help"},
	{"q", "Quit"},
}

// HelpOverlay renders the key binding reference. Any key dismisses it.
func HelpOverlay(width, height int) string {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, styles.Header.Render("  Key bindings"))
	lines = append(lines, "")
	for _, row := range helpRows {
		key := styles.Success.Render("  " + pad(row.key, 16))
		lines = append(lines, key+styles.PrimaryText.Render(row.action))
	}
	lines = append(lines, "")
	lines = append(lines, styles.SecondaryText.Render("  Press any key to close"))

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
