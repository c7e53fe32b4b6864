// Package tui is the Bubbletea interface for a tagging session: playback
// control, the template palette, the events list, and the timeline bar.
package tui

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/tagging-football-cli/config"
	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/mpv"
	"github.com/user/tagging-football-cli/pkg/timeutil"
	"github.com/user/tagging-football-cli/session"
	"github.com/user/tagging-football-cli/timeline"
	"github.com/user/tagging-football-cli/tui/components"
	"github.com/user/tagging-football-cli/tui/styles"
)

const (
	// tickInterval is the interval for polling mpv status.
	tickInterval = 100 * time.Millisecond
	// resultDisplayDuration is how long to show action results.
	resultDisplayDuration = 3 * time.Second
	// minTerminalWidth is the minimum terminal width for the two-column layout.
	minTerminalWidth = 72
	// paletteWidth is the width of the template palette column.
	paletteWidth = 34
)

// stepSizes defines the available step sizes for seek operations.
// Users cycle through these with < and > keys.
var stepSizes = []float64{0.5, 1, 2, 5, 10, 30}

// speedSteps defines the available playback rates, cycled with [ and ].
var speedSteps = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 2}

// tickMsg is a message sent on every tick interval to update playback status.
type tickMsg time.Time

// clearResultMsg is sent to clear the result message.
type clearResultMsg struct{}

// Model is the Bubbletea model for a tagging session.
type Model struct {
	client   *mpv.Client
	database *sql.DB
	cfg      *config.Config

	sess   *session.Session
	events *timeline.Model
	tagger *session.Tagger
	match  *db.Match

	width  int
	height int

	stepSize float64
	speed    float64
	muted    bool

	filterID int64
	sortMode timeline.SortMode
	list     components.EventsListState

	noteInput     components.NoteInputState
	pendingDelete *db.Event
	markIn        *float64

	showHelp  bool
	result    string
	resultErr bool
	quitting  bool
	err       error
}

// NewModel creates a session model for one open match.
func NewModel(client *mpv.Client, database *sql.DB, cfg *config.Config, match *db.Match) *Model {
	sess := session.New(client)
	events := timeline.New()
	return &Model{
		client:   client,
		database: database,
		cfg:      cfg,
		sess:     sess,
		events:   events,
		tagger:   session.NewTagger(database, sess, events),
		match:    match,
		stepSize: cfg.StepSize,
		speed:    1,
	}
}

// Init starts the ticker for polling mpv status.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd returns a command that sends a tickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.sess.SyncFromTransport()
		return m, tickCmd()

	case clearResultMsg:
		m.result = ""
		m.resultErr = false
		return m, nil

	case tea.KeyMsg:
		// Help overlay - any key dismisses it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		// While the notes editor has focus, every key belongs to it:
		// typing must never tag or drive the transport.
		if m.noteInput.Active {
			return m.handleNoteInput(msg)
		}
		if m.pendingDelete != nil {
			return m.handleConfirmDelete(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

// handleNormalKey dispatches a keypress in normal mode. The switch makes
// keys mutually exclusive per press: a key is a transport/UI command or a
// tag-by-shortcut, never both, and reserved keys shadow any template
// shortcut bound to the same character.
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case " ":
		if err := m.sess.TogglePause(); err != nil {
			return m.showError(err)
		}
		return m, nil

	case "left":
		if err := m.sess.SeekRelative(-m.stepSize); err != nil {
			return m.showError(err)
		}
		return m, nil

	case "right":
		if err := m.sess.SeekRelative(m.stepSize); err != nil {
			return m.showError(err)
		}
		return m, nil

	case "<":
		m.stepSize = prevStep(stepSizes, m.stepSize)
		return m, nil

	case ">":
		m.stepSize = nextStep(stepSizes, m.stepSize)
		return m, nil

	case "[":
		return m.setSpeed(prevStep(speedSteps, m.speed))

	case "]":
		return m.setSpeed(nextStep(speedSteps, m.speed))

	case "j":
		m.list.MoveDown()
		return m, nil

	case "k":
		m.list.MoveUp()
		return m, nil

	case "enter":
		return m.jumpToSelected()

	case "c":
		m.cycleFilter()
		m.refreshList()
		return m, nil

	case "o":
		if m.sortMode == timeline.SortByTime {
			m.sortMode = timeline.SortByType
		} else {
			m.sortMode = timeline.SortByTime
		}
		m.refreshList()
		return m, nil

	case "m":
		t := m.sess.Snapshot().CurrentTime
		m.markIn = &t
		return m.showResult(fmt.Sprintf("In point at %s", timeutil.FormatTime(t)))

	case "esc":
		m.markIn = nil
		return m, nil

	case "n":
		return m.openNoteInput()

	case "x":
		if selected := m.list.Selected(); selected != nil {
			m.pendingDelete = selected
		}
		return m, nil

	case "r":
		if err := m.events.Reconcile(m.database); err != nil {
			return m.showError(err)
		}
		m.refreshList()
		return m.showResult("Reloaded events")

	case "u":
		muted, err := m.client.Muted()
		if err == nil {
			err = m.client.SetMuted(!muted)
		}
		if err != nil {
			return m.showError(err)
		}
		m.muted = !muted
		return m, nil
	}

	// Anything else may be a template shortcut.
	if tpl := m.tagger.ResolveShortcut(msg.String()); tpl != nil {
		return m.tag(tpl)
	}
	return m, nil
}

// tag creates an event for the template at the cursor: a range event when
// an in-point is pending, a point event otherwise.
func (m *Model) tag(tpl *db.EventTemplate) (tea.Model, tea.Cmd) {
	var ev *db.Event
	var err error

	if m.markIn != nil {
		end := m.sess.Snapshot().CurrentTime
		ev, err = m.tagger.TagRange(tpl.ID, *m.markIn, end)
		if err == nil {
			m.markIn = nil
		}
	} else {
		ev, err = m.tagger.Tag(tpl.ID)
	}
	if err != nil {
		return m.showError(err)
	}

	m.refreshList()
	return m.showResult(fmt.Sprintf("%s @ %s", tpl.Name, timeutil.FormatRange(ev.TimestampStart, ev.TimestampEnd)))
}

// jumpToSelected seeks playback to the selected event's start.
func (m *Model) jumpToSelected() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m, nil
	}
	if err := m.sess.Seek(selected.TimestampStart); err != nil {
		return m.showError(err)
	}
	return m.showResult(fmt.Sprintf("Jumped to %s @ %s", selected.TemplateName, timeutil.FormatTime(selected.TimestampStart)))
}

// openNoteInput starts editing the selected event's notes.
func (m *Model) openNoteInput() (tea.Model, tea.Cmd) {
	selected := m.list.Selected()
	if selected == nil {
		return m.showErrorText("No event selected")
	}
	initial := ""
	if selected.Notes != nil {
		initial = *selected.Notes
	}
	m.noteInput.Open(selected.ID, initial)
	return m, nil
}

// handleNoteInput handles key events while the notes editor has focus.
func (m *Model) handleNoteInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.noteInput.Clear()
		return m, nil

	case "enter":
		notes := m.noteInput.Value
		id := m.noteInput.EventID
		if err := db.UpdateEvent(m.database, id, db.EventUpdate{Notes: &notes}); err != nil {
			m.noteInput.Clear()
			return m.showError(err)
		}
		m.events.Update(id, func(ev *db.Event) {
			ev.Notes = &notes
		})
		m.noteInput.Clear()
		m.refreshList()
		return m.showResult("Notes saved")

	case "backspace":
		m.noteInput.Backspace()
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.noteInput.InsertRune(r)
			}
		} else if msg.String() == " " {
			m.noteInput.InsertRune(' ')
		}
		return m, nil
	}
}

// handleConfirmDelete handles the y/n prompt gating event deletion.
func (m *Model) handleConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		ev := m.pendingDelete
		m.pendingDelete = nil
		if err := db.DeleteEvent(m.database, ev.ID); err != nil {
			return m.showError(err)
		}
		m.events.Remove(ev.ID)
		m.refreshList()
		return m.showResult(fmt.Sprintf("Deleted %s @ %s", ev.TemplateName, timeutil.FormatTime(ev.TimestampStart)))

	default:
		m.pendingDelete = nil
		return m, nil
	}
}

// setSpeed applies a playback rate on the transport.
func (m *Model) setSpeed(speed float64) (tea.Model, tea.Cmd) {
	if err := m.client.SetSpeed(speed); err != nil {
		return m.showError(err)
	}
	m.speed = speed
	return m.showResult(fmt.Sprintf("Speed %.2gx", speed))
}

// cycleFilter advances the category filter: all, then each template in use
// in first-occurrence order, then back to all.
func (m *Model) cycleFilter() {
	uses := m.events.UniqueTemplates()
	if len(uses) == 0 {
		m.filterID = 0
		return
	}
	if m.filterID == 0 {
		m.filterID = uses[0].TemplateID
		return
	}
	for i, use := range uses {
		if use.TemplateID == m.filterID {
			if i+1 < len(uses) {
				m.filterID = uses[i+1].TemplateID
			} else {
				m.filterID = 0
			}
			return
		}
	}
	// Active filter no longer in use (e.g. last event deleted).
	m.filterID = 0
}

// refreshList rebuilds the visible projection, keeping the selection on the
// same event where possible.
func (m *Model) refreshList() {
	var selectedID int64
	if selected := m.list.Selected(); selected != nil {
		selectedID = selected.ID
	}

	m.list.Events = m.events.List(m.filterID, m.sortMode)

	if selectedID != 0 {
		for i, ev := range m.list.Events {
			if ev.ID == selectedID {
				m.list.SelectedIndex = i
				return
			}
		}
	}
	if m.list.SelectedIndex >= len(m.list.Events) {
		m.list.SelectedIndex = len(m.list.Events) - 1
	}
	if m.list.SelectedIndex < 0 {
		m.list.SelectedIndex = 0
	}
}

// showResult sets the result line and schedules its clearing.
func (m *Model) showResult(text string) (tea.Model, tea.Cmd) {
	m.result = text
	m.resultErr = false
	return m, tea.Tick(resultDisplayDuration, func(t time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

func (m *Model) showError(err error) (tea.Model, tea.Cmd) {
	return m.showErrorText(err.Error())
}

func (m *Model) showErrorText(text string) (tea.Model, tea.Cmd) {
	m.result = text
	m.resultErr = true
	return m, tea.Tick(resultDisplayDuration, func(t time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// View renders the current state of the model.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.err != nil {
		return styles.Warning.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	if m.width > 0 && m.width < minTerminalWidth {
		return styles.Warning.Render(fmt.Sprintf("Terminal too narrow (%d cols)", m.width)) + "\n" +
			styles.SecondaryText.Render(fmt.Sprintf("Minimum width: %d columns", minTerminalWidth))
	}

	cursor := m.sess.Snapshot()

	statusBar := components.StatusBar(components.StatusBarState{
		MatchName: m.match.Name,
		Playing:   cursor.Playing,
		Ready:     cursor.Ready,
		Muted:     m.muted,
		TimePos:   cursor.CurrentTime,
		Duration:  cursor.Duration,
		StepSize:  m.stepSize,
		Speed:     m.speed,
	}, m.width)

	// Two columns: palette on the left, events list on the right.
	colHeight := m.height - 4
	if colHeight < 5 {
		colHeight = 5
	}
	listWidth := m.width - paletteWidth - 1
	if listWidth < 20 {
		listWidth = 20
	}

	counts := make(map[int64]int)
	for _, use := range m.events.UniqueTemplates() {
		counts[use.TemplateID] = use.Count
	}
	palette := components.Palette(components.PaletteState{
		Templates:  m.events.Templates(),
		Counts:     counts,
		FilterID:   m.filterID,
		SortByType: m.sortMode == timeline.SortByType,
		MarkIn:     m.markIn,
	}, paletteWidth)

	eventsList := components.EventsList(m.list, listWidth, colHeight)

	columns := joinColumns(palette, eventsList, paletteWidth, listWidth, colHeight)

	timelineBar := components.TimelineBar(cursor.CurrentTime, cursor.Duration, m.events.All(), m.width)

	return statusBar + "\n" + columns + "\n" + timelineBar + "\n" + m.bottomLine()
}

// bottomLine renders the notes editor, the delete prompt, or the result
// message, whichever is active.
func (m *Model) bottomLine() string {
	if m.noteInput.Active {
		return components.NoteInput(m.noteInput, m.width)
	}
	if m.pendingDelete != nil {
		prompt := fmt.Sprintf(" Delete %s @ %s? [y/N]",
			m.pendingDelete.TemplateName,
			timeutil.FormatTime(m.pendingDelete.TimestampStart))
		return styles.Warning.Render(prompt)
	}
	if m.result != "" {
		if m.resultErr {
			return styles.Warning.Render(" " + m.result)
		}
		return styles.Success.Render(" " + m.result)
	}
	return styles.SecondaryText.Render(" ? for help")
}

// joinColumns combines two column strings side by side with a border.
func joinColumns(left, right string, leftWidth, rightWidth, height int) string {
	borderStr := lipgloss.NewStyle().Foreground(styles.Steel).Render("│")

	leftLines := strings.Split(left, "\n")
	rightLines := strings.Split(right, "\n")
	for len(leftLines) < height {
		leftLines = append(leftLines, "")
	}
	for len(rightLines) < height {
		rightLines = append(rightLines, "")
	}

	var rows []string
	for i := 0; i < height; i++ {
		rows = append(rows, padToWidth(leftLines[i], leftWidth)+borderStr+padToWidth(rightLines[i], rightWidth))
	}
	return strings.Join(rows, "\n")
}

// padToWidth pads a string with spaces to the specified width.
func padToWidth(s string, width int) string {
	currentWidth := lipgloss.Width(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// prevStep returns the next smaller value from a sorted step list.
func prevStep(steps []float64, current float64) float64 {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < current {
			return steps[i]
		}
	}
	return steps[0]
}

// nextStep returns the next larger value from a sorted step list.
func nextStep(steps []float64, current float64) float64 {
	for _, s := range steps {
		if s > current {
			return s
		}
	}
	return steps[len(steps)-1]
}

// Run loads the match's events and starts the Bubbletea program.
func Run(client *mpv.Client, database *sql.DB, cfg *config.Config, match *db.Match) error {
	model := NewModel(client, database, cfg, match)
	if err := model.events.Load(database, match.ID); err != nil {
		return err
	}
	model.refreshList()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
