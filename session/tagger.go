package session

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/timeline"
)

// ErrNoMatch is returned when tagging is attempted with no match loaded.
var ErrNoMatch = errors.New("session: no match loaded")

// Tagger converts a discrete trigger (a template chosen by click or
// shortcut key) into a durable event anchored at the cursor position.
type Tagger struct {
	database *sql.DB
	session  *Session
	model    *timeline.Model
}

// NewTagger wires the tagging engine to the store, the playback session,
// and the in-memory event model.
func NewTagger(database *sql.DB, sess *Session, model *timeline.Model) *Tagger {
	return &Tagger{database: database, session: sess, model: model}
}

// ResolveShortcut finds the template bound to a pressed key. The comparison
// is a case-insensitive exact match against each template's configured
// shortcut. The catalog is name-ordered, so when two templates share a
// shortcut the alphabetically first one wins - an explicit precedence rule,
// not an accident of scan order.
func (t *Tagger) ResolveShortcut(key string) *db.EventTemplate {
	if key == "" {
		return nil
	}
	for _, tpl := range t.model.Templates() {
		if tpl.ShortcutKey == nil {
			continue
		}
		if strings.EqualFold(*tpl.ShortcutKey, key) {
			found := tpl
			return &found
		}
	}
	return nil
}

// Tag creates a point event for the given template at the current cursor
// position: the cached CurrentTime becomes timestamp_start and no end is
// set. On success the in-memory model is updated optimistically with the
// returned ID.
func (t *Tagger) Tag(templateID int64) (*db.Event, error) {
	matchID := t.model.MatchID()
	if matchID == 0 {
		return nil, ErrNoMatch
	}

	start := t.session.Snapshot().CurrentTime
	return t.insert(db.NewEvent{
		MatchID:        matchID,
		TemplateID:     templateID,
		TimestampStart: start,
	})
}

// TagRange creates a range event spanning start..end for the given
// template. The pair is validated before the insert is issued.
func (t *Tagger) TagRange(templateID int64, start, end float64) (*db.Event, error) {
	matchID := t.model.MatchID()
	if matchID == 0 {
		return nil, ErrNoMatch
	}
	if end < start {
		return nil, db.ErrTimestampOrder
	}

	return t.insert(db.NewEvent{
		MatchID:        matchID,
		TemplateID:     templateID,
		TimestampStart: start,
		TimestampEnd:   &end,
	})
}

// insert writes the event and appends the optimistic record to the model,
// resolving template display fields from the local catalog.
func (t *Tagger) insert(ev db.NewEvent) (*db.Event, error) {
	id, err := db.CreateEvent(t.database, ev)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	record := db.Event{
		ID:             id,
		MatchID:        ev.MatchID,
		TemplateID:     ev.TemplateID,
		TimestampStart: ev.TimestampStart,
		TimestampEnd:   ev.TimestampEnd,
		PlayerID:       ev.PlayerID,
		Team:           ev.Team,
		Notes:          ev.Notes,
		Metadata:       ev.Metadata,
	}
	if err := t.model.Add(record); err != nil {
		return nil, err
	}
	if stored := t.model.Get(id); stored != nil {
		return stored, nil
	}
	return &record, nil
}
