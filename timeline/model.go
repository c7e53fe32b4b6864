// Package timeline maintains the in-memory view of the open match's events.
//
// The model is the authoritative render source for the TUI. It is kept
// eventually consistent with the store: inserts are optimistic (built
// locally from the request plus the returned ID), removals apply only after
// the store confirms, and Load/Reconcile replace the set wholesale.
package timeline

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/user/tagging-football-cli/db"
)

// SortMode selects the ordering of List projections.
type SortMode int

const (
	// SortByTime orders by ascending start timestamp.
	SortByTime SortMode = iota
	// SortByType orders lexicographically by resolved template name.
	// Events whose template name cannot be resolved sort first.
	SortByType
)

// ErrWrongMatch is returned by Add when an event belongs to a different
// match than the one loaded.
var ErrWrongMatch = errors.New("timeline: event belongs to a different match")

// TemplateUse pairs a template in use with a representative event and the
// number of events carrying it. Used to build the category filter controls.
type TemplateUse struct {
	TemplateID     int64
	Representative db.Event
	Count          int
}

// Model holds the event set for the currently open match together with the
// template catalog used to resolve display metadata.
type Model struct {
	matchID   int64
	templates []db.EventTemplate
	events    []db.Event
}

// New returns an empty model bound to no match.
func New() *Model {
	return &Model{}
}

// MatchID returns the ID of the loaded match, or 0 when none is loaded.
func (m *Model) MatchID() int64 { return m.matchID }

// Templates returns the template catalog from the last load.
func (m *Model) Templates() []db.EventTemplate { return m.templates }

// Len returns the number of events in the set.
func (m *Model) Len() int { return len(m.events) }

// Load performs a full reload for a match: templates first, then the match's
// events, replacing the in-memory state wholesale. Switching matches must
// never merge with the previous match's events.
func (m *Model) Load(database *sql.DB, matchID int64) error {
	templates, err := db.ListTemplates(database)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	events, err := db.ListEvents(database, matchID)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	m.matchID = matchID
	m.templates = templates
	m.events = events
	return nil
}

// Reconcile re-fetches the loaded match's events and replaces the set,
// discarding any optimistic record the store disagrees with.
func (m *Model) Reconcile(database *sql.DB) error {
	if m.matchID == 0 {
		return nil
	}
	events, err := db.ListEvents(database, m.matchID)
	if err != nil {
		return fmt.Errorf("reconcile events: %w", err)
	}
	m.events = events
	return nil
}

// Add appends an event after the store has confirmed the insert. The record
// is optimistic: its template name and colour are resolved from the local
// catalog rather than re-fetched. Events from another match are rejected.
// Ascending start order is preserved.
func (m *Model) Add(ev db.Event) error {
	if ev.MatchID != m.matchID {
		return ErrWrongMatch
	}

	if ev.TemplateName == "" {
		if t := m.Template(ev.TemplateID); t != nil {
			ev.TemplateName = t.Name
			ev.TemplateColor = t.Color
		}
	}

	// Insert before the first event that starts later, keeping time order.
	pos := sort.Search(len(m.events), func(i int) bool {
		return m.events[i].TimestampStart > ev.TimestampStart
	})
	m.events = append(m.events, db.Event{})
	copy(m.events[pos+1:], m.events[pos:])
	m.events[pos] = ev
	return nil
}

// Remove drops the event with the given ID from the set. Call it only after
// the store has confirmed the deletion. Unknown IDs are ignored.
func (m *Model) Remove(id int64) {
	for i, ev := range m.events {
		if ev.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return
		}
	}
}

// Update applies already-confirmed field changes to the local copy of an
// event. Returns false when the event is not in the set.
func (m *Model) Update(id int64, apply func(*db.Event)) bool {
	for i := range m.events {
		if m.events[i].ID == id {
			apply(&m.events[i])
			return true
		}
	}
	return false
}

// Get returns the event with the given ID, or nil.
func (m *Model) Get(id int64) *db.Event {
	for i := range m.events {
		if m.events[i].ID == id {
			return &m.events[i]
		}
	}
	return nil
}

// Template resolves a template from the local catalog, or nil.
func (m *Model) Template(id int64) *db.EventTemplate {
	for i := range m.templates {
		if m.templates[i].ID == id {
			return &m.templates[i]
		}
	}
	return nil
}

// All returns a copy of the full event set in ascending time order.
func (m *Model) All() []db.Event {
	out := make([]db.Event, len(m.events))
	copy(out, m.events)
	return out
}

// List returns a non-destructive projection of the set: filtered to one
// template when templateID is non-zero, then ordered by the given mode.
// Filtering and sorting commute, so the TUI may apply them in any order.
func (m *Model) List(templateID int64, mode SortMode) []db.Event {
	var out []db.Event
	for _, ev := range m.events {
		if templateID != 0 && ev.TemplateID != templateID {
			continue
		}
		out = append(out, ev)
	}

	switch mode {
	case SortByTime:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TimestampStart < out[j].TimestampStart
		})
	case SortByType:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].TemplateName < out[j].TemplateName
		})
	}
	return out
}

// UniqueTemplates returns the distinct template IDs present among the
// current events in first-occurrence order, each with a representative
// event and a count.
func (m *Model) UniqueTemplates() []TemplateUse {
	var uses []TemplateUse
	index := make(map[int64]int)
	for _, ev := range m.events {
		if i, ok := index[ev.TemplateID]; ok {
			uses[i].Count++
			continue
		}
		index[ev.TemplateID] = len(uses)
		uses = append(uses, TemplateUse{
			TemplateID:     ev.TemplateID,
			Representative: ev,
			Count:          1,
		})
	}
	return uses
}
