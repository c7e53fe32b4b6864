package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyUpdate is returned by UpdateEvent when no fields are set.
var ErrEmptyUpdate = errors.New("db: update contains no fields")

// ErrTimestampOrder is returned when an event's end precedes its start.
var ErrTimestampOrder = errors.New("db: timestamp_end must not precede timestamp_start")

// DefaultTemplates are seeded into event_templates on first use.
var DefaultTemplates = []EventTemplate{
	{Name: "Pass", Color: "#3b82f6", ShortcutKey: strPtr("p")},
	{Name: "Shot", Color: "#ef4444", ShortcutKey: strPtr("s")},
	{Name: "Tackle", Color: "#22c55e", ShortcutKey: strPtr("t")},
	{Name: "Interception", Color: "#f59e0b", ShortcutKey: strPtr("i")},
	{Name: "Dribble", Color: "#8b5cf6", ShortcutKey: strPtr("d")},
	{Name: "Foul", Color: "#dc2626", ShortcutKey: strPtr("f")},
}

func strPtr(s string) *string { return &s }

// CreateMatch inserts a new match and returns its ID.
// Name, date, and video path are required and validated here, before the
// insert is issued.
func CreateMatch(database *sql.DB, name, date string, duration *int64, videoPath string) (int64, error) {
	if name == "" {
		return 0, errors.New("db: match name is required")
	}
	if date == "" {
		return 0, errors.New("db: match date is required")
	}
	if videoPath == "" {
		return 0, errors.New("db: match video path is required")
	}
	result, err := database.Exec(InsertMatchSQL, name, date, duration, videoPath)
	if err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	return result.LastInsertId()
}

// ListMatches returns all matches, most recently created first.
func ListMatches(database *sql.DB) ([]Match, error) {
	rows, err := database.Query(SelectMatchesSQL)
	if err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.Name, &m.Date, &m.Duration, &m.VideoPath, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// GetMatch returns a single match by ID. Absence is reported as
// sql.ErrNoRows so callers can branch on it.
func GetMatch(database *sql.DB, id int64) (*Match, error) {
	var m Match
	err := database.QueryRow(SelectMatchByIDSQL, id).Scan(&m.ID, &m.Name, &m.Date, &m.Duration, &m.VideoPath, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMatch removes a match. The events foreign key cascades, so the
// match's events go with it.
func DeleteMatch(database *sql.DB, id int64) error {
	result, err := database.Exec(DeleteMatchSQL, id)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListTemplates returns all event templates ordered by name.
// On first use, when the table is empty, the six default templates are
// seeded before returning. The guard is a COUNT check, not a lock: two
// processes initialising concurrently could both seed, which is accepted
// for a single-user desktop tool.
func ListTemplates(database *sql.DB) ([]EventTemplate, error) {
	var count int
	if err := database.QueryRow(CountTemplatesSQL).Scan(&count); err != nil {
		return nil, fmt.Errorf("count templates: %w", err)
	}
	if count == 0 {
		if err := seedDefaultTemplates(database); err != nil {
			return nil, err
		}
	}

	rows, err := database.Query(SelectTemplatesSQL)
	if err != nil {
		return nil, fmt.Errorf("select templates: %w", err)
	}
	defer rows.Close()

	var templates []EventTemplate
	for rows.Next() {
		var t EventTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.ShortcutKey, &t.MetadataSchema, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// seedDefaultTemplates inserts the default templates in a transaction.
func seedDefaultTemplates(database *sql.DB) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range DefaultTemplates {
		if _, err := tx.Exec(InsertTemplateSQL, t.Name, t.Color, t.ShortcutKey, nil); err != nil {
			return fmt.Errorf("seed template %s: %w", t.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

// CreateTemplate inserts a new event template and returns its ID.
// A name collision violates the UNIQUE constraint and surfaces as a wrapped
// storage error.
func CreateTemplate(database *sql.DB, name, color string, shortcut, metadataSchema *string) (int64, error) {
	if name == "" {
		return 0, errors.New("db: template name is required")
	}
	if color == "" {
		return 0, errors.New("db: template color is required")
	}
	result, err := database.Exec(InsertTemplateSQL, name, color, shortcut, metadataSchema)
	if err != nil {
		return 0, fmt.Errorf("insert template: %w", err)
	}
	return result.LastInsertId()
}

// CreateEvent inserts a new event and returns its ID.
// The start must be a non-negative offset into the video; when an end is
// present it must not precede the start.
func CreateEvent(database *sql.DB, ev NewEvent) (int64, error) {
	if ev.TimestampStart < 0 {
		return 0, errors.New("db: timestamp_start must be non-negative")
	}
	if ev.TimestampEnd != nil && *ev.TimestampEnd < ev.TimestampStart {
		return 0, ErrTimestampOrder
	}
	result, err := database.Exec(InsertEventSQL,
		ev.MatchID, ev.TemplateID, ev.TimestampStart, ev.TimestampEnd,
		ev.PlayerID, ev.Team, ev.Notes, ev.Metadata)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return result.LastInsertId()
}

// ListEvents returns all events for a match, each enriched with its
// template's display name and colour, ordered by start timestamp ascending.
func ListEvents(database *sql.DB, matchID int64) ([]Event, error) {
	rows, err := database.Query(SelectEventsByMatchSQL, matchID)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.MatchID, &e.TemplateID, &e.TimestampStart, &e.TimestampEnd,
			&e.PlayerID, &e.Team, &e.Notes, &e.Metadata, &e.CreatedAt,
			&e.TemplateName, &e.TemplateColor); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// GetEvent returns a single event by ID with its template display fields.
func GetEvent(database *sql.DB, id int64) (*Event, error) {
	var e Event
	err := database.QueryRow(SelectEventByIDSQL, id).Scan(
		&e.ID, &e.MatchID, &e.TemplateID, &e.TimestampStart, &e.TimestampEnd,
		&e.PlayerID, &e.Team, &e.Notes, &e.Metadata, &e.CreatedAt,
		&e.TemplateName, &e.TemplateColor)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvent applies a typed partial update to an event. The SET clause is
// built only from the enumerated fields of EventUpdate, so arbitrary column
// names can never reach the statement. An update with no fields set returns
// ErrEmptyUpdate; an update that would leave the end before the start
// returns ErrTimestampOrder.
func UpdateEvent(database *sql.DB, id int64, update EventUpdate) error {
	var sets []string
	var args []interface{}

	if update.TemplateID != nil {
		sets = append(sets, "template_id = ?")
		args = append(args, *update.TemplateID)
	}
	if update.TimestampStart != nil {
		sets = append(sets, "timestamp_start = ?")
		args = append(args, *update.TimestampStart)
	}
	if update.TimestampEnd != nil {
		sets = append(sets, "timestamp_end = ?")
		args = append(args, *update.TimestampEnd)
	}
	if update.PlayerID != nil {
		sets = append(sets, "player_id = ?")
		args = append(args, *update.PlayerID)
	}
	if update.Team != nil {
		sets = append(sets, "team = ?")
		args = append(args, *update.Team)
	}
	if update.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *update.Notes)
	}
	if update.Metadata != nil {
		sets = append(sets, "metadata = ?")
		args = append(args, *update.Metadata)
	}

	if len(sets) == 0 {
		return ErrEmptyUpdate
	}

	if update.TimestampStart != nil || update.TimestampEnd != nil {
		if err := checkTimestampOrder(database, id, update); err != nil {
			return err
		}
	}

	args = append(args, id)
	_, err := database.Exec("UPDATE events SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// checkTimestampOrder validates the effective start/end pair an update would
// leave behind, reading the current row for whichever side is untouched.
func checkTimestampOrder(database *sql.DB, id int64, update EventUpdate) error {
	current, err := GetEvent(database, id)
	if err != nil {
		return err
	}

	start := current.TimestampStart
	if update.TimestampStart != nil {
		start = *update.TimestampStart
	}
	end := current.TimestampEnd
	if update.TimestampEnd != nil {
		end = update.TimestampEnd
	}

	if start < 0 {
		return errors.New("db: timestamp_start must be non-negative")
	}
	if end != nil && *end < start {
		return ErrTimestampOrder
	}
	return nil
}

// DeleteEvent removes one event. Deleting an absent row is not an error;
// the operation always reports success when the statement executes.
func DeleteEvent(database *sql.DB, id int64) error {
	if _, err := database.Exec(DeleteEventSQL, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ListPlayers returns all players ordered by name.
func ListPlayers(database *sql.DB) ([]Player, error) {
	rows, err := database.Query(SelectPlayersSQL)
	if err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Team, &p.JerseyNumber, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// CreatePlayer inserts a new player and returns its ID.
func CreatePlayer(database *sql.DB, name string, team *string, jerseyNumber *int64) (int64, error) {
	if name == "" {
		return 0, errors.New("db: player name is required")
	}
	result, err := database.Exec(InsertPlayerSQL, name, team, jerseyNumber)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	return result.LastInsertId()
}

// TemplateCount is a per-template event tally for one match.
type TemplateCount struct {
	TemplateID int64
	Name       string
	Total      int
}

// CountEventsByTemplate returns per-template event tallies for a match,
// most frequent first.
func CountEventsByTemplate(database *sql.DB, matchID int64) ([]TemplateCount, error) {
	rows, err := database.Query(CountEventsByTemplateSQL, matchID)
	if err != nil {
		return nil, fmt.Errorf("count events by template: %w", err)
	}
	defer rows.Close()

	var counts []TemplateCount
	for rows.Next() {
		var c TemplateCount
		if err := rows.Scan(&c.TemplateID, &c.Name, &c.Total); err != nil {
			return nil, fmt.Errorf("scan template count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
