package db

// Match represents a row in the matches table.
type Match struct {
	ID        int64
	Name      string
	Date      string
	Duration  *int64
	VideoPath string
	CreatedAt string
}

// EventTemplate represents a row in the event_templates table.
type EventTemplate struct {
	ID             int64
	Name           string
	Color          string
	ShortcutKey    *string
	MetadataSchema *string
	CreatedAt      string
}

// Event represents a row in the events table, enriched with the template's
// display name and colour from the join in select_events_by_match.sql.
type Event struct {
	ID             int64
	MatchID        int64
	TemplateID     int64
	TimestampStart float64
	TimestampEnd   *float64
	PlayerID       *int64
	Team           *string
	Notes          *string
	Metadata       *string
	CreatedAt      string
	TemplateName   string
	TemplateColor  string
}

// Player represents a row in the players table.
type Player struct {
	ID           int64
	Name         string
	Team         *string
	JerseyNumber *int64
	CreatedAt    string
}

// NewEvent carries the fields for an event insert. TimestampEnd is nil for
// point events.
type NewEvent struct {
	MatchID        int64
	TemplateID     int64
	TimestampStart float64
	TimestampEnd   *float64
	PlayerID       *int64
	Team           *string
	Notes          *string
	Metadata       *string
}

// EventUpdate is a typed partial update for an event. Only non-nil fields are
// written. The field set is the enumerated list of mutable event columns;
// unknown column names cannot reach the statement builder.
type EventUpdate struct {
	TemplateID     *int64
	TimestampStart *float64
	TimestampEnd   *float64
	PlayerID       *int64
	Team           *string
	Notes          *string
	Metadata       *string
}
