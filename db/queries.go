package db

import (
	_ "embed"
)

// Schema

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Match queries

//go:embed sql/insert_match.sql
var InsertMatchSQL string

//go:embed sql/select_matches.sql
var SelectMatchesSQL string

//go:embed sql/select_match_by_id.sql
var SelectMatchByIDSQL string

//go:embed sql/delete_match.sql
var DeleteMatchSQL string

// Template queries

//go:embed sql/count_templates.sql
var CountTemplatesSQL string

//go:embed sql/insert_template.sql
var InsertTemplateSQL string

//go:embed sql/select_templates.sql
var SelectTemplatesSQL string

// Event queries

//go:embed sql/insert_event.sql
var InsertEventSQL string

//go:embed sql/select_events_by_match.sql
var SelectEventsByMatchSQL string

//go:embed sql/select_event_by_id.sql
var SelectEventByIDSQL string

//go:embed sql/delete_event.sql
var DeleteEventSQL string

// Player queries

//go:embed sql/insert_player.sql
var InsertPlayerSQL string

//go:embed sql/select_players.sql
var SelectPlayersSQL string

// Stats queries

//go:embed sql/count_events_by_template.sql
var CountEventsByTemplateSQL string
