// Package export writes a match's events to CSV for use in spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/user/tagging-football-cli/db"
	"github.com/user/tagging-football-cli/pkg/timeutil"
)

// csvHeader is the column layout of an exported events file.
var csvHeader = []string{
	"id", "template", "start", "end", "start_seconds", "end_seconds",
	"player_id", "team", "notes",
}

// WriteEventsCSV writes the events of one match as CSV. Times are exported
// both as display strings and raw second offsets so downstream tools can
// pick either.
func WriteEventsCSV(w io.Writer, events []db.Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, ev := range events {
		record := []string{
			strconv.FormatInt(ev.ID, 10),
			ev.TemplateName,
			timeutil.FormatTime(ev.TimestampStart),
			"",
			strconv.FormatFloat(ev.TimestampStart, 'f', 3, 64),
			"",
			"",
			strOrEmpty(ev.Team),
			strOrEmpty(ev.Notes),
		}
		if ev.TimestampEnd != nil {
			record[3] = timeutil.FormatTime(*ev.TimestampEnd)
			record[5] = strconv.FormatFloat(*ev.TimestampEnd, 'f', 3, 64)
		}
		if ev.PlayerID != nil {
			record[6] = strconv.FormatInt(*ev.PlayerID, 10)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
