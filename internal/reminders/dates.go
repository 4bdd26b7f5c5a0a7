package reminders

import (
	"strings"
	"time"
)

// CanonicalDateLayout is the one form the write backend accepts.
const CanonicalDateLayout = "01/02/2006 15:04:05"

// dueDateLayouts are tried in order; the first successful parse wins.
var dueDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
}

// NormalizeDueDate parses a caller-supplied date string and renders it in
// the canonical layout. Times are interpreted in the process-local time
// zone; the zone is not configurable.
func NormalizeDueDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", newError(KindDate, "due date is empty")
	}
	for _, layout := range dueDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t.In(time.Local).Format(CanonicalDateLayout), nil
		}
	}
	return "", newError(KindDate, "unrecognized due date format: %q (try YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, MM/DD/YYYY, or ISO-8601)", raw)
}
