package repository

import (
	"database/sql"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the
// given layout. NULL, empty, or malformed values come back as nil.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a SQLite-storable value:
// nil becomes SQL NULL.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(layout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// joinList flattens a string slice for single-column storage.
func joinList(vals []string) string {
	return strings.Join(vals, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func mustParseTime(s, layout string) time.Time {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
