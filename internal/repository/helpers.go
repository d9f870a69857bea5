package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// scanner is the Scan method shared by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
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

// nullableTimeToString returns nil (SQL NULL) for a nil time, otherwise the
// formatted string.
func nullableTimeToString(t *time.Time, layout string) any {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

// encodeList stores a string list as a JSON array column.
func encodeList[T ~string](vals []T) (string, error) {
	if vals == nil {
		vals = []T{}
	}
	data, err := json.Marshal(vals)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(data), nil
}

func decodeList[T ~string](s string) ([]T, error) {
	if s == "" {
		return nil, nil
	}
	var vals []T
	if err := json.Unmarshal([]byte(s), &vals); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return vals, nil
}
