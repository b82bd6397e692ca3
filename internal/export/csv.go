// Package export writes row sets as CSV with a fixed column layout.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Column renders one CSV column of T.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Headers returns the header row of cols.
func Headers[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// WriteCSV writes a header row followed by one record per row.
// It returns the number of data rows written.
func WriteCSV[T any](w io.Writer, cols []Column[T], rows []T) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers(cols)); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(cols))
	for n, row := range rows {
		for i, c := range cols {
			record[i] = c.Value(row)
		}
		if err := cw.Write(record); err != nil {
			return n, fmt.Errorf("write csv row %d: %w", n+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return len(rows), fmt.Errorf("flush csv: %w", err)
	}
	return len(rows), nil
}

// Time formats t as RFC 3339 in UTC.
func Time(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// TimePtr formats an optional time.
func TimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Time(*t)
}

// UUIDPtr formats an optional id.
func UUIDPtr(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// StringPtr formats an optional string.
func StringPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Float formats f without trailing zeros.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
