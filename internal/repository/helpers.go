package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a time.Time using the given layout.
// Returns the zero time if the value is NULL or empty.
func parseNullableTime(s sql.NullString, layout string) (time.Time, error) {
	if !s.Valid || s.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, s.String)
}

// nullableTimeToString converts a time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) for the zero time, otherwise the formatted string.
func nullableTimeToString(t time.Time, layout string) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(layout)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// decimalColumns parses named TEXT columns into decimals, failing on the first bad value.
func decimalColumns(cols map[string]string, dst map[string]*decimal.Decimal) error {
	for name, ptr := range dst {
		v, err := decimal.NewFromString(cols[name])
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", name, cols[name], err)
		}
		*ptr = v
	}
	return nil
}
