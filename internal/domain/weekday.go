package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWeekday is returned when a day name is not Monday through Friday.
var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekday is a schedulable working day. Only Monday through Friday exist.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays lists the working week in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the five working days.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// Short returns the three-letter abbreviation ("Mon").
func (d Weekday) Short() string {
	s := string(d)
	if len(s) < 3 {
		return s
	}
	return s[:3]
}

// ParseWeekday accepts full names or three-letter abbreviations, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Weekdays {
		full := strings.ToLower(string(d))
		if in == full || (len(in) == 3 && strings.HasPrefix(full, in)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected Monday-Friday)", ErrInvalidWeekday, s)
}
