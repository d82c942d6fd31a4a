package scheduler

import (
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
)

const dayLabelLayout = "1/2"

// Day is one column of the weekly board: a working day and the calendar
// label shown for it.
type Day struct {
	Name  domain.Weekday
	Label string
}

// Week is the fixed Monday-Friday board with its date labels.
type Week struct {
	Days []Day
}

// DefaultWeek is the board used when no week is configured.
func DefaultWeek() Week {
	return Week{Days: []Day{
		{Name: domain.Monday, Label: "11/11"},
		{Name: domain.Tuesday, Label: "11/12"},
		{Name: domain.Wednesday, Label: "11/13"},
		{Name: domain.Thursday, Label: "11/14"},
		{Name: domain.Friday, Label: "11/15"},
	}}
}

// WeekOf builds the board for the working week containing t. Weekend dates
// belong to the week that started on the preceding Monday.
func WeekOf(t time.Time) Week {
	monday := startOfWeek(t)
	days := make([]Day, len(domain.Weekdays))
	for i, d := range domain.Weekdays {
		days[i] = Day{Name: d, Label: monday.AddDate(0, 0, i).Format(dayLabelLayout)}
	}
	return Week{Days: days}
}

func startOfWeek(t time.Time) time.Time {
	// Monday as start
	w := int(t.Weekday())
	if w == 0 {
		w = 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()-w+1, 0, 0, 0, 0, t.Location())
}

// Label returns the configured label for day, or "" if the day is not on the board.
func (w Week) Label(day domain.Weekday) string {
	for _, d := range w.Days {
		if d.Name == day {
			return d.Label
		}
	}
	return ""
}

// Span returns the first and last labels, e.g. "11/11" and "11/15".
func (w Week) Span() (first, last string) {
	if len(w.Days) == 0 {
		return "", ""
	}
	return w.Days[0].Label, w.Days[len(w.Days)-1].Label
}
