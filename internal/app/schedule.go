package app

import (
	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/scheduler"
)

type ScheduleRequest struct {
	Week scheduler.Week
}

type ScheduleResponse struct {
	Version uint64
	Week    scheduler.Week
	Plan    scheduler.WeekPlan
}

type ScheduleAction string

const (
	ScheduleAdd    ScheduleAction = "add"
	ScheduleRemove ScheduleAction = "remove"
)

// ScheduleChange tags or untags one project for one day.
type ScheduleChange struct {
	Action    ScheduleAction
	ProjectID string
	Day       domain.Weekday
}

// ScheduleChangeResult reports whether the change produced a new snapshot.
// Unknown ids and redundant changes leave the snapshot as it was.
type ScheduleChangeResult struct {
	Changed bool
	Version uint64
	// DayLabel is the calendar label of the target day on the current board.
	DayLabel string
}
