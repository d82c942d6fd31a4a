package scheduler

import "github.com/alexanderramin/disasterops/internal/domain"

// ScheduledFor returns the projects tagged for day, in input order.
func ScheduledFor(projects []domain.Project, day domain.Weekday) []domain.Project {
	out := []domain.Project{}
	for _, p := range projects {
		if p.IsScheduledOn(day) {
			out = append(out, p)
		}
	}
	return out
}

// CrewHours sums crew size × 8 over the projects scheduled for day. A project
// tagged for several days counts in full on each of them.
func CrewHours(projects []domain.Project, day domain.Weekday) int {
	total := 0
	for _, p := range ScheduledFor(projects, day) {
		total += p.CrewHoursPerDay()
	}
	return total
}

// Unscheduled returns the open projects that have no scheduled days, in input order.
func Unscheduled(projects []domain.Project) []domain.Project {
	out := []domain.Project{}
	for _, p := range projects {
		if len(p.ScheduledDays) == 0 && !p.IsComplete() {
			out = append(out, p)
		}
	}
	return out
}

type DayPlan struct {
	Day       Day
	Projects  []domain.Project
	CrewHours int
}

// WeekPlan is the full board: one DayPlan per configured day plus the
// projects still waiting for a slot.
type WeekPlan struct {
	Days        []DayPlan
	Unscheduled []domain.Project
}

// Plan derives the weekly board for projects.
func Plan(projects []domain.Project, week Week) WeekPlan {
	plan := WeekPlan{
		Days:        make([]DayPlan, 0, len(week.Days)),
		Unscheduled: Unscheduled(projects),
	}
	for _, d := range week.Days {
		plan.Days = append(plan.Days, DayPlan{
			Day:       d,
			Projects:  ScheduledFor(projects, d.Name),
			CrewHours: CrewHours(projects, d.Name),
		})
	}
	return plan
}

// TotalCrewHours sums crew-hours across every day of the plan.
func (wp WeekPlan) TotalCrewHours() int {
	total := 0
	for _, d := range wp.Days {
		total += d.CrewHours
	}
	return total
}
