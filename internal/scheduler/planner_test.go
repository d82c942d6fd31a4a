package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/store"
	"github.com/alexanderramin/disasterops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(projects []domain.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestScheduledFor(t *testing.T) {
	projects := testutil.SamplePortfolio()

	assert.Equal(t, []string{"1"}, ids(ScheduledFor(projects, domain.Monday)))
	assert.Equal(t, []string{"1"}, ids(ScheduledFor(projects, domain.Tuesday)))
	assert.Equal(t, []string{"3"}, ids(ScheduledFor(projects, domain.Wednesday)))
	assert.Empty(t, ScheduledFor(projects, domain.Friday))
}

func TestScheduledFor_PreservesInputOrder(t *testing.T) {
	projects := []domain.Project{
		testutil.NewTestProject("Z", testutil.WithID("z"), testutil.WithScheduledDays(domain.Monday)),
		testutil.NewTestProject("A", testutil.WithID("a"), testutil.WithScheduledDays(domain.Tuesday, domain.Monday)),
		testutil.NewTestProject("M", testutil.WithID("m"), testutil.WithScheduledDays(domain.Monday)),
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids(ScheduledFor(projects, domain.Monday)))
}

func TestCrewHours(t *testing.T) {
	projects := testutil.SamplePortfolio()

	assert.Equal(t, 24, CrewHours(projects, domain.Monday))
	assert.Equal(t, 24, CrewHours(projects, domain.Tuesday))
	assert.Equal(t, 16, CrewHours(projects, domain.Wednesday))
	assert.Equal(t, 0, CrewHours(projects, domain.Friday))
}

func TestCrewHours_MatchesScheduledFor(t *testing.T) {
	projects := testutil.SamplePortfolio()
	for _, day := range domain.Weekdays {
		want := 0
		for _, p := range ScheduledFor(projects, day) {
			want += p.CrewSize * 8
		}
		assert.Equal(t, want, CrewHours(projects, day), string(day))
	}
}

func TestMultiDayProjectCountsOnEachDay(t *testing.T) {
	p := testutil.NewTestProject("Twice", testutil.WithID("t"), testutil.WithCrewSize(5),
		testutil.WithScheduledDays(domain.Monday, domain.Thursday))
	projects := []domain.Project{p}

	assert.Equal(t, []string{"t"}, ids(ScheduledFor(projects, domain.Monday)))
	assert.Equal(t, []string{"t"}, ids(ScheduledFor(projects, domain.Thursday)))
	assert.Equal(t, 40, CrewHours(projects, domain.Monday))
	assert.Equal(t, 40, CrewHours(projects, domain.Thursday))
}

func TestUnscheduled(t *testing.T) {
	projects := testutil.SamplePortfolio()
	// 2 is open and unscheduled; 4 is unscheduled but complete
	assert.Equal(t, []string{"2"}, ids(Unscheduled(projects)))
}

func TestUnscheduled_Empty(t *testing.T) {
	got := Unscheduled(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPlan_FollowsStoreMutations(t *testing.T) {
	snap, err := store.NewSnapshot(testutil.SamplePortfolio())
	require.NoError(t, err)

	next := store.AddToSchedule(snap, "2", domain.Friday)
	plan := Plan(next.Projects(), DefaultWeek())

	require.Len(t, plan.Days, 5)
	friday := plan.Days[4]
	assert.Equal(t, domain.Friday, friday.Day.Name)
	assert.Equal(t, "11/15", friday.Day.Label)
	assert.Equal(t, []string{"2"}, ids(friday.Projects))
	assert.Equal(t, 32, friday.CrewHours)
	assert.Empty(t, plan.Unscheduled)
	assert.Equal(t, 24+24+16+32, plan.TotalCrewHours())

	before := Plan(snap.Projects(), DefaultWeek())
	assert.Equal(t, []string{"2"}, ids(before.Unscheduled))
	assert.Equal(t, 0, before.Days[4].CrewHours)
}

func TestWeekOf(t *testing.T) {
	// Wednesday 2025-11-12 belongs to the week starting Monday 2025-11-10.
	w := WeekOf(time.Date(2025, 11, 12, 15, 0, 0, 0, time.UTC))
	require.Len(t, w.Days, 5)
	assert.Equal(t, Day{Name: domain.Monday, Label: "11/10"}, w.Days[0])
	assert.Equal(t, Day{Name: domain.Friday, Label: "11/14"}, w.Days[4])

	// Sunday rolls back to the previous Monday.
	w = WeekOf(time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "11/10", w.Label(domain.Monday))

	first, last := w.Span()
	assert.Equal(t, "11/10", first)
	assert.Equal(t, "11/14", last)
}

func TestWeek_LabelUnknownDay(t *testing.T) {
	assert.Equal(t, "", DefaultWeek().Label(domain.Weekday("Sunday")))
	first, last := Week{}.Span()
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestPlan_DayHoursMatchCrewHours(t *testing.T) {
	projects := append(testutil.SamplePortfolio(),
		testutil.NewTestProject("Split Crew", testutil.WithID("split"),
			testutil.WithScheduledDays(domain.Monday, domain.Thursday), testutil.WithCrewSize(5)))

	plan := Plan(projects, DefaultWeek())
	total := 0
	for _, d := range plan.Days {
		assert.Equal(t, CrewHours(projects, d.Day.Name), d.CrewHours, d.Day.Name)
		total += d.CrewHours
	}
	assert.Equal(t, total, plan.TotalCrewHours())
	assert.Equal(t, 40, plan.Days[3].CrewHours)
}
