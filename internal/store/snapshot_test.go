package store

import (
	"testing"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	snap, err := NewSnapshot(testutil.SamplePortfolio())
	require.NoError(t, err)
	return snap
}

func daysOf(t *testing.T, s *Snapshot, id string) []domain.Weekday {
	t.Helper()
	p, ok := s.Get(id)
	require.True(t, ok, "project %s should exist", id)
	return p.ScheduledDays
}

func TestNewSnapshot_PreservesOrder(t *testing.T) {
	snap := sampleSnapshot(t)
	assert.Equal(t, uint64(1), snap.Version())
	require.Equal(t, 4, snap.Len())

	ids := make([]string, 0, snap.Len())
	for _, p := range snap.Projects() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
}

func TestNewSnapshot_Empty(t *testing.T) {
	snap, err := NewSnapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Len())
	assert.Empty(t, snap.Projects())
}

func TestNewSnapshot_RejectsDuplicateID(t *testing.T) {
	projects := []domain.Project{
		testutil.NewTestProject("A", testutil.WithID("x")),
		testutil.NewTestProject("B", testutil.WithID("x")),
	}
	_, err := NewSnapshot(projects)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNewSnapshot_RejectsMalformedRecord(t *testing.T) {
	bad := testutil.NewTestProject("Bad", testutil.WithCrewSize(0))
	_, err := NewSnapshot([]domain.Project{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crew size must be positive")
}

func TestNewSnapshot_DoesNotAliasCallerDays(t *testing.T) {
	projects := []domain.Project{
		testutil.NewTestProject("A", testutil.WithID("a"), testutil.WithScheduledDays(domain.Monday)),
	}
	snap, err := NewSnapshot(projects)
	require.NoError(t, err)

	projects[0].ScheduledDays[0] = domain.Friday
	assert.Equal(t, []domain.Weekday{domain.Monday}, daysOf(t, snap, "a"))
}

func TestAddToSchedule_Appends(t *testing.T) {
	snap := sampleSnapshot(t)
	next := AddToSchedule(snap, "2", domain.Thursday)

	assert.Equal(t, []domain.Weekday{domain.Thursday}, daysOf(t, next, "2"))
	assert.Empty(t, daysOf(t, snap, "2"), "previous snapshot must be unchanged")
	assert.Equal(t, snap.Version()+1, next.Version())
}

func TestAddToSchedule_AppendsAtEnd(t *testing.T) {
	snap := sampleSnapshot(t)
	next := AddToSchedule(snap, "1", domain.Friday)
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Tuesday, domain.Friday}, daysOf(t, next, "1"))
}

func TestAddToSchedule_Idempotent(t *testing.T) {
	snap := sampleSnapshot(t)
	once := AddToSchedule(snap, "2", domain.Monday)
	twice := AddToSchedule(once, "2", domain.Monday)

	assert.Same(t, once, twice, "second add should be a no-op")
	assert.Equal(t, daysOf(t, once, "2"), daysOf(t, twice, "2"))
}

func TestAddToSchedule_UnknownIDIsNoop(t *testing.T) {
	snap := sampleSnapshot(t)
	assert.Same(t, snap, AddToSchedule(snap, "missing", domain.Monday))
}

func TestAddToSchedule_NonWorkingDayIsNoop(t *testing.T) {
	snap := sampleSnapshot(t)
	assert.Same(t, snap, AddToSchedule(snap, "2", domain.Weekday("Saturday")))
}

func TestRemoveFromSchedule(t *testing.T) {
	snap := sampleSnapshot(t)
	next := RemoveFromSchedule(snap, "1", domain.Monday)

	assert.Equal(t, []domain.Weekday{domain.Tuesday}, daysOf(t, next, "1"))
	assert.Equal(t, []domain.Weekday{domain.Monday, domain.Tuesday}, daysOf(t, snap, "1"))
}

func TestRemoveFromSchedule_AbsentDayIsNoop(t *testing.T) {
	snap := sampleSnapshot(t)
	assert.Same(t, snap, RemoveFromSchedule(snap, "1", domain.Friday))
	assert.Same(t, snap, RemoveFromSchedule(snap, "missing", domain.Monday))
}

func TestAddThenRemove_RoundTrip(t *testing.T) {
	snap := sampleSnapshot(t)
	for _, p := range snap.Projects() {
		for _, day := range domain.Weekdays {
			if p.IsScheduledOn(day) {
				continue
			}
			restored := RemoveFromSchedule(AddToSchedule(snap, p.ID, day), p.ID, day)
			assert.Equal(t, p.ScheduledDays, daysOf(t, restored, p.ID), "%s/%s", p.ID, day)
		}
	}
}

func TestMutation_OnlyTouchesTarget(t *testing.T) {
	snap := sampleSnapshot(t)
	next := AddToSchedule(snap, "3", domain.Friday)

	for _, id := range []string{"1", "2", "4"} {
		assert.Equal(t, daysOf(t, snap, id), daysOf(t, next, id), id)
	}
}
