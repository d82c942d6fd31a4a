package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validProject() Project {
	return Project{
		ID:                "p1",
		Customer:          "Dave Bleeker",
		JobType:           JobWater,
		Status:            StatusActive,
		Priority:          PriorityHigh,
		Revenue:           dec("10000"),
		Deposit:           dec("2500"),
		BalanceDue:        dec("7500"),
		BudgetedMargin:    dec("0.3"),
		BudgetedLabor:     dec("4500"),
		ActualLabor:       dec("4000"),
		BudgetedMaterials: dec("2500"),
		ActualMaterials:   dec("2000"),
		ScheduledDays:     []Weekday{Monday},
		Duration:          3,
		CrewSize:          2,
		DueDate:           time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestProject_MarginFigures(t *testing.T) {
	p := validProject()
	assert.True(t, dec("3000").Equal(p.BudgetedMarginAmount()), "budgeted margin amount")
	assert.True(t, dec("6000").Equal(p.ActualCosts()), "actual costs")
	assert.True(t, dec("4000").Equal(p.ActualMargin()), "actual margin")
}

func TestProject_ActualMarginCanBeNegative(t *testing.T) {
	p := validProject()
	p.ActualLabor = dec("9000")
	assert.True(t, dec("-1000").Equal(p.ActualMargin()))
}

func TestProject_CrewHoursPerDay(t *testing.T) {
	p := validProject()
	assert.Equal(t, 16, p.CrewHoursPerDay())
}

func TestProject_HighBalance(t *testing.T) {
	p := validProject()
	assert.False(t, p.HighBalance())
	p.BalanceDue = dec("8001")
	assert.True(t, p.HighBalance())
}

func TestProject_WithScheduledDaysCopies(t *testing.T) {
	p := validProject()
	days := []Weekday{Tuesday, Thursday}
	q := p.WithScheduledDays(days)
	days[0] = Friday

	assert.Equal(t, []Weekday{Monday}, p.ScheduledDays, "original untouched")
	assert.Equal(t, []Weekday{Tuesday, Thursday}, q.ScheduledDays, "copy owns its slice")
	assert.True(t, q.IsScheduledOn(Thursday))
	assert.False(t, q.IsScheduledOn(Monday))
}

func TestProject_Validate_Valid(t *testing.T) {
	p := validProject()
	assert.NoError(t, p.Validate())
}

func TestProject_Validate_CollectsAllErrors(t *testing.T) {
	p := validProject()
	p.Customer = ""
	p.Status = "Paused"
	p.Revenue = dec("-1")
	p.BudgetedMargin = dec("1.5")
	p.CrewSize = 0
	p.ScheduledDays = []Weekday{Monday, Monday, "Saturday"}

	err := p.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "customer is required")
	assert.Contains(t, msg, `status: invalid value "Paused"`)
	assert.Contains(t, msg, "revenue must not be negative")
	assert.Contains(t, msg, "budgeted margin")
	assert.Contains(t, msg, "crew size must be positive")
	assert.Contains(t, msg, `duplicate "Monday"`)
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]Weekday{
		"Monday":  Monday,
		"tuesday": Tuesday,
		"WED":     Wednesday,
		" thu ":   Thursday,
		"fri":     Friday,
	}
	for in, want := range cases {
		got, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseWeekday_Rejects(t *testing.T) {
	for _, in := range []string{"", "Saturday", "sun", "mo"} {
		_, err := ParseWeekday(in)
		assert.ErrorIs(t, err, ErrInvalidWeekday, in)
	}
}

func TestRanks(t *testing.T) {
	assert.Less(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Less(t, StatusNotStarted.Rank(), StatusActive.Rank())
	assert.Less(t, StatusActive.Rank(), StatusComplete.Rank())
}
