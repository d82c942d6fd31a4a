package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// HoursPerCrewDay is the billable hours one worker contributes per scheduled day.
const HoursPerCrewDay = 8

// Project is one restoration job. Records are treated as immutable values once
// loaded; schedule changes produce a new record via WithScheduledDays.
type Project struct {
	ID       string
	Customer string
	JobType  JobType
	Status   ProjectStatus
	Priority Priority

	// Financials
	Revenue           decimal.Decimal
	Deposit           decimal.Decimal
	BalanceDue        decimal.Decimal
	BudgetedMargin    decimal.Decimal // fraction of revenue, 0-1
	BudgetedLabor     decimal.Decimal
	ActualLabor       decimal.Decimal
	BudgetedMaterials decimal.Decimal
	ActualMaterials   decimal.Decimal

	// Scheduling
	ScheduledDays []Weekday
	Duration      int // days
	CrewSize      int // workers

	Overdue bool
	DueDate time.Time
	Issues  []string
}

// BudgetedMarginAmount returns revenue × budgeted margin fraction.
func (p *Project) BudgetedMarginAmount() decimal.Decimal {
	return p.Revenue.Mul(p.BudgetedMargin)
}

// ActualCosts returns actual labor plus actual materials.
func (p *Project) ActualCosts() decimal.Decimal {
	return p.ActualLabor.Add(p.ActualMaterials)
}

// ActualMargin returns revenue minus actual costs.
func (p *Project) ActualMargin() decimal.Decimal {
	return p.Revenue.Sub(p.ActualCosts())
}

func (p *Project) IsComplete() bool {
	return p.Status == StatusComplete
}

// HasDeposit reports whether any deposit has been collected.
func (p *Project) HasDeposit() bool {
	return !p.Deposit.IsZero()
}

// IsScheduledOn reports whether day is in the project's scheduled days.
func (p *Project) IsScheduledOn(day Weekday) bool {
	return slices.Contains(p.ScheduledDays, day)
}

// CrewHoursPerDay returns the crew-hours this project consumes on each scheduled day.
func (p *Project) CrewHoursPerDay() int {
	return p.CrewSize * HoursPerCrewDay
}

// HighBalance reports whether more than 80% of revenue is still outstanding.
func (p *Project) HighBalance() bool {
	return p.BalanceDue.GreaterThan(p.Revenue.Mul(decimal.NewFromFloat(0.8)))
}

// WithScheduledDays returns a copy of p whose scheduled days are replaced by days.
// The receiver is left untouched.
func (p Project) WithScheduledDays(days []Weekday) Project {
	p.ScheduledDays = slices.Clone(days)
	return p
}

// Validate checks the record for malformed values and returns every problem
// found joined into one error, or nil.
func (p *Project) Validate() error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, fmt.Errorf("id is required"))
	}
	if p.Customer == "" {
		errs = append(errs, fmt.Errorf("customer is required"))
	}
	if p.JobType == "" {
		errs = append(errs, fmt.Errorf("job type is required"))
	}
	if !ValidStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("status: invalid value %q", p.Status))
	}
	if !ValidPriorities[p.Priority] {
		errs = append(errs, fmt.Errorf("priority: invalid value %q", p.Priority))
	}

	money := []struct {
		name  string
		value decimal.Decimal
	}{
		{"revenue", p.Revenue},
		{"deposit", p.Deposit},
		{"budgeted labor", p.BudgetedLabor},
		{"actual labor", p.ActualLabor},
		{"budgeted materials", p.BudgetedMaterials},
		{"actual materials", p.ActualMaterials},
	}
	for _, m := range money {
		if m.value.IsNegative() {
			errs = append(errs, fmt.Errorf("%s must not be negative", m.name))
		}
	}
	if p.BudgetedMargin.IsNegative() || p.BudgetedMargin.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("budgeted margin %s must be a fraction between 0 and 1", p.BudgetedMargin))
	}

	if p.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive"))
	}
	if p.CrewSize <= 0 {
		errs = append(errs, fmt.Errorf("crew size must be positive"))
	}

	seen := make(map[Weekday]bool, len(p.ScheduledDays))
	for _, d := range p.ScheduledDays {
		if !d.Valid() {
			errs = append(errs, fmt.Errorf("scheduled days: %w: %q", ErrInvalidWeekday, d))
			continue
		}
		if seen[d] {
			errs = append(errs, fmt.Errorf("scheduled days: duplicate %q", d))
		}
		seen[d] = true
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("project %q: %w", p.ID, errors.Join(errs...))
}
