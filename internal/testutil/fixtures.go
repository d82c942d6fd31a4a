package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/shopspring/decimal"
)

var testIDCounter atomic.Int64

// Dec parses a decimal literal and panics on malformed input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Project options
type ProjectOption func(*domain.Project)

func WithID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithPriority(pr domain.Priority) ProjectOption {
	return func(p *domain.Project) {
		p.Priority = pr
	}
}

func WithJobType(j domain.JobType) ProjectOption {
	return func(p *domain.Project) {
		p.JobType = j
	}
}

func WithRevenue(s string) ProjectOption {
	return func(p *domain.Project) {
		p.Revenue = Dec(s)
	}
}

func WithDeposit(s string) ProjectOption {
	return func(p *domain.Project) {
		p.Deposit = Dec(s)
	}
}

func WithBalanceDue(s string) ProjectOption {
	return func(p *domain.Project) {
		p.BalanceDue = Dec(s)
	}
}

// WithBudget sets the budgeted margin fraction and budgeted cost lines.
func WithBudget(margin, labor, materials string) ProjectOption {
	return func(p *domain.Project) {
		p.BudgetedMargin = Dec(margin)
		p.BudgetedLabor = Dec(labor)
		p.BudgetedMaterials = Dec(materials)
	}
}

// WithActuals sets the realized labor and materials costs.
func WithActuals(labor, materials string) ProjectOption {
	return func(p *domain.Project) {
		p.ActualLabor = Dec(labor)
		p.ActualMaterials = Dec(materials)
	}
}

func WithScheduledDays(days ...domain.Weekday) ProjectOption {
	return func(p *domain.Project) {
		p.ScheduledDays = days
	}
}

func WithCrewSize(n int) ProjectOption {
	return func(p *domain.Project) {
		p.CrewSize = n
	}
}

func WithDuration(days int) ProjectOption {
	return func(p *domain.Project) {
		p.Duration = days
	}
}

func WithOverdue() ProjectOption {
	return func(p *domain.Project) {
		p.Overdue = true
	}
}

func WithDueDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.DueDate = d
	}
}

func WithIssues(issues ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Issues = issues
	}
}

// NewTestProject returns a valid, active, unscheduled project with a deposit.
func NewTestProject(customer string, opts ...ProjectOption) domain.Project {
	n := testIDCounter.Add(1)
	p := domain.Project{
		ID:                fmt.Sprintf("job-%03d", n),
		Customer:          customer,
		JobType:           domain.JobWater,
		Status:            domain.StatusActive,
		Priority:          domain.PriorityMedium,
		Revenue:           Dec("10000"),
		Deposit:           Dec("2000"),
		BalanceDue:        Dec("8000"),
		BudgetedMargin:    Dec("0.3"),
		BudgetedLabor:     Dec("4000"),
		ActualLabor:       Dec("4000"),
		BudgetedMaterials: Dec("3000"),
		ActualMaterials:   Dec("3000"),
		Duration:          3,
		CrewSize:          2,
		DueDate:           time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// SamplePortfolio returns a small mixed portfolio resembling a real week:
// one scheduled twice, one complete, two without deposits, one overdue.
func SamplePortfolio() []domain.Project {
	return []domain.Project{
		NewTestProject("Dave Bleeker",
			WithID("1"), WithPriority(domain.PriorityCritical), WithJobType(domain.JobWater),
			WithRevenue("18500"), WithDeposit("5000"), WithBalanceDue("13500"),
			WithBudget("0.35", "6000", "3500"), WithActuals("7200", "3100"),
			WithScheduledDays(domain.Monday, domain.Tuesday), WithCrewSize(3), WithOverdue(),
			WithIssues("Labor overrun")),
		NewTestProject("American Legion",
			WithID("2"), WithStatus(domain.StatusNotStarted), WithPriority(domain.PriorityHigh),
			WithJobType(domain.JobMold), WithRevenue("42000"), WithDeposit("0"), WithBalanceDue("42000"),
			WithBudget("0.4", "15000", "8000"), WithActuals("0", "0"), WithCrewSize(4),
			WithIssues("No deposit", "Permit pending")),
		NewTestProject("Kelly Carmody",
			WithID("3"), WithPriority(domain.PriorityCritical), WithJobType(domain.JobStructure),
			WithRevenue("27300"), WithDeposit("0"), WithBalanceDue("27300"),
			WithBudget("0.3", "9000", "7000"), WithActuals("12500", "6800"),
			WithScheduledDays(domain.Wednesday), WithCrewSize(2)),
		NewTestProject("Riverside Church",
			WithID("4"), WithStatus(domain.StatusComplete), WithPriority(domain.PriorityLow),
			WithRevenue("9600"), WithDeposit("0"), WithBalanceDue("0"),
			WithBudget("0.25", "3500", "2000"), WithActuals("3300", "1900")),
	}
}
