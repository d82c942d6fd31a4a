// Package metrics derives portfolio-level dashboard figures from a project
// snapshot. Every function is a pure function of its input.
package metrics

import (
	"fmt"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/shopspring/decimal"
)

// Metrics is the dashboard aggregate. Amounts are exact; rounding belongs to
// the renderer.
type Metrics struct {
	TotalRevenue        decimal.Decimal
	OutstandingBalance  decimal.Decimal
	CriticalProjects    int
	DepositsCollected   decimal.Decimal
	NoDepositProjects   []domain.Project // not complete, zero deposit; input order
	NoDepositAmount     decimal.Decimal
	OverdueCount        int
	BudgetedMarginTotal decimal.Decimal
	ActualMarginTotal   decimal.Decimal
}

// Aggregate computes Metrics in one pass over projects.
func Aggregate(projects []domain.Project) Metrics {
	m := Metrics{NoDepositProjects: []domain.Project{}}
	for i := range projects {
		p := &projects[i]

		m.TotalRevenue = m.TotalRevenue.Add(p.Revenue)
		m.OutstandingBalance = m.OutstandingBalance.Add(p.BalanceDue)
		m.DepositsCollected = m.DepositsCollected.Add(p.Deposit)
		m.BudgetedMarginTotal = m.BudgetedMarginTotal.Add(p.BudgetedMarginAmount())
		m.ActualMarginTotal = m.ActualMarginTotal.Add(p.ActualMargin())

		if p.Priority == domain.PriorityCritical {
			m.CriticalProjects++
		}
		if p.Overdue {
			m.OverdueCount++
		}
		if !p.HasDeposit() && !p.IsComplete() {
			m.NoDepositProjects = append(m.NoDepositProjects, *p)
			m.NoDepositAmount = m.NoDepositAmount.Add(p.Revenue)
		}
	}
	return m
}

// BudgetedMarginPct returns the budgeted margin total as a fraction of total
// revenue, or zero when there is no revenue.
func (m Metrics) BudgetedMarginPct() decimal.Decimal {
	return fractionOf(m.BudgetedMarginTotal, m.TotalRevenue)
}

// ActualMarginPct returns the actual margin total as a fraction of total
// revenue, or zero when there is no revenue.
func (m Metrics) ActualMarginPct() decimal.Decimal {
	return fractionOf(m.ActualMarginTotal, m.TotalRevenue)
}

func fractionOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole)
}

// TopNoDeposit returns at most n projects still waiting on a deposit.
func TopNoDeposit(m Metrics, n int) []domain.Project {
	if n < 0 {
		n = 0
	}
	if n > len(m.NoDepositProjects) {
		n = len(m.NoDepositProjects)
	}
	return m.NoDepositProjects[:n:n]
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
)

// PriorityItem is one line of the day's call list.
type PriorityItem struct {
	Severity Severity
	Text     string
}

// Priorities builds the action list shown on the dashboard: overdue customers
// to call first, then jobs still missing a deposit.
func Priorities(m Metrics) []PriorityItem {
	var items []PriorityItem
	if m.OverdueCount > 0 {
		items = append(items, PriorityItem{
			Severity: SeverityCritical,
			Text:     fmt.Sprintf("Call %d overdue customer(s)", m.OverdueCount),
		})
	}
	if n := len(m.NoDepositProjects); n > 0 {
		items = append(items, PriorityItem{
			Severity: SeverityHigh,
			Text:     fmt.Sprintf("Get deposits from %d jobs", n),
		})
	}
	return items
}
