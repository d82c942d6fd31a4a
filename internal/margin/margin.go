// Package margin computes budget-versus-actual figures per project and across
// the portfolio.
//
// Sign conventions: margin variance is positive when the job beat its budget;
// labor and material variances are positive when actual spend exceeded budget.
package margin

import (
	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// ProjectMargin holds the derived margin figures for one project.
type ProjectMargin struct {
	Project              domain.Project
	BudgetedMarginAmount decimal.Decimal
	ActualMargin         decimal.Decimal
	MarginVariance       decimal.Decimal
	LaborVariance        decimal.Decimal
	MaterialVariance     decimal.Decimal

	// PerformanceRatio is actual/budgeted margin clamped to [0, 1]. It only
	// drives progress bars; the variance fields are never clamped.
	PerformanceRatio decimal.Decimal
	// ActualMarginPct is actual margin as a fraction of revenue (0 when revenue is 0).
	ActualMarginPct decimal.Decimal
}

// ForProject derives the margin figures for p.
func ForProject(p domain.Project) ProjectMargin {
	budgeted := p.BudgetedMarginAmount()
	actual := p.ActualMargin()

	pm := ProjectMargin{
		Project:              p,
		BudgetedMarginAmount: budgeted,
		ActualMargin:         actual,
		MarginVariance:       actual.Sub(budgeted),
		LaborVariance:        p.ActualLabor.Sub(p.BudgetedLabor),
		MaterialVariance:     p.ActualMaterials.Sub(p.BudgetedMaterials),
		PerformanceRatio:     PerformanceRatio(actual, budgeted),
	}
	if !p.Revenue.IsZero() {
		pm.ActualMarginPct = actual.Div(p.Revenue)
	}
	return pm
}

// PerformanceRatio returns actual/budgeted clamped to [0, 1]. With nothing
// budgeted the ratio is 1 when the job did not lose money and 0 otherwise.
func PerformanceRatio(actual, budgeted decimal.Decimal) decimal.Decimal {
	if budgeted.IsZero() {
		if actual.IsNegative() {
			return decimal.Zero
		}
		return one
	}
	r := actual.Div(budgeted)
	switch {
	case r.IsNegative():
		return decimal.Zero
	case r.GreaterThan(one):
		return one
	}
	return r
}

// BelowBudget reports whether the realized margin fell short of plan.
func (pm ProjectMargin) BelowBudget() bool {
	return pm.MarginVariance.IsNegative()
}

func (pm ProjectMargin) LaborOver() bool {
	return pm.LaborVariance.IsPositive()
}

func (pm ProjectMargin) MaterialsOver() bool {
	return pm.MaterialVariance.IsPositive()
}

// Portfolio sums the cost lines of every project.
type Portfolio struct {
	BudgetedLabor     decimal.Decimal
	ActualLabor       decimal.Decimal
	BudgetedMaterials decimal.Decimal
	ActualMaterials   decimal.Decimal
	LaborVariance     decimal.Decimal
	MaterialVariance  decimal.Decimal
}

// Summarize computes the portfolio cost breakdown.
func Summarize(projects []domain.Project) Portfolio {
	var pf Portfolio
	for _, p := range projects {
		pf.BudgetedLabor = pf.BudgetedLabor.Add(p.BudgetedLabor)
		pf.ActualLabor = pf.ActualLabor.Add(p.ActualLabor)
		pf.BudgetedMaterials = pf.BudgetedMaterials.Add(p.BudgetedMaterials)
		pf.ActualMaterials = pf.ActualMaterials.Add(p.ActualMaterials)
	}
	pf.LaborVariance = pf.ActualLabor.Sub(pf.BudgetedLabor)
	pf.MaterialVariance = pf.ActualMaterials.Sub(pf.BudgetedMaterials)
	return pf
}

func (pf Portfolio) LaborOver() bool {
	return pf.LaborVariance.IsPositive()
}

func (pf Portfolio) MaterialsOver() bool {
	return pf.MaterialVariance.IsPositive()
}

// Report bundles the portfolio breakdown with per-project rows in input order.
type Report struct {
	Portfolio Portfolio
	Projects  []ProjectMargin
}

// Analyze builds the full margin report for projects.
func Analyze(projects []domain.Project) Report {
	rows := make([]ProjectMargin, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, ForProject(p))
	}
	return Report{Portfolio: Summarize(projects), Projects: rows}
}
