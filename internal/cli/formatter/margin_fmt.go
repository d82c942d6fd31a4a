package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/shopspring/decimal"
)

const performanceBarWidth = 10

func costLine(b *strings.Builder, label string, budgeted, actual, variance decimal.Decimal) {
	fmt.Fprintf(b, "  %-10s budgeted %s  actual %s  %s\n",
		label, FormatCurrency(budgeted), FormatCurrency(actual), FormatVariance(variance))
}

// FormatMargins renders portfolio margin totals, the cost breakdown and a
// per-project performance table.
func FormatMargins(resp *app.MarginResponse) string {
	t := resp.Totals
	pf := resp.Report.Portfolio
	var b strings.Builder

	fmt.Fprintf(&b, "  %-18s %s\n", "Total Revenue:", Bold(FormatCurrency(t.TotalRevenue)))
	fmt.Fprintf(&b, "  %-18s %s (%s)\n", "Budgeted Margin:", Bold(FormatCurrency(t.BudgetedMarginTotal)), FormatPercent(t.BudgetedMarginPct()))
	actual := fmt.Sprintf("%s (%s)", FormatCurrency(t.ActualMarginTotal), FormatPercent(t.ActualMarginPct()))
	if t.ActualMarginTotal.LessThan(t.BudgetedMarginTotal) {
		actual = StyleRed.Render(actual)
	} else {
		actual = StyleGreen.Render(actual)
	}
	fmt.Fprintf(&b, "  %-18s %s\n", "Actual Margin:", actual)

	b.WriteString("\n" + Header("Cost Breakdown") + "\n")
	costLine(&b, "Labor", pf.BudgetedLabor, pf.ActualLabor, pf.LaborVariance)
	costLine(&b, "Materials", pf.BudgetedMaterials, pf.ActualMaterials, pf.MaterialVariance)

	b.WriteString("\n" + Header("Project Margins") + "\n")
	cols := []Column{
		{Title: "CUSTOMER"},
		{Title: "REVENUE", Right: true},
		{Title: "BUDGETED", Right: true},
		{Title: "ACTUAL", Right: true},
		{Title: "VARIANCE", Right: true},
		{Title: "PERFORMANCE"},
	}
	rows := make([][]string, 0, len(resp.Report.Projects))
	for _, pm := range resp.Report.Projects {
		actual := FormatCurrency(pm.ActualMargin)
		if pm.BelowBudget() {
			actual = StyleRed.Render(actual)
		}
		rows = append(rows, []string{
			Bold(pm.Project.Customer),
			FormatCurrency(pm.Project.Revenue),
			FormatCurrency(pm.BudgetedMarginAmount),
			actual,
			FormatMarginVariance(pm.MarginVariance),
			RenderPerformance(pm.PerformanceRatio, performanceBarWidth),
		})
	}
	if len(rows) == 0 {
		b.WriteString(Dim("  No projects loaded.") + "\n")
	} else {
		b.WriteString(RenderTable(cols, rows))
	}

	return RenderBox("Margin Analysis", strings.TrimRight(b.String(), "\n"))
}
