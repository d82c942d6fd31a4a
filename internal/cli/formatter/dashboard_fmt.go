package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/disasterops/internal/app"
)

func greeting(t time.Time) string {
	switch h := t.Hour(); {
	case t.IsZero() || h < 12:
		return "Good Morning, Team"
	case h < 17:
		return "Good Afternoon, Team"
	default:
		return "Good Evening, Team"
	}
}

// FormatDashboard renders the headline metrics, the day's priorities and the
// no-deposit alert.
func FormatDashboard(resp *app.DashboardResponse) string {
	m := resp.Metrics
	var b strings.Builder

	b.WriteString(Bold(greeting(resp.Today)))
	if !resp.Today.IsZero() {
		b.WriteString("  " + Dim(resp.Today.Format("Monday, January 2, 2006")))
	}
	b.WriteString("\n\n")

	if m.OverdueCount > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("%d Critical Priorities Today", m.OverdueCount)))
		b.WriteString("\n\n")
	}

	kpis := [][2]string{
		{"Total Revenue", FormatCurrency(m.TotalRevenue)},
		{"Outstanding Balance", FormatCurrency(m.OutstandingBalance)},
		{"Critical Projects", fmt.Sprintf("%d", m.CriticalProjects)},
		{"Deposits Collected", FormatCurrency(m.DepositsCollected)},
		{"Budgeted Margin", fmt.Sprintf("%s (%s)", FormatCurrency(m.BudgetedMarginTotal), FormatPercent(m.BudgetedMarginPct()))},
		{"Actual Margin", fmt.Sprintf("%s (%s)", FormatCurrency(m.ActualMarginTotal), FormatPercent(m.ActualMarginPct()))},
	}
	for _, kv := range kpis {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", kv[0]+":", Bold(kv[1])))
	}

	b.WriteString("\n")
	b.WriteString(Header("Today's Top Priorities"))
	b.WriteString("\n")
	if len(resp.Priorities) == 0 {
		b.WriteString(Dim("  Nothing urgent.") + "\n")
	}
	for _, item := range resp.Priorities {
		b.WriteString("  " + SeverityStyle(item.Severity).Render("• "+item.Text) + "\n")
	}

	if n := len(m.NoDepositProjects); n > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf("CRITICAL: %d Jobs With No Deposits", n)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  Total at risk: %s\n", Bold(FormatCurrency(m.NoDepositAmount))))
		b.WriteString(fmt.Sprintf("  Top %d jobs needing deposits:\n", len(resp.TopNoDeposit)))
		for _, p := range resp.TopNoDeposit {
			b.WriteString(fmt.Sprintf("    %s  %s\n", Bold(p.Customer), FormatCurrency(p.Revenue)))
		}
	}

	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
}
