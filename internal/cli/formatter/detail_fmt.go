package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/disasterops/internal/app"
)

func detailRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-20s %s\n", label+":", value)
}

// FormatProjectDetail renders one project's financial, cost and job sections.
func FormatProjectDetail(resp *app.ProjectDetailResponse) string {
	p := resp.Project
	m := resp.Margin
	var b strings.Builder

	b.WriteString(Bold(p.Customer) + "  " + StatusPill(p.Status) + "  " + Dim(p.ID) + "\n\n")

	b.WriteString(Header("Financial Overview") + "\n")
	detailRow(&b, "Total Revenue", FormatCurrency(p.Revenue))
	deposit := FormatCurrency(p.Deposit)
	if !p.HasDeposit() {
		deposit = StyleRed.Render(deposit)
	}
	detailRow(&b, "Deposit Collected", deposit)
	detailRow(&b, "Balance Due", FormatCurrency(p.BalanceDue))
	detailRow(&b, "Budgeted Margin", fmt.Sprintf("%s (%s)", FormatCurrency(m.BudgetedMarginAmount), FormatPercent(p.BudgetedMargin)))
	actual := fmt.Sprintf("%s (%s)", FormatCurrency(m.ActualMargin), FormatPercent(m.ActualMarginPct))
	if m.BelowBudget() {
		actual = StyleRed.Render(actual)
	} else {
		actual = StyleGreen.Render(actual)
	}
	detailRow(&b, "Actual Margin", actual)
	detailRow(&b, "Performance", RenderPerformance(m.PerformanceRatio, 20))

	b.WriteString("\n" + Header("Cost Details") + "\n")
	detailRow(&b, "Labor Budgeted", FormatCurrency(p.BudgetedLabor))
	detailRow(&b, "Labor Actual", FormatCurrency(p.ActualLabor))
	detailRow(&b, "Labor Variance", FormatVariance(m.LaborVariance))
	detailRow(&b, "Materials Budgeted", FormatCurrency(p.BudgetedMaterials))
	detailRow(&b, "Materials Actual", FormatCurrency(p.ActualMaterials))
	detailRow(&b, "Materials Variance", FormatVariance(m.MaterialVariance))

	b.WriteString("\n" + Header("Project Info") + "\n")
	detailRow(&b, "Job Type", JobTypeBadge(p.JobType))
	detailRow(&b, "Priority", PriorityBadge(p.Priority))
	detailRow(&b, "Duration", fmt.Sprintf("%d days", p.Duration))
	detailRow(&b, "Crew Size", fmt.Sprintf("%d workers", p.CrewSize))
	detailRow(&b, "Scheduled", FormatDays(p.ScheduledDays))
	detailRow(&b, "Due Date", FormatDueDate(p.DueDate, p.Overdue))

	if len(p.Issues) > 0 {
		b.WriteString("\n" + Header("Issues Requiring Attention") + "\n")
		for _, issue := range p.Issues {
			b.WriteString("  " + StyleYellow.Render("! "+issue) + "\n")
		}
	}

	return RenderBox("Project", strings.TrimRight(b.String(), "\n"))
}
