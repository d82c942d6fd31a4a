package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/sorter"
)

// SortArrow appends ▲ or ▼ to title when key is the active sort column.
func SortArrow(cfg sorter.Config, key sorter.Key, title string) string {
	if cfg.Key != key {
		return title
	}
	if cfg.Direction == sorter.Desc {
		return title + " ▼"
	}
	return title + " ▲"
}

// FormatProjectList renders the projects table in the order given.
func FormatProjectList(resp *app.ProjectListResponse) string {
	if len(resp.Rows) == 0 {
		return Dim("No projects loaded.") + "\n"
	}

	s := resp.Sort
	cols := []Column{
		{Title: SortArrow(s, sorter.KeyID, "ID")},
		{Title: SortArrow(s, sorter.KeyCustomer, "CUSTOMER")},
		{Title: SortArrow(s, sorter.KeyJobType, "TYPE")},
		{Title: SortArrow(s, sorter.KeyStatus, "STATUS")},
		{Title: SortArrow(s, sorter.KeyRevenue, "REVENUE"), Right: true},
		{Title: SortArrow(s, sorter.KeyBalanceDue, "BALANCE"), Right: true},
		{Title: SortArrow(s, sorter.KeyActualMargin, "MARGIN"), Right: true},
		{Title: SortArrow(s, sorter.KeyPriority, "PRIORITY")},
		{Title: "DAYS"},
		{Title: SortArrow(s, sorter.KeyDueDate, "DUE")},
		{Title: "ISSUES"},
	}

	rows := make([][]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		p := r.Project

		balance := FormatCurrency(p.BalanceDue)
		if r.HighBalance {
			balance = StyleRed.Render(balance)
		}

		marginPct := FormatPercent(r.Margin.ActualMarginPct)
		if r.Margin.BelowBudget() {
			marginPct = StyleRed.Render(marginPct)
		} else {
			marginPct = StyleGreen.Render(marginPct)
		}

		issues := Dim("--")
		if len(p.Issues) > 0 {
			issues = StyleYellow.Render(strings.Join(p.Issues, "; "))
		}

		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Customer),
			JobTypeBadge(p.JobType),
			StatusPill(p.Status),
			FormatCurrency(p.Revenue),
			balance,
			marginPct,
			PriorityBadge(p.Priority),
			FormatDays(p.ScheduledDays),
			FormatDueDate(p.DueDate, p.Overdue),
			issues,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(cols, rows))
	b.WriteString(Dim(fmt.Sprintf("\n%d projects", len(resp.Rows))))
	if s.Key != "" {
		b.WriteString(Dim(fmt.Sprintf(", sorted by %s %s", s.Key, s.Direction)))
	}
	b.WriteString("\n")
	return b.String()
}
