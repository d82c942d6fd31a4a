package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/domain"
)

func jobLine(p domain.Project) string {
	return fmt.Sprintf("%s  %s  %s",
		PriorityColor(p.Priority).Render(p.Customer),
		Dim(fmt.Sprintf("%d days · %d crew", p.Duration, p.CrewSize)),
		FormatCurrency(p.Revenue),
	)
}

// FormatSchedule renders the weekly board: each day with its jobs and
// crew-hours, then the open jobs still waiting for a slot.
func FormatSchedule(resp *app.ScheduleResponse) string {
	var b strings.Builder

	first, last := resp.Week.Span()
	b.WriteString(Dim(fmt.Sprintf("Week of %s - %s", first, last)) + "\n\n")

	for _, d := range resp.Plan.Days {
		title := fmt.Sprintf("%s %s", d.Day.Name, d.Day.Label)
		hours := fmt.Sprintf("%d crew-hours", d.CrewHours)
		b.WriteString(StyleHeader.Render(strings.ToUpper(title)) + "  " + Dim(hours) + "\n")
		if len(d.Projects) == 0 {
			b.WriteString("  " + Dim("(open)") + "\n")
		}
		for _, p := range d.Projects {
			b.WriteString("  " + jobLine(p) + "  " + Dim(p.ID) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(Bold(fmt.Sprintf("Total: %d crew-hours", resp.Plan.TotalCrewHours())) + "\n")

	if n := len(resp.Plan.Unscheduled); n > 0 {
		b.WriteString("\n" + Header(fmt.Sprintf("Unscheduled Projects (%d)", n)) + "\n")
		for _, p := range resp.Plan.Unscheduled {
			b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
				PriorityBadge(p.Priority),
				Bold(p.Customer),
				Dim(fmt.Sprintf("%s · %d days · %d crew", p.JobType, p.Duration, p.CrewSize)),
				FormatCurrency(p.Revenue),
			))
			if len(p.Issues) > 0 {
				b.WriteString("      " + StyleYellow.Render(strings.Join(p.Issues, "; ")) + "\n")
			}
			b.WriteString("      " + Dim(fmt.Sprintf("schedule with: --add %s:Mon", p.ID)) + "\n")
		}
	}

	return RenderBox("Weekly Schedule", strings.TrimRight(b.String(), "\n"))
}

// FormatScheduleChange renders the outcome of one add or remove.
func FormatScheduleChange(change app.ScheduleChange, res app.ScheduleChangeResult) string {
	verb := "Added"
	prep := "to"
	if change.Action == app.ScheduleRemove {
		verb = "Removed"
		prep = "from"
	}
	day := string(change.Day)
	if res.DayLabel != "" {
		day += " " + res.DayLabel
	}
	if !res.Changed {
		return Dim(fmt.Sprintf("No change: %s %s %s %s", strings.ToLower(verb), change.ProjectID, prep, day))
	}
	return StyleGreen.Render(fmt.Sprintf("%s %s %s %s", verb, change.ProjectID, prep, day))
}
