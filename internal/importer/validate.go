package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ValidateSnapshotFile checks the file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshotFile(file *SnapshotFile) []error {
	var errs []error

	if file.WeekOf != "" {
		if _, err := time.Parse(dateLayout, file.WeekOf); err != nil {
			errs = append(errs, fmt.Errorf("week_of: invalid date format %q (expected YYYY-MM-DD)", file.WeekOf))
		}
	}

	ids := make(map[string]int)
	for i := range file.Projects {
		p := &file.Projects[i]
		errs = append(errs, validateProject(i, p)...)
		if p.ID == "" {
			continue
		}
		if first, ok := ids[p.ID]; ok {
			errs = append(errs, fmt.Errorf("projects[%d].id: duplicate %q (first used by projects[%d])", i, p.ID, first))
			continue
		}
		ids[p.ID] = i
	}
	return errs
}

func validateProject(i int, p *ProjectImport) []error {
	var errs []error
	prefix := fmt.Sprintf("projects[%d]", i)

	if strings.TrimSpace(p.Customer) == "" {
		errs = append(errs, fmt.Errorf("%s.customer is required", prefix))
	}
	if strings.TrimSpace(p.JobType) == "" {
		errs = append(errs, fmt.Errorf("%s.job_type is required", prefix))
	}
	if _, ok := parseStatus(p.Status); !ok {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
	}
	if _, ok := parsePriority(p.Priority); !ok {
		errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, p.Priority))
	}

	amounts := []struct {
		field    string
		value    Amount
		required bool
	}{
		{"revenue", p.Revenue, true},
		{"deposit", p.Deposit, false},
		{"balance_due", p.BalanceDue, false},
		{"budgeted_margin", p.BudgetedMargin, true},
		{"budgeted_labor", p.BudgetedLabor, true},
		{"actual_labor", p.ActualLabor, false},
		{"budgeted_materials", p.BudgetedMaterials, true},
		{"actual_materials", p.ActualMaterials, false},
	}
	for _, a := range amounts {
		if a.value == "" {
			if a.required {
				errs = append(errs, fmt.Errorf("%s.%s is required", prefix, a.field))
			}
			continue
		}
		d, err := decimal.NewFromString(string(a.value))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: invalid amount %q", prefix, a.field, a.value))
			continue
		}
		if d.IsNegative() {
			errs = append(errs, fmt.Errorf("%s.%s must not be negative", prefix, a.field))
		}
	}
	if m, err := decimal.NewFromString(string(p.BudgetedMargin)); err == nil && m.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("%s.budgeted_margin %s must be a fraction between 0 and 1", prefix, m))
	}

	seen := make(map[domain.Weekday]bool)
	for _, s := range p.ScheduledDays {
		d, err := domain.ParseWeekday(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.scheduled_days: %w", prefix, err))
			continue
		}
		if seen[d] {
			errs = append(errs, fmt.Errorf("%s.scheduled_days: duplicate %q", prefix, d))
		}
		seen[d] = true
	}

	if p.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%s.duration must be positive", prefix))
	}
	if p.CrewSize <= 0 {
		errs = append(errs, fmt.Errorf("%s.crew_size must be positive", prefix))
	}
	if p.DueDate != "" {
		if _, err := time.Parse(dateLayout, p.DueDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.due_date: invalid date format %q (expected YYYY-MM-DD)", prefix, p.DueDate))
		}
	}

	return errs
}

// parseStatus matches case-insensitively and treats "_" and "-" as spaces.
func parseStatus(s string) (domain.ProjectStatus, bool) {
	in := normalizeLabel(s)
	for st := range domain.ValidStatuses {
		if strings.EqualFold(in, string(st)) {
			return st, true
		}
	}
	return "", false
}

func parsePriority(s string) (domain.Priority, bool) {
	in := normalizeLabel(s)
	for pr := range domain.ValidPriorities {
		if strings.EqualFold(in, string(pr)) {
			return pr, true
		}
	}
	return "", false
}

func normalizeLabel(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
