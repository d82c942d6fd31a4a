package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is a converted portfolio file ready for the store or the seed database.
type Snapshot struct {
	WeekOf   *time.Time
	Projects []domain.Project
}

// Convert transforms a validated SnapshotFile into domain projects, in file order.
// Call ValidateSnapshotFile first; Convert assumes the file is valid.
func Convert(file *SnapshotFile) (*Snapshot, error) {
	out := &Snapshot{Projects: make([]domain.Project, 0, len(file.Projects))}

	if file.WeekOf != "" {
		t, err := time.Parse(dateLayout, file.WeekOf)
		if err != nil {
			return nil, fmt.Errorf("parsing week_of: %w", err)
		}
		out.WeekOf = &t
	}

	for i := range file.Projects {
		p, err := convertProject(&file.Projects[i])
		if err != nil {
			return nil, fmt.Errorf("projects[%d]: %w", i, err)
		}
		out.Projects = append(out.Projects, p)
	}
	return out, nil
}

func convertProject(in *ProjectImport) (domain.Project, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.New().String()
	}
	status, _ := parseStatus(in.Status)
	priority, _ := parsePriority(in.Priority)

	p := domain.Project{
		ID:       id,
		Customer: strings.TrimSpace(in.Customer),
		JobType:  domain.JobType(strings.TrimSpace(in.JobType)),
		Status:   status,
		Priority: priority,
		Duration: in.Duration,
		CrewSize: in.CrewSize,
		Overdue:  in.Overdue,
	}

	var err error
	fields := []struct {
		name string
		in   Amount
		dst  *decimal.Decimal
	}{
		{"revenue", in.Revenue, &p.Revenue},
		{"deposit", in.Deposit, &p.Deposit},
		{"budgeted_margin", in.BudgetedMargin, &p.BudgetedMargin},
		{"budgeted_labor", in.BudgetedLabor, &p.BudgetedLabor},
		{"actual_labor", in.ActualLabor, &p.ActualLabor},
		{"budgeted_materials", in.BudgetedMaterials, &p.BudgetedMaterials},
		{"actual_materials", in.ActualMaterials, &p.ActualMaterials},
	}
	for _, f := range fields {
		if *f.dst, err = parseAmount(f.in); err != nil {
			return p, fmt.Errorf("parsing %s: %w", f.name, err)
		}
	}

	// An omitted balance defaults to whatever the deposit has not covered.
	if in.BalanceDue == "" {
		p.BalanceDue = p.Revenue.Sub(p.Deposit)
	} else if p.BalanceDue, err = parseAmount(in.BalanceDue); err != nil {
		return p, fmt.Errorf("parsing balance_due: %w", err)
	}

	for _, s := range in.ScheduledDays {
		d, err := domain.ParseWeekday(s)
		if err != nil {
			return p, err
		}
		p.ScheduledDays = append(p.ScheduledDays, d)
	}

	if in.DueDate != "" {
		if p.DueDate, err = time.Parse(dateLayout, in.DueDate); err != nil {
			return p, fmt.Errorf("parsing due_date: %w", err)
		}
	}

	if len(in.Issues) > 0 {
		p.Issues = append([]string(nil), in.Issues...)
	}
	return p, nil
}

func parseAmount(a Amount) (decimal.Decimal, error) {
	if a == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(a))
}
