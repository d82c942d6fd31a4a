package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/disasterops/internal/db"
	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/shopspring/decimal"
)

const metaWeekOf = "week_of"

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a repo over a *sql.DB or a *sql.Tx.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

func (r *SQLiteProjectRepo) ReplaceAll(ctx context.Context, projects []domain.Project, importedAt time.Time) error {
	// Child rows go with their project via ON DELETE CASCADE.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clearing projects: %w", err)
	}
	for i := range projects {
		if err := r.insert(ctx, i, &projects[i], importedAt); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) insert(ctx context.Context, seq int, p *domain.Project, importedAt time.Time) error {
	query := `INSERT INTO projects (id, seq, customer, job_type, status, priority,
			revenue, deposit, balance_due, budgeted_margin,
			budgeted_labor, actual_labor, budgeted_materials, actual_materials,
			duration_days, crew_size, overdue, due_date, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		seq,
		p.Customer,
		string(p.JobType),
		string(p.Status),
		string(p.Priority),
		p.Revenue.String(),
		p.Deposit.String(),
		p.BalanceDue.String(),
		p.BudgetedMargin.String(),
		p.BudgetedLabor.String(),
		p.ActualLabor.String(),
		p.BudgetedMaterials.String(),
		p.ActualMaterials.String(),
		p.Duration,
		p.CrewSize,
		boolToInt(p.Overdue),
		nullableTimeToString(p.DueDate, dateLayout),
		importedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project %q: %w", p.ID, err)
	}

	for pos, day := range p.ScheduledDays {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO project_scheduled_days (project_id, day, position) VALUES (?, ?, ?)`,
			p.ID, string(day), pos)
		if err != nil {
			return fmt.Errorf("inserting scheduled day %s for %q: %w", day, p.ID, err)
		}
	}
	for pos, issue := range p.Issues {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO project_issues (project_id, position, issue) VALUES (?, ?, ?)`,
			p.ID, pos, issue)
		if err != nil {
			return fmt.Errorf("inserting issue for %q: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT id, customer, job_type, status, priority,
			revenue, deposit, balance_due, budgeted_margin,
			budgeted_labor, actual_labor, budgeted_materials, actual_materials,
			duration_days, crew_size, overdue, due_date
		FROM projects ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := r.scanProjectFromRows(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	days, err := r.loadScheduledDays(ctx)
	if err != nil {
		return nil, err
	}
	issues, err := r.loadIssues(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].ScheduledDays = days[projects[i].ID]
		projects[i].Issues = issues[projects[i].ID]
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return n, nil
}

func (r *SQLiteProjectRepo) SetWeekOf(ctx context.Context, weekOf *time.Time) error {
	if weekOf == nil {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshot_meta WHERE key = ?`, metaWeekOf); err != nil {
			return fmt.Errorf("clearing week_of: %w", err)
		}
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		metaWeekOf, weekOf.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("storing week_of: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) WeekOf(ctx context.Context) (*time.Time, error) {
	var s string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key = ?`, metaWeekOf).Scan(&s)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading week_of: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("parsing week_of %q: %w", s, err)
	}
	return &t, nil
}

// scanProjectFromRows scans a single project row from *sql.Rows.
func (r *SQLiteProjectRepo) scanProjectFromRows(rows *sql.Rows) (domain.Project, error) {
	var p domain.Project
	var jobType, status, priority string
	var revenue, deposit, balanceDue, budgetedMargin string
	var budgetedLabor, actualLabor, budgetedMaterials, actualMaterials string
	var overdue int
	var dueDate sql.NullString

	err := rows.Scan(
		&p.ID, &p.Customer, &jobType, &status, &priority,
		&revenue, &deposit, &balanceDue, &budgetedMargin,
		&budgetedLabor, &actualLabor, &budgetedMaterials, &actualMaterials,
		&p.Duration, &p.CrewSize, &overdue, &dueDate,
	)
	if err != nil {
		return p, fmt.Errorf("scanning project row: %w", err)
	}

	p.JobType = domain.JobType(jobType)
	p.Status = domain.ProjectStatus(status)
	p.Priority = domain.Priority(priority)
	p.Overdue = intToBool(overdue)

	err = decimalColumns(
		map[string]string{
			"revenue": revenue, "deposit": deposit, "balance_due": balanceDue,
			"budgeted_margin": budgetedMargin, "budgeted_labor": budgetedLabor,
			"actual_labor": actualLabor, "budgeted_materials": budgetedMaterials,
			"actual_materials": actualMaterials,
		},
		map[string]*decimal.Decimal{
			"revenue": &p.Revenue, "deposit": &p.Deposit, "balance_due": &p.BalanceDue,
			"budgeted_margin": &p.BudgetedMargin, "budgeted_labor": &p.BudgetedLabor,
			"actual_labor": &p.ActualLabor, "budgeted_materials": &p.BudgetedMaterials,
			"actual_materials": &p.ActualMaterials,
		},
	)
	if err != nil {
		return p, fmt.Errorf("project %q: %w", p.ID, err)
	}

	p.DueDate, err = parseNullableTime(dueDate, dateLayout)
	if err != nil {
		return p, fmt.Errorf("parsing due_date for %q: %w", p.ID, err)
	}
	return p, nil
}

func (r *SQLiteProjectRepo) loadScheduledDays(ctx context.Context) (map[string][]domain.Weekday, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id, day FROM project_scheduled_days ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled days: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Weekday)
	for rows.Next() {
		var id, day string
		if err := rows.Scan(&id, &day); err != nil {
			return nil, fmt.Errorf("scanning scheduled day: %w", err)
		}
		out[id] = append(out[id], domain.Weekday(day))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheduled days: %w", err)
	}
	return out, nil
}

func (r *SQLiteProjectRepo) loadIssues(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id, issue FROM project_issues ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, issue string
		if err := rows.Scan(&id, &issue); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		out[id] = append(out[id], issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	return out, nil
}
