package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the seed schema. Statements are idempotent so it runs on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Money columns are TEXT holding decimal strings so amounts round-trip exactly.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                 TEXT PRIMARY KEY,
		seq                INTEGER NOT NULL,
		customer           TEXT NOT NULL,
		job_type           TEXT NOT NULL,
		status             TEXT NOT NULL
		                   CHECK(status IN ('Not Started','Active','Complete')),
		priority           TEXT NOT NULL
		                   CHECK(priority IN ('Critical','High','Medium','Low')),
		revenue            TEXT NOT NULL DEFAULT '0',
		deposit            TEXT NOT NULL DEFAULT '0',
		balance_due        TEXT NOT NULL DEFAULT '0',
		budgeted_margin    TEXT NOT NULL DEFAULT '0',
		budgeted_labor     TEXT NOT NULL DEFAULT '0',
		actual_labor       TEXT NOT NULL DEFAULT '0',
		budgeted_materials TEXT NOT NULL DEFAULT '0',
		actual_materials   TEXT NOT NULL DEFAULT '0',
		duration_days      INTEGER NOT NULL CHECK(duration_days > 0),
		crew_size          INTEGER NOT NULL CHECK(crew_size > 0),
		overdue            INTEGER NOT NULL DEFAULT 0,
		due_date           TEXT,
		imported_at        TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_seq ON projects(seq)`,
	`CREATE TABLE IF NOT EXISTS project_scheduled_days (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		day        TEXT NOT NULL
		           CHECK(day IN ('Monday','Tuesday','Wednesday','Thursday','Friday')),
		position   INTEGER NOT NULL,
		PRIMARY KEY (project_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS project_issues (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		issue      TEXT NOT NULL,
		PRIMARY KEY (project_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS snapshot_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
