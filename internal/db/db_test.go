package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_ReportsFailingStatement(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 0")
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"projects", "project_scheduled_days", "project_issues", "snapshot_meta"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_RejectsWeekendDay(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO projects (id, seq, customer, job_type, status, priority, duration_days, crew_size, imported_at)
		VALUES ('p1', 0, 'C', 'Water', 'Active', 'High', 1, 1, '2025-11-10T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO project_scheduled_days (project_id, day, position) VALUES ('p1', 'Saturday', 0)`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ops.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()
	assert.FileExists(t, path)
}

func TestWithinTx_CommitAndRollback(t *testing.T) {
	database := openTestDB(t)
	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO snapshot_meta (key, value) VALUES ('a', '1')`)
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO snapshot_meta (key, value) VALUES ('b', '2')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM snapshot_meta`).Scan(&n))
	assert.Equal(t, 1, n, "second insert should have been rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database := openTestDB(t)
	uow := NewSQLiteUnitOfWork(database)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO snapshot_meta (key, value) VALUES ('p', 'x')`)
			panic("kaboom")
		})
	})

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM snapshot_meta`).Scan(&n))
	assert.Zero(t, n)
}
