package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/disasterops/internal/db"
	"github.com/alexanderramin/disasterops/internal/importer"
	"github.com/alexanderramin/disasterops/internal/repository"
	"github.com/alexanderramin/disasterops/internal/store"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewImportService replaces the seed database contents inside one transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (res *ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"file": filePath}
	defer func() {
		if res != nil {
			fields["project_count"] = res.ProjectCount
		}
		observe(ctx, s.observer, "import", startedAt, err, false, fields)
	}()

	file, err := importer.LoadSnapshotFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	snap, err := convertSnapshotFile(file)
	if err != nil {
		return nil, err
	}

	// Same checks the store applies at load, so a stored portfolio always loads.
	if _, err = store.NewSnapshot(snap.Projects); err != nil {
		return nil, fmt.Errorf("validating projects: %w", err)
	}

	importedAt := s.now()
	stored := 0
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		if err := repo.ReplaceAll(ctx, snap.Projects, importedAt); err != nil {
			return err
		}
		if err := repo.SetWeekOf(ctx, snap.WeekOf); err != nil {
			return err
		}
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		stored = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storing projects: %w", err)
	}

	return &ImportResult{ProjectCount: stored, WeekOf: snap.WeekOf}, nil
}

func formatValidationErrors(errs []error) error {
	return fmt.Errorf("validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}
