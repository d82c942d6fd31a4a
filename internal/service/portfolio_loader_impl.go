package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/disasterops/internal/importer"
	"github.com/alexanderramin/disasterops/internal/repository"
	"github.com/alexanderramin/disasterops/internal/scheduler"
)

const sourceDatabase = "database"

type portfolioLoader struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
}

// NewPortfolioLoader reads portfolios from snapshot files or from projects.
// projects may be nil when only files are loaded.
func NewPortfolioLoader(projects repository.ProjectRepo, observers ...UseCaseObserver) PortfolioLoader {
	return &portfolioLoader{
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (l *portfolioLoader) Load(ctx context.Context, filePath string) (pf *Portfolio, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		if pf != nil {
			fields["source"] = pf.Source
			fields["project_count"] = len(pf.Projects)
		}
		observe(ctx, l.observer, "load-portfolio", startedAt, err, false, fields)
	}()

	if filePath != "" {
		pf, err = loadPortfolioFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		return pf, nil
	}

	if l.projects == nil {
		return nil, fmt.Errorf("loading snapshot: no snapshot file and no database configured")
	}
	projects, err := l.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	weekOf, err := l.projects.WeekOf(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	return &Portfolio{Projects: projects, WeekOf: weekOf, Source: sourceDatabase}, nil
}

func loadPortfolioFile(path string) (*Portfolio, error) {
	file, err := importer.LoadSnapshotFile(path)
	if err != nil {
		return nil, err
	}
	snap, err := convertSnapshotFile(file)
	if err != nil {
		return nil, err
	}
	return &Portfolio{Projects: snap.Projects, WeekOf: snap.WeekOf, Source: path}, nil
}

func convertSnapshotFile(file *importer.SnapshotFile) (*importer.Snapshot, error) {
	if errs := importer.ValidateSnapshotFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	snap, err := importer.Convert(file)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot file: %w", err)
	}
	return snap, nil
}

// ResolveWeek picks the schedule week: an explicit override, then the week
// stored with the portfolio, then the default labels.
func ResolveWeek(override, stored *time.Time) scheduler.Week {
	switch {
	case override != nil:
		return scheduler.WeekOf(*override)
	case stored != nil:
		return scheduler.WeekOf(*stored)
	default:
		return scheduler.DefaultWeek()
	}
}
