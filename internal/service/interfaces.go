package service

import (
	"context"
	"time"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/domain"
)

// OpsService serves every dashboard view from the in-memory snapshot store.
type OpsService interface {
	app.DashboardUseCase
	app.ProjectListUseCase
	app.ScheduleUseCase
	app.MarginUseCase
}

// Portfolio is a loaded set of projects plus the week it was captured for.
type Portfolio struct {
	Projects []domain.Project
	WeekOf   *time.Time
	// Source is the file path or "database".
	Source string
}

type PortfolioLoader interface {
	// Load reads filePath when it is non-empty, otherwise the seed database.
	Load(ctx context.Context, filePath string) (*Portfolio, error)
}

// ImportResult holds the outcome of a portfolio import.
type ImportResult struct {
	ProjectCount int // rows stored after the import
	WeekOf       *time.Time
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
}
