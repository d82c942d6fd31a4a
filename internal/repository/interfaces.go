package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
)

// ProjectRepo is the seed source for project snapshots. It is written only by
// imports; session schedule changes are never persisted.
type ProjectRepo interface {
	// ReplaceAll swaps the stored portfolio for projects, keeping their order.
	ReplaceAll(ctx context.Context, projects []domain.Project, importedAt time.Time) error
	// List returns every stored project in import order.
	List(ctx context.Context) ([]domain.Project, error)
	Count(ctx context.Context) (int, error)
	SetWeekOf(ctx context.Context, weekOf *time.Time) error
	WeekOf(ctx context.Context) (*time.Time, error)
}
