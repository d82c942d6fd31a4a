package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/margin"
	"github.com/alexanderramin/disasterops/internal/metrics"
	"github.com/alexanderramin/disasterops/internal/scheduler"
	"github.com/alexanderramin/disasterops/internal/sorter"
	"github.com/alexanderramin/disasterops/internal/store"
)

type opsService struct {
	store    *store.Store
	week     scheduler.Week
	observer UseCaseObserver
	now      func() time.Time
}

// NewOpsService serves views over st. week is used for schedule requests that
// do not name one.
func NewOpsService(st *store.Store, week scheduler.Week, observers ...UseCaseObserver) OpsService {
	return &opsService{
		store:    st,
		week:     week,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *opsService) Dashboard(ctx context.Context) (*app.DashboardResponse, error) {
	startedAt := time.Now()
	snap := s.store.Snapshot()

	m := metrics.Aggregate(snap.Projects())
	resp := &app.DashboardResponse{
		Version:      snap.Version(),
		Today:        s.now(),
		Metrics:      m,
		Priorities:   metrics.Priorities(m),
		TopNoDeposit: metrics.TopNoDeposit(m, app.DashboardTopNoDeposit),
	}

	observe(ctx, s.observer, "dashboard", startedAt, nil, false, map[string]any{
		"version":        snap.Version(),
		"project_count":  snap.Len(),
		"priority_count": len(resp.Priorities),
	})
	return resp, nil
}

func (s *opsService) ListProjects(ctx context.Context, req app.ProjectListRequest) (*app.ProjectListResponse, error) {
	startedAt := time.Now()
	snap := s.store.Snapshot()

	cfg := req.Sort
	if cfg.Direction == "" {
		cfg.Direction = sorter.Asc
	}
	sorted := sorter.Apply(snap.Projects(), cfg)

	rows := make([]app.ProjectRow, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, app.ProjectRow{
			Project:     p,
			Margin:      margin.ForProject(p),
			HighBalance: p.HighBalance(),
		})
	}

	observe(ctx, s.observer, "list-projects", startedAt, nil, false, map[string]any{
		"version":   snap.Version(),
		"sort_key":  string(cfg.Key),
		"direction": string(cfg.Direction),
		"row_count": len(rows),
	})
	return &app.ProjectListResponse{Version: snap.Version(), Sort: cfg, Rows: rows}, nil
}

func (s *opsService) ProjectDetail(ctx context.Context, id string) (resp *app.ProjectDetailResponse, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "project-detail", startedAt, err, false, map[string]any{"project_id": id})
	}()

	snap := s.store.Snapshot()
	p, ok := snap.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", app.ErrProjectNotFound, id)
	}
	return &app.ProjectDetailResponse{
		Version: snap.Version(),
		Project: p,
		Margin:  margin.ForProject(p),
	}, nil
}

func (s *opsService) Schedule(ctx context.Context, req app.ScheduleRequest) (*app.ScheduleResponse, error) {
	startedAt := time.Now()
	snap := s.store.Snapshot()

	week := req.Week
	if len(week.Days) == 0 {
		week = s.week
	}
	plan := scheduler.Plan(snap.Projects(), week)

	observe(ctx, s.observer, "schedule", startedAt, nil, false, map[string]any{
		"version":           snap.Version(),
		"crew_hours":        plan.TotalCrewHours(),
		"unscheduled_count": len(plan.Unscheduled),
	})
	return &app.ScheduleResponse{Version: snap.Version(), Week: week, Plan: plan}, nil
}

func (s *opsService) ChangeSchedule(ctx context.Context, change app.ScheduleChange) (res app.ScheduleChangeResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"action":     string(change.Action),
		"project_id": change.ProjectID,
		"day":        string(change.Day),
	}
	defer func() {
		fields["changed"] = res.Changed
		fields["version"] = res.Version
		observe(ctx, s.observer, "change-schedule", startedAt, err, err == nil && !res.Changed, fields)
	}()

	var snap *store.Snapshot
	var changed bool
	switch change.Action {
	case app.ScheduleAdd:
		snap, changed = s.store.AddToSchedule(change.ProjectID, change.Day)
	case app.ScheduleRemove:
		snap, changed = s.store.RemoveFromSchedule(change.ProjectID, change.Day)
	default:
		return res, fmt.Errorf("unknown schedule action %q", change.Action)
	}
	return app.ScheduleChangeResult{
		Changed:  changed,
		Version:  snap.Version(),
		DayLabel: s.week.Label(change.Day),
	}, nil
}

func (s *opsService) Margins(ctx context.Context) (*app.MarginResponse, error) {
	startedAt := time.Now()
	snap := s.store.Snapshot()
	projects := snap.Projects()

	report := margin.Analyze(projects)
	resp := &app.MarginResponse{
		Version: snap.Version(),
		Totals:  metrics.Aggregate(projects),
		Report:  report,
	}

	observe(ctx, s.observer, "margins", startedAt, nil, false, map[string]any{
		"version":        snap.Version(),
		"labor_over":     report.Portfolio.LaborOver(),
		"materials_over": report.Portfolio.MaterialsOver(),
	})
	return resp, nil
}
