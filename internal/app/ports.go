package app

import "context"

type DashboardUseCase interface {
	Dashboard(ctx context.Context) (*DashboardResponse, error)
}

type ProjectListUseCase interface {
	ListProjects(ctx context.Context, req ProjectListRequest) (*ProjectListResponse, error)
	ProjectDetail(ctx context.Context, id string) (*ProjectDetailResponse, error)
}

type ScheduleUseCase interface {
	Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
	ChangeSchedule(ctx context.Context, change ScheduleChange) (ScheduleChangeResult, error)
}

type MarginUseCase interface {
	Margins(ctx context.Context) (*MarginResponse, error)
}
