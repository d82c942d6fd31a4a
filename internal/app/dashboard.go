package app

import (
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/metrics"
)

// DashboardTopNoDeposit is how many no-deposit jobs the dashboard alert lists.
const DashboardTopNoDeposit = 3

type DashboardResponse struct {
	Version      uint64
	Today        time.Time
	Metrics      metrics.Metrics
	Priorities   []metrics.PriorityItem
	TopNoDeposit []domain.Project
}
