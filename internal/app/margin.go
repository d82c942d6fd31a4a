package app

import (
	"github.com/alexanderramin/disasterops/internal/margin"
	"github.com/alexanderramin/disasterops/internal/metrics"
)

type MarginResponse struct {
	Version uint64
	Totals  metrics.Metrics
	Report  margin.Report
}
