package app

import (
	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/margin"
	"github.com/alexanderramin/disasterops/internal/sorter"
)

type ProjectListRequest struct {
	Sort sorter.Config
}

// ProjectRow is one line of the projects table.
type ProjectRow struct {
	Project     domain.Project
	Margin      margin.ProjectMargin
	HighBalance bool
}

type ProjectListResponse struct {
	Version uint64
	Sort    sorter.Config
	Rows    []ProjectRow
}

type ProjectDetailResponse struct {
	Version uint64
	Project domain.Project
	Margin  margin.ProjectMargin
}
