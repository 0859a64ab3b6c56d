// Package reportsvc chứa store adapter và orchestrator cho báo cáo ô nhiễm.
package reportsvc

import (
	"context"
	"time"

	"air_command/internal/api/reports/models"
)

// ReportStore là interface chung cho hai backend lưu trữ báo cáo.
// MongoDB là primary, MySQL là fallback; orchestrator quyết định thứ tự gọi.
type ReportStore interface {
	Insert(ctx context.Context, report *models.PollutionReport) error
	FindByReportID(ctx context.Context, reportID string) (*models.PollutionReport, error)
	UpdateStatus(ctx context.Context, reportID string, status string, updatedAt time.Time) error
	List(ctx context.Context, offset, limit int64) ([]models.PollutionReport, error)
}
