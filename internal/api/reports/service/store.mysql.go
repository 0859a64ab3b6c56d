package reportsvc

import (
	"context"
	"database/sql"
	"time"

	"air_command/internal/api/reports/models"
	"air_command/internal/common"
)

// MySQLReportStore là fallback store, ghi báo cáo vào bảng pollution_reports.
// Bảng có khóa chính tự tăng riêng, report_id là cột unique dùng để join với Mongo.
type MySQLReportStore struct {
	db *sql.DB
}

// NewMySQLReportStore tạo store trên kết nối MySQL được cung cấp
func NewMySQLReportStore(db *sql.DB) *MySQLReportStore {
	return &MySQLReportStore{db: db}
}

// Insert ghi một báo cáo mới
func (s *MySQLReportStore) Insert(ctx context.Context, report *models.PollutionReport) error {
	query := `INSERT INTO pollution_reports
		(report_id, name, mobile, email, location, latitude, longitude, severity, description, image_url, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		report.ReportID,
		report.Name,
		report.Mobile,
		report.Email,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.Severity,
		report.Description,
		report.ImageURL,
		report.Status,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return common.ConvertSQLError(err)
	}
	return nil
}

// FindByReportID tìm báo cáo theo report_id
func (s *MySQLReportStore) FindByReportID(ctx context.Context, reportID string) (*models.PollutionReport, error) {
	query := `SELECT report_id, name, mobile, email, location, latitude, longitude, severity, description, image_url, status, created_at, updated_at
		FROM pollution_reports WHERE report_id = ?`

	row := s.db.QueryRowContext(ctx, query, reportID)
	report, err := scanReport(row)
	if err != nil {
		return nil, common.ConvertSQLError(err)
	}
	return report, nil
}

// UpdateStatus cập nhật trạng thái báo cáo theo report_id.
// updated_at luôn thay đổi nên RowsAffected bằng 0 nghĩa là không match bản ghi nào.
func (s *MySQLReportStore) UpdateStatus(ctx context.Context, reportID string, status string, updatedAt time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE pollution_reports SET status = ?, updated_at = ? WHERE report_id = ?`,
		status, updatedAt, reportID,
	)
	if err != nil {
		return common.ConvertSQLError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return common.ConvertSQLError(err)
	}
	if rows == 0 {
		return common.ErrNotFound
	}
	return nil
}

// List trả về báo cáo mới nhất trước, phân trang bằng offset/limit
func (s *MySQLReportStore) List(ctx context.Context, offset, limit int64) ([]models.PollutionReport, error) {
	query := `SELECT report_id, name, mobile, email, location, latitude, longitude, severity, description, image_url, status, created_at, updated_at
		FROM pollution_reports ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, common.ConvertSQLError(err)
	}
	defer rows.Close()

	var reports []models.PollutionReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, common.ConvertSQLError(err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, common.ConvertSQLError(err)
	}
	return reports, nil
}

// rowScanner trừu tượng hóa *sql.Row và *sql.Rows để dùng chung một hàm scan
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*models.PollutionReport, error) {
	var report models.PollutionReport
	var latitude, longitude sql.NullFloat64
	var description, imageURL sql.NullString

	err := row.Scan(
		&report.ReportID,
		&report.Name,
		&report.Mobile,
		&report.Email,
		&report.Location,
		&latitude,
		&longitude,
		&report.Severity,
		&description,
		&imageURL,
		&report.Status,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if latitude.Valid {
		report.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		report.Longitude = &longitude.Float64
	}
	if description.Valid {
		report.Description = &description.String
	}
	if imageURL.Valid {
		report.ImageURL = &imageURL.String
	}
	return &report, nil
}
