package reportsvc

import (
	"context"
	"errors"
	"time"

	"air_command/internal/api/reports/dto"
	"air_command/internal/api/reports/models"
	"air_command/internal/common"
	"air_command/internal/global"
	"air_command/internal/logger"

	"github.com/google/uuid"
)

// storeTimeout giới hạn thời gian cho mỗi thao tác store
const storeTimeout = 5 * time.Second

// Notifier gửi email thông báo cho người dân, fire-and-forget.
// Lỗi gửi email không bao giờ ảnh hưởng đến kết quả trả về của request.
type Notifier interface {
	EnqueueReportConfirmation(email, name, reportID string)
	EnqueueStatusUpdate(email, name, reportID, status string)
}

// ReportService điều phối ghi báo cáo qua hai store: thử primary trước,
// primary lỗi thì chuyển sang fallback. Không có bước đối soát giữa hai store.
type ReportService struct {
	primary  ReportStore
	fallback ReportStore
	notifier Notifier
}

// NewReportService tạo service với primary store, fallback store và notifier
func NewReportService(primary, fallback ReportStore, notifier Notifier) *ReportService {
	return &ReportService{
		primary:  primary,
		fallback: fallback,
		notifier: notifier,
	}
}

// CreateReport validate input, sinh report id và ghi báo cáo.
// Validate thất bại thì không chạm tới store nào. Primary lỗi bất kỳ đều thử fallback;
// cả hai lỗi thì trả về lỗi persistence chung, không lộ backend nào hỏng.
func (s *ReportService) CreateReport(ctx context.Context, input *dto.CreateReportInput) (*models.PollutionReport, error) {
	if err := global.Validate.Struct(input); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	now := time.Now().UTC()
	report := &models.PollutionReport{
		ReportID:    uuid.NewString(),
		Name:        input.Name,
		Mobile:      input.Mobile,
		Email:       input.Email,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Severity:    input.Severity,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Thao tác store không bị hủy khi client disconnect
	baseCtx := context.WithoutCancel(ctx)

	primaryCtx, cancel := context.WithTimeout(baseCtx, storeTimeout)
	err := s.primary.Insert(primaryCtx, report)
	cancel()
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("report_id", report.ReportID).
			Warn("Primary store insert failed, falling back")

		fallbackCtx, cancel := context.WithTimeout(baseCtx, storeTimeout)
		fallbackErr := s.fallback.Insert(fallbackCtx, report)
		cancel()
		if fallbackErr != nil {
			logger.GetErrorLogger().WithError(fallbackErr).WithField("report_id", report.ReportID).
				Error("Fallback store insert failed")
			return nil, common.ErrReportPersistence
		}
	}

	s.notifier.EnqueueReportConfirmation(report.Email, report.Name, report.ReportID)

	return report, nil
}

// UpdateStatus tìm báo cáo ở primary trước rồi mới tới fallback, cập nhật tại store
// tìm thấy. Không tìm thấy ở cả hai nơi thì trả về ErrNotFound.
// Cập nhật đồng thời trên cùng report id theo ngữ nghĩa last-write-wins.
func (s *ReportService) UpdateStatus(ctx context.Context, reportID string, input *dto.UpdateStatusInput) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	baseCtx := context.WithoutCancel(ctx)
	now := time.Now().UTC()

	report, primaryErr := s.updateInStore(baseCtx, s.primary, reportID, input.Status, now)
	if primaryErr != nil {
		if !errors.Is(primaryErr, common.ErrNotFound) {
			logger.GetErrorLogger().WithError(primaryErr).WithField("report_id", reportID).
				Warn("Primary store status update failed, falling back")
		}

		var err error
		report, err = s.updateInStore(baseCtx, s.fallback, reportID, input.Status, now)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				// NotFound chỉ đúng khi cả hai store xác nhận không có bản ghi;
				// primary lỗi hạ tầng thì trả lỗi đó, không được báo 404 sai
				if !errors.Is(primaryErr, common.ErrNotFound) {
					return primaryErr
				}
				return common.ErrNotFound
			}
			return err
		}
	}

	s.notifier.EnqueueStatusUpdate(report.Email, report.Name, reportID, input.Status)

	return nil
}

// updateInStore tìm báo cáo trong một store và cập nhật trạng thái tại đó
func (s *ReportService) updateInStore(ctx context.Context, store ReportStore, reportID, status string, now time.Time) (*models.PollutionReport, error) {
	findCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	report, err := store.FindByReportID(findCtx, reportID)
	cancel()
	if err != nil {
		return nil, err
	}

	updateCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	err = store.UpdateStatus(updateCtx, reportID, status, now)
	cancel()
	if err != nil {
		return nil, err
	}

	return report, nil
}

// ListReports trả về danh sách báo cáo cho dashboard admin, primary trước fallback sau
func (s *ReportService) ListReports(ctx context.Context, page, limit int64) ([]models.PollutionReport, error) {
	offset := (page - 1) * limit

	listCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	reports, err := s.primary.List(listCtx, offset, limit)
	cancel()
	if err == nil {
		return reports, nil
	}

	logger.GetErrorLogger().WithError(err).Warn("Primary store list failed, falling back")

	fallbackCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.fallback.List(fallbackCtx, offset, limit)
}
