// Package reporthdl chứa handler HTTP cho domain reports.
package reporthdl

import (
	basehdl "air_command/internal/api/base/handler"
	"air_command/internal/api/reports/dto"
	reportsvc "air_command/internal/api/reports/service"
	"air_command/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý các request liên quan đến báo cáo ô nhiễm
type ReportHandler struct {
	service *reportsvc.ReportService
}

// NewReportHandler tạo handler với service được cung cấp
func NewReportHandler(service *reportsvc.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// CreateReport xử lý POST /reports
func (h *ReportHandler) CreateReport(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.CreateReportInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		report, err := h.service.CreateReport(c.Context(), input)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		return basehdl.JSONResponse(c, common.StatusCreated, fiber.Map{
			"code":    common.StatusCreated,
			"message": common.MsgSuccess,
			"data":    report,
			"status":  "success",
		})
	})
}

// UpdateStatus xử lý PATCH /reports/:reportId/status
func (h *ReportHandler) UpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		reportID := c.Params("reportId")
		if reportID == "" {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		input := new(dto.UpdateStatusInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.service.UpdateStatus(c.Context(), reportID, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{"message": "Status updated successfully"}, nil)
		return nil
	})
}

// ListReports xử lý GET /reports cho dashboard admin
func (h *ReportHandler) ListReports(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page, limit := basehdl.ParsePagination(c)

		reports, err := h.service.ListReports(c.Context(), page, limit)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, reports, nil)
		return nil
	})
}
