// Package router đăng ký các route thuộc domain reports.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	notifsvc "air_command/internal/api/notification/service"
	reporthdl "air_command/internal/api/reports/handler"
	reportsvc "air_command/internal/api/reports/service"
	"air_command/internal/global"
)

// Register đăng ký các route báo cáo ô nhiễm lên v1
func Register(v1 fiber.Router) error {
	collection, exists := global.RegistryCollections.Get(global.ColNames.PollutionReports)
	if !exists {
		return fmt.Errorf("collection %s is not registered", global.ColNames.PollutionReports)
	}

	primary := reportsvc.NewMongoReportStore(collection)
	fallback := reportsvc.NewMySQLReportStore(global.MySQL_Session)
	service := reportsvc.NewReportService(primary, fallback, notifsvc.Default())
	handler := reporthdl.NewReportHandler(service)

	v1.Post("/reports", handler.CreateReport)
	v1.Patch("/reports/:reportId/status", handler.UpdateStatus)
	v1.Get("/reports", handler.ListReports)

	return nil
}
