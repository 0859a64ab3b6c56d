// Package router đăng ký các route thuộc domain aqi.
package router

import (
	"github.com/gofiber/fiber/v3"

	aqihdl "air_command/internal/api/aqi/handler"
	aqisvc "air_command/internal/api/aqi/service"
	"air_command/internal/genai"
	"air_command/internal/global"
)

// Register đăng ký các route chất lượng không khí lên v1
func Register(v1 fiber.Router) error {
	cfg := global.ServerConfig

	current := aqisvc.NewWAQIService(cfg.WAQI_APIToken, cfg.WAQI_FeedURL)
	model := aqisvc.NewHTTPModelClient(cfg.ModelServerURL)
	analytics := aqisvc.NewAnalyticsLogger(global.MySQL_Session)
	ai := genai.NewClient(cfg)

	service := aqisvc.NewAQIService(current, model, analytics, ai, cfg.ModelServerURL != "")
	handler := aqihdl.NewAQIHandler(service)

	v1.Get("/aqi/current", handler.CurrentAQI)
	v1.Get("/aqi/forecast", handler.Forecast)
	v1.Get("/aqi/sources", handler.Sources)
	v1.Get("/aqi/heatmap", handler.Heatmap)
	v1.Get("/health-advisory", handler.HealthAdvisory)
	v1.Get("/seasonal-outlook", handler.SeasonalOutlook)
	v1.Get("/recommendations", handler.Recommendations)
	v1.Get("/alerts", handler.Alerts)
	v1.Get("/insights/summary", handler.Insights)
	v1.Get("/model/transparency", handler.Transparency)
	v1.Post("/routes/safe", handler.SafeRoute)
	v1.Post("/policy/impact", handler.PolicyImpact)

	return nil
}
