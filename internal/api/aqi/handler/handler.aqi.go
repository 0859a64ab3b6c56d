// Package aqihdl chứa handler HTTP cho domain aqi.
package aqihdl

import (
	"strconv"

	"air_command/internal/api/aqi/dto"
	aqisvc "air_command/internal/api/aqi/service"
	basehdl "air_command/internal/api/base/handler"
	"air_command/internal/common"

	"github.com/gofiber/fiber/v3"
)

// AQIHandler xử lý các request về chất lượng không khí
type AQIHandler struct {
	service *aqisvc.AQIService
}

// NewAQIHandler tạo handler với service được cung cấp
func NewAQIHandler(service *aqisvc.AQIService) *AQIHandler {
	return &AQIHandler{service: service}
}

// CurrentAQI xử lý GET /aqi/current
func (h *AQIHandler) CurrentAQI(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		basehdl.HandleResponse(c, h.service.Current(c.Context()), nil)
		return nil
	})
}

// Forecast xử lý GET /aqi/forecast
func (h *AQIHandler) Forecast(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		forecast, err := h.service.Forecast(c.Context())
		basehdl.HandleResponse(c, forecast, err)
		return nil
	})
}

// Sources xử lý GET /aqi/sources
func (h *AQIHandler) Sources(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		sources, err := h.service.Sources(c.Context())
		basehdl.HandleResponse(c, sources, err)
		return nil
	})
}

// Heatmap xử lý GET /aqi/heatmap
func (h *AQIHandler) Heatmap(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		basehdl.HandleResponse(c, h.service.Heatmap(c.Context()), nil)
		return nil
	})
}

// HealthAdvisory xử lý GET /health-advisory, query aqi tùy chọn
func (h *AQIHandler) HealthAdvisory(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var aqi *float64
		if raw := c.Query("aqi"); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
				return nil
			}
			aqi = &value
		}

		basehdl.HandleResponse(c, h.service.Advisory(c.Context(), aqi), nil)
		return nil
	})
}

// SeasonalOutlook xử lý GET /seasonal-outlook
func (h *AQIHandler) SeasonalOutlook(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		basehdl.HandleResponse(c, h.service.Seasonal(), nil)
		return nil
	})
}

// Recommendations xử lý GET /recommendations, query user_type mặc định citizen
func (h *AQIHandler) Recommendations(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userType := c.Query("user_type", "citizen")

		recommendations, err := h.service.Recommendations(c.Context(), userType)
		basehdl.HandleResponse(c, recommendations, err)
		return nil
	})
}

// Alerts xử lý GET /alerts
func (h *AQIHandler) Alerts(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		alerts, err := h.service.Alerts(c.Context())
		basehdl.HandleResponse(c, alerts, err)
		return nil
	})
}

// Insights xử lý GET /insights/summary
func (h *AQIHandler) Insights(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		insights, err := h.service.Insights(c.Context())
		basehdl.HandleResponse(c, insights, err)
		return nil
	})
}

// Transparency xử lý GET /model/transparency
func (h *AQIHandler) Transparency(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		basehdl.HandleResponse(c, h.service.Transparency(), nil)
		return nil
	})
}

// SafeRoute xử lý POST /routes/safe
func (h *AQIHandler) SafeRoute(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.SafeRouteInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, h.service.SafeRoute(input), nil)
		return nil
	})
}

// PolicyImpact xử lý POST /policy/impact
func (h *AQIHandler) PolicyImpact(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.PolicyImpactInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, h.service.PolicyImpact(c.Context(), input), nil)
		return nil
	})
}
