package aqisvc

import (
	"fmt"
	"time"

	"air_command/internal/api/aqi/dto"
)

func intOrZero(v *float64) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

// BuildAlerts sinh cảnh báo từ dự báo 48-72 giờ và AQI hiện tại
func BuildAlerts(forecast *dto.ForecastResponse, current *dto.AQIData) *dto.AlertsResponse {
	alerts := []dto.Alert{}
	counter := 1

	nextID := func() string {
		id := fmt.Sprintf("alert_%d", counter)
		counter++
		return id
	}

	// Ngưỡng nguy hiểm
	if (forecast.AQI48h != nil && *forecast.AQI48h > 250) || (forecast.AQI72h != nil && *forecast.AQI72h > 250) {
		maxAQI := 250.0
		if forecast.AQI48h != nil && *forecast.AQI48h > maxAQI {
			maxAQI = *forecast.AQI48h
		}
		if forecast.AQI72h != nil && *forecast.AQI72h > maxAQI {
			maxAQI = *forecast.AQI72h
		}
		alerts = append(alerts, dto.Alert{
			ID:         nextID(),
			Severity:   "critical",
			Title:      "Severe Pollution Alert",
			Message:    fmt.Sprintf("AQI forecast to reach %d in next 48-72 hours. Hazardous conditions expected.", int(maxAQI)),
			TimeWindow: "Next 48-72 hours",
			AffectedGroups: []string{
				"All residents", "Children", "Elderly", "People with respiratory conditions",
			},
			AQIRange: fmt.Sprintf("%d-%d", intOrZero(forecast.AQI48h), intOrZero(forecast.AQI72h)),
		})
	}

	// Mức không lành mạnh trong 48 giờ tới
	if forecast.AQI48h != nil && *forecast.AQI48h > 150 && *forecast.AQI48h <= 250 {
		upper := intOrZero(forecast.AQI72h)
		if upper == 0 {
			upper = int(*forecast.AQI48h)
		}
		alerts = append(alerts, dto.Alert{
			ID:         nextID(),
			Severity:   "high",
			Title:      "Unhealthy Air Quality Expected",
			Message:    fmt.Sprintf("Air quality will deteriorate to unhealthy levels (AQI ~%d) in next 48 hours.", int(*forecast.AQI48h)),
			TimeWindow: "Next 24-48 hours",
			AffectedGroups: []string{
				"Sensitive groups", "Children", "Elderly", "Outdoor workers",
			},
			AQIRange: fmt.Sprintf("%d-%d", int(*forecast.AQI48h), upper),
		})
	}

	if forecast.Trend == "worsening" {
		alerts = append(alerts, dto.Alert{
			ID:         nextID(),
			Severity:   "medium",
			Title:      "Deteriorating Air Quality",
			Message:    fmt.Sprintf("Air quality is worsening. Current AQI: %d, forecast to reach %d.", int(current.AQI), intOrZero(forecast.AQI72h)),
			TimeWindow: "Next 72 hours",
			AffectedGroups: []string{
				"People with pre-existing conditions", "Sensitive individuals",
			},
			AQIRange: fmt.Sprintf("%d-%d", int(current.AQI), intOrZero(forecast.AQI72h)),
		})
	}

	if forecast.Trend == "improving" && current.AQI > 150 {
		alerts = append(alerts, dto.Alert{
			ID:             nextID(),
			Severity:       "low",
			Title:          "Air Quality Improving",
			Message:        fmt.Sprintf("Good news! Air quality expected to improve from %d to %d over next 72 hours.", int(current.AQI), intOrZero(forecast.AQI72h)),
			TimeWindow:     "Next 72 hours",
			AffectedGroups: []string{"General public"},
			AQIRange:       fmt.Sprintf("%d-%d", intOrZero(forecast.AQI72h), int(current.AQI)),
		})
	}

	// Gió yếu làm giảm khuếch tán
	if forecast.WeatherConditions["wind_speed"] < 5 {
		alerts = append(alerts, dto.Alert{
			ID:         nextID(),
			Severity:   "medium",
			Title:      "Low Wind Conditions",
			Message:    "Low wind speed may trap pollutants. Expect slower dispersion of pollution.",
			TimeWindow: "Next 24-48 hours",
			AffectedGroups: []string{
				"Respiratory sensitive individuals", "Asthma patients",
			},
			AQIRange: fmt.Sprintf("%d-%d", intOrZero(forecast.AQI48h), intOrZero(forecast.AQI72h)),
		})
	}

	if len(alerts) == 0 {
		alerts = append(alerts, dto.Alert{
			ID:             nextID(),
			Severity:       "info",
			Title:          "Air Quality Stable",
			Message:        fmt.Sprintf("Air quality expected to remain relatively stable around AQI %d. Continue monitoring.", intOrZero(forecast.AQI48h)),
			TimeWindow:     "Next 72 hours",
			AffectedGroups: []string{"All residents"},
			AQIRange:       fmt.Sprintf("%d-%d", intOrZero(forecast.AQI48h), intOrZero(forecast.AQI72h)),
		})
	}

	return &dto.AlertsResponse{
		Alerts:         alerts,
		ForecastPeriod: "48-72 hours",
		PredictionType: "simulation",
		ModelVersion:   "alerts_v1.0",
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
