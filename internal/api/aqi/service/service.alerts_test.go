package aqisvc

import (
	"testing"

	"air_command/internal/api/aqi/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func calmWeather() map[string]float64 {
	return map[string]float64{"wind_speed": 10}
}

func TestBuildAlerts_CriticalThreshold(t *testing.T) {
	forecast := &dto.ForecastResponse{
		AQI48h:            floatPtr(280),
		AQI72h:            floatPtr(310),
		Trend:             "stable",
		WeatherConditions: calmWeather(),
	}
	current := &dto.AQIData{AQI: 240}

	result := BuildAlerts(forecast, current)

	require.NotEmpty(t, result.Alerts)
	assert.Equal(t, "alert_1", result.Alerts[0].ID)
	assert.Equal(t, "critical", result.Alerts[0].Severity)
	assert.Contains(t, result.Alerts[0].Message, "310")
}

func TestBuildAlerts_HighSeverityWindow(t *testing.T) {
	forecast := &dto.ForecastResponse{
		AQI48h:            floatPtr(180),
		AQI72h:            floatPtr(190),
		Trend:             "stable",
		WeatherConditions: calmWeather(),
	}
	current := &dto.AQIData{AQI: 160}

	result := BuildAlerts(forecast, current)

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, "high", result.Alerts[0].Severity)
	assert.Equal(t, "Unhealthy Air Quality Expected", result.Alerts[0].Title)
}

func TestBuildAlerts_WorseningTrend(t *testing.T) {
	forecast := &dto.ForecastResponse{
		AQI48h:            floatPtr(140),
		AQI72h:            floatPtr(150),
		Trend:             "worsening",
		WeatherConditions: calmWeather(),
	}
	current := &dto.AQIData{AQI: 120}

	result := BuildAlerts(forecast, current)

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, "medium", result.Alerts[0].Severity)
	assert.Equal(t, "Deteriorating Air Quality", result.Alerts[0].Title)
}

func TestBuildAlerts_ImprovingFromUnhealthy(t *testing.T) {
	forecast := &dto.ForecastResponse{
		AQI48h:            floatPtr(140),
		AQI72h:            floatPtr(120),
		Trend:             "improving",
		WeatherConditions: calmWeather(),
	}
	current := &dto.AQIData{AQI: 180}

	result := BuildAlerts(forecast, current)

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, "low", result.Alerts[0].Severity)
	assert.Equal(t, "Air Quality Improving", result.Alerts[0].Title)
}

func TestBuildAlerts_LowWindAddsAlert(t *testing.T) {
	forecast := &dto.ForecastResponse{
		AQI48h:            floatPtr(120),
		AQI72h:            floatPtr(125),
		Trend:             "stable",
		WeatherConditions: map[string]float64{"wind_speed": 3},
	}
	current := &dto.AQIData{AQI: 110}

	result := BuildAlerts(forecast, current)

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, "Low Wind Conditions", result.Alerts[0].Title)
}

func TestBuildAlerts_StableFallback(t *testing.T) {
	forecast := &dto.ForecastResponse{
		AQI48h:            floatPtr(120),
		AQI72h:            floatPtr(125),
		Trend:             "stable",
		WeatherConditions: calmWeather(),
	}
	current := &dto.AQIData{AQI: 110}

	result := BuildAlerts(forecast, current)

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, "info", result.Alerts[0].Severity)
	assert.Equal(t, "Air Quality Stable", result.Alerts[0].Title)
	assert.Equal(t, "48-72 hours", result.ForecastPeriod)
}

func TestBuildAlerts_SequentialIDs(t *testing.T) {
	forecast := &dto.ForecastResponse{
		AQI48h:            floatPtr(280),
		AQI72h:            floatPtr(300),
		Trend:             "worsening",
		WeatherConditions: map[string]float64{"wind_speed": 2},
	}
	current := &dto.AQIData{AQI: 250}

	result := BuildAlerts(forecast, current)

	require.Len(t, result.Alerts, 3)
	assert.Equal(t, "alert_1", result.Alerts[0].ID)
	assert.Equal(t, "alert_2", result.Alerts[1].ID)
	assert.Equal(t, "alert_3", result.Alerts[2].ID)
}
