package aqisvc

import (
	"testing"

	"air_command/internal/api/aqi/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsights_StripsBulletMarkers(t *testing.T) {
	aiResponse := "• Current AQI remains at unhealthy level\n- Stubble burning driving pollution spike\n1. Wind speeds too low for dispersal\nok\n"

	insights := parseInsights(aiResponse)

	require.Len(t, insights, 3)
	assert.Equal(t, "Current AQI remains at unhealthy level", insights[0])
	assert.Equal(t, "Stubble burning driving pollution spike", insights[1])
	assert.Equal(t, "Wind speeds too low for dispersal", insights[2])
}

func TestParseInsights_CapsAtSixLines(t *testing.T) {
	aiResponse := ""
	for i := 0; i < 10; i++ {
		aiResponse += "- This is a sufficiently long insight line\n"
	}

	insights := parseInsights(aiResponse)

	assert.Len(t, insights, 6)
}

func TestParseInsights_EmptyInput(t *testing.T) {
	assert.Nil(t, parseInsights(""))
}

func TestFallbackInsights_Content(t *testing.T) {
	current := &dto.AQIData{AQI: 220, Category: "Very Unhealthy"}
	forecast := &dto.ForecastResponse{
		AQI48h: floatPtr(240),
		AQI72h: floatPtr(260),
		Trend:  "worsening",
	}
	sources := &dto.SourceContribution{
		Contributions:  map[string]float64{"stubble_burning": 38, "traffic": 30},
		DominantSource: "stubble_burning",
	}

	insights := fallbackInsights(current, forecast, sources)

	require.NotEmpty(t, insights)
	assert.Equal(t, "Current AQI at 220 - Very Unhealthy level", insights[0])
	assert.Equal(t, "Stubble Burning is the primary pollution source (38%)", insights[1])
	assert.Contains(t, insights, "Forecast: AQI expected to reach 260 in 3 days")
	assert.Contains(t, insights, "⚠️ Deteriorating conditions - limit outdoor exposure")
}

func TestForecastSummary_ByTrend(t *testing.T) {
	current := &dto.AQIData{AQI: 180}

	improving := forecastSummary(current, &dto.ForecastResponse{Trend: "improving", AQI72h: floatPtr(120)})
	assert.Equal(t, "Air quality improving from 180 to 120 over 72 hours", improving)

	worsening := forecastSummary(current, &dto.ForecastResponse{Trend: "worsening", AQI72h: floatPtr(240)})
	assert.Equal(t, "Air quality deteriorating from 180 to 240 over 72 hours", worsening)

	stable := forecastSummary(current, &dto.ForecastResponse{Trend: "stable"})
	assert.Equal(t, "Air quality stable around 180 for next 72 hours", stable)
}

func TestInsightsRecommendation_Thresholds(t *testing.T) {
	assert.Contains(t, insightsRecommendation(250), "Immediate action required")
	assert.Contains(t, insightsRecommendation(180), "Caution advised")
	assert.Contains(t, insightsRecommendation(90), "Moderate conditions")
}

func TestTitleSource(t *testing.T) {
	assert.Equal(t, "Stubble Burning", titleSource("stubble_burning"))
	assert.Equal(t, "Traffic", titleSource("traffic"))
}
