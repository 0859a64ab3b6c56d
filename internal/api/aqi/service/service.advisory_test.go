package aqisvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisoryForAQI_Bands(t *testing.T) {
	cases := []struct {
		aqi   float64
		level string
	}{
		{0, "Good (0-50)"},
		{50, "Good (0-50)"},
		{51, "Moderate (51-100)"},
		{100, "Moderate (51-100)"},
		{101, "Unhealthy for Sensitive Groups (101-150)"},
		{150, "Unhealthy for Sensitive Groups (101-150)"},
		{151, "Unhealthy (151-200)"},
		{200, "Unhealthy (151-200)"},
		{201, "Very Unhealthy (201-300)"},
		{300, "Very Unhealthy (201-300)"},
		{301, "Hazardous (300+)"},
		{450, "Hazardous (300+)"},
	}

	for _, tc := range cases {
		advisory := AdvisoryForAQI(tc.aqi)
		assert.Equal(t, tc.level, advisory.AQILevel, "aqi %.0f", tc.aqi)
		assert.NotEmpty(t, advisory.HealthImpact)
		assert.NotEmpty(t, advisory.Recommendations)
		assert.NotEmpty(t, advisory.VulnerableGroups)
		assert.NotEmpty(t, advisory.OutdoorActivity)
	}
}

func TestAdvisoryForAQI_HazardousContent(t *testing.T) {
	advisory := AdvisoryForAQI(350)

	assert.Contains(t, advisory.OutdoorActivity, "Hazardous")
	assert.Contains(t, advisory.VulnerableGroups[0], "Entire population")
	assert.Len(t, advisory.Recommendations, 7)
}

func TestCategoryForAQI(t *testing.T) {
	assert.Equal(t, "Good", CategoryForAQI(40))
	assert.Equal(t, "Moderate", CategoryForAQI(75))
	assert.Equal(t, "Unhealthy for Sensitive Groups", CategoryForAQI(120))
	assert.Equal(t, "Unhealthy", CategoryForAQI(180))
	assert.Equal(t, "Very Unhealthy", CategoryForAQI(250))
	assert.Equal(t, "Hazardous", CategoryForAQI(320))
}
