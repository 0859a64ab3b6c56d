package aqisvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendations_ValidJSONArray(t *testing.T) {
	aiResponse := `Here are my suggestions:
[{"title":"Stay Indoors","description":"Keep windows closed.","priority":"high","icon":"🏠"},
{"title":"Wear Mask","description":"Use N95 outdoors.","priority":"medium","icon":"😷"}]
Stay safe!`

	parsed := parseRecommendations(aiResponse)

	require.Len(t, parsed, 2)
	assert.Equal(t, "Stay Indoors", parsed[0].Title)
	assert.Equal(t, "medium", parsed[1].Priority)
}

func TestParseRecommendations_RejectsGarbage(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty", response: ""},
		{name: "plain text", response: "Stay indoors and wear a mask."},
		{name: "no json objects", response: "[1, 2, 3]"},
		{name: "broken json", response: `[{"title": "Stay`},
		{name: "empty array", response: "{} []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, parseRecommendations(tt.response))
		})
	}
}

func TestCitizenFallback_Thresholds(t *testing.T) {
	severe := citizenFallback(250)
	require.Len(t, severe, 5)
	assert.Equal(t, "Stay Indoors", severe[0].Title)

	unhealthy := citizenFallback(180)
	require.Len(t, unhealthy, 4)
	assert.Equal(t, "Limit Outdoor Activities", unhealthy[0].Title)

	moderate := citizenFallback(90)
	require.Len(t, moderate, 3)
	assert.Equal(t, "Moderate Exercise Safe", moderate[0].Title)
}

func TestPolicymakerFallback_EmergencyOnForecast(t *testing.T) {
	// AQI hiện tại dưới ngưỡng nhưng dự báo 48h vượt 200 vẫn kích hoạt phương án khẩn cấp
	recs := policymakerFallback(180, floatPtr(230), "traffic")

	require.Len(t, recs, 5)
	assert.Equal(t, "Implement Emergency Response", recs[0].Title)
	assert.Contains(t, recs[0].Description, "traffic")
}

func TestPolicymakerFallback_RoutineMeasures(t *testing.T) {
	recs := policymakerFallback(140, floatPtr(150), "industry")

	require.Len(t, recs, 4)
	assert.Equal(t, "Monitor Stubble Burning", recs[0].Title)
}
