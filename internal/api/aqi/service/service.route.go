package aqisvc

import (
	"math"

	"air_command/internal/api/aqi/dto"
)

// CalculateSafeRoute dựng tuyến đường ba điểm qua trung điểm với AQI mô phỏng.
// Chưa có lưới quan trắc dày nên AQI dọc tuyến là giá trị đại diện cố định.
func CalculateSafeRoute(input *dto.SafeRouteInput) *dto.SafeRouteResponse {
	midLat := (input.StartLat + input.EndLat) / 2
	midLng := (input.StartLng + input.EndLng) / 2

	points := []dto.RoutePoint{
		{Lat: input.StartLat, Lng: input.StartLng, AQI: 165},
		{Lat: midLat, Lng: midLng, AQI: 140},
		{Lat: input.EndLat, Lng: input.EndLng, AQI: 155},
	}

	sum := 0
	for _, p := range points {
		sum += p.AQI
	}
	avgAQI := float64(sum) / float64(len(points))

	recommendation := "Moderate pollution levels along route. Consider using public transport."
	if avgAQI > 200 {
		recommendation = "High pollution levels. Wear N95 mask and avoid peak traffic hours."
	} else if avgAQI < 100 {
		recommendation = "Good air quality along route. Safe for travel."
	}

	return &dto.SafeRouteResponse{
		RoutePoints:    points,
		AvgAQI:         math.Round(avgAQI*10) / 10,
		Recommendation: recommendation,
	}
}
