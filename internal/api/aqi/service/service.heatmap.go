package aqisvc

import (
	"math"
	"math/rand"
	"time"

	"air_command/internal/api/aqi/dto"
)

// hotspot là một điểm nóng ô nhiễm đã biết ở Delhi NCR
type hotspot struct {
	lat  float64
	lng  float64
	name string
}

var heatmapHotspots = []hotspot{
	{28.7041, 77.1025, "Rohini"},
	{28.5355, 77.3910, "Noida"},
	{28.4595, 77.0266, "Gurugram"},
	{28.6517, 77.2219, "Connaught Place"},
	{28.5244, 77.1855, "Nehru Place"},
}

func heatmapCategory(aqi float64) string {
	switch {
	case aqi > 300:
		return "Hazardous"
	case aqi > 200:
		return "Very Unhealthy"
	case aqi > 150:
		return "Unhealthy"
	default:
		return "Moderate"
	}
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// BuildHeatmap mô phỏng bản đồ nhiệt quanh các điểm nóng dựa trên AQI hiện tại.
// Seed cố định để kết quả ổn định giữa các lần gọi với cùng base AQI.
func BuildHeatmap(baseAQI float64) *dto.HeatmapResponse {
	rng := rand.New(rand.NewSource(42))
	points := make([]dto.HeatmapPoint, 0, len(heatmapHotspots)*9)

	for _, spot := range heatmapHotspots {
		intensity := baseAQI + uniform(rng, 10, 50)
		category := "Good"
		if intensity > 150 {
			category = "Unhealthy"
		} else if intensity > 100 {
			category = "Moderate"
		}

		points = append(points, dto.HeatmapPoint{
			Lat:       spot.lat,
			Lng:       spot.lng,
			Intensity: math.Min(intensity/500.0, 1.0),
			AQI:       math.Round(intensity*10) / 10,
			Category:  category,
		})

		// 8 điểm xung quanh với cường độ giảm dần, lệch 2-5 km theo 8 hướng
		for i := 0; i < 8; i++ {
			distance := uniform(rng, 0.02, 0.05)
			latOffset := distance * uniform(rng, 0.8, 1.2)
			lngOffset := distance * uniform(rng, 0.8, 1.2)

			latSign := 1.0
			if i >= 4 {
				latSign = -1.0
			}
			lngSign := 1.0
			if i%2 != 0 {
				lngSign = -1.0
			}

			surroundingAQI := baseAQI + uniform(rng, -20, 30)
			surroundingIntensity := math.Max(0.1, math.Min(surroundingAQI/500.0, 1.0))

			points = append(points, dto.HeatmapPoint{
				Lat:       spot.lat + latOffset*latSign,
				Lng:       spot.lng + lngOffset*lngSign,
				Intensity: surroundingIntensity,
				AQI:       math.Round(surroundingAQI*10) / 10,
				Category:  heatmapCategory(surroundingAQI),
			})
		}
	}

	return &dto.HeatmapResponse{
		Points:         points,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		PredictionType: "simulation",
		ModelVersion:   "heatmap_v1.0",
	}
}
