package aqisvc

import (
	"fmt"
	"strings"

	"air_command/internal/api/aqi/dto"
)

var transparencyDataSources = []dto.DataSource{
	{
		Name:            "WAQI (World Air Quality Index)",
		Type:            "Real-time air quality data",
		Coverage:        "Delhi NCR with geo-location support",
		UpdateFrequency: "Real-time (every 30 minutes)",
		Parameters:      []string{"AQI", "PM2.5", "PM10", "NO2", "SO2", "CO", "O3"},
	},
	{
		Name:            "CPCB (Central Pollution Control Board)",
		Type:            "Historical training data",
		Coverage:        "40+ stations across Delhi NCR (2015-2024)",
		UpdateFrequency: "Historical dataset for model training",
		Parameters:      []string{"PM2.5", "PM10", "NO2", "SO2", "CO", "O3", "AQI"},
	},
	{
		Name:            "Satellite Data",
		Type:            "Fire hotspot detection",
		Coverage:        "Regional stubble burning monitoring",
		UpdateFrequency: "Daily (seasonal)",
		Parameters:      []string{"Fire count", "AOD"},
	},
}

// BuildTransparency mô tả nguồn dữ liệu và trạng thái mô hình cho người dùng.
// Trạng thái mô hình là "ml", "simulation" hoặc "not_loaded".
func BuildTransparency(forecasterStatus, attributionStatus string) *dto.TransparencyInfo {
	var modelApproach, currentVersion string
	var limitations []string

	switch {
	case forecasterStatus == "ml" && attributionStatus == "ml":
		modelApproach = "Machine Learning Models"
		currentVersion = "v2.0 - Trained ML models on historical data (2015-2025)"
		limitations = []string{
			"Model predictions based on historical patterns - extreme weather events may affect accuracy",
			"AQI memory features use current AQI as proxy (sliding window not yet implemented)",
			"Source attribution trained on labeled Delhi NCR data",
			"Real-time data depends on WAQI API availability",
			"Ensemble predictions provide confidence intervals",
		}
	case forecasterStatus == "not_loaded" || attributionStatus == "not_loaded":
		modelApproach = "ML Models Not Configured"
		currentVersion = "v2.0 - Awaiting ML model files"
		limitations = []string{
			"Model server is not configured or unreachable",
			"Forecast and attribution endpoints will return error responses until the model server is available",
			"Configure MODEL_SERVER_URL to enable predictions",
		}
	default:
		modelApproach = "Hybrid: ML and Simulation"
		currentVersion = "v2.0 - Partial ML integration"
		limitations = []string{
			fmt.Sprintf("AQI Forecasting: %s", forecasterStatus),
			fmt.Sprintf("Source Attribution: %s", attributionStatus),
			"Some endpoints may use fallback predictions",
			"Upload missing model files for full ML functionality",
		}
	}

	upgradePath := strings.TrimSpace(fmt.Sprintf(`
ML Model Integration Status:

Infrastructure Ready: API endpoints support both simulation and ML predictions
XGBoost Ensemble: 5-booster AQI forecasting (24h, 48h, 72h)
Random Forest: Multi-output source attribution

Current Status:
- AQI Forecasting Model: %s
- Source Attribution Model: %s

Model Architecture:
- AQI Forecasting: XGBoost ensemble trained on 2019-2025 data
  Features: Pollutants, time cycles, location, AQI memory, ratios
  Outputs: AQI predictions at 24h, 48h, 72h with confidence

- Source Attribution: Random Forest regressor trained on 2015-2024 data
  Features: Pollutants, ratios (PM10/PM2.5, NO2/CO), time
  Outputs: %% contribution (Traffic, Industry, Construction, Stubble Burning, Other)

All API endpoints maintain consistent response schema regardless of model status.`,
		strings.ToUpper(forecasterStatus), strings.ToUpper(attributionStatus)))

	return &dto.TransparencyInfo{
		DataSources:     transparencyDataSources,
		ModelApproach:   modelApproach,
		CurrentVersion:  currentVersion,
		MLUpgradePath:   upgradePath,
		Limitations:     limitations,
		UpdateFrequency: "Real-time AQI updates, ML predictions on-demand, Models retrained quarterly",
	}
}
