package aqisvc

import (
	"context"
	"database/sql"
	"time"

	"air_command/internal/api/aqi/dto"
	"air_command/internal/logger"
)

// AnalyticsLogger ghi lại kết quả dự báo vào MySQL để phân tích sau.
// Ghi log là best-effort, lỗi chỉ được log và không chặn response.
type AnalyticsLogger struct {
	db *sql.DB
}

// NewAnalyticsLogger tạo logger trên connection pool MySQL dùng chung
func NewAnalyticsLogger(db *sql.DB) *AnalyticsLogger {
	return &AnalyticsLogger{db: db}
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// LogForecast lưu một kết quả dự báo AQI
func (a *AnalyticsLogger) LogForecast(ctx context.Context, currentAQI float64, forecast *dto.ForecastResponse) {
	if a == nil || a.db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO aqi_prediction_logs
			(current_aqi, aqi_24h, aqi_48h, aqi_72h, trend, confidence, model_version, prediction_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		currentAQI,
		derefFloat(forecast.AQI24h),
		derefFloat(forecast.AQI48h),
		derefFloat(forecast.AQI72h),
		forecast.Trend,
		forecast.Confidence,
		forecast.ModelVersion,
		forecast.PredictionType,
		time.Now().UTC(),
	)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Failed to log AQI forecast for analytics")
	}
}

// LogAttribution lưu một kết quả phân bổ nguồn ô nhiễm
func (a *AnalyticsLogger) LogAttribution(ctx context.Context, attribution *dto.SourceContribution) {
	if a == nil || a.db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	contrib := func(key string) float64 {
		return attribution.Contributions[key]
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO source_attribution_logs
			(traffic, industry, construction, stubble_burning, other, dominant_source, confidence, model_version, prediction_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contrib("traffic"),
		contrib("industry"),
		contrib("construction"),
		contrib("stubble_burning"),
		contrib("other"),
		attribution.DominantSource,
		attribution.Confidence,
		attribution.ModelVersion,
		attribution.PredictionType,
		time.Now().UTC(),
	)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Failed to log source attribution for analytics")
	}
}
