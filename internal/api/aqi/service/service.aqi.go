package aqisvc

import (
	"context"
	"fmt"
	"time"

	"air_command/internal/api/aqi/dto"
	"air_command/internal/logger"
)

// TextGenerator sinh văn bản từ prompt, dùng cho khuyến nghị và insight.
// Không khả dụng hoặc lỗi thì caller chuyển sang nội dung tĩnh.
type TextGenerator interface {
	Available() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

// AQIService điều phối dữ liệu AQI hiện tại, model server và generative AI
type AQIService struct {
	current   CurrentAQIProvider
	model     ModelClient
	analytics *AnalyticsLogger
	ai        TextGenerator

	modelConfigured bool
}

// NewAQIService tạo service điều phối cho domain aqi
func NewAQIService(current CurrentAQIProvider, model ModelClient, analytics *AnalyticsLogger, ai TextGenerator, modelConfigured bool) *AQIService {
	return &AQIService{
		current:         current,
		model:           model,
		analytics:       analytics,
		ai:              ai,
		modelConfigured: modelConfigured,
	}
}

// Current trả về AQI hiện tại của thành phố
func (s *AQIService) Current(ctx context.Context) *dto.AQIData {
	return s.current.CurrentAQI(ctx)
}

// Forecast lấy dự báo 24/48/72 giờ từ model server và ghi log phân tích
func (s *AQIService) Forecast(ctx context.Context) (*dto.ForecastResponse, error) {
	current := s.current.CurrentAQI(ctx)

	forecast, err := s.model.Forecast(ctx, current.AQI)
	if err != nil {
		return nil, err
	}

	go s.analytics.LogForecast(context.WithoutCancel(ctx), current.AQI, forecast)

	return forecast, nil
}

// Sources lấy phân bổ nguồn ô nhiễm từ model server và ghi log phân tích
func (s *AQIService) Sources(ctx context.Context) (*dto.SourceContribution, error) {
	current := s.current.CurrentAQI(ctx)

	sources, err := s.model.Attribute(ctx, current.Pollutants)
	if err != nil {
		return nil, err
	}

	go s.analytics.LogAttribution(context.WithoutCancel(ctx), sources)

	return sources, nil
}

// Advisory trả về khuyến cáo sức khỏe, không truyền AQI thì dùng AQI hiện tại
func (s *AQIService) Advisory(ctx context.Context, aqi *float64) *dto.HealthAdvisory {
	value := 0.0
	if aqi != nil {
		value = *aqi
	} else {
		value = s.current.CurrentAQI(ctx).AQI
	}
	return AdvisoryForAQI(value)
}

// Seasonal trả về triển vọng ô nhiễm theo mùa
func (s *AQIService) Seasonal() *dto.SeasonalOutlook {
	return SeasonalOutlookNow()
}

// Heatmap sinh bản đồ nhiệt quanh các điểm nóng dựa trên AQI hiện tại
func (s *AQIService) Heatmap(ctx context.Context) *dto.HeatmapResponse {
	current := s.current.CurrentAQI(ctx)
	return BuildHeatmap(current.AQI)
}

// Alerts sinh cảnh báo từ dự báo 48-72 giờ
func (s *AQIService) Alerts(ctx context.Context) (*dto.AlertsResponse, error) {
	forecast, err := s.Forecast(ctx)
	if err != nil {
		return nil, err
	}
	current := s.current.CurrentAQI(ctx)
	return BuildAlerts(forecast, current), nil
}

// Recommendations sinh khuyến nghị theo loại người dùng (citizen hoặc policymaker)
func (s *AQIService) Recommendations(ctx context.Context, userType string) (*dto.RecommendationsResponse, error) {
	current := s.current.CurrentAQI(ctx)
	forecast, err := s.Forecast(ctx)
	if err != nil {
		return nil, err
	}
	sources, err := s.Sources(ctx)
	if err != nil {
		return nil, err
	}

	var recommendations []dto.Recommendation
	var contextLine string

	if userType == "citizen" {
		prompt := citizenPrompt(current.AQI, current.Category, forecast.Trend, sources.DominantSource)
		recommendations = parseRecommendations(s.completeOrEmpty(ctx, prompt))
		if recommendations == nil {
			recommendations = citizenFallback(current.AQI)
		}
		contextLine = fmt.Sprintf("Based on current AQI of %g (%s) with %s trend", current.AQI, current.Category, forecast.Trend)
	} else {
		prompt := policymakerPrompt(current.AQI, forecast.Trend, sources.DominantSource, forecast.AQI48h, forecast.AQI72h)
		recommendations = parseRecommendations(s.completeOrEmpty(ctx, prompt))
		if recommendations == nil {
			recommendations = policymakerFallback(current.AQI, forecast.AQI48h, sources.DominantSource)
		}
		contextLine = fmt.Sprintf("Policy guidance for AQI %g with forecast: 48h=%g, 72h=%g",
			current.AQI, derefFloat(forecast.AQI48h), derefFloat(forecast.AQI72h))
	}

	return &dto.RecommendationsResponse{
		UserType:        userType,
		CurrentAQI:      current.AQI,
		Recommendations: recommendations,
		Context:         contextLine,
		PredictionType:  s.predictionType(),
		ModelVersion:    "recommendations_v1.0",
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Insights sinh tóm tắt phân tích từ dữ liệu hiện tại và dự báo
func (s *AQIService) Insights(ctx context.Context) (*dto.InsightsSummaryResponse, error) {
	current := s.current.CurrentAQI(ctx)
	forecast, err := s.Forecast(ctx)
	if err != nil {
		return nil, err
	}
	sources, err := s.Sources(ctx)
	if err != nil {
		return nil, err
	}

	keyInsights := parseInsights(s.completeOrEmpty(ctx, insightsPrompt(current, forecast, sources)))
	if len(keyInsights) == 0 {
		keyInsights = fallbackInsights(current, forecast, sources)
	}

	return &dto.InsightsSummaryResponse{
		KeyInsights:     keyInsights,
		DominantSource:  titleSource(sources.DominantSource),
		Trend:           titleSource(forecast.Trend),
		ForecastSummary: forecastSummary(current, forecast),
		Recommendation:  insightsRecommendation(current.AQI),
		PredictionType:  s.predictionType(),
		ModelVersion:    "insights_v1.0",
		Confidence:      forecast.Confidence,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Transparency mô tả nguồn dữ liệu và trạng thái mô hình
func (s *AQIService) Transparency() *dto.TransparencyInfo {
	status := "not_loaded"
	if s.modelConfigured {
		status = "ml"
	}
	return BuildTransparency(status, status)
}

// SafeRoute tính tuyến đường ít ô nhiễm giữa hai điểm
func (s *AQIService) SafeRoute(input *dto.SafeRouteInput) *dto.SafeRouteResponse {
	return CalculateSafeRoute(input)
}

// PolicyImpact ước tính tác động chính sách dựa trên AQI hiện tại
func (s *AQIService) PolicyImpact(ctx context.Context, input *dto.PolicyImpactInput) *dto.PolicyImpactResponse {
	currentAQI := 200.0
	if current := s.current.CurrentAQI(ctx); current != nil {
		currentAQI = current.AQI
	}
	return CalculatePolicyImpact(input, currentAQI)
}

func (s *AQIService) predictionType() string {
	if s.ai != nil && s.ai.Available() {
		return "ai_enhanced"
	}
	return "simulation"
}

// completeOrEmpty gọi generative AI, lỗi thì trả chuỗi rỗng để dùng fallback
func (s *AQIService) completeOrEmpty(ctx context.Context, prompt string) string {
	if s.ai == nil || !s.ai.Available() {
		return ""
	}
	text, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Generative AI unavailable, using static content")
		return ""
	}
	return text
}
