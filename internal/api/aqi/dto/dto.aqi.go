// Package dto định nghĩa các cấu trúc request/response cho domain aqi.
// Tên trường JSON giữ nguyên theo hợp đồng với dashboard frontend.
package dto

// AQIData là chỉ số AQI hiện tại của thành phố
type AQIData struct {
	AQI        float64            `json:"aqi"`
	Category   string             `json:"category"`
	Location   string             `json:"location"`
	Pollutants map[string]float64 `json:"pollutants"`
	Timestamp  string             `json:"timestamp"`
}

// ForecastResponse là dự báo AQI 24/48/72 giờ từ model server
type ForecastResponse struct {
	AQI24h                *float64           `json:"aqi_24h"`
	AQI48h                *float64           `json:"aqi_48h"`
	AQI72h                *float64           `json:"aqi_72h"`
	Trend                 string             `json:"trend"`
	Confidence            float64            `json:"confidence"`
	ConfidenceLevel       string             `json:"confidence_level"`
	ConfidenceExplanation string             `json:"confidence_explanation"`
	Factors               map[string]any     `json:"factors"`
	PredictionType        string             `json:"prediction_type"`
	ModelVersion          string             `json:"model_version"`
	Explanation           string             `json:"explanation"`
	WeatherConditions     map[string]float64 `json:"weather_conditions"`
	Error                 *string            `json:"error,omitempty"`
	Message               *string            `json:"message,omitempty"`
}

// SourceContribution là tỷ lệ đóng góp của các nguồn ô nhiễm
type SourceContribution struct {
	Contributions         map[string]float64 `json:"contributions"`
	DominantSource        string             `json:"dominant_source"`
	Confidence            float64            `json:"confidence"`
	ConfidenceLevel       string             `json:"confidence_level"`
	ConfidenceExplanation string             `json:"confidence_explanation"`
	FactorsConsidered     map[string]any     `json:"factors_considered"`
	PredictionType        string             `json:"prediction_type"`
	ModelVersion          string             `json:"model_version"`
	Explanation           string             `json:"explanation"`
	PollutantIndicators   map[string]any     `json:"pollutant_indicators"`
	Error                 *string            `json:"error,omitempty"`
	Message               *string            `json:"message,omitempty"`
}

// HealthAdvisory là khuyến cáo sức khỏe theo thang AQI
type HealthAdvisory struct {
	AQILevel         string   `json:"aqi_level"`
	HealthImpact     string   `json:"health_impact"`
	Recommendations  []string `json:"recommendations"`
	VulnerableGroups []string `json:"vulnerable_groups"`
	OutdoorActivity  string   `json:"outdoor_activity"`
}

// MonthlyPattern mô tả đặc trưng ô nhiễm của một tháng trong năm
type MonthlyPattern struct {
	AvgAQI      int    `json:"avg_aqi"`
	Risk        string `json:"risk"`
	Description string `json:"description"`
}

// SeasonalOutlook là triển vọng ô nhiễm theo mùa dựa trên dữ liệu lịch sử
type SeasonalOutlook struct {
	CurrentMonth     int                       `json:"current_month"`
	CurrentMonthName string                    `json:"current_month_name"`
	MonthlyPatterns  map[string]MonthlyPattern `json:"monthly_patterns"`
	HighRiskSeason   bool                      `json:"high_risk_season"`
	HighRiskMonths   []string                  `json:"high_risk_months"`
	LowRiskMonths    []string                  `json:"low_risk_months"`
	CurrentOutlook   string                    `json:"current_outlook"`
}

// HeatmapPoint là một điểm trên bản đồ nhiệt ô nhiễm
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
	AQI       float64 `json:"aqi"`
	Category  string  `json:"category"`
}

// HeatmapResponse là dữ liệu bản đồ nhiệt quanh các điểm nóng Delhi NCR
type HeatmapResponse struct {
	Points         []HeatmapPoint `json:"points"`
	Timestamp      string         `json:"timestamp"`
	PredictionType string         `json:"prediction_type"`
	ModelVersion   string         `json:"model_version"`
}

// Recommendation là một khuyến nghị hành động cho người dùng
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Icon        string `json:"icon"`
}

// RecommendationsResponse là danh sách khuyến nghị theo loại người dùng
type RecommendationsResponse struct {
	UserType        string           `json:"user_type"`
	CurrentAQI      float64          `json:"current_aqi"`
	Recommendations []Recommendation `json:"recommendations"`
	Context         string           `json:"context"`
	PredictionType  string           `json:"prediction_type"`
	ModelVersion    string           `json:"model_version"`
	GeneratedAt     string           `json:"generated_at"`
}

// Alert là một cảnh báo chất lượng không khí dựa trên dự báo
type Alert struct {
	ID             string   `json:"id"`
	Severity       string   `json:"severity"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	TimeWindow     string   `json:"time_window"`
	AffectedGroups []string `json:"affected_groups"`
	AQIRange       string   `json:"aqi_range"`
}

// AlertsResponse là danh sách cảnh báo hiện hành
type AlertsResponse struct {
	Alerts         []Alert `json:"alerts"`
	ForecastPeriod string  `json:"forecast_period"`
	PredictionType string  `json:"prediction_type"`
	ModelVersion   string  `json:"model_version"`
	GeneratedAt    string  `json:"generated_at"`
}

// InsightsSummaryResponse là tóm tắt phân tích do AI sinh hoặc fallback tĩnh
type InsightsSummaryResponse struct {
	KeyInsights     []string `json:"key_insights"`
	DominantSource  string   `json:"dominant_source"`
	Trend           string   `json:"trend"`
	ForecastSummary string   `json:"forecast_summary"`
	Recommendation  string   `json:"recommendation"`
	PredictionType  string   `json:"prediction_type"`
	ModelVersion    string   `json:"model_version"`
	Confidence      float64  `json:"confidence"`
	GeneratedAt     string   `json:"generated_at"`
}

// DataSource mô tả một nguồn dữ liệu của hệ thống
type DataSource struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Coverage        string   `json:"coverage"`
	UpdateFrequency string   `json:"update_frequency"`
	Parameters      []string `json:"parameters"`
}

// TransparencyInfo mô tả nguồn dữ liệu và phương pháp dự báo của hệ thống
type TransparencyInfo struct {
	DataSources     []DataSource `json:"data_sources"`
	ModelApproach   string       `json:"model_approach"`
	CurrentVersion  string       `json:"current_version"`
	MLUpgradePath   string       `json:"ml_upgrade_path"`
	Limitations     []string     `json:"limitations"`
	UpdateFrequency string       `json:"update_frequency"`
}

// SafeRouteInput là yêu cầu tìm tuyến đường ít ô nhiễm
type SafeRouteInput struct {
	StartLat float64 `json:"start_lat" validate:"gte=-90,lte=90"`
	StartLng float64 `json:"start_lng" validate:"gte=-180,lte=180"`
	EndLat   float64 `json:"end_lat" validate:"gte=-90,lte=90"`
	EndLng   float64 `json:"end_lng" validate:"gte=-180,lte=180"`
}

// RoutePoint là một điểm trên tuyến đường kèm AQI tại điểm đó
type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	AQI int     `json:"aqi"`
}

// SafeRouteResponse là tuyến đường đề xuất kèm mức ô nhiễm trung bình
type SafeRouteResponse struct {
	RoutePoints    []RoutePoint `json:"route_points"`
	AvgAQI         float64      `json:"avg_aqi"`
	Recommendation string       `json:"recommendation"`
}

// PolicyImpactInput là yêu cầu mô phỏng tác động chính sách
type PolicyImpactInput struct {
	PolicyType string  `json:"policy_type" validate:"required"`
	Intensity  float64 `json:"intensity" validate:"gte=0,lte=1"`
}

// PolicyImpactResponse là kết quả mô phỏng tác động chính sách
type PolicyImpactResponse struct {
	EstimatedReduction      float64  `json:"estimated_reduction"`
	TimelineDays            int      `json:"timeline_days"`
	AffectedSources         []string `json:"affected_sources"`
	Description             string   `json:"description"`
	RecommendationReasoning string   `json:"recommendation_reasoning"`
	ConfidenceLevel         string   `json:"confidence_level"`
	ConfidenceExplanation   string   `json:"confidence_explanation"`
}
