// Package aqisvc cung cấp dữ liệu chất lượng không khí cho dashboard.
package aqisvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"air_command/internal/api/aqi/dto"
	"air_command/internal/logger"
)

const currentAQICacheTTL = 60 * time.Second

// CurrentAQIProvider trả về chỉ số AQI hiện tại của thành phố
type CurrentAQIProvider interface {
	CurrentAQI(ctx context.Context) *dto.AQIData
}

// WAQIService lấy AQI hiện tại từ WAQI feed, có cache ngắn hạn.
// Khi upstream lỗi hoặc thiếu token thì trả về dữ liệu fallback cố định,
// endpoint này không bao giờ fail ra ngoài.
type WAQIService struct {
	token      string
	feedURL    string
	httpClient *http.Client

	mu       sync.Mutex
	cached   *dto.AQIData
	cachedAt time.Time
}

// NewWAQIService tạo service với token và feed URL được cấu hình
func NewWAQIService(token, feedURL string) *WAQIService {
	return &WAQIService{
		token:   token,
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type waqiFeedResponse struct {
	Status string `json:"status"`
	Data   struct {
		AQI  float64 `json:"aqi"`
		IAQI map[string]struct {
			V float64 `json:"v"`
		} `json:"iaqi"`
	} `json:"data"`
}

// CategoryForAQI phân loại mức AQI theo thang US EPA
func CategoryForAQI(aqi float64) string {
	switch {
	case aqi > 300:
		return "Hazardous"
	case aqi > 200:
		return "Very Unhealthy"
	case aqi > 150:
		return "Unhealthy"
	case aqi > 100:
		return "Unhealthy for Sensitive Groups"
	case aqi > 50:
		return "Moderate"
	default:
		return "Good"
	}
}

// fallbackAQIData là dữ liệu mô phỏng dùng khi không gọi được WAQI
func fallbackAQIData() *dto.AQIData {
	return &dto.AQIData{
		AQI:      156.0,
		Category: "Unhealthy",
		Location: "Delhi NCR",
		Pollutants: map[string]float64{
			"pm25": 85,
			"pm10": 120,
			"no2":  45,
			"so2":  12,
			"co":   1.8,
			"o3":   35,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// CurrentAQI trả về AQI hiện tại, ưu tiên cache rồi đến WAQI feed.
// Mọi lỗi upstream đều được ghi log và thay bằng fallback.
func (s *WAQIService) CurrentAQI(ctx context.Context) *dto.AQIData {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < currentAQICacheTTL {
		cached := *s.cached
		s.mu.Unlock()
		return &cached
	}
	s.mu.Unlock()

	data, err := s.fetchFromFeed(ctx)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("WAQI feed unavailable, serving simulated AQI data")
		return fallbackAQIData()
	}

	s.mu.Lock()
	s.cached = data
	s.cachedAt = time.Now()
	s.mu.Unlock()

	result := *data
	return &result
}

func (s *WAQIService) fetchFromFeed(ctx context.Context) (*dto.AQIData, error) {
	if s.token == "" {
		return nil, fmt.Errorf("WAQI API token not configured")
	}

	url := fmt.Sprintf("%s/feed/delhi/?token=%s", s.feedURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create WAQI request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call WAQI feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("WAQI feed returned status %d", resp.StatusCode)
	}

	var feed waqiFeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode WAQI response: %w", err)
	}
	if feed.Status != "ok" {
		return nil, fmt.Errorf("WAQI feed status %q", feed.Status)
	}

	iaqi := func(key string) float64 {
		if v, ok := feed.Data.IAQI[key]; ok {
			return v.V
		}
		return 0
	}

	return &dto.AQIData{
		AQI:      feed.Data.AQI,
		Category: CategoryForAQI(feed.Data.AQI),
		Location: "Delhi NCR",
		Pollutants: map[string]float64{
			"pm25": iaqi("pm25"),
			"pm10": iaqi("pm10"),
			"no2":  iaqi("no2"),
			"so2":  iaqi("so2"),
			"co":   iaqi("co"),
			"o3":   iaqi("o3"),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
