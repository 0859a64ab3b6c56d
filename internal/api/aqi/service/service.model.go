package aqisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"air_command/internal/api/aqi/dto"
	"air_command/internal/common"
	"air_command/internal/logger"
)

// ModelClient gọi model server để lấy dự báo và phân bổ nguồn ô nhiễm
type ModelClient interface {
	Forecast(ctx context.Context, currentAQI float64) (*dto.ForecastResponse, error)
	Attribute(ctx context.Context, pollutants map[string]float64) (*dto.SourceContribution, error)
}

// HTTPModelClient là client REST cho model server nội bộ
type HTTPModelClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPModelClient tạo client với base URL của model server
func NewHTTPModelClient(baseURL string) *HTTPModelClient {
	return &HTTPModelClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type forecastRequest struct {
	CurrentAQI float64 `json:"current_aqi"`
}

type attributionRequest struct {
	Pollutants map[string]float64 `json:"pollutants"`
}

// Forecast lấy dự báo AQI 24/48/72 giờ từ model server
func (c *HTTPModelClient) Forecast(ctx context.Context, currentAQI float64) (*dto.ForecastResponse, error) {
	var result dto.ForecastResponse
	if err := c.post(ctx, "/forecast", forecastRequest{CurrentAQI: currentAQI}, "Failed to generate forecast", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Attribute lấy phân bổ nguồn ô nhiễm từ model server
func (c *HTTPModelClient) Attribute(ctx context.Context, pollutants map[string]float64) (*dto.SourceContribution, error) {
	var result dto.SourceContribution
	if err := c.post(ctx, "/attribution", attributionRequest{Pollutants: pollutants}, "Failed to get pollution sources", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPModelClient) post(ctx context.Context, path string, body any, failMsg string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return common.NewError(common.ErrCodeUpstream, failMsg, common.StatusInternalServerError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return common.NewError(common.ErrCodeUpstream, failMsg, common.StatusInternalServerError, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetErrorLogger().WithError(err).WithField("path", path).Error("Model server request failed")
		return common.NewError(common.ErrCodeUpstream, failMsg, common.StatusInternalServerError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("model server returned status %d", resp.StatusCode)
		logger.GetErrorLogger().WithField("path", path).Error(err.Error())
		return common.NewError(common.ErrCodeUpstream, failMsg, common.StatusInternalServerError, err)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return common.NewError(common.ErrCodeUpstream, failMsg, common.StatusInternalServerError, err)
	}
	return nil
}
