package aqisvc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"air_command/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelClient_Forecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 156.0, body["current_aqi"])

		w.Write([]byte(`{"aqi_24h":170,"aqi_48h":185,"aqi_72h":190,"trend":"worsening","confidence":0.82,"prediction_type":"ml","model_version":"xgb_v2.0","weather_conditions":{"wind_speed":4.2}}`))
	}))
	defer server.Close()

	client := NewHTTPModelClient(server.URL)
	forecast, err := client.Forecast(context.Background(), 156)
	require.NoError(t, err)

	require.NotNil(t, forecast.AQI48h)
	assert.Equal(t, 185.0, *forecast.AQI48h)
	assert.Equal(t, "worsening", forecast.Trend)
	assert.Equal(t, 4.2, forecast.WeatherConditions["wind_speed"])
}

func TestModelClient_Attribution(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attribution", r.URL.Path)
		w.Write([]byte(`{"contributions":{"traffic":34,"industry":20,"construction":18,"stubble_burning":15,"other":13},"dominant_source":"traffic","confidence":0.75,"model_version":"rf_v2.0","prediction_type":"ml"}`))
	}))
	defer server.Close()

	client := NewHTTPModelClient(server.URL)
	sources, err := client.Attribute(context.Background(), map[string]float64{"pm25": 85})
	require.NoError(t, err)

	assert.Equal(t, "traffic", sources.DominantSource)
	assert.Equal(t, 34.0, sources.Contributions["traffic"])
}

func TestModelClient_ForecastUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPModelClient(server.URL)
	_, err := client.Forecast(context.Background(), 156)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Failed to generate forecast", customErr.Message)
	assert.Equal(t, common.StatusInternalServerError, customErr.StatusCode)
}

func TestModelClient_ServerUnreachable(t *testing.T) {
	client := NewHTTPModelClient("http://127.0.0.1:1")

	_, err := client.Attribute(context.Background(), map[string]float64{})
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Failed to get pollution sources", customErr.Message)
}
