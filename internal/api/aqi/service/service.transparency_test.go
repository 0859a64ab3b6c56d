package aqisvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTransparency_FullML(t *testing.T) {
	info := BuildTransparency("ml", "ml")

	assert.Equal(t, "Machine Learning Models", info.ModelApproach)
	assert.Contains(t, info.CurrentVersion, "Trained ML models")
	assert.Contains(t, info.MLUpgradePath, "AQI Forecasting Model: ML")
	require.Len(t, info.DataSources, 3)
	assert.Equal(t, "WAQI (World Air Quality Index)", info.DataSources[0].Name)
}

func TestBuildTransparency_NotConfigured(t *testing.T) {
	info := BuildTransparency("not_loaded", "not_loaded")

	assert.Equal(t, "ML Models Not Configured", info.ModelApproach)
	assert.Contains(t, info.Limitations, "Configure MODEL_SERVER_URL to enable predictions")
}

func TestBuildTransparency_Hybrid(t *testing.T) {
	info := BuildTransparency("ml", "simulation")

	assert.Equal(t, "Hybrid: ML and Simulation", info.ModelApproach)
	assert.Contains(t, info.Limitations, "AQI Forecasting: ml")
	assert.Contains(t, info.Limitations, "Source Attribution: simulation")
}
