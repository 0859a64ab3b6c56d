package aqisvc

import (
	"testing"

	"air_command/internal/api/aqi/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePolicyImpact_OddEven(t *testing.T) {
	result := CalculatePolicyImpact(&dto.PolicyImpactInput{PolicyType: "odd_even", Intensity: 0.8}, 220)

	assert.Equal(t, 12.0, result.EstimatedReduction)
	assert.Equal(t, 7, result.TimelineDays)
	assert.Equal(t, []string{"traffic"}, result.AffectedSources)
	assert.Equal(t, "high", result.ConfidenceLevel)
	assert.Contains(t, result.RecommendationReasoning, "220")
	assert.Contains(t, result.RecommendationReasoning, "80%")
}

func TestCalculatePolicyImpact_ConfidenceDependsOnIntensity(t *testing.T) {
	low := CalculatePolicyImpact(&dto.PolicyImpactInput{PolicyType: "odd_even", Intensity: 0.5}, 200)
	assert.Equal(t, "medium", low.ConfidenceLevel)

	halt := CalculatePolicyImpact(&dto.PolicyImpactInput{PolicyType: "construction_halt", Intensity: 0.9}, 200)
	assert.Equal(t, "high", halt.ConfidenceLevel)
	assert.Equal(t, 18.0, halt.EstimatedReduction)
	assert.Equal(t, 3, halt.TimelineDays)

	stubble := CalculatePolicyImpact(&dto.PolicyImpactInput{PolicyType: "stubble_control", Intensity: 0.5}, 200)
	assert.Equal(t, "low", stubble.ConfidenceLevel)
	assert.Equal(t, 15.0, stubble.EstimatedReduction)
	assert.Equal(t, []string{"stubble_burning"}, stubble.AffectedSources)
}

func TestCalculatePolicyImpact_FirecrackerBanAlwaysMedium(t *testing.T) {
	result := CalculatePolicyImpact(&dto.PolicyImpactInput{PolicyType: "firecracker_ban", Intensity: 1.0}, 180)

	assert.Equal(t, "medium", result.ConfidenceLevel)
	assert.Equal(t, 25.0, result.EstimatedReduction)
	assert.Equal(t, 2, result.TimelineDays)
	assert.Equal(t, []string{"traffic", "industry"}, result.AffectedSources)
}

func TestCalculatePolicyImpact_UnknownPolicyDefaultsToOddEven(t *testing.T) {
	result := CalculatePolicyImpact(&dto.PolicyImpactInput{PolicyType: "teleport_everyone", Intensity: 1.0}, 200)

	assert.Equal(t, 15.0, result.EstimatedReduction)
	assert.Equal(t, 7, result.TimelineDays)
	assert.Equal(t, []string{"traffic"}, result.AffectedSources)
}
