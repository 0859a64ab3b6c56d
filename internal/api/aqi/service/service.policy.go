package aqisvc

import (
	"fmt"
	"math"

	"air_command/internal/api/aqi/dto"
)

// policyImpact mô tả tác động ước tính của một loại chính sách
type policyImpact struct {
	reduction             float64
	timelineDays          int
	sources               []string
	description           string
	reasoning             func(aqi float64, intensity float64) string
	confidence            func(intensity float64) string
	confidenceExplanation string
}

var policyImpacts = map[string]policyImpact{
	"odd_even": {
		reduction:    15,
		timelineDays: 7,
		sources:      []string{"traffic"},
		description:  "Odd-Even vehicle policy reduces traffic emissions significantly during implementation.",
		reasoning: func(aqi, intensity float64) string {
			return fmt.Sprintf("Given the current AQI of %g, traffic contributes ~30-35%% of pollution. Implementing Odd-Even at %d%% intensity can reduce vehicular emissions by restricting half the vehicles on roads. This policy is most effective during high-traffic hours and works best when combined with improved public transport.", aqi, int(intensity*100))
		},
		confidence: func(intensity float64) string {
			if intensity > 0.7 {
				return "high"
			}
			return "medium"
		},
		confidenceExplanation: "Historical data from Delhi shows 10-20% AQI reduction during strict Odd-Even implementation.",
	},
	"construction_halt": {
		reduction:    20,
		timelineDays: 3,
		sources:      []string{"construction"},
		description:  "Halting construction activities immediately reduces dust pollution.",
		reasoning: func(aqi, intensity float64) string {
			return fmt.Sprintf("Construction dust contributes ~20-25%% to current pollution levels (AQI: %g). A %d%% halt in construction activities will have immediate impact within 2-3 days as suspended dust particles settle. Most effective during dry, low-wind conditions.", aqi, int(intensity*100))
		},
		confidence: func(intensity float64) string {
			if intensity > 0.8 {
				return "high"
			}
			return "medium"
		},
		confidenceExplanation: "Direct reduction in PM10 and PM2.5 levels observed within days of implementation.",
	},
	"firecracker_ban": {
		reduction:    25,
		timelineDays: 2,
		sources:      []string{"traffic", "industry"},
		description:  "Firecracker ban during festivals prevents severe AQI spikes.",
		reasoning: func(aqi, intensity float64) string {
			return fmt.Sprintf("During festive periods, firecracker use can spike AQI by 200-300 points overnight (current: %g). A %d%% effective ban prevents this acute deterioration. Impact is immediate but short-term (2-3 days). Requires strong enforcement and public cooperation.", aqi, int(intensity*100))
		},
		confidence: func(intensity float64) string {
			return "medium"
		},
		confidenceExplanation: "Effectiveness depends heavily on public compliance and enforcement strength.",
	},
	"stubble_control": {
		reduction:    30,
		timelineDays: 14,
		sources:      []string{"stubble_burning"},
		description:  "Incentivizing farmers to avoid stubble burning has long-term seasonal impact.",
		reasoning: func(aqi, intensity float64) string {
			return fmt.Sprintf("Stubble burning in Oct-Nov contributes 25-40%% to Delhi's AQI (current: %g). At %d%% effectiveness, this policy prevents agricultural fires but requires sustained farmer engagement and alternative crop management solutions. Benefits accumulate over 2-3 weeks as burning season progresses.", aqi, int(intensity*100))
		},
		confidence: func(intensity float64) string {
			if intensity > 0.6 {
				return "medium"
			}
			return "low"
		},
		confidenceExplanation: "Long-term solution requiring multi-state coordination and farmer incentives. Effects take time to materialize.",
	},
}

// CalculatePolicyImpact ước tính mức giảm AQI khi áp dụng chính sách.
// Loại chính sách không nhận dạng được thì dùng odd_even làm mặc định.
func CalculatePolicyImpact(input *dto.PolicyImpactInput, currentAQI float64) *dto.PolicyImpactResponse {
	impact, ok := policyImpacts[input.PolicyType]
	if !ok {
		impact = policyImpacts["odd_even"]
	}

	reduction := impact.reduction * input.Intensity

	return &dto.PolicyImpactResponse{
		EstimatedReduction:      math.Round(reduction*10) / 10,
		TimelineDays:            impact.timelineDays,
		AffectedSources:         impact.sources,
		Description:             impact.description,
		RecommendationReasoning: impact.reasoning(currentAQI, input.Intensity),
		ConfidenceLevel:         impact.confidence(input.Intensity),
		ConfidenceExplanation:   impact.confidenceExplanation,
	}
}
