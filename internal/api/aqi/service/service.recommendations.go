package aqisvc

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"air_command/internal/api/aqi/dto"
)

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// parseRecommendations trích mảng JSON từ text do AI sinh.
// Text không chứa mảng hợp lệ thì trả về nil để caller dùng fallback.
func parseRecommendations(aiResponse string) []dto.Recommendation {
	if aiResponse == "" || !strings.Contains(aiResponse, "{") {
		return nil
	}

	match := jsonArrayPattern.FindString(aiResponse)
	if match == "" {
		return nil
	}

	var parsed []dto.Recommendation
	if err := json.Unmarshal([]byte(match), &parsed); err != nil {
		return nil
	}
	if len(parsed) == 0 {
		return nil
	}
	return parsed
}

func citizenPrompt(currentAQI float64, category, trend, dominantSource string) string {
	return fmt.Sprintf(`You are an air quality health advisor for Delhi citizens. Current AQI is %.0f (%s).
Trend: %s. Dominant pollution source: %s.

Generate 4-5 specific, actionable health and safety recommendations. Each recommendation should be:
1. Practical and specific to Delhi NCR context
2. Based on the current AQI level and trend
3. Include best travel times if relevant

Format as JSON array with: title, description, priority (high/medium/low), icon (emoji)`,
		currentAQI, category, trend, dominantSource)
}

func policymakerPrompt(currentAQI float64, trend, dominantSource string, aqi48h, aqi72h *float64) string {
	return fmt.Sprintf(`You are an environmental policy advisor for Delhi government. Current AQI: %.0f.
Trend: %s. Dominant source: %s. 48h forecast: %v, 72h: %v.

Generate 4-5 specific policy recommendations with:
- Immediate actions needed
- Priority pollution sources to target
- Affected zones and vulnerable populations
- Expected impact timeline

Format as JSON array with: title, description, priority, icon`,
		currentAQI, trend, dominantSource, derefFloat(aqi48h), derefFloat(aqi72h))
}

func citizenFallback(currentAQI float64) []dto.Recommendation {
	switch {
	case currentAQI > 200:
		return []dto.Recommendation{
			{Title: "Stay Indoors", Description: "Air quality is very unhealthy. Minimize outdoor exposure and keep windows closed.", Priority: "high", Icon: "🏠"},
			{Title: "Wear N95 Mask", Description: "If you must go outside, wear a properly fitted N95 mask to filter harmful particles.", Priority: "high", Icon: "😷"},
			{Title: "Use Air Purifiers", Description: "Run air purifiers indoors to maintain clean air. Focus on bedrooms and living areas.", Priority: "high", Icon: "💨"},
			{Title: "Avoid Peak Traffic Hours", Description: "Travel pollution peaks between 7-10 AM and 6-9 PM. Plan trips accordingly.", Priority: "medium", Icon: "🚗"},
			{Title: "Monitor Health Symptoms", Description: "Watch for breathing difficulties, cough, or irritation. Seek medical help if needed.", Priority: "high", Icon: "🏥"},
		}
	case currentAQI > 150:
		return []dto.Recommendation{
			{Title: "Limit Outdoor Activities", Description: "Reduce prolonged outdoor exercise. Consider indoor alternatives like gyms or yoga.", Priority: "high", Icon: "🏃"},
			{Title: "Best Travel Time: 11 AM - 3 PM", Description: "Pollution levels are typically lower during midday. Plan essential travel during this window.", Priority: "medium", Icon: "⏰"},
			{Title: "Keep Emergency Medications Handy", Description: "If you have asthma or respiratory conditions, carry your inhaler and medications.", Priority: "high", Icon: "💊"},
			{Title: "Choose Green Routes", Description: "Use our Safe Routes feature to find paths through parks and tree-lined areas.", Priority: "medium", Icon: "🌳"},
		}
	default:
		return []dto.Recommendation{
			{Title: "Moderate Exercise Safe", Description: "Air quality is acceptable for most people. You can engage in moderate outdoor activities.", Priority: "low", Icon: "🚴"},
			{Title: "Ventilate Your Home", Description: "Good time to open windows and let fresh air circulate, especially in the morning.", Priority: "low", Icon: "🪟"},
			{Title: "Stay Informed", Description: "Check air quality before planning outdoor activities. Conditions can change quickly.", Priority: "medium", Icon: "📱"},
		}
	}
}

func policymakerFallback(currentAQI float64, aqi48h *float64, dominantSource string) []dto.Recommendation {
	if currentAQI > 200 || (aqi48h != nil && *aqi48h > 200) {
		return []dto.Recommendation{
			{Title: "Implement Emergency Response", Description: fmt.Sprintf("Activate GRAP Stage 3/4. Primary source: %s. Consider traffic restrictions and construction halts.", dominantSource), Priority: "high", Icon: "🚨"},
			{Title: "Target Vehicular Emissions", Description: "Traffic contributes 30-35% of pollution. Deploy 20% of buses on key routes, enforce Odd-Even if needed.", Priority: "high", Icon: "🚗"},
			{Title: "Construction Activity Control", Description: "Halt all non-essential construction. Enforce dust suppression measures on active sites.", Priority: "high", Icon: "🏗️"},
			{Title: "Public Advisory Campaign", Description: "Issue health warnings via SMS, social media. Focus on vulnerable areas: South Delhi, Noida, Gurugram.", Priority: "medium", Icon: "📢"},
			{Title: "School Closure Decision", Description: "If AQI remains >300 for 48h, consider temporary school closures to protect children.", Priority: "high", Icon: "🏫"},
		}
	}
	return []dto.Recommendation{
		{Title: "Monitor Stubble Burning", Description: "Satellite data shows fire counts in Punjab/Haryana. Coordinate with neighboring states for preventive action.", Priority: "medium", Icon: "🔥"},
		{Title: "Strengthen Public Transport", Description: "Increase metro frequency and bus services to reduce private vehicle usage during pollution season.", Priority: "medium", Icon: "🚇"},
		{Title: "Industrial Compliance Checks", Description: "Conduct surprise inspections of industrial units. Ensure pollution control equipment is operational.", Priority: "medium", Icon: "🏭"},
		{Title: "Green Infrastructure Development", Description: "Fast-track urban forestry projects in identified pollution hotspots. Long-term solution.", Priority: "low", Icon: "🌳"},
	}
}
