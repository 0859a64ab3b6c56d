package aqisvc

import (
	"fmt"
	"strings"

	"air_command/internal/api/aqi/dto"
)

func insightsPrompt(current *dto.AQIData, forecast *dto.ForecastResponse, sources *dto.SourceContribution) string {
	return fmt.Sprintf(`Analyze Delhi NCR air quality data and provide 5-6 key insights:

Current Status:
- AQI: %.0f (%s)
- 48h Forecast: %v
- 72h Forecast: %v
- Trend: %s
- Dominant Source: %s
- Source Contributions: %v

Generate concise, data-driven insights about:
1. Current air quality status
2. Forecast implications
3. Primary pollution drivers
4. Temporal patterns
5. Actionable takeaways

Return as simple bullet points (3-5 words each), no formatting.`,
		current.AQI, current.Category,
		derefFloat(forecast.AQI48h), derefFloat(forecast.AQI72h),
		forecast.Trend, sources.DominantSource, sources.Contributions)
}

// parseInsights tách các dòng insight từ text do AI sinh, tối đa 6 dòng
func parseInsights(aiResponse string) []string {
	if aiResponse == "" {
		return nil
	}

	var insights []string
	for _, line := range strings.Split(aiResponse, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "•-*0123456789. ")
		if len(line) > 10 {
			insights = append(insights, line)
		}
		if len(insights) == 6 {
			break
		}
	}
	return insights
}

func fallbackInsights(current *dto.AQIData, forecast *dto.ForecastResponse, sources *dto.SourceContribution) []string {
	insights := []string{
		fmt.Sprintf("Current AQI at %d - %s level", int(current.AQI), current.Category),
		fmt.Sprintf("%s is the primary pollution source (%d%%)",
			titleSource(sources.DominantSource), int(sources.Contributions[sources.DominantSource])),
		fmt.Sprintf("Air quality trend: %s over next 48-72 hours", forecast.Trend),
	}

	if forecast.AQI72h != nil {
		insights = append(insights, fmt.Sprintf("Forecast: AQI expected to reach %d in 3 days", int(*forecast.AQI72h)))
	}
	if forecast.AQI48h != nil && *forecast.AQI48h > 200 {
		insights = append(insights, "⚠️ Unhealthy conditions expected - take precautions")
	}

	switch forecast.Trend {
	case "improving":
		insights = append(insights, "✅ Improving conditions - outdoor activities safer soon")
	case "worsening":
		insights = append(insights, "⚠️ Deteriorating conditions - limit outdoor exposure")
	}

	return insights
}

func forecastSummary(current *dto.AQIData, forecast *dto.ForecastResponse) string {
	target := current.AQI
	if forecast.AQI72h != nil {
		target = *forecast.AQI72h
	}

	switch forecast.Trend {
	case "improving":
		return fmt.Sprintf("Air quality improving from %d to %d over 72 hours", int(current.AQI), int(target))
	case "worsening":
		return fmt.Sprintf("Air quality deteriorating from %d to %d over 72 hours", int(current.AQI), int(target))
	default:
		return fmt.Sprintf("Air quality stable around %d for next 72 hours", int(current.AQI))
	}
}

func insightsRecommendation(currentAQI float64) string {
	switch {
	case currentAQI > 200:
		return "Immediate action required: Reduce outdoor activities, implement emergency measures"
	case currentAQI > 150:
		return "Caution advised: Sensitive groups should limit exposure, monitor conditions"
	default:
		return "Moderate conditions: Continue monitoring, basic precautions sufficient"
	}
}

// titleSource chuyển tên nguồn dạng snake_case sang dạng hiển thị (Stubble Burning)
func titleSource(source string) string {
	words := strings.Split(strings.ReplaceAll(source, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
