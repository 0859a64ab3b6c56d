package aqisvc

import "air_command/internal/api/aqi/dto"

// AdvisoryForAQI trả về khuyến cáo sức khỏe theo thang AQI của US EPA.
// Hoàn toàn rule-based, không phụ thuộc dịch vụ ngoài.
func AdvisoryForAQI(aqi float64) *dto.HealthAdvisory {
	switch {
	case aqi <= 50:
		return &dto.HealthAdvisory{
			AQILevel:     "Good (0-50)",
			HealthImpact: "Air quality is satisfactory, and air pollution poses little or no risk.",
			Recommendations: []string{
				"Enjoy outdoor activities",
				"No restrictions needed",
				"Ideal conditions for exercise and outdoor sports",
			},
			VulnerableGroups: []string{"None - safe for everyone"},
			OutdoorActivity:  "Unrestricted - all outdoor activities safe",
		}
	case aqi <= 100:
		return &dto.HealthAdvisory{
			AQILevel:     "Moderate (51-100)",
			HealthImpact: "Air quality is acceptable. However, there may be a risk for some people, particularly those who are unusually sensitive to air pollution.",
			Recommendations: []string{
				"Unusually sensitive people should consider limiting prolonged outdoor exertion",
				"General public can enjoy outdoor activities with normal precautions",
				"Monitor air quality if you have respiratory conditions",
			},
			VulnerableGroups: []string{"People with respiratory diseases", "Unusually sensitive individuals"},
			OutdoorActivity:  "Generally safe - sensitive groups should monitor symptoms",
		}
	case aqi <= 150:
		return &dto.HealthAdvisory{
			AQILevel:     "Unhealthy for Sensitive Groups (101-150)",
			HealthImpact: "Members of sensitive groups may experience health effects. The general public is less likely to be affected.",
			Recommendations: []string{
				"Sensitive groups should limit prolonged outdoor exertion",
				"Consider wearing N95 masks for extended outdoor activities",
				"Keep windows closed during high pollution hours",
				"Use air purifiers indoors if available",
			},
			VulnerableGroups: []string{
				"Children and elderly",
				"People with asthma or respiratory diseases",
				"People with heart disease",
				"Pregnant women",
			},
			OutdoorActivity: "Moderate - sensitive groups should reduce outdoor exposure",
		}
	case aqi <= 200:
		return &dto.HealthAdvisory{
			AQILevel:     "Unhealthy (151-200)",
			HealthImpact: "Everyone may begin to experience health effects. Members of sensitive groups may experience more serious health effects.",
			Recommendations: []string{
				"Everyone should reduce prolonged or heavy outdoor exertion",
				"Wear N95 masks when going outdoors",
				"Avoid outdoor activities during peak pollution hours (7-10 AM, 6-9 PM)",
				"Use air purifiers and keep indoor air clean",
				"Stay hydrated and monitor health symptoms",
			},
			VulnerableGroups: []string{
				"Children and elderly",
				"People with respiratory or heart conditions",
				"Pregnant women",
				"Outdoor workers",
			},
			OutdoorActivity: "Unhealthy - limit outdoor activities, especially prolonged exertion",
		}
	case aqi <= 300:
		return &dto.HealthAdvisory{
			AQILevel:     "Very Unhealthy (201-300)",
			HealthImpact: "Health alert: The risk of health effects is increased for everyone. Serious health effects for sensitive groups.",
			Recommendations: []string{
				"Everyone should avoid prolonged or heavy outdoor exertion",
				"Mandatory N95 mask use when outdoors",
				"Stay indoors as much as possible",
				"Schools and outdoor events should be cancelled",
				"Use air purifiers continuously",
				"Seek medical attention if experiencing breathing difficulties",
			},
			VulnerableGroups: []string{
				"Everyone, especially children and elderly",
				"All people with respiratory or cardiovascular conditions",
				"Pregnant women",
				"All outdoor workers should take precautions",
			},
			OutdoorActivity: "Very Unhealthy - avoid all outdoor activities",
		}
	default:
		return &dto.HealthAdvisory{
			AQILevel:     "Hazardous (300+)",
			HealthImpact: "Health warning of emergency conditions: everyone is more likely to be affected. Serious aggravation of heart or lung disease.",
			Recommendations: []string{
				"Everyone must avoid all outdoor activities",
				"Stay indoors with windows and doors sealed",
				"Use N95 masks even indoors if air quality is poor",
				"Emergency health measures should be in place",
				"Schools, offices, and public places should close",
				"Seek immediate medical attention for any respiratory distress",
				"Use air purifiers on maximum settings",
			},
			VulnerableGroups: []string{
				"Entire population at risk",
				"Critical risk for children, elderly, and people with pre-existing conditions",
			},
			OutdoorActivity: "Hazardous - complete avoidance of all outdoor exposure mandatory",
		}
	}
}
