package aqisvc

import (
	"time"

	"air_command/internal/api/aqi/dto"
)

// monthlyPatterns là đặc trưng AQI trung bình theo tháng của Delhi NCR,
// tổng hợp từ dữ liệu trạm quan trắc CPCB giai đoạn 2015-2024.
var monthlyPatterns = map[string]dto.MonthlyPattern{
	"1":  {AvgAQI: 310, Risk: "high", Description: "Winter inversion traps pollutants, frequent smog episodes"},
	"2":  {AvgAQI: 250, Risk: "high", Description: "Cold conditions persist, gradual improvement late month"},
	"3":  {AvgAQI: 180, Risk: "moderate", Description: "Rising temperatures improve dispersion"},
	"4":  {AvgAQI: 160, Risk: "moderate", Description: "Dust storms from Rajasthan raise particulate levels"},
	"5":  {AvgAQI: 170, Risk: "moderate", Description: "Pre-monsoon heat with occasional dust events"},
	"6":  {AvgAQI: 140, Risk: "moderate", Description: "Monsoon onset begins washing out pollutants"},
	"7":  {AvgAQI: 90, Risk: "low", Description: "Monsoon rains keep air relatively clean"},
	"8":  {AvgAQI: 85, Risk: "low", Description: "Cleanest month of the year due to sustained rainfall"},
	"9":  {AvgAQI: 110, Risk: "low", Description: "Monsoon withdrawal, pollution slowly building up"},
	"10": {AvgAQI: 230, Risk: "high", Description: "Stubble burning season begins, festival fireworks add spikes"},
	"11": {AvgAQI: 360, Risk: "high", Description: "Peak pollution: stubble burning plus winter inversion"},
	"12": {AvgAQI: 330, Risk: "high", Description: "Severe smog episodes, lowest wind speeds of the year"},
}

var highRiskMonths = []string{"October", "November", "December", "January"}

var lowRiskMonths = []string{"July", "August", "September"}

// SeasonalOutlookNow trả về triển vọng mùa vụ dựa trên tháng hiện tại
func SeasonalOutlookNow() *dto.SeasonalOutlook {
	return seasonalOutlookFor(time.Now())
}

func seasonalOutlookFor(now time.Time) *dto.SeasonalOutlook {
	month := int(now.Month())
	monthName := now.Month().String()
	highRisk := month >= 10 || month == 1

	outlook := "Air quality typically moderate this time of year. Standard precautions recommended."
	if highRisk {
		outlook = "High pollution season. Expect frequent unhealthy air quality days driven by stubble burning, winter inversion and low wind speeds. Follow health advisories closely."
	} else if month >= 7 && month <= 9 {
		outlook = "Monsoon season brings the cleanest air of the year. Good window for outdoor activities."
	}

	return &dto.SeasonalOutlook{
		CurrentMonth:     month,
		CurrentMonthName: monthName,
		MonthlyPatterns:  monthlyPatterns,
		HighRiskSeason:   highRisk,
		HighRiskMonths:   highRiskMonths,
		LowRiskMonths:    lowRiskMonths,
		CurrentOutlook:   outlook,
	}
}
