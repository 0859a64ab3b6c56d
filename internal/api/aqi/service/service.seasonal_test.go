package aqisvc

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonalOutlook_CoversAllMonths(t *testing.T) {
	outlook := seasonalOutlookFor(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))

	require.Len(t, outlook.MonthlyPatterns, 12)
	for month := 1; month <= 12; month++ {
		pattern, ok := outlook.MonthlyPatterns[strconv.Itoa(month)]
		require.True(t, ok, "thiếu tháng %d", month)
		assert.Greater(t, pattern.AvgAQI, 0)
		assert.NotEmpty(t, pattern.Risk)
		assert.NotEmpty(t, pattern.Description)
	}

	assert.Equal(t, []string{"October", "November", "December", "January"}, outlook.HighRiskMonths)
	assert.Equal(t, []string{"July", "August", "September"}, outlook.LowRiskMonths)
}

func TestSeasonalOutlook_HighRiskSeason(t *testing.T) {
	november := seasonalOutlookFor(time.Date(2026, time.November, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 11, november.CurrentMonth)
	assert.Equal(t, "November", november.CurrentMonthName)
	assert.True(t, november.HighRiskSeason)
	assert.Contains(t, november.CurrentOutlook, "High pollution season")

	january := seasonalOutlookFor(time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC))
	assert.True(t, january.HighRiskSeason)
}

func TestSeasonalOutlook_MonsoonAndModerate(t *testing.T) {
	august := seasonalOutlookFor(time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))
	assert.False(t, august.HighRiskSeason)
	assert.Contains(t, august.CurrentOutlook, "Monsoon season")

	april := seasonalOutlookFor(time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC))
	assert.False(t, april.HighRiskSeason)
	assert.Contains(t, april.CurrentOutlook, "typically moderate")
}
