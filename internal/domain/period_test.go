package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthPeriod_Normalizes(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantYear  int
		wantMonth time.Month
	}{
		{name: "in range", year: 2025, month: time.March, wantYear: 2025, wantMonth: time.March},
		{name: "index zero rolls to december", year: 2025, month: 0, wantYear: 2024, wantMonth: time.December},
		{name: "negative index", year: 2025, month: -1, wantYear: 2024, wantMonth: time.November},
		{name: "thirteen rolls forward", year: 2025, month: 13, wantYear: 2026, wantMonth: time.January},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MonthPeriod(tt.year, tt.month)
			assert.Equal(t, tt.wantYear, p.Start.Year())
			assert.Equal(t, tt.wantMonth, p.Start.Month())
			assert.Equal(t, 1, p.Start.Day())
			assert.Equal(t, p.Start.AddDate(0, 1, 0), p.End)
		})
	}
}

func TestPeriod_PreviousAcrossYearBoundary(t *testing.T) {
	jan := MonthPeriod(2025, time.January)
	prev := jan.Previous()

	assert.Equal(t, GranularityMonth, prev.Granularity)
	assert.Equal(t, "Dec 2024", prev.Label())
	assert.Equal(t, jan.Start, prev.End)

	y := YearPeriod(2025)
	assert.Equal(t, "2024", y.Previous().Label())
	assert.Equal(t, "2022", y.Shift(-3).Label())
}

func TestPeriod_ContainsAndBefore(t *testing.T) {
	p := MonthPeriod(2025, time.June)

	assert.True(t, p.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Time{}))

	assert.True(t, p.Before(time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, p.Before(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Before(time.Time{}))
}

func TestPeriodContaining(t *testing.T) {
	at := time.Date(2025, 10, 19, 15, 4, 5, 0, time.FixedZone("x", 3600))

	assert.Equal(t, "Oct 2025", PeriodContaining(at, GranularityMonth).Label())
	assert.Equal(t, "2025", PeriodContaining(at, GranularityYear).Label())
}
