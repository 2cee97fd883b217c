package domain

import (
	"fmt"
	"time"
)

// Granularity is the length of a Period.
type Granularity int

const (
	GranularityYear Granularity = iota
	GranularityMonth
)

// Period is a half-open calendar interval [Start, End) in UTC.
type Period struct {
	Granularity Granularity
	Start       time.Time
	End         time.Time
}

// YearPeriod returns the calendar year.
func YearPeriod(year int) Period {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Period{Granularity: GranularityYear, Start: start, End: start.AddDate(1, 0, 0)}
}

// MonthPeriod returns the calendar month. Out-of-range months are
// normalized, so MonthPeriod(2025, 0) is December 2024 and
// MonthPeriod(2025, 13) is January 2026.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Granularity: GranularityMonth, Start: start, End: start.AddDate(0, 1, 0)}
}

// PeriodContaining returns the period of the given granularity that contains t.
func PeriodContaining(t time.Time, g Granularity) Period {
	t = t.UTC()
	if g == GranularityMonth {
		return MonthPeriod(t.Year(), t.Month())
	}
	return YearPeriod(t.Year())
}

// Contains reports whether t falls inside the period. Zero times never do.
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(p.Start) && t.Before(p.End)
}

// Before reports whether t is strictly before the start of the period.
// Zero times never are.
func (p Period) Before(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return t.Before(p.Start)
}

// Previous returns the immediately preceding period of the same granularity.
func (p Period) Previous() Period {
	return p.Shift(-1)
}

// Shift moves the period by n units of its granularity.
func (p Period) Shift(n int) Period {
	if p.Granularity == GranularityMonth {
		return MonthPeriod(p.Start.Year(), p.Start.Month()+time.Month(n))
	}
	return YearPeriod(p.Start.Year() + n)
}

// Label is the human form: "2025" for years, "Mar 2025" for months.
func (p Period) Label() string {
	if p.Granularity == GranularityMonth {
		return p.Start.Format("Jan 2006")
	}
	return fmt.Sprintf("%d", p.Start.Year())
}

func (p Period) String() string {
	return p.Label()
}
