package metrics

import (
	"github.com/shopspring/decimal"

	"revenue-metrics/internal/domain"
)

// CohortSnapshot measures the customers acquired in Cohort as of Current.
type CohortSnapshot struct {
	Cohort    domain.Period
	Current   domain.Period
	Customers int
	// Retained counts cohort customers with positive revenue in Current.
	Retained int

	StartingRevenue decimal.Decimal
	CurrentRevenue  decimal.Decimal
	// RetainedRevenue caps each customer's current revenue at its cohort-period level.
	RetainedRevenue decimal.Decimal
}

// SnapshotCohort evaluates the cohort acquired in cohort against current.
func SnapshotCohort(src RevenueSource, cohort, current domain.Period) CohortSnapshot {
	s := CohortSnapshot{
		Cohort:          cohort,
		Current:         current,
		StartingRevenue: decimal.Zero,
		CurrentRevenue:  decimal.Zero,
		RetainedRevenue: decimal.Zero,
	}

	for _, c := range src.NewCustomers(cohort) {
		original := src.CustomerRevenueInPeriod(c.ID, cohort)
		now := src.CustomerRevenueInPeriod(c.ID, current)

		s.Customers++
		if now.IsPositive() {
			s.Retained++
		}
		s.StartingRevenue = s.StartingRevenue.Add(original)
		s.CurrentRevenue = s.CurrentRevenue.Add(now)
		s.RetainedRevenue = s.RetainedRevenue.Add(decimal.Min(now, original))
	}
	return s
}

// NRR is current revenue over starting revenue, in percent. Expansion can
// take it above 100.
func (s CohortSnapshot) NRR() decimal.Decimal {
	return percent(s.CurrentRevenue, s.StartingRevenue)
}

// GRR is capped retained revenue over starting revenue, in percent.
func (s CohortSnapshot) GRR() decimal.Decimal {
	return percent(s.RetainedRevenue, s.StartingRevenue)
}

// RetentionRate is the share of cohort customers still paying, in percent.
func (s CohortSnapshot) RetentionRate() decimal.Decimal {
	return percent(decimal.NewFromInt(int64(s.Retained)), decimal.NewFromInt(int64(s.Customers)))
}

// Retention holds NRR and GRR for the cohort acquired in the year before the
// reference instant, measured in the reference year.
type Retention struct {
	Snapshot CohortSnapshot
	NRR      decimal.Decimal
	GRR      decimal.Decimal
}

// ComputeRetention anchors on the previous calendar year's cohort.
func ComputeRetention(src RevenueSource, current domain.Period) Retention {
	snap := SnapshotCohort(src, current.Previous(), current)
	return Retention{Snapshot: snap, NRR: snap.NRR(), GRR: snap.GRR()}
}
