package metrics

import "revenue-metrics/internal/domain"

// CohortYears is the number of acquisition years in the cohort table,
// the reference year included.
const CohortYears = 5

// ComputeCohorts builds one row per acquisition year over the trailing
// window ending at current, most recent cohort first. Every cohort is
// measured against current.
func ComputeCohorts(src RevenueSource, current domain.Period) []domain.CohortData {
	rows := make([]domain.CohortData, 0, CohortYears)
	for i := 0; i < CohortYears; i++ {
		cohort := current.Shift(-i)
		snap := SnapshotCohort(src, cohort, current)

		rows = append(rows, domain.CohortData{
			Cohort:          cohort.Label(),
			Customers:       snap.Customers,
			StartingRevenue: toFloat(snap.StartingRevenue),
			CurrentRevenue:  toFloat(snap.CurrentRevenue),
			Retention:       toFloat(snap.RetentionRate()),
			Expansion:       toFloat(snap.NRR()),
		})
	}
	return rows
}
