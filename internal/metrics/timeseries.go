package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"revenue-metrics/internal/domain"
)

// TrailingMonths is the length of both monthly series.
const TrailingMonths = 12

// trailingMonths returns the month containing now and the 11 before it,
// oldest first.
func trailingMonths(now time.Time) []domain.Period {
	now = now.UTC()
	months := make([]domain.Period, 0, TrailingMonths)
	for i := TrailingMonths - 1; i >= 0; i-- {
		months = append(months, domain.MonthPeriod(now.Year(), now.Month()-time.Month(i)))
	}
	return months
}

// NetNewARRSeries runs the waterfall month over month for the trailing window.
func NetNewARRSeries(src RevenueSource, now time.Time) []domain.NetNewARRData {
	months := trailingMonths(now)
	rows := make([]domain.NetNewARRData, 0, len(months))

	for _, month := range months {
		w := ComputeWaterfall(src, month)
		rows = append(rows, domain.NetNewARRData{
			Month:       month.Label(),
			NetNewARR:   toFloat(w.NetNew()),
			NewARR:      toFloat(w.New),
			ChurnARR:    toFloat(w.Churn),
			UpsellARR:   toFloat(w.Upsell),
			DownsellARR: toFloat(w.Downsell),
			ComebackARR: toFloat(w.Comeback),
		})
	}
	return rows
}

// LogosVsACVSeries counts customers acquired each month of the trailing
// window and their average first-month revenue.
func LogosVsACVSeries(src RevenueSource, now time.Time) []domain.LogoACVData {
	months := trailingMonths(now)
	rows := make([]domain.LogoACVData, 0, len(months))

	for _, month := range months {
		customers := src.NewCustomers(month)
		row := domain.LogoACVData{Month: month.Label(), NewLogos: len(customers)}

		if len(customers) > 0 {
			total := decimal.Zero
			for _, c := range customers {
				total = total.Add(src.CustomerRevenueInPeriod(c.ID, month))
			}
			row.TotalNewARR = toFloat(total)
			row.AverageACV = toFloat(total.Div(decimal.NewFromInt(int64(len(customers)))))
		}
		rows = append(rows, row)
	}
	return rows
}
