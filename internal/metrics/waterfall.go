package metrics

import (
	"github.com/shopspring/decimal"

	"revenue-metrics/internal/domain"
)

// Bucket is the single ARR movement an existing customer contributes to
// between two consecutive periods.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketChurn
	BucketComeback
	BucketUpsell
	BucketDownsell
)

func (b Bucket) String() string {
	switch b {
	case BucketChurn:
		return "churn"
	case BucketComeback:
		return "comeback"
	case BucketUpsell:
		return "upsell"
	case BucketDownsell:
		return "downsell"
	default:
		return "none"
	}
}

// Classify assigns the movement from prev to cur to exactly one bucket and
// returns the amount it contributes. Churn is measured at the lost level and
// comeback at the regained level.
func Classify(cur, prev decimal.Decimal) (Bucket, decimal.Decimal) {
	switch {
	case cur.IsZero() && prev.IsPositive():
		return BucketChurn, prev
	case cur.IsPositive() && prev.IsZero():
		return BucketComeback, cur
	case cur.GreaterThan(prev):
		return BucketUpsell, cur.Sub(prev)
	case cur.LessThan(prev):
		return BucketDownsell, prev.Sub(cur)
	}
	return BucketNone, decimal.Zero
}

// Waterfall decomposes the revenue change from Period.Previous() to Period.
type Waterfall struct {
	Period   domain.Period
	Total    decimal.Decimal
	New      decimal.Decimal
	Upsell   decimal.Decimal
	Churn    decimal.Decimal
	Downsell decimal.Decimal
	Comeback decimal.Decimal
}

// NetNew is new + upsell + comeback - churn - downsell.
func (w Waterfall) NetNew() decimal.Decimal {
	return w.New.Add(w.Upsell).Add(w.Comeback).Sub(w.Churn).Sub(w.Downsell)
}

// Breakdown converts the waterfall into its presentation form.
func (w Waterfall) Breakdown() domain.ARRBreakdown {
	return domain.ARRBreakdown{
		Total:       toFloat(w.Total),
		NewARR:      toFloat(w.New),
		UpsellARR:   toFloat(w.Upsell),
		ChurnARR:    toFloat(w.Churn),
		DownsellARR: toFloat(w.Downsell),
		ComebackARR: toFloat(w.Comeback),
	}
}

// ComputeWaterfall compares current against the immediately preceding period
// of the same granularity. Customers acquired in current contribute their
// whole current revenue to New and take no part in the movement comparison.
func ComputeWaterfall(src RevenueSource, current domain.Period) Waterfall {
	previous := current.Previous()
	w := Waterfall{
		Period:   current,
		Total:    src.RevenueInPeriod(current),
		New:      decimal.Zero,
		Upsell:   decimal.Zero,
		Churn:    decimal.Zero,
		Downsell: decimal.Zero,
		Comeback: decimal.Zero,
	}

	for _, c := range src.NewCustomers(current) {
		w.New = w.New.Add(src.CustomerRevenueInPeriod(c.ID, current))
	}

	for _, c := range src.ExistingCustomers(current) {
		cur := src.CustomerRevenueInPeriod(c.ID, current)
		prev := src.CustomerRevenueInPeriod(c.ID, previous)

		bucket, amount := Classify(cur, prev)
		switch bucket {
		case BucketChurn:
			w.Churn = w.Churn.Add(amount)
		case BucketComeback:
			w.Comeback = w.Comeback.Add(amount)
		case BucketUpsell:
			w.Upsell = w.Upsell.Add(amount)
		case BucketDownsell:
			w.Downsell = w.Downsell.Add(amount)
		}
	}
	return w
}
