// Package metrics derives recurring-revenue analytics from a revenue source.
// Every calculator is a pure function of the source and an explicit
// reference instant; none of them reads the wall clock.
package metrics

import (
	"github.com/shopspring/decimal"

	"revenue-metrics/internal/domain"
)

// RevenueSource answers period revenue questions over one processing run.
// It is implemented by *ledger.Store.
type RevenueSource interface {
	RevenueInPeriod(p domain.Period) decimal.Decimal
	CustomerRevenueInPeriod(customerID string, p domain.Period) decimal.Decimal
	NewCustomers(p domain.Period) []domain.Customer
	ExistingCustomers(p domain.Period) []domain.Customer
}

var hundred = decimal.NewFromInt(100)

// percent returns num/den*100, or zero when den is zero.
func percent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
