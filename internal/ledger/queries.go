package ledger

import (
	"github.com/shopspring/decimal"

	"revenue-metrics/internal/domain"
)

// RevenueInPeriod sums subscription revenue recognized inside p.
func (s *Store) RevenueInPeriod(p domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, id := range s.customerIDs {
		total = total.Add(s.CustomerRevenueInPeriod(id, p))
	}
	return total
}

// CustomerRevenueInPeriod sums one customer's subscription revenue inside p.
// One-time charges, refunds and undated transactions never count.
func (s *Store) CustomerRevenueInPeriod(customerID string, p domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range s.subscriptions[customerID] {
		if p.Contains(tx.Created) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// NewCustomers returns customers acquired inside p, ordered by id.
func (s *Store) NewCustomers(p domain.Period) []domain.Customer {
	return s.filterCustomers(func(c domain.Customer) bool {
		return p.Contains(c.FirstTransactionDate)
	})
}

// ExistingCustomers returns customers acquired strictly before p starts,
// ordered by id. Customers without an acquisition date are never included.
func (s *Store) ExistingCustomers(p domain.Period) []domain.Customer {
	return s.filterCustomers(func(c domain.Customer) bool {
		return p.Before(c.FirstTransactionDate)
	})
}
