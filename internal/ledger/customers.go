package ledger

import (
	"github.com/shopspring/decimal"

	"revenue-metrics/internal/domain"
)

// BuildCustomers folds transactions into one profile per customer_id.
// Every transaction counts toward TotalRevenue whatever its type. Only
// transactions with a valid date take part in finding the acquisition date.
func BuildCustomers(transactions []domain.Transaction) map[string]domain.Customer {
	customers := make(map[string]domain.Customer)

	for _, tx := range transactions {
		c, ok := customers[tx.CustomerID]
		if !ok {
			c = domain.Customer{
				ID:                   tx.CustomerID,
				Email:                tx.CustomerEmail,
				FirstTransactionDate: tx.Created,
				TotalRevenue:         decimal.Zero,
			}
		}
		if c.Email == "" {
			c.Email = tx.CustomerEmail
		}

		c.TotalRevenue = c.TotalRevenue.Add(tx.Amount)
		if tx.HasValidDate() && (!c.Acquired() || tx.Created.Before(c.FirstTransactionDate)) {
			c.FirstTransactionDate = tx.Created
		}
		customers[tx.CustomerID] = c
	}
	return customers
}
