package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a billing event for revenue math.
type TransactionType string

const (
	TransactionTypeSubscription TransactionType = "subscription"
	TransactionTypeOneTime      TransactionType = "one_time"
	TransactionTypeRefund       TransactionType = "refund"
)

// Transaction is one normalized billing event from an export.
// Amount is always in major currency units (dollars, not cents).
type Transaction struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	CustomerEmail  string          `json:"customer_email,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	Created        time.Time       `json:"created"`
	SubscriptionID string          `json:"subscription_id,omitempty"`
	InvoiceID      string          `json:"invoice_id,omitempty"`
	ProductName    string          `json:"product_name,omitempty"`
	PlanName       string          `json:"plan_name,omitempty"`
	Interval       string          `json:"interval,omitempty"`
	Type           TransactionType `json:"type"`

	// RawCreated keeps the source text when Created could not be parsed.
	RawCreated string `json:"-"`
}

// HasValidDate reports whether Created was parsed from the export.
func (t Transaction) HasValidDate() bool {
	return !t.Created.IsZero()
}

// IsSubscription reports whether the transaction takes part in ARR math.
func (t Transaction) IsSubscription() bool {
	return t.Type == TransactionTypeSubscription
}

// Customer is the aggregate profile of one customer_id.
// FirstTransactionDate is zero when none of the customer's
// transactions carried a parseable date.
type Customer struct {
	ID                   string          `json:"id"`
	Email                string          `json:"email"`
	FirstTransactionDate time.Time       `json:"first_transaction_date"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
}

// Acquired reports whether the customer has a known acquisition date.
func (c Customer) Acquired() bool {
	return !c.FirstTransactionDate.IsZero()
}
