package ledger

import (
	"sort"

	"revenue-metrics/internal/domain"
)

// Store is the immutable set of normalized transactions of one processing
// run together with the customer profiles derived from it. All methods are
// read-only, so a Store may be shared by concurrent calculators.
type Store struct {
	transactions []domain.Transaction
	customers    map[string]domain.Customer
	customerIDs  []string

	// subscriptions holds dated subscription transactions per customer.
	subscriptions map[string][]domain.Transaction
}

// NewStore builds a Store from normalized transactions. The slice is copied.
func NewStore(transactions []domain.Transaction) *Store {
	txs := make([]domain.Transaction, len(transactions))
	copy(txs, transactions)

	s := &Store{
		transactions:  txs,
		customers:     BuildCustomers(txs),
		subscriptions: make(map[string][]domain.Transaction),
	}

	s.customerIDs = make([]string, 0, len(s.customers))
	for id := range s.customers {
		s.customerIDs = append(s.customerIDs, id)
	}
	sort.Strings(s.customerIDs)

	for _, tx := range txs {
		if tx.IsSubscription() && tx.HasValidDate() {
			s.subscriptions[tx.CustomerID] = append(s.subscriptions[tx.CustomerID], tx)
		}
	}
	return s
}

// Len returns the number of transactions in the store.
func (s *Store) Len() int {
	return len(s.transactions)
}

// Transactions returns a copy of the stored transactions.
func (s *Store) Transactions() []domain.Transaction {
	out := make([]domain.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Customer returns the profile for id.
func (s *Store) Customer(id string) (domain.Customer, bool) {
	c, ok := s.customers[id]
	return c, ok
}

// Customers returns all profiles ordered by customer id.
func (s *Store) Customers() []domain.Customer {
	return s.filterCustomers(func(domain.Customer) bool { return true })
}

func (s *Store) filterCustomers(keep func(domain.Customer) bool) []domain.Customer {
	out := make([]domain.Customer, 0)
	for _, id := range s.customerIDs {
		if c := s.customers[id]; keep(c) {
			out = append(out, c)
		}
	}
	return out
}
