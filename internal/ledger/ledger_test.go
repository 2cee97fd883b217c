package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revenue-metrics/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func tx(id, customer, amount string, created time.Time, typ domain.TransactionType) domain.Transaction {
	return domain.Transaction{
		ID:         id,
		CustomerID: customer,
		Amount:     decimal.RequireFromString(amount),
		Currency:   "usd",
		Created:    created,
		Type:       typ,
	}
}

const (
	sub     = domain.TransactionTypeSubscription
	oneTime = domain.TransactionTypeOneTime
	refund  = domain.TransactionTypeRefund
)

func TestBuildCustomers(t *testing.T) {
	undated := tx("ch_4", "cus_a", "5", time.Time{}, oneTime)
	undated.RawCreated = "garbage"

	txs := []domain.Transaction{
		tx("ch_1", "cus_a", "100", date(2024, 6, 1), sub),
		tx("ch_2", "cus_a", "-20", date(2024, 7, 1), refund),
		tx("ch_3", "cus_a", "30", date(2023, 2, 1), oneTime),
		undated,
		tx("ch_5", "cus_b", "10", date(2025, 1, 1), sub),
	}

	customers := BuildCustomers(txs)

	require.Len(t, customers, 2)
	a := customers["cus_a"]
	assert.Equal(t, "115", a.TotalRevenue.String())
	assert.True(t, date(2023, 2, 1).Equal(a.FirstTransactionDate))
	assert.True(t, a.Acquired())

	b := customers["cus_b"]
	assert.Equal(t, "10", b.TotalRevenue.String())
	assert.True(t, date(2025, 1, 1).Equal(b.FirstTransactionDate))
}

func TestBuildCustomers_UndatedFirstTransaction(t *testing.T) {
	txs := []domain.Transaction{
		tx("ch_1", "cus_a", "10", time.Time{}, sub),
		tx("ch_2", "cus_a", "20", date(2024, 3, 1), sub),
		tx("ch_3", "cus_b", "7", time.Time{}, sub),
	}

	customers := BuildCustomers(txs)

	assert.True(t, date(2024, 3, 1).Equal(customers["cus_a"].FirstTransactionDate))
	assert.Equal(t, "30", customers["cus_a"].TotalRevenue.String())
	assert.False(t, customers["cus_b"].Acquired())
	assert.Equal(t, "7", customers["cus_b"].TotalRevenue.String())
}

func TestBuildCustomers_Idempotent(t *testing.T) {
	txs := []domain.Transaction{
		tx("ch_1", "cus_a", "100.10", date(2024, 6, 1), sub),
		tx("ch_2", "cus_b", "0.20", date(2024, 7, 1), sub),
		tx("ch_3", "cus_a", "3.33", date(2023, 2, 1), oneTime),
	}

	assert.Equal(t, BuildCustomers(txs), BuildCustomers(txs))
}

func TestStore_RevenueQueries(t *testing.T) {
	store := NewStore([]domain.Transaction{
		tx("ch_1", "cus_a", "100", date(2024, 1, 15), sub),
		tx("ch_2", "cus_a", "50", date(2024, 12, 31), sub),
		tx("ch_3", "cus_a", "999", date(2024, 5, 1), oneTime),
		tx("ch_4", "cus_a", "-40", date(2024, 5, 2), refund),
		tx("ch_5", "cus_b", "70", date(2025, 1, 1), sub),
		tx("ch_6", "cus_b", "80", time.Time{}, sub),
	})

	y2024 := domain.YearPeriod(2024)
	y2025 := domain.YearPeriod(2025)

	assert.Equal(t, "150", store.RevenueInPeriod(y2024).String())
	assert.Equal(t, "70", store.RevenueInPeriod(y2025).String())
	assert.Equal(t, "150", store.CustomerRevenueInPeriod("cus_a", y2024).String())
	assert.True(t, store.CustomerRevenueInPeriod("cus_b", y2024).IsZero())
	assert.True(t, store.CustomerRevenueInPeriod("nobody", y2024).IsZero())

	dec := domain.MonthPeriod(2025, 0)
	assert.Equal(t, "Dec 2024", dec.Label())
	assert.Equal(t, "50", store.CustomerRevenueInPeriod("cus_a", dec).String())
	assert.Equal(t, "50", store.RevenueInPeriod(domain.MonthPeriod(2025, time.January).Previous()).String())
}

func TestStore_NewAndExistingCustomers(t *testing.T) {
	store := NewStore([]domain.Transaction{
		tx("ch_1", "cus_c", "10", date(2025, 3, 1), sub),
		tx("ch_2", "cus_a", "10", date(2024, 1, 15), sub),
		tx("ch_3", "cus_b", "10", date(2025, 3, 20), oneTime),
		tx("ch_4", "cus_d", "10", time.Time{}, sub),
	})

	march := domain.MonthPeriod(2025, time.March)
	ids := func(cs []domain.Customer) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"cus_b", "cus_c"}, ids(store.NewCustomers(march)))
	assert.Equal(t, []string{"cus_a"}, ids(store.ExistingCustomers(march)))
	assert.Equal(t, []string{"cus_b", "cus_c"}, ids(store.NewCustomers(domain.YearPeriod(2025))))
	assert.Empty(t, store.NewCustomers(domain.YearPeriod(2026)))
	assert.Equal(t, []string{"cus_a", "cus_b", "cus_c"}, ids(store.ExistingCustomers(domain.YearPeriod(2026))))
	assert.Len(t, store.Customers(), 4)
}

func TestStore_IsIsolatedFromCallerSlice(t *testing.T) {
	txs := []domain.Transaction{tx("ch_1", "cus_a", "10", date(2025, 3, 1), sub)}
	store := NewStore(txs)

	txs[0].Amount = decimal.NewFromInt(1000)
	got := store.Transactions()
	got[0].Amount = decimal.NewFromInt(5)

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "10", store.RevenueInPeriod(domain.YearPeriod(2025)).String())
	assert.Equal(t, "10", store.Transactions()[0].Amount.String())
}
