package normalizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"revenue-metrics/internal/domain"
)

// DefaultCentsThreshold is the bare-amount cutover above which a value is
// assumed to be in minor units.
const DefaultCentsThreshold = 100000

// Reasons recorded for rows that do not become transactions.
const (
	ReasonMissingID         = "missing id"
	ReasonMissingCustomerID = "missing customer_id"
	ReasonMissingBoth       = "missing id and customer_id"
)

// Options tune normalization.
type Options struct {
	// CentsThreshold is compared against the absolute value of bare amounts.
	// Zero or negative selects DefaultCentsThreshold.
	CentsThreshold  float64
	DefaultCurrency string
}

// Result is the outcome of normalizing one export.
type Result struct {
	Transactions   []domain.Transaction
	Skipped        []domain.SkippedRow
	InvalidDates   int
	InvalidAmounts int
}

// Normalizer maps export rows with arbitrary column naming onto Transaction.
type Normalizer struct {
	centsThreshold  decimal.Decimal
	defaultCurrency string
}

// New creates a Normalizer, filling unset options with defaults.
func New(opts Options) *Normalizer {
	threshold := opts.CentsThreshold
	if threshold <= 0 {
		threshold = DefaultCentsThreshold
	}
	currency := strings.ToLower(strings.TrimSpace(opts.DefaultCurrency))
	if currency == "" {
		currency = "usd"
	}
	return &Normalizer{
		centsThreshold:  decimal.NewFromFloat(threshold),
		defaultCurrency: currency,
	}
}

// Normalize converts rows into transactions. Rows without an id or a
// customer_id are dropped and listed in Result.Skipped; they are not errors.
func (n *Normalizer) Normalize(headers []string, rows []domain.RawRow) Result {
	cols := buildColumnIndex(headers)
	res := Result{Transactions: make([]domain.Transaction, 0, len(rows))}

	for _, row := range rows {
		get := func(field string) string {
			for _, i := range cols[field] {
				if v := strings.TrimSpace(row.Value(i)); v != "" {
					return v
				}
			}
			return ""
		}

		tx := domain.Transaction{
			ID:             firstNonEmpty(get(FieldID), get(FieldInvoiceID)),
			CustomerID:     firstNonEmpty(get(FieldCustomerID), get(FieldCustomerEmail)),
			CustomerEmail:  get(FieldCustomerEmail),
			Currency:       strings.ToLower(firstNonEmpty(get(FieldCurrency), n.defaultCurrency)),
			Status:         get(FieldStatus),
			SubscriptionID: get(FieldSubscriptionID),
			InvoiceID:      get(FieldInvoiceID),
			ProductName:    get(FieldProductName),
			PlanName:       get(FieldPlanName),
			Interval:       get(FieldInterval),
		}

		if reason := missingReason(tx); reason != "" {
			res.Skipped = append(res.Skipped, domain.SkippedRow{Line: row.Line, Reason: reason})
			continue
		}

		amount, ok := n.resolveAmount(get)
		if !ok {
			res.InvalidAmounts++
		}
		tx.Amount = amount

		if created, ok := parseCreated(get(FieldCreated)); ok {
			tx.Created = created
		} else {
			tx.RawCreated = get(FieldCreated)
			res.InvalidDates++
		}

		tx.Type = resolveType(tx, get(FieldType))
		res.Transactions = append(res.Transactions, tx)
	}
	return res
}

// resolveAmount prefers an explicit cents column, then the first non-empty
// major-unit column with the magnitude heuristic applied. ok is false when a
// column was present but unparseable, or no amount column had a value.
func (n *Normalizer) resolveAmount(get func(string) string) (decimal.Decimal, bool) {
	if raw := firstNonEmpty(get(FieldNetCents), get(FieldAmountCents)); raw != "" {
		d, ok := parseAmount(raw)
		return fromCents(d), ok
	}

	raw := firstNonEmpty(get(FieldAmount), get(FieldNet), get(FieldGross), get(FieldPlanAmount))
	d, ok := parseAmount(raw)
	if !ok {
		return decimal.Zero, false
	}
	return applyMagnitudeHeuristic(d, n.centsThreshold), true
}

// resolveType honours an explicit type cell when it names a known type and
// otherwise infers one: refunds first, then subscriptions, else one-time.
func resolveType(tx domain.Transaction, explicit string) domain.TransactionType {
	switch strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(explicit)) {
	case string(domain.TransactionTypeSubscription):
		return domain.TransactionTypeSubscription
	case string(domain.TransactionTypeOneTime):
		return domain.TransactionTypeOneTime
	case string(domain.TransactionTypeRefund):
		return domain.TransactionTypeRefund
	}

	if strings.Contains(strings.ToLower(tx.Status), "refund") || tx.Amount.IsNegative() {
		return domain.TransactionTypeRefund
	}
	if tx.SubscriptionID != "" || tx.Interval != "" ||
		strings.Contains(strings.ToLower(tx.ProductName), "subscription") {
		return domain.TransactionTypeSubscription
	}
	return domain.TransactionTypeOneTime
}

func missingReason(tx domain.Transaction) string {
	switch {
	case tx.ID == "" && tx.CustomerID == "":
		return ReasonMissingBoth
	case tx.ID == "":
		return ReasonMissingID
	case tx.CustomerID == "":
		return ReasonMissingCustomerID
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
