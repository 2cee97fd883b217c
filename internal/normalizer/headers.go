package normalizer

import (
	"regexp"
	"strings"
)

// Canonical field names produced by header mapping.
const (
	FieldID             = "id"
	FieldInvoiceID      = "invoice_id"
	FieldCustomerID     = "customer_id"
	FieldCustomerEmail  = "customer_email"
	FieldAmount         = "amount"
	FieldNet            = "net"
	FieldGross          = "gross"
	FieldAmountCents    = "amount_cents"
	FieldNetCents       = "net_cents"
	FieldPlanAmount     = "plan_amount"
	FieldCurrency       = "currency"
	FieldStatus         = "status"
	FieldCreated        = "created"
	FieldSubscriptionID = "subscription_id"
	FieldProductName    = "product_name"
	FieldPlanName       = "plan_name"
	FieldInterval       = "interval"
	FieldType           = "type"
)

// synonyms maps normalized export headers to canonical field names.
// Keys must already be in NormalizeHeader form.
var synonyms = map[string]string{
	"id":               FieldID,
	"charge id":        FieldID,
	"invoice id":       FieldInvoiceID,
	"invoice":          FieldInvoiceID,
	"customer id":      FieldCustomerID,
	"customer":         FieldCustomerID,
	"customer email":   FieldCustomerEmail,
	"email":            FieldCustomerEmail,
	"amount":           FieldAmount,
	"amount captured":  FieldAmount,
	"net":              FieldNet,
	"gross":            FieldGross,
	"amount_cents":     FieldAmountCents,
	"amount cents":     FieldAmountCents,
	"net_cents":        FieldNetCents,
	"net cents":        FieldNetCents,
	"plan.amount":      FieldPlanAmount,
	"currency":         FieldCurrency,
	"status":           FieldStatus,
	"created":          FieldCreated,
	"created utc":      FieldCreated,
	"created at":       FieldCreated,
	"date":             FieldCreated,
	"subscription id":  FieldSubscriptionID,
	"subscription":     FieldSubscriptionID,
	"description":      FieldProductName,
	"product":          FieldProductName,
	"product name":     FieldProductName,
	"plan name":        FieldPlanName,
	"plan":             FieldPlanName,
	"interval":         FieldInterval,
	"plan interval":    FieldInterval,
	"plan.interval":    FieldInterval,
	"type":             FieldType,
	"transaction type": FieldType,
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeHeader strips byte-order marks and parentheses, trims, lowercases
// and collapses internal whitespace: "  Created (UTC) " becomes "created utc".
func NormalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\ufeff", "")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer("(", "", ")", "").Replace(h)
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(h), " ")
}

// CanonicalField returns the canonical name for a raw header. Unknown headers
// pass through in normalized form.
func CanonicalField(header string) string {
	key := NormalizeHeader(header)
	if field, ok := synonyms[key]; ok {
		return field
	}
	return key
}

// columnIndex maps each canonical field to the columns that carry it, in
// header order.
type columnIndex map[string][]int

func buildColumnIndex(headers []string) columnIndex {
	idx := make(columnIndex, len(headers))
	for i, h := range headers {
		field := CanonicalField(h)
		idx[field] = append(idx[field], i)
	}
	return idx
}
