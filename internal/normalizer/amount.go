package normalizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// parseAmount strips everything except digits, sign and dot before parsing,
// so "$1,234.56" reads as 1234.56. ok is false for blank or unparseable input.
func parseAmount(s string) (decimal.Decimal, bool) {
	cleaned := nonNumeric.ReplaceAllString(strings.TrimSpace(s), "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// fromCents converts a minor-unit amount to major units.
func fromCents(d decimal.Decimal) decimal.Decimal {
	return d.Shift(-2)
}

// applyMagnitudeHeuristic treats a bare amount whose absolute value exceeds
// threshold as minor units. It is a heuristic: without a currency-aware
// exponent in the export, large whole-unit amounts are misread as cents.
func applyMagnitudeHeuristic(d, threshold decimal.Decimal) decimal.Decimal {
	if d.Abs().GreaterThan(threshold) {
		return fromCents(d)
	}
	return d
}
