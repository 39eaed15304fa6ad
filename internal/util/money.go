package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-typed amount token into a decimal. No
// currency symbols or thousands separators are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// CentsFromDecimal converts an amount to whole cents, rounding half
// away from zero. 12.345 becomes 1235.
func CentsFromDecimal(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FormatCents renders cents as a fixed two-decimal string: 7000 -> "70.00".
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

// AmountString renders cents without trailing zeros, the way the amount
// was typed: 5050 -> "50.5", 5000 -> "50".
func AmountString(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).String()
}
