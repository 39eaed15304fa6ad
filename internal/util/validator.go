package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// max amount: ten million
var maxAmount = decimal.NewFromInt(10_000_000)

// ValidateAmount checks an amount is positive and below the cap. The
// messages are user-facing: they surface verbatim in chat responses.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("Amount must be a positive number")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("Amount is too large")
	}
	return nil
}

// ValidateDate checks a date string is YYYY-MM-DD.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateCategory checks a category label is present and fits the
// column. User-facing messages, like ValidateAmount.
func ValidateCategory(category string) error {
	if category == "" {
		return fmt.Errorf("Category is required")
	}
	if len(category) > 32 {
		return fmt.Errorf("Category must be 32 characters or less")
	}
	return nil
}
