package modules

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Form inputs degrade to safe defaults instead of blocking submission.

// ClearRequest carries the explicit confirmation a bulk clear requires.
// Unconfirmed requests are a no-op.
type ClearRequest struct {
	Confirmed bool `json:"confirmed" form:"confirmed"`
}

// ParseQuantity coerces a quantity field; blank or non-numeric input or
// anything below 1 falls back to 1.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseAmount coerces a money field; blank, non-numeric or negative input
// falls back to zero.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// OrDefault substitutes fallback for a blank field.
func OrDefault(raw, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
