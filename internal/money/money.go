// Package money provides cent rounding and day-of-month date arithmetic
// shared by the ledger engine.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds an amount to the cent.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseAmount parses a user-entered amount and rounds it to the cent.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d.Round(2), nil
}
