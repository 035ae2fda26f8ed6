// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with a currency symbol, two decimals, and
// comma grouping. e.g., 1234567.5 -> "$1,234,567.50"
func FormatMoney(symbol string, amount decimal.Decimal) string {
	neg := amount.IsNegative()
	abs := amount.Abs().Round(2)

	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Shift(2).IntPart()

	s := fmt.Sprintf("%s%s.%02d", symbol, FormatNumber(whole.IntPart()), cents)
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDate formats a date for table cells. Zero dates render as a dash.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// FormatMonths renders a month count. e.g., 1 -> "1 month", 14 -> "14 months"
func FormatMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
