// Package report aggregates transactions and scheduled payments into
// per-month summaries for the CLI report views.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/model"
)

// MonthlyStats holds one calendar month's cash flow.
type MonthlyStats struct {
	Month        time.Time // first day of the month, UTC
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	DebtPayments decimal.Decimal // portion of expenses consumed by settlements
	Net          decimal.Decimal
}

// Aggregate computes per-month statistics from transactions, oldest month
// first. Months with no activity are omitted.
func Aggregate(txs []model.Transaction) []MonthlyStats {
	monthMap := make(map[string]*MonthlyStats)

	for _, t := range txs {
		if t.Date.IsZero() {
			continue
		}
		key := t.Date.UTC().Format("2006-01")
		ms, ok := monthMap[key]
		if !ok {
			ms = &MonthlyStats{
				Month:        time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC),
				Income:       decimal.Zero,
				Expenses:     decimal.Zero,
				DebtPayments: decimal.Zero,
				Net:          decimal.Zero,
			}
			monthMap[key] = ms
		}

		switch t.Type {
		case model.Income:
			ms.Income = ms.Income.Add(t.Amount)
		case model.Expense:
			ms.Expenses = ms.Expenses.Add(t.Amount)
			ms.DebtPayments = ms.DebtPayments.Add(t.Used)
		}
	}

	out := make([]MonthlyStats, 0, len(monthMap))
	for _, ms := range monthMap {
		ms.Net = ms.Income.Sub(ms.Expenses)
		out = append(out, *ms)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// UpcomingLoad sums unpaid installment amounts per month for the next n
// months starting at the given month, for the payment pressure sparkline.
// Months with no installments contribute zero, so the series is contiguous.
func UpcomingLoad(payments []model.ScheduledPayment, from time.Time, n int) []float64 {
	if n <= 0 {
		return nil
	}

	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	series := make([]float64, n)

	for _, p := range payments {
		if p.Paid || p.DueDate.IsZero() {
			continue
		}
		due := time.Date(p.DueDate.Year(), p.DueDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		idx := (due.Year()-start.Year())*12 + int(due.Month()-start.Month())
		if idx < 0 || idx >= n {
			continue
		}
		v, _ := p.RemainingAmount().Float64()
		series[idx] += v
	}
	return series
}

// TotalsByCategory sums expense amounts per category, largest first.
func TotalsByCategory(txs []model.Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Type != model.Expense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, amount := range totals {
		out = append(out, CategoryTotal{Category: cat, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CategoryTotal is one row of the per-category expense breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}
