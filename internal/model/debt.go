// Package model defines domain types for finmate debts, payments, and the garden.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is a user-declared obligation being paid down over time.
type Debt struct {
	ID        string
	Name      string
	Amount    decimal.Decimal
	Paid      decimal.Decimal
	Rate      decimal.Decimal // annual interest rate, percent
	DueDate   time.Time
	CutoffDay int // day of month installments fall due; 0 = use DueDate's day
	Notes     string

	// CountedInProgress is set the first time the debt crosses full payoff,
	// so the garden counter is credited at most once per debt.
	CountedInProgress bool

	CreatedAt time.Time
}

// Remaining returns the unpaid principal.
func (d Debt) Remaining() decimal.Decimal {
	return d.Amount.Sub(d.Paid)
}

// FullyPaid reports whether the debt has been retired.
func (d Debt) FullyPaid() bool {
	return d.Paid.GreaterThanOrEqual(d.Amount)
}

// EffectiveCutoffDay returns the configured cutoff day, falling back to the
// due date's day of month.
func (d Debt) EffectiveCutoffDay() int {
	if d.CutoffDay >= 1 && d.CutoffDay <= 31 {
		return d.CutoffDay
	}
	return d.DueDate.Day()
}

// PercentPaid returns the paid fraction in 0-1, clamped.
func (d Debt) PercentPaid() float64 {
	if !d.Amount.IsPositive() {
		return 0
	}
	pct, _ := d.Paid.Div(d.Amount).Float64()
	if pct > 1 {
		pct = 1
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// DebtStats holds fields derived from a debt on read, never stored.
type DebtStats struct {
	Principal       decimal.Decimal // remaining unpaid amount
	RemainingMonths int
	MonthlyPayment  decimal.Decimal // recommended annuity payment
	PercentPaid     float64
}
