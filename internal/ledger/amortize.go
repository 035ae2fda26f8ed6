// Package ledger implements the finmate financial engine: amortization,
// payment schedules, settlement, and the late-fee simulator, behind a single
// state-owning service.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/money"
)

var (
	hundred       = decimal.NewFromInt(100)
	twelveHundred = decimal.NewFromInt(1200)
	one           = decimal.NewFromInt(1)
)

// RemainingMonths estimates the number of monthly installments left before a
// due date: ceil(days/30), floored at 1. A due date today or in the past still
// yields one month, so downstream division never sees a zero term.
func RemainingMonths(dueDate, today time.Time) int {
	days := money.DaysBetween(today, dueDate)
	if days <= 0 {
		return 1
	}
	months := (days + 29) / 30
	if months < 1 {
		months = 1
	}
	return months
}

// MonthlyPayment computes the standard annuity payment for a principal at an
// annual rate (percent) over a term in months:
//
//	P * r * (1+r)^n / ((1+r)^n - 1), r = rate/100/12
//
// A zero rate degenerates to principal/months; a non-positive principal pays
// nothing. The result is a point calculation and is not rounded; callers
// round when materializing installments or displaying.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, months int) decimal.Decimal {
	if !principal.IsPositive() {
		return decimal.Zero
	}
	if months < 1 {
		months = 1
	}

	n := decimal.NewFromInt(int64(months))
	r := annualRatePct.Div(twelveHundred)
	if r.IsZero() {
		return principal.Div(n)
	}

	pow := one.Add(r).Pow(n)
	return principal.Mul(r).Mul(pow).Div(pow.Sub(one))
}
