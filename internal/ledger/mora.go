package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/money"
)

// RateBasis says how a mora (late-fee) rate is expressed.
type RateBasis string

const (
	BasisAnnual RateBasis = "annual"
	BasisDaily  RateBasis = "daily"
)

var daysPerYear = decimal.NewFromInt(365)

// MoraResult is the advisory output of a late-fee simulation.
type MoraResult struct {
	Fee      decimal.Decimal
	NewTotal decimal.Decimal
}

// SimulateMora projects the late fee on a pending principal after lateDays of
// delay. An annual basis is converted to a daily rate over 365 days. Simple
// interest multiplies the daily rate by the delay; compound applies
// (1+dailyRate)^days - 1. Purely advisory, never fed back into any debt.
func SimulateMora(principal, ratePct decimal.Decimal, basis RateBasis, lateDays int, compound bool) (MoraResult, error) {
	if !ratePct.IsPositive() || lateDays <= 0 {
		return MoraResult{}, ErrMoraInput
	}

	dailyRate := ratePct.Div(hundred)
	if basis == BasisAnnual {
		dailyRate = dailyRate.Div(daysPerYear)
	}

	var fee decimal.Decimal
	if compound {
		growth := one.Add(dailyRate).Pow(decimal.NewFromInt(int64(lateDays)))
		fee = principal.Mul(growth.Sub(one))
	} else {
		fee = principal.Mul(dailyRate).Mul(decimal.NewFromInt(int64(lateDays)))
	}

	fee = money.Round2(fee)
	return MoraResult{Fee: fee, NewTotal: principal.Add(fee)}, nil
}
