package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/money"
)

// ProrationPolicy controls how a debt's pending balance is distributed across
// installments.
type ProrationPolicy int

const (
	// ProrateExact distributes round2(pending/months) per installment and
	// folds the rounding residue into the first one, so the batch sums to the
	// pending balance to the cent. This is the default.
	ProrateExact ProrationPolicy = iota

	// ProrateNaive repeats the requested payment for months-1 installments
	// and lets the last one absorb the remainder, clamped at zero. It can
	// drift from the pending balance by more than a cent when the requested
	// payment disagrees with the amortization formula; retained only for
	// plans generated by older versions.
	ProrateNaive
)

// ParsePolicy maps a config string to a proration policy, defaulting to exact.
func ParsePolicy(s string) ProrationPolicy {
	if s == "naive" {
		return ProrateNaive
	}
	return ProrateExact
}

// BuildSchedule materializes the ordered installment batch for a debt.
// Installments land on the debt's cutoff day, the first one a calendar month
// after today. Installments that come out to zero are omitted.
func BuildSchedule(debt model.Debt, payment decimal.Decimal, months int, today time.Time, policy ProrationPolicy) []model.ScheduledPayment {
	if months < 1 {
		return nil
	}

	pending := debt.Remaining()
	cutoff := debt.EffectiveCutoffDay()
	n := decimal.NewFromInt(int64(months))

	var base, first decimal.Decimal
	switch policy {
	case ProrateNaive:
		base = payment
	default:
		base = money.Round2(pending.Div(n))
		difference := money.Round2(pending.Sub(base.Mul(n)))
		first = base.Add(difference)
	}

	batch := make([]model.ScheduledPayment, 0, months)
	for i := 1; i <= months; i++ {
		amount := base
		switch {
		case policy == ProrateExact && i == 1:
			amount = first
		case policy == ProrateNaive && i == months:
			amount = pending.Sub(payment.Mul(decimal.NewFromInt(int64(months - 1))))
			if amount.IsNegative() {
				amount = decimal.Zero
			}
		}
		if amount.IsZero() {
			continue
		}

		batch = append(batch, model.ScheduledPayment{
			ID:          uuid.NewString(),
			DebtID:      debt.ID,
			DebtName:    debt.Name,
			Amount:      amount,
			DueDate:     money.MonthOnDay(today, i, cutoff),
			PaidAmount:  decimal.Zero,
			Paid:        false,
			MonthNumber: i,
		})
	}
	return batch
}
