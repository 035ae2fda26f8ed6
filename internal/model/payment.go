package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledPayment is one installment of a debt's payment plan.
type ScheduledPayment struct {
	ID          string
	DebtID      string
	DebtName    string // snapshot at generation time, not updated on rename
	Amount      decimal.Decimal
	DueDate     time.Time
	PaidAmount  decimal.Decimal
	Paid        bool
	MonthNumber int // 1-based index within the generating plan
}

// RemainingAmount returns how much is still owed on this installment.
func (p ScheduledPayment) RemainingAmount() decimal.Decimal {
	r := p.Amount.Sub(p.PaidAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
