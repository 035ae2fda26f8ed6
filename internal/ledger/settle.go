package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/garden"
	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/money"
)

// SettleResult reports what a settlement did, for user feedback.
type SettleResult struct {
	Applied         decimal.Decimal // cash actually applied after clamping
	InstallmentPaid bool
	DebtRetired     bool

	// Set when this settlement completed a garden tier.
	TierCompleted *model.GardenPlant
	NextSeed      string
}

// Settle applies a cash payment against a scheduled installment:
//
//   - the installment accumulates paidAmount and flips to paid when covered,
//   - the owning debt's paid total rises by the same cash,
//   - a retired debt credits the garden counter once and drops its remaining
//     unpaid installments,
//   - a completed installment with no successor rolls the schedule forward
//     one month so long-running debts never run out of installments,
//   - the linked expense is debited, which is how one declared expense can be
//     split across several debts.
//
// Cash is clamped to the debt's remaining balance, so the debt never records
// more paid than it owes. Validation failures reject the call before any
// mutation; unknown payment or debt ids are silent no-ops. All aggregate
// updates commit through the store in a single transaction.
func (s *Service) Settle(paymentID string, cash decimal.Decimal, expenseID string) (SettleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !cash.IsPositive() {
		return SettleResult{}, ErrInvalidPayment
	}
	if expenseID == "" {
		return SettleResult{}, ErrNoExpenseLinked
	}

	expIdx := s.txIndex(expenseID)
	var expense *model.Transaction
	if expIdx >= 0 {
		t := s.st.Transactions[expIdx]
		if t.Type != model.Expense {
			return SettleResult{}, ErrNoExpenseLinked
		}
		if cash.GreaterThan(t.Available()) {
			return SettleResult{}, ErrExpenseExhausted
		}
		expense = &t
	}

	payIdx := s.paymentIndex(paymentID)
	if payIdx < 0 {
		return SettleResult{}, nil
	}
	payment := s.st.Payments[payIdx]

	debtIdx := s.debtIndex(payment.DebtID)
	if debtIdx < 0 {
		return SettleResult{}, nil
	}
	debt := s.st.Debts[debtIdx]
	if debt.FullyPaid() {
		return SettleResult{}, nil
	}

	applied := cash
	if applied.GreaterThan(debt.Remaining()) {
		applied = debt.Remaining()
	}

	newInstallmentPaid := payment.PaidAmount.Add(applied)
	installmentComplete := newInstallmentPaid.GreaterThanOrEqual(payment.Amount)

	debt.Paid = money.Round2(debt.Paid.Add(applied))
	retired := debt.FullyPaid()

	result := SettleResult{Applied: applied, DebtRetired: retired}

	change := SettlementChange{HistoricalDebtsPaid: s.st.HistoricalDebtsPaid}
	historical := s.st.HistoricalDebtsPaid
	var award *TierAward

	switch {
	case retired:
		payment.Paid = true
		payment.PaidAmount = minDecimal(newInstallmentPaid, payment.Amount)
		result.InstallmentPaid = true

		// Every other unpaid installment for this debt is moot now.
		for _, p := range s.st.Payments {
			if p.DebtID == debt.ID && p.ID != payment.ID && !p.Paid {
				change.RemovedPaymentIDs = append(change.RemovedPaymentIDs, p.ID)
			}
		}

		if !debt.CountedInProgress {
			debt.CountedInProgress = true
			historical++
			if garden.TierCrossed(historical-1, historical) {
				award = &TierAward{Tier: historical / garden.DebtsPerTier, At: s.now()}
				plant := garden.PlantForTier(award.Tier)
				plant.Stage = 4
				plant.Completed = true
				plant.CompletedAt = award.At
				result.TierCompleted = &plant
				result.NextSeed = garden.NextSeed(historical)
			}
		}

	case installmentComplete:
		payment.Paid = true
		payment.PaidAmount = payment.Amount
		result.InstallmentPaid = true

		// Keep a rolling schedule alive: if the plan ran out of months,
		// synthesize the next installment one month out.
		if !s.hasInstallment(debt.ID, payment.MonthNumber+1) {
			change.NewPayment = &model.ScheduledPayment{
				ID:          uuid.NewString(),
				DebtID:      payment.DebtID,
				DebtName:    payment.DebtName,
				Amount:      payment.Amount,
				DueDate:     money.AddMonthClamped(payment.DueDate),
				PaidAmount:  decimal.Zero,
				Paid:        false,
				MonthNumber: payment.MonthNumber + 1,
			}
		}

	default:
		payment.PaidAmount = newInstallmentPaid
	}

	if expense != nil {
		expense.Used = money.Round2(expense.Used.Add(applied))
	}

	change.Debt = debt
	change.Payment = payment
	change.Expense = expense
	change.HistoricalDebtsPaid = historical
	change.Award = award

	if err := s.store.ApplySettlement(change); err != nil {
		return SettleResult{}, err
	}

	// Store committed; now apply the same change set in memory.
	s.st.Debts[debtIdx] = debt
	s.st.Payments[payIdx] = payment
	if len(change.RemovedPaymentIDs) > 0 {
		removed := make(map[string]bool, len(change.RemovedPaymentIDs))
		for _, id := range change.RemovedPaymentIDs {
			removed[id] = true
		}
		s.st.Payments = filterPayments(s.st.Payments, func(p model.ScheduledPayment) bool {
			return !removed[p.ID]
		})
	}
	if change.NewPayment != nil {
		s.st.Payments = append(s.st.Payments, *change.NewPayment)
	}
	if expense != nil {
		s.st.Transactions[expIdx] = *expense
	}
	s.st.HistoricalDebtsPaid = historical
	if award != nil {
		s.st.Awards[award.Tier] = award.At
	}

	return result, nil
}

func (s *Service) hasInstallment(debtID string, monthNumber int) bool {
	for _, p := range s.st.Payments {
		if p.DebtID == debtID && p.MonthNumber == monthNumber {
			return true
		}
	}
	return false
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
