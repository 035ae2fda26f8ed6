package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes incomes from expenses.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is a declared income or expense. Expenses can be linked to
// settlements; Used tracks the amount already consumed that way.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
	Used        decimal.Decimal
}

// Available returns the portion of an expense not yet consumed by settlements.
func (t Transaction) Available() decimal.Decimal {
	a := t.Amount.Sub(t.Used)
	if a.IsNegative() {
		return decimal.Zero
	}
	return a
}
