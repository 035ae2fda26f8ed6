package ledger

import "errors"

// Validation errors, rejected at the service boundary before any mutation.
// References to ids that no longer exist are not errors: those calls are
// silent no-ops so a stale view can never corrupt state.
var (
	ErrNameRequired     = errors.New("debt name is required")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrNegativeRate     = errors.New("interest rate cannot be negative")
	ErrDueDateNotFuture = errors.New("due date must be after today")
	ErrInvalidCutoffDay = errors.New("cutoff day must be between 1 and 31")
	ErrDebtPaidOff      = errors.New("debt is already fully paid")
	ErrInvalidMonths    = errors.New("months must be at least 1")
	ErrInvalidPayment   = errors.New("payment amount must be greater than zero")
	ErrNoExpenseLinked  = errors.New("settlement must be linked to an expense")
	ErrExpenseExhausted = errors.New("payment exceeds the expense's available balance")
	ErrAmountBelowUsed  = errors.New("amount cannot drop below what settlements already consumed")
	ErrTxInUse          = errors.New("transaction type cannot change once settlements consumed it")
	ErrMoraInput        = errors.New("mora rate and late days are required")
)
