package ledger

import (
	"time"

	"github.com/theirongolddev/finmate/internal/model"
)

// State is the whole application state snapshot the service owns in memory.
type State struct {
	Debts        []model.Debt
	Payments     []model.ScheduledPayment
	Transactions []model.Transaction

	HistoricalDebtsPaid int
	Awards              map[int]time.Time // tier -> completion timestamp
	Streak              model.Streak

	Profile *model.Profile
	GuestID string
}

// TierAward records the moment a garden tier completed.
type TierAward struct {
	Tier int
	At   time.Time
}

// SettlementChange is the write set of a single settlement. The store commits
// it in one transaction so either every aggregate update lands or none does.
type SettlementChange struct {
	Debt              model.Debt
	Payment           model.ScheduledPayment
	NewPayment        *model.ScheduledPayment
	RemovedPaymentIDs []string
	Expense           *model.Transaction

	HistoricalDebtsPaid int
	Award               *TierAward
}

// Store persists ledger state. The service loads it once at startup and
// writes back on every mutation, last writer wins.
type Store interface {
	Load() (State, error)

	SaveDebt(model.Debt) error
	DeleteDebt(id string) error
	ReplaceSchedule(debtID string, batch []model.ScheduledPayment) error
	SaveTransaction(model.Transaction) error
	DeleteTransaction(id string) error
	SaveStreak(model.Streak) error
	SaveProfile(model.Profile) error
	SaveGuestID(id string) error
	ApplySettlement(SettlementChange) error
}
