package ledger

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/garden"
	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/money"
)

// Service owns the application state. Every mutation goes through one of its
// methods: the method validates, computes the full update under the lock, and
// writes it back to the store before the in-memory state changes. There is a
// single logical writer, so no operation ever observes a half-applied update.
type Service struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time

	st State
}

// NewService loads persisted state and returns the ready service. A guest id
// is minted on first run.
func NewService(store Store) (*Service, error) {
	st, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading ledger state: %w", err)
	}
	if st.Awards == nil {
		st.Awards = make(map[int]time.Time)
	}

	s := &Service{store: store, now: time.Now, st: st}

	if s.st.GuestID == "" {
		s.st.GuestID = uuid.NewString()
		if err := store.SaveGuestID(s.st.GuestID); err != nil {
			return nil, fmt.Errorf("saving guest id: %w", err)
		}
	}
	return s, nil
}

func (s *Service) today() time.Time {
	return money.DateOnly(s.now())
}

// DebtInput carries user-entered fields for a new debt.
type DebtInput struct {
	Name      string
	Amount    decimal.Decimal
	Rate      decimal.Decimal
	DueDate   time.Time
	CutoffDay int
	Notes     string
}

func (s *Service) validateDebtFields(name string, amount, rate decimal.Decimal, dueDate time.Time, cutoffDay int) error {
	switch {
	case strings.TrimSpace(name) == "":
		return ErrNameRequired
	case !amount.IsPositive():
		return ErrInvalidAmount
	case rate.IsNegative():
		return ErrNegativeRate
	case money.DaysBetween(s.today(), dueDate) <= 0:
		return ErrDueDateNotFuture
	case cutoffDay != 0 && (cutoffDay < 1 || cutoffDay > 31):
		return ErrInvalidCutoffDay
	}
	return nil
}

// AddDebt validates and registers a new debt.
func (s *Service) AddDebt(in DebtInput) (model.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateDebtFields(in.Name, in.Amount, in.Rate, in.DueDate, in.CutoffDay); err != nil {
		return model.Debt{}, err
	}

	d := model.Debt{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Amount:    money.Round2(in.Amount),
		Paid:      decimal.Zero,
		Rate:      in.Rate,
		DueDate:   money.DateOnly(in.DueDate),
		CutoffDay: in.CutoffDay,
		Notes:     in.Notes,
		CreatedAt: s.now(),
	}

	if err := s.store.SaveDebt(d); err != nil {
		return model.Debt{}, err
	}
	s.st.Debts = append(s.st.Debts, d)
	return d, nil
}

// DebtUpdate carries optional field edits; nil fields are left untouched.
type DebtUpdate struct {
	Name      *string
	Amount    *decimal.Decimal
	Rate      *decimal.Decimal
	DueDate   *time.Time
	CutoffDay *int
	Notes     *string
}

// UpdateDebt edits a debt in place. Fully paid debts are read-only. An
// unknown id is a no-op. Renames do not touch scheduled payments: their
// DebtName stays a snapshot from generation time.
func (s *Service) UpdateDebt(id string, upd DebtUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.debtIndex(id)
	if idx < 0 {
		return nil
	}
	d := s.st.Debts[idx]
	if d.FullyPaid() {
		return ErrDebtPaidOff
	}

	if upd.Name != nil {
		d.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Amount != nil {
		d.Amount = money.Round2(*upd.Amount)
	}
	if upd.Rate != nil {
		d.Rate = *upd.Rate
	}
	if upd.DueDate != nil {
		d.DueDate = money.DateOnly(*upd.DueDate)
	}
	if upd.CutoffDay != nil {
		d.CutoffDay = *upd.CutoffDay
	}
	if upd.Notes != nil {
		d.Notes = *upd.Notes
	}

	if err := s.validateDebtFields(d.Name, d.Amount, d.Rate, d.DueDate, d.CutoffDay); err != nil {
		return err
	}
	if err := s.store.SaveDebt(d); err != nil {
		return err
	}
	s.st.Debts[idx] = d
	return nil
}

// DeleteDebt removes a debt and its scheduled payments. Garden history is
// never revoked: a deleted debt keeps its contribution to the historical
// counter. Unknown ids are a no-op.
func (s *Service) DeleteDebt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.debtIndex(id)
	if idx < 0 {
		return nil
	}

	if err := s.store.DeleteDebt(id); err != nil {
		return err
	}
	s.st.Debts = append(s.st.Debts[:idx], s.st.Debts[idx+1:]...)
	s.st.Payments = filterPayments(s.st.Payments, func(p model.ScheduledPayment) bool {
		return p.DebtID != id
	})
	return nil
}

// Debts returns all debts, unpaid first ordered by due date, fully paid last.
func (s *Service) Debts() []model.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Debt, len(s.st.Debts))
	copy(out, s.st.Debts)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].FullyPaid(), out[j].FullyPaid()
		if pi != pj {
			return !pi
		}
		if pi {
			return false
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// Debt looks up a single debt.
func (s *Service) Debt(id string) (model.Debt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.debtIndex(id); idx >= 0 {
		return s.st.Debts[idx], true
	}
	return model.Debt{}, false
}

// Stats derives the display fields for a debt: remaining principal, months
// to the due date, and the recommended annuity payment.
func (s *Service) Stats(d model.Debt) model.DebtStats {
	months := RemainingMonths(d.DueDate, s.today())
	principal := d.Remaining()
	return model.DebtStats{
		Principal:       principal,
		RemainingMonths: months,
		MonthlyPayment:  money.Round2(MonthlyPayment(principal, d.Rate, months)),
		PercentPaid:     d.PercentPaid(),
	}
}

// TxInput carries user-entered fields for a new transaction.
type TxInput struct {
	Type        model.TransactionType
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// AddTransaction validates and registers an income or expense.
func (s *Service) AddTransaction(in TxInput) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Type != model.Income && in.Type != model.Expense {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", in.Type)
	}
	if !in.Amount.IsPositive() {
		return model.Transaction{}, ErrInvalidAmount
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Transaction{}, ErrNameRequired
	}
	date := in.Date
	if date.IsZero() {
		date = s.today()
	}

	t := model.Transaction{
		ID:          uuid.NewString(),
		Type:        in.Type,
		Amount:      money.Round2(in.Amount),
		Category:    strings.TrimSpace(in.Category),
		Date:        money.DateOnly(date),
		Description: in.Description,
		Used:        decimal.Zero,
	}

	if err := s.store.SaveTransaction(t); err != nil {
		return model.Transaction{}, err
	}
	s.st.Transactions = append(s.st.Transactions, t)
	return t, nil
}

// TxUpdate carries optional transaction edits; nil fields are left untouched.
type TxUpdate struct {
	Type        *model.TransactionType
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
	Description *string
}

// UpdateTransaction edits a transaction in place. The amount can never drop
// below what settlements have already consumed, and an expense with consumed
// balance cannot change type. Unknown ids are a no-op.
func (s *Service) UpdateTransaction(id string, upd TxUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.txIndex(id)
	if idx < 0 {
		return nil
	}
	t := s.st.Transactions[idx]

	if upd.Type != nil && *upd.Type != t.Type {
		if *upd.Type != model.Income && *upd.Type != model.Expense {
			return fmt.Errorf("unknown transaction type %q", *upd.Type)
		}
		if t.Used.IsPositive() {
			return ErrTxInUse
		}
		t.Type = *upd.Type
	}
	if upd.Amount != nil {
		t.Amount = money.Round2(*upd.Amount)
	}
	if upd.Category != nil {
		t.Category = strings.TrimSpace(*upd.Category)
	}
	if upd.Date != nil {
		t.Date = money.DateOnly(*upd.Date)
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.Category == "" {
		return ErrNameRequired
	}
	if t.Amount.LessThan(t.Used) {
		return ErrAmountBelowUsed
	}

	if err := s.store.SaveTransaction(t); err != nil {
		return err
	}
	s.st.Transactions[idx] = t
	return nil
}

// DeleteTransaction removes a transaction; unknown ids are a no-op.
func (s *Service) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.txIndex(id)
	if idx < 0 {
		return nil
	}
	if err := s.store.DeleteTransaction(id); err != nil {
		return err
	}
	s.st.Transactions = append(s.st.Transactions[:idx], s.st.Transactions[idx+1:]...)
	return nil
}

// Transactions returns all transactions, most recent first.
func (s *Service) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Transaction, len(s.st.Transactions))
	copy(out, s.st.Transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// OpenExpenses returns expense transactions that still have available balance
// to link against settlements.
func (s *Service) OpenExpenses() []model.Transaction {
	var out []model.Transaction
	for _, t := range s.Transactions() {
		if t.Type == model.Expense && t.Available().IsPositive() {
			out = append(out, t)
		}
	}
	return out
}

// GeneratePlan replaces a debt's scheduled payments with a fresh batch of
// monthly installments. The requested payment amount only matters to the
// naive policy; the exact policy derives installments from the pending
// balance alone. Unknown debts are a no-op.
func (s *Service) GeneratePlan(debtID string, payment decimal.Decimal, months int, policy ProrationPolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if months < 1 {
		return ErrInvalidMonths
	}

	idx := s.debtIndex(debtID)
	if idx < 0 {
		return nil
	}
	debt := s.st.Debts[idx]
	if debt.FullyPaid() {
		return ErrDebtPaidOff
	}

	batch := BuildSchedule(debt, payment, months, s.today(), policy)
	if err := s.store.ReplaceSchedule(debtID, batch); err != nil {
		return err
	}

	s.st.Payments = filterPayments(s.st.Payments, func(p model.ScheduledPayment) bool {
		return p.DebtID != debtID
	})
	s.st.Payments = append(s.st.Payments, batch...)
	return nil
}

// ScheduledPayments returns pending and settled installments ordered by due
// date, month number breaking ties.
func (s *Service) ScheduledPayments() []model.ScheduledPayment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ScheduledPayment, len(s.st.Payments))
	copy(out, s.st.Payments)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].MonthNumber < out[j].MonthNumber
	})
	return out
}

// ScheduledPayment looks up a single installment.
func (s *Service) ScheduledPayment(id string) (model.ScheduledPayment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.paymentIndex(id); idx >= 0 {
		return s.st.Payments[idx], true
	}
	return model.ScheduledPayment{}, false
}

// TouchStreak records activity for today and persists the updated streak.
func (s *Service) TouchStreak() (model.Streak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := garden.Touch(s.st.Streak, s.now())
	if updated.Current == s.st.Streak.Current &&
		updated.Longest == s.st.Streak.Longest &&
		updated.LastActivityDate.Equal(s.st.Streak.LastActivityDate) {
		return updated, nil
	}
	if err := s.store.SaveStreak(updated); err != nil {
		return s.st.Streak, err
	}
	s.st.Streak = updated
	return updated, nil
}

// StreakSnapshot returns the current streak without touching it.
func (s *Service) StreakSnapshot() model.Streak {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Streak
}

// Garden derives the garden view from the historical counter.
func (s *Service) Garden() model.GardenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return garden.Derive(s.st.HistoricalDebtsPaid, s.st.Awards)
}

// SetProfile stores the user profile, keeping the original registration time.
func (s *Service) SetProfile(name, email, avatarURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	p := model.Profile{
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		AvatarURL:    avatarURL,
		RegisteredAt: s.now(),
	}
	if s.st.Profile != nil && !s.st.Profile.RegisteredAt.IsZero() {
		p.RegisteredAt = s.st.Profile.RegisteredAt
	}

	if err := s.store.SaveProfile(p); err != nil {
		return err
	}
	s.st.Profile = &p
	return nil
}

// Profile returns the stored profile, if any.
func (s *Service) Profile() (model.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.Profile == nil {
		return model.Profile{}, false
	}
	return *s.st.Profile, true
}

// GuestID returns the persisted anonymous identity.
func (s *Service) GuestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.GuestID
}

func (s *Service) debtIndex(id string) int {
	for i, d := range s.st.Debts {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) paymentIndex(id string) int {
	for i, p := range s.st.Payments {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) txIndex(id string) int {
	for i, t := range s.st.Transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func filterPayments(in []model.ScheduledPayment, keep func(model.ScheduledPayment) bool) []model.ScheduledPayment {
	out := in[:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
