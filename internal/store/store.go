// Package store persists ledger state in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a SQLite-backed ledger.Store.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Load reads the whole ledger state. Decimal amounts are stored as TEXT to
// stay cent-exact across round trips.
func (d *DB) Load() (ledger.State, error) {
	st := ledger.State{Awards: make(map[int]time.Time)}

	rows, err := d.db.Query(`SELECT id, name, amount, paid, rate, due_date,
		cutoff_day, notes, counted_in_progress, created_at FROM debts`)
	if err != nil {
		return st, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var debt model.Debt
		var amount, paid, rate, dueDate, createdAt string
		var counted int
		if err := rows.Scan(&debt.ID, &debt.Name, &amount, &paid, &rate,
			&dueDate, &debt.CutoffDay, &debt.Notes, &counted, &createdAt); err != nil {
			return st, err
		}
		if debt.Amount, err = decimal.NewFromString(amount); err != nil {
			return st, fmt.Errorf("debt %s amount: %w", debt.ID, err)
		}
		if debt.Paid, err = decimal.NewFromString(paid); err != nil {
			return st, fmt.Errorf("debt %s paid: %w", debt.ID, err)
		}
		if debt.Rate, err = decimal.NewFromString(rate); err != nil {
			return st, fmt.Errorf("debt %s rate: %w", debt.ID, err)
		}
		debt.DueDate = parseTime(dueDate)
		debt.CreatedAt = parseTime(createdAt)
		debt.CountedInProgress = counted != 0
		st.Debts = append(st.Debts, debt)
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	if st.Payments, err = d.loadPayments(); err != nil {
		return st, err
	}
	if st.Transactions, err = d.loadTransactions(); err != nil {
		return st, err
	}

	var lastActivity string
	err = d.db.QueryRow(`SELECT historical_debts_paid, streak_current,
		streak_longest, streak_last_activity, guest_id FROM garden WHERE id = 1`).
		Scan(&st.HistoricalDebtsPaid, &st.Streak.Current, &st.Streak.Longest,
			&lastActivity, &st.GuestID)
	if err != nil {
		return st, err
	}
	st.Streak.LastActivityDate = parseTime(lastActivity)

	awardRows, err := d.db.Query("SELECT tier, awarded_at FROM garden_awards")
	if err != nil {
		return st, err
	}
	defer func() { _ = awardRows.Close() }()
	for awardRows.Next() {
		var tier int
		var at string
		if err := awardRows.Scan(&tier, &at); err != nil {
			return st, err
		}
		st.Awards[tier] = parseTime(at)
	}
	if err := awardRows.Err(); err != nil {
		return st, err
	}

	var p model.Profile
	var registeredAt string
	err = d.db.QueryRow("SELECT name, email, avatar_url, registered_at FROM profile WHERE id = 1").
		Scan(&p.Name, &p.Email, &p.AvatarURL, &registeredAt)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return st, err
	default:
		p.RegisteredAt = parseTime(registeredAt)
		st.Profile = &p
	}

	return st, nil
}

func (d *DB) loadPayments() ([]model.ScheduledPayment, error) {
	rows, err := d.db.Query(`SELECT id, debt_id, debt_name, amount, due_date,
		paid_amount, paid, month_number FROM scheduled_payments`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.ScheduledPayment
	for rows.Next() {
		var p model.ScheduledPayment
		var amount, dueDate, paidAmount string
		var paid int
		if err := rows.Scan(&p.ID, &p.DebtID, &p.DebtName, &amount, &dueDate,
			&paidAmount, &paid, &p.MonthNumber); err != nil {
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("payment %s amount: %w", p.ID, err)
		}
		if p.PaidAmount, err = decimal.NewFromString(paidAmount); err != nil {
			return nil, fmt.Errorf("payment %s paid_amount: %w", p.ID, err)
		}
		p.DueDate = parseTime(dueDate)
		p.Paid = paid != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

func (d *DB) loadTransactions() ([]model.Transaction, error) {
	rows, err := d.db.Query("SELECT id, type, amount, category, date, description, used FROM transactions")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var typ, amount, date, used string
		if err := rows.Scan(&t.ID, &typ, &amount, &t.Category, &date, &t.Description, &used); err != nil {
			return nil, err
		}
		t.Type = model.TransactionType(typ)
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("transaction %s amount: %w", t.ID, err)
		}
		if t.Used, err = decimal.NewFromString(used); err != nil {
			return nil, fmt.Errorf("transaction %s used: %w", t.ID, err)
		}
		t.Date = parseTime(date)
		out = append(out, t)
	}
	return out, rows.Err()
}

// SaveDebt inserts or replaces a debt row.
func (d *DB) SaveDebt(debt model.Debt) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO debts
		(id, name, amount, paid, rate, due_date, cutoff_day, notes, counted_in_progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		debt.ID, debt.Name, debt.Amount.String(), debt.Paid.String(), debt.Rate.String(),
		fmtTime(debt.DueDate), debt.CutoffDay, debt.Notes, boolInt(debt.CountedInProgress),
		fmtTime(debt.CreatedAt),
	)
	return err
}

// DeleteDebt removes a debt; its installments go with it via cascade.
func (d *DB) DeleteDebt(id string) error {
	_, err := d.db.Exec("DELETE FROM debts WHERE id = ?", id)
	return err
}

// ReplaceSchedule swaps a debt's installments for a fresh batch atomically.
func (d *DB) ReplaceSchedule(debtID string, batch []model.ScheduledPayment) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM scheduled_payments WHERE debt_id = ?", debtID); err != nil {
		return err
	}
	for _, p := range batch {
		if err := insertPayment(tx, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveTransaction inserts or replaces a transaction row.
func (d *DB) SaveTransaction(t model.Transaction) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO transactions
		(id, type, amount, category, date, description, used)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Type), t.Amount.String(), t.Category, fmtTime(t.Date),
		t.Description, t.Used.String(),
	)
	return err
}

// DeleteTransaction removes a transaction row.
func (d *DB) DeleteTransaction(id string) error {
	_, err := d.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	return err
}

// SaveStreak persists the streak fields of the singleton garden row.
func (d *DB) SaveStreak(s model.Streak) error {
	_, err := d.db.Exec(`UPDATE garden SET streak_current = ?, streak_longest = ?,
		streak_last_activity = ? WHERE id = 1`,
		s.Current, s.Longest, fmtTime(s.LastActivityDate),
	)
	return err
}

// SaveProfile persists the singleton profile row.
func (d *DB) SaveProfile(p model.Profile) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO profile (id, name, email, avatar_url, registered_at)
		VALUES (1, ?, ?, ?, ?)`,
		p.Name, p.Email, p.AvatarURL, fmtTime(p.RegisteredAt),
	)
	return err
}

// SaveGuestID persists the local identity minted on first run.
func (d *DB) SaveGuestID(id string) error {
	_, err := d.db.Exec("UPDATE garden SET guest_id = ? WHERE id = 1", id)
	return err
}

// ApplySettlement commits a settlement's whole write set in one transaction.
func (d *DB) ApplySettlement(c ledger.SettlementChange) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`UPDATE debts SET paid = ?, counted_in_progress = ? WHERE id = ?`,
		c.Debt.Paid.String(), boolInt(c.Debt.CountedInProgress), c.Debt.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE scheduled_payments SET paid_amount = ?, paid = ? WHERE id = ?`,
		c.Payment.PaidAmount.String(), boolInt(c.Payment.Paid), c.Payment.ID)
	if err != nil {
		return err
	}

	for _, id := range c.RemovedPaymentIDs {
		if _, err := tx.Exec("DELETE FROM scheduled_payments WHERE id = ?", id); err != nil {
			return err
		}
	}

	if c.NewPayment != nil {
		if err := insertPayment(tx, *c.NewPayment); err != nil {
			return err
		}
	}

	if c.Expense != nil {
		_, err = tx.Exec("UPDATE transactions SET used = ? WHERE id = ?",
			c.Expense.Used.String(), c.Expense.ID)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec("UPDATE garden SET historical_debts_paid = ? WHERE id = 1",
		c.HistoricalDebtsPaid)
	if err != nil {
		return err
	}

	if c.Award != nil {
		_, err = tx.Exec("INSERT OR REPLACE INTO garden_awards (tier, awarded_at) VALUES (?, ?)",
			c.Award.Tier, fmtTime(c.Award.At))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertPayment(tx *sql.Tx, p model.ScheduledPayment) error {
	_, err := tx.Exec(`INSERT OR REPLACE INTO scheduled_payments
		(id, debt_id, debt_name, amount, due_date, paid_amount, paid, month_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.DebtID, p.DebtName, p.Amount.String(), fmtTime(p.DueDate),
		p.PaidAmount.String(), boolInt(p.Paid), p.MonthNumber,
	)
	return err
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
