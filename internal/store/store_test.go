package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "finmate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testDebt(id string) model.Debt {
	return model.Debt{
		ID:        id,
		Name:      "Store Credit",
		Amount:    dec("1000.50"),
		Paid:      dec("0"),
		Rate:      dec("12.5"),
		DueDate:   utc(2025, 12, 15),
		CutoffDay: 5,
		Notes:     "holiday purchases",
		CreatedAt: utc(2025, 1, 2),
	}
}

func TestOpenCreatesSchemaOnFreshFile(t *testing.T) {
	db := openTestDB(t)

	st, err := db.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Debts)
	assert.Empty(t, st.Payments)
	assert.Empty(t, st.Transactions)
	assert.Equal(t, 0, st.HistoricalDebtsPaid)
	assert.NotNil(t, st.Awards)
	assert.Nil(t, st.Profile)
	assert.Empty(t, st.GuestID)
}

func TestDebtRoundTrip(t *testing.T) {
	db := openTestDB(t)
	want := testDebt("d1")
	want.Paid = dec("333.34")
	want.CountedInProgress = true

	require.NoError(t, db.SaveDebt(want))

	st, err := db.Load()
	require.NoError(t, err)
	require.Len(t, st.Debts, 1)
	got := st.Debts[0]

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, got.Amount.Equal(want.Amount), "amount %s", got.Amount)
	assert.True(t, got.Paid.Equal(want.Paid), "paid %s", got.Paid)
	assert.True(t, got.Rate.Equal(want.Rate), "rate %s", got.Rate)
	assert.True(t, got.DueDate.Equal(want.DueDate))
	assert.Equal(t, want.CutoffDay, got.CutoffDay)
	assert.Equal(t, want.Notes, got.Notes)
	assert.True(t, got.CountedInProgress)
	assert.True(t, got.CreatedAt.Equal(want.CreatedAt))
}

func TestSaveDebtUpsert(t *testing.T) {
	db := openTestDB(t)
	debt := testDebt("d1")
	require.NoError(t, db.SaveDebt(debt))

	debt.Name = "Store Credit C"
	debt.Paid = dec("100")
	require.NoError(t, db.SaveDebt(debt))

	st, err := db.Load()
	require.NoError(t, err)
	require.Len(t, st.Debts, 1)
	assert.Equal(t, "Store Credit C", st.Debts[0].Name)
	assert.True(t, st.Debts[0].Paid.Equal(dec("100")))
}

func TestDeleteDebtCascadesToPayments(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveDebt(testDebt("d1")))
	require.NoError(t, db.ReplaceSchedule("d1", []model.ScheduledPayment{
		{ID: "p1", DebtID: "d1", DebtName: "Store Credit", Amount: dec("500"), PaidAmount: dec("0"), DueDate: utc(2025, 2, 5), MonthNumber: 1},
		{ID: "p2", DebtID: "d1", DebtName: "Store Credit", Amount: dec("500.50"), PaidAmount: dec("0"), DueDate: utc(2025, 3, 5), MonthNumber: 2},
	}))

	require.NoError(t, db.DeleteDebt("d1"))

	st, err := db.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Debts)
	assert.Empty(t, st.Payments, "installments should go with their debt")
}

func TestReplaceScheduleSwapsBatch(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveDebt(testDebt("d1")))

	first := []model.ScheduledPayment{
		{ID: "p1", DebtID: "d1", DebtName: "Store Credit", Amount: dec("250"), PaidAmount: dec("0"), DueDate: utc(2025, 2, 5), MonthNumber: 1},
		{ID: "p2", DebtID: "d1", DebtName: "Store Credit", Amount: dec("250"), PaidAmount: dec("0"), DueDate: utc(2025, 3, 5), MonthNumber: 2},
	}
	require.NoError(t, db.ReplaceSchedule("d1", first))

	second := []model.ScheduledPayment{
		{ID: "p3", DebtID: "d1", DebtName: "Store Credit", Amount: dec("500"), PaidAmount: dec("0"), DueDate: utc(2025, 2, 5), MonthNumber: 1},
	}
	require.NoError(t, db.ReplaceSchedule("d1", second))

	st, err := db.Load()
	require.NoError(t, err)
	require.Len(t, st.Payments, 1)
	assert.Equal(t, "p3", st.Payments[0].ID)
	assert.True(t, st.Payments[0].Amount.Equal(dec("500")))
}

func TestTransactionRoundTrip(t *testing.T) {
	db := openTestDB(t)
	want := model.Transaction{
		ID:          "t1",
		Type:        model.Expense,
		Amount:      dec("750.25"),
		Category:    "Debt payments",
		Date:        utc(2025, 1, 3),
		Description: "monthly budget",
		Used:        dec("120.75"),
	}
	require.NoError(t, db.SaveTransaction(want))

	st, err := db.Load()
	require.NoError(t, err)
	require.Len(t, st.Transactions, 1)
	got := st.Transactions[0]
	assert.Equal(t, model.Expense, got.Type)
	assert.True(t, got.Amount.Equal(want.Amount))
	assert.True(t, got.Used.Equal(want.Used))
	assert.True(t, got.Available().Equal(dec("629.50")))

	require.NoError(t, db.DeleteTransaction("t1"))
	st, err = db.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Transactions)
}

func TestStreakAndGuestIDPersist(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveStreak(model.Streak{Current: 3, Longest: 9, LastActivityDate: utc(2025, 1, 10)}))
	require.NoError(t, db.SaveGuestID("guest-abc"))

	st, err := db.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, st.Streak.Current)
	assert.Equal(t, 9, st.Streak.Longest)
	assert.True(t, st.Streak.LastActivityDate.Equal(utc(2025, 1, 10)))
	assert.Equal(t, "guest-abc", st.GuestID)
}

func TestProfileRoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveProfile(model.Profile{
		Name:         "Val",
		Email:        "val@example.com",
		RegisteredAt: utc(2025, 1, 1),
	}))

	st, err := db.Load()
	require.NoError(t, err)
	require.NotNil(t, st.Profile)
	assert.Equal(t, "Val", st.Profile.Name)
	assert.Equal(t, "val@example.com", st.Profile.Email)

	// Replacing the singleton keeps one row.
	require.NoError(t, db.SaveProfile(model.Profile{Name: "Val R", RegisteredAt: utc(2025, 1, 1)}))
	st, err = db.Load()
	require.NoError(t, err)
	assert.Equal(t, "Val R", st.Profile.Name)
}

func TestApplySettlementCommitsWholeWriteSet(t *testing.T) {
	db := openTestDB(t)

	debt := testDebt("d1")
	debt.Amount = dec("500")
	require.NoError(t, db.SaveDebt(debt))
	require.NoError(t, db.ReplaceSchedule("d1", []model.ScheduledPayment{
		{ID: "p1", DebtID: "d1", DebtName: "Store Credit", Amount: dec("500"), PaidAmount: dec("0"), DueDate: utc(2025, 2, 5), MonthNumber: 1},
		{ID: "p2", DebtID: "d1", DebtName: "Store Credit", Amount: dec("500"), PaidAmount: dec("0"), DueDate: utc(2025, 3, 5), MonthNumber: 2},
	}))
	require.NoError(t, db.SaveTransaction(model.Transaction{
		ID: "t1", Type: model.Expense, Amount: dec("600"), Date: utc(2025, 1, 3), Used: dec("0"),
	}))

	debt.Paid = dec("500")
	debt.CountedInProgress = true
	awardAt := utc(2025, 1, 10)
	change := ledger.SettlementChange{
		Debt: debt,
		Payment: model.ScheduledPayment{
			ID: "p1", DebtID: "d1", Amount: dec("500"), PaidAmount: dec("500"), Paid: true, MonthNumber: 1,
		},
		RemovedPaymentIDs: []string{"p2"},
		Expense: &model.Transaction{
			ID: "t1", Type: model.Expense, Amount: dec("600"), Used: dec("500"),
		},
		HistoricalDebtsPaid: 5,
		Award:               &ledger.TierAward{Tier: 1, At: awardAt},
	}
	require.NoError(t, db.ApplySettlement(change))

	st, err := db.Load()
	require.NoError(t, err)

	require.Len(t, st.Debts, 1)
	assert.True(t, st.Debts[0].Paid.Equal(dec("500")))
	assert.True(t, st.Debts[0].CountedInProgress)

	require.Len(t, st.Payments, 1)
	assert.Equal(t, "p1", st.Payments[0].ID)
	assert.True(t, st.Payments[0].Paid)

	require.Len(t, st.Transactions, 1)
	assert.True(t, st.Transactions[0].Used.Equal(dec("500")))

	assert.Equal(t, 5, st.HistoricalDebtsPaid)
	require.Contains(t, st.Awards, 1)
	assert.True(t, st.Awards[1].Equal(awardAt))
}

func TestApplySettlementInsertsRolledInstallment(t *testing.T) {
	db := openTestDB(t)
	debt := testDebt("d1")
	require.NoError(t, db.SaveDebt(debt))
	require.NoError(t, db.ReplaceSchedule("d1", []model.ScheduledPayment{
		{ID: "p1", DebtID: "d1", DebtName: "Store Credit", Amount: dec("100"), PaidAmount: dec("0"), DueDate: utc(2025, 2, 5), MonthNumber: 1},
	}))
	require.NoError(t, db.SaveTransaction(model.Transaction{
		ID: "t1", Type: model.Expense, Amount: dec("200"), Date: utc(2025, 1, 3), Used: dec("0"),
	}))

	debt.Paid = dec("100")
	require.NoError(t, db.ApplySettlement(ledger.SettlementChange{
		Debt: debt,
		Payment: model.ScheduledPayment{
			ID: "p1", DebtID: "d1", Amount: dec("100"), PaidAmount: dec("100"), Paid: true, MonthNumber: 1,
		},
		NewPayment: &model.ScheduledPayment{
			ID: "p2", DebtID: "d1", DebtName: "Store Credit", Amount: dec("100"),
			PaidAmount: dec("0"), DueDate: utc(2025, 3, 5), MonthNumber: 2,
		},
		Expense: &model.Transaction{ID: "t1", Used: dec("100")},
	}))

	st, err := db.Load()
	require.NoError(t, err)
	require.Len(t, st.Payments, 2)
}

func TestLoadSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "finmate.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.SaveDebt(testDebt("d1")))
	require.NoError(t, db.SaveGuestID("guest-1"))
	require.NoError(t, db.Close())

	db2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db2.Close() }()

	st, err := db2.Load()
	require.NoError(t, err)
	require.Len(t, st.Debts, 1)
	assert.Equal(t, "guest-1", st.GuestID)
}
