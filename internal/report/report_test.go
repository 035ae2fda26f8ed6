package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finmate/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateGroupsByMonth(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.Income, Amount: dec("3000"), Date: day(2025, 1, 5)},
		{Type: model.Expense, Amount: dec("500"), Used: dec("400"), Date: day(2025, 1, 10)},
		{Type: model.Expense, Amount: dec("200"), Date: day(2025, 1, 20)},
		{Type: model.Income, Amount: dec("3000"), Date: day(2025, 3, 5)},
	}

	months := Aggregate(txs)
	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}

	jan := months[0]
	if !jan.Month.Equal(day(2025, 1, 1)) {
		t.Errorf("first month = %v", jan.Month)
	}
	if !jan.Income.Equal(dec("3000")) {
		t.Errorf("income = %s", jan.Income)
	}
	if !jan.Expenses.Equal(dec("700")) {
		t.Errorf("expenses = %s", jan.Expenses)
	}
	if !jan.DebtPayments.Equal(dec("400")) {
		t.Errorf("debt payments = %s", jan.DebtPayments)
	}
	if !jan.Net.Equal(dec("2300")) {
		t.Errorf("net = %s", jan.Net)
	}

	mar := months[1]
	if !mar.Month.Equal(day(2025, 3, 1)) {
		t.Errorf("second month = %v, want March", mar.Month)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Fatalf("got %d months, want none", len(got))
	}
}

func TestUpcomingLoad(t *testing.T) {
	pays := []model.ScheduledPayment{
		{Amount: dec("100"), PaidAmount: dec("0"), DueDate: day(2025, 2, 15)},
		{Amount: dec("100"), PaidAmount: dec("40"), DueDate: day(2025, 2, 20)},
		{Amount: dec("300"), PaidAmount: dec("0"), DueDate: day(2025, 4, 15)},
		{Amount: dec("999"), PaidAmount: dec("999"), Paid: true, DueDate: day(2025, 3, 15)},
		{Amount: dec("50"), PaidAmount: dec("0"), DueDate: day(2026, 1, 15)}, // beyond the window
	}

	series := UpcomingLoad(pays, day(2025, 2, 1), 3)
	if len(series) != 3 {
		t.Fatalf("len = %d, want 3", len(series))
	}
	if series[0] != 160 {
		t.Errorf("feb = %v, want 160", series[0])
	}
	if series[1] != 0 {
		t.Errorf("mar = %v, paid installments should not count", series[1])
	}
	if series[2] != 300 {
		t.Errorf("apr = %v, want 300", series[2])
	}
}

func TestTotalsByCategory(t *testing.T) {
	txs := []model.Transaction{
		{Type: model.Expense, Amount: dec("500"), Category: "Debt payments", Date: day(2025, 1, 1)},
		{Type: model.Expense, Amount: dec("120"), Category: "Groceries", Date: day(2025, 1, 2)},
		{Type: model.Expense, Amount: dec("80"), Category: "Groceries", Date: day(2025, 1, 9)},
		{Type: model.Income, Amount: dec("9999"), Category: "Salary", Date: day(2025, 1, 1)},
	}

	totals := TotalsByCategory(txs)
	if len(totals) != 2 {
		t.Fatalf("got %d categories, want 2", len(totals))
	}
	if totals[0].Category != "Debt payments" || !totals[0].Amount.Equal(dec("500")) {
		t.Errorf("first = %+v", totals[0])
	}
	if totals[1].Category != "Groceries" || !totals[1].Amount.Equal(dec("200")) {
		t.Errorf("second = %+v", totals[1])
	}
}
