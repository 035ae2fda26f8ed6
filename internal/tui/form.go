package tui

import (
	"fmt"
	"time"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/money"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

type debtFormVals struct {
	name   string
	amount string
	rate   string
	due    string
	notes  string
}

type settleFormVals struct {
	paymentID string
	amount    string
	expenseID string
}

func validAmount(s string) error {
	d, err := money.ParseAmount(s)
	if err != nil {
		return fmt.Errorf("not a valid amount")
	}
	if !d.IsPositive() {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validRate(s string) error {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a valid rate")
	}
	if d.IsNegative() {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}

func validDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func (a App) openAddDebtForm() (tea.Model, tea.Cmd) {
	a.debtVals = &debtFormVals{}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Credit card").
				Value(&a.debtVals.name),
			huh.NewInput().
				Title("Total amount").
				Placeholder("1200.00").
				Validate(validAmount).
				Value(&a.debtVals.amount),
			huh.NewInput().
				Title("Annual rate % (blank for none)").
				Validate(validRate).
				Value(&a.debtVals.rate),
			huh.NewInput().
				Title("Due date").
				Placeholder("2026-06-15").
				Validate(validDate).
				Value(&a.debtVals.due),
			huh.NewInput().
				Title("Notes").
				Value(&a.debtVals.notes),
		),
	)
	a.formKind = formAddDebt
	return a, a.form.Init()
}

func (a *App) submitAddDebt() {
	amount, err := money.ParseAmount(a.debtVals.amount)
	if err != nil {
		a.status = "invalid amount"
		a.statusWarn = true
		return
	}
	rate := decimal.Zero
	if a.debtVals.rate != "" {
		if rate, err = decimal.NewFromString(a.debtVals.rate); err != nil {
			a.status = "invalid rate"
			a.statusWarn = true
			return
		}
	}
	due, err := time.Parse("2006-01-02", a.debtVals.due)
	if err != nil {
		a.status = "invalid due date"
		a.statusWarn = true
		return
	}

	d, err := a.svc.AddDebt(ledger.DebtInput{
		Name:    a.debtVals.name,
		Amount:  amount,
		Rate:    rate,
		DueDate: due,
		Notes:   a.debtVals.notes,
	})
	if err != nil {
		a.status = err.Error()
		a.statusWarn = true
		return
	}

	if _, err := a.svc.TouchStreak(); err != nil {
		a.status = err.Error()
		a.statusWarn = true
		return
	}

	a.status = fmt.Sprintf("Added %s (%s)", d.Name, cli.FormatMoney(a.symbol, d.Amount))
	a.statusWarn = false
}

func (a App) openSettleForm() (tea.Model, tea.Cmd) {
	pays := a.svc.ScheduledPayments()
	if a.selPay >= len(pays) {
		return a, nil
	}
	pay := pays[a.selPay]
	if pay.Paid {
		a.status = "installment already settled"
		a.statusWarn = true
		return a, nil
	}

	expenses := a.svc.OpenExpenses()
	if len(expenses) == 0 {
		a.status = "no expense with available balance; declare one first"
		a.statusWarn = true
		return a, nil
	}

	opts := make([]huh.Option[string], 0, len(expenses))
	for _, e := range expenses {
		label := fmt.Sprintf("%s (%s available)", e.Category, cli.FormatMoney(a.symbol, e.Available()))
		opts = append(opts, huh.NewOption(label, e.ID))
	}

	a.settleVals = &settleFormVals{
		paymentID: pay.ID,
		amount:    pay.RemainingAmount().StringFixed(2),
	}

	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Pay toward %s (installment %s)",
					pay.DebtName, cli.FormatMoney(a.symbol, pay.Amount))).
				Validate(validAmount).
				Value(&a.settleVals.amount),
			huh.NewSelect[string]().
				Title("Funded from").
				Options(opts...).
				Value(&a.settleVals.expenseID),
		),
	)
	a.formKind = formSettle
	return a, a.form.Init()
}

func (a *App) submitSettle() {
	cash, err := money.ParseAmount(a.settleVals.amount)
	if err != nil {
		a.status = "invalid amount"
		a.statusWarn = true
		return
	}

	res, err := a.svc.Settle(a.settleVals.paymentID, cash, a.settleVals.expenseID)
	if err != nil {
		a.status = err.Error()
		a.statusWarn = true
		return
	}
	if _, err := a.svc.TouchStreak(); err != nil {
		a.status = err.Error()
		a.statusWarn = true
		return
	}

	switch {
	case res.TierCompleted != nil:
		a.status = fmt.Sprintf("Applied %s. Your %s bloomed! %s Next seed: %s",
			cli.FormatMoney(a.symbol, res.Applied),
			res.TierCompleted.Name, res.TierCompleted.Icon, res.NextSeed)
	case res.DebtRetired:
		a.status = fmt.Sprintf("Applied %s. Debt fully paid! 🎉", cli.FormatMoney(a.symbol, res.Applied))
	case res.InstallmentPaid:
		a.status = fmt.Sprintf("Applied %s. Installment settled.", cli.FormatMoney(a.symbol, res.Applied))
	default:
		a.status = fmt.Sprintf("Applied %s.", cli.FormatMoney(a.symbol, res.Applied))
	}
	a.statusWarn = false
}
