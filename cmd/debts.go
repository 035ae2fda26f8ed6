package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/money"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "List and manage debts",
	RunE:  runDebtsList,
}

var debtsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new debt",
	RunE:  runDebtsAdd,
}

var debtsEditCmd = &cobra.Command{
	Use:   "edit <debt>",
	Short: "Edit a debt's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsEdit,
}

var debtsDeleteCmd = &cobra.Command{
	Use:   "delete <debt>",
	Short: "Delete a debt and its schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsDelete,
}

var (
	debtName   string
	debtAmount string
	debtRate   string
	debtDue    string
	debtCutoff int
	debtNotes  string
)

func init() {
	for _, c := range []*cobra.Command{debtsAddCmd, debtsEditCmd} {
		c.Flags().StringVar(&debtName, "name", "", "Debt name")
		c.Flags().StringVar(&debtAmount, "amount", "", "Total amount owed")
		c.Flags().StringVar(&debtRate, "rate", "", "Annual interest rate, percent")
		c.Flags().StringVar(&debtDue, "due", "", "Due date (YYYY-MM-DD)")
		c.Flags().IntVar(&debtCutoff, "cutoff-day", 0, "Day of month installments fall due (1-31)")
		c.Flags().StringVar(&debtNotes, "notes", "", "Free-form notes")
	}

	debtsCmd.AddCommand(debtsAddCmd)
	debtsCmd.AddCommand(debtsEditCmd)
	debtsCmd.AddCommand(debtsDeleteCmd)
	rootCmd.AddCommand(debtsCmd)
}

func runDebtsList(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	debts := svc.Debts()
	if len(debts) == 0 {
		fmt.Println("\n  No debts tracked yet. Add one with `finmate debts add`.")
		return nil
	}

	symbol := currencySymbol()
	rows := make([][]string, 0, len(debts))
	for _, d := range debts {
		status := cli.FormatPercent(d.PercentPaid())
		if d.FullyPaid() {
			status = "paid ✓"
		}
		rows = append(rows, []string{
			d.ID[:8],
			truncate(d.Name, 22),
			cli.FormatMoney(symbol, d.Amount),
			cli.FormatMoney(symbol, d.Paid),
			cli.FormatDate(d.DueDate),
			status,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Amount", "Paid", "Due", "Progress"},
		Rows:    rows,
	}))
	return nil
}

func runDebtsAdd(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	amount, err := money.ParseAmount(debtAmount)
	if err != nil {
		return fmt.Errorf("--amount: %w", err)
	}
	rate := decimal.Zero
	if debtRate != "" {
		if rate, err = decimal.NewFromString(debtRate); err != nil {
			return fmt.Errorf("--rate: %w", err)
		}
	}
	due, err := time.Parse("2006-01-02", debtDue)
	if err != nil {
		return fmt.Errorf("--due: use YYYY-MM-DD")
	}

	d, err := svc.AddDebt(ledger.DebtInput{
		Name:      debtName,
		Amount:    amount,
		Rate:      rate,
		DueDate:   due,
		CutoffDay: debtCutoff,
		Notes:     debtNotes,
	})
	if err != nil {
		return err
	}
	if _, err := svc.TouchStreak(); err != nil {
		return err
	}

	stats := svc.Stats(d)
	symbol := currencySymbol()
	fmt.Printf("\n  Added %s: %s pending, suggested %s/mo over %s.\n",
		d.Name,
		cli.FormatMoney(symbol, d.Remaining()),
		cli.FormatMoney(symbol, stats.MonthlyPayment.Round(2)),
		cli.FormatMonths(stats.RemainingMonths),
	)
	return nil
}

func runDebtsEdit(cmd *cobra.Command, args []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	debt, err := findDebt(svc, args[0])
	if err != nil {
		return err
	}

	var upd ledger.DebtUpdate
	if cmd.Flags().Changed("name") {
		upd.Name = &debtName
	}
	if cmd.Flags().Changed("amount") {
		amount, err := money.ParseAmount(debtAmount)
		if err != nil {
			return fmt.Errorf("--amount: %w", err)
		}
		upd.Amount = &amount
	}
	if cmd.Flags().Changed("rate") {
		rate, err := decimal.NewFromString(debtRate)
		if err != nil {
			return fmt.Errorf("--rate: %w", err)
		}
		upd.Rate = &rate
	}
	if cmd.Flags().Changed("due") {
		due, err := time.Parse("2006-01-02", debtDue)
		if err != nil {
			return fmt.Errorf("--due: use YYYY-MM-DD")
		}
		upd.DueDate = &due
	}
	if cmd.Flags().Changed("cutoff-day") {
		upd.CutoffDay = &debtCutoff
	}
	if cmd.Flags().Changed("notes") {
		upd.Notes = &debtNotes
	}

	if err := svc.UpdateDebt(debt.ID, upd); err != nil {
		return err
	}
	fmt.Printf("\n  Updated %s.\n", debt.Name)
	return nil
}

func runDebtsDelete(_ *cobra.Command, args []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	debt, err := findDebt(svc, args[0])
	if err != nil {
		return err
	}
	if err := svc.DeleteDebt(debt.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted %s and its schedule. Garden history is kept.\n", debt.Name)
	return nil
}
