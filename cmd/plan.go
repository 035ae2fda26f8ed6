package cmd

import (
	"fmt"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/money"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <debt>",
	Short: "Generate a monthly payment schedule",
	Long: "Generate a schedule of monthly installments covering the debt's pending " +
		"balance. Without --months the horizon comes from the due date; with " +
		"--months you choose an accelerated payoff.",
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

var (
	planMonths  int
	planPayment string
)

func init() {
	planCmd.Flags().IntVar(&planMonths, "months", 0, "Number of installments (default: until the due date)")
	planCmd.Flags().StringVar(&planPayment, "payment", "", "Requested monthly payment (naive policy only)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, args []string) error {
	svc, cfg, err := openService()
	if err != nil {
		return err
	}

	debt, err := findDebt(svc, args[0])
	if err != nil {
		return err
	}

	months := planMonths
	if months == 0 {
		months = svc.Stats(debt).RemainingMonths
	}

	payment := decimal.Zero
	if planPayment != "" {
		if payment, err = money.ParseAmount(planPayment); err != nil {
			return fmt.Errorf("--payment: %w", err)
		}
	}

	policy := ledger.ParsePolicy(cfg.Ledger.ProrationPolicy)
	if err := svc.GeneratePlan(debt.ID, payment, months, policy); err != nil {
		return err
	}
	if _, err := svc.TouchStreak(); err != nil {
		return err
	}

	symbol := currencySymbol()
	var rows [][]string
	total := decimal.Zero
	for _, p := range svc.ScheduledPayments() {
		if p.DebtID != debt.ID {
			continue
		}
		total = total.Add(p.Amount)
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.MonthNumber),
			cli.FormatMoney(symbol, p.Amount),
			cli.FormatDate(p.DueDate),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatMoney(symbol, total), ""})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PLAN  %s over %s", debt.Name, cli.FormatMonths(months))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Amount", "Due"},
		Rows:    rows,
	}))
	return nil
}
