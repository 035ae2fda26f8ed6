package cmd

import (
	"fmt"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/garden"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Debt overview with payoff progress",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	debts := svc.Debts()
	if len(debts) == 0 {
		fmt.Println("\n  No debts tracked yet.")
		fmt.Println("  Add one with `finmate debts add`.")
		return nil
	}

	symbol := currencySymbol()

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINMATE  Debt Overview"))
	fmt.Println()

	totalOwed := decimal.Zero
	totalPaid := decimal.Zero
	rows := make([][]string, 0, len(debts))
	for _, d := range debts {
		totalOwed = totalOwed.Add(d.Remaining())
		totalPaid = totalPaid.Add(d.Paid)

		stats := svc.Stats(d)
		status := cli.FormatPercent(d.PercentPaid())
		if d.FullyPaid() {
			status = "paid ✓"
		}

		rows = append(rows, []string{
			truncate(d.Name, 20),
			cli.FormatMoney(symbol, d.Remaining()),
			cli.FormatMoney(symbol, stats.MonthlyPayment.Round(2)),
			cli.FormatMonths(stats.RemainingMonths),
			cli.FormatDate(d.DueDate),
			status,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatMoney(symbol, totalOwed),
		"", "", "",
		cli.FormatMoney(symbol, totalPaid) + " paid",
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Debt", "Pending", "Monthly", "Horizon", "Due", "Progress"},
		Rows:    rows,
	}))

	if flagQuiet {
		return nil
	}

	state := svc.Garden()
	streak := svc.StreakSnapshot()

	fmt.Println()
	if state.Current != nil {
		fmt.Printf("  Garden: %s %s at stage %s (%d debts paid in total)\n",
			state.Current.Icon, state.Current.Name,
			garden.StageNames[state.Current.Stage], state.HistoricalDebtsPaid)
	} else if len(state.Completed) > 0 {
		fmt.Printf("  Garden: %d plants bloomed. A %s seed awaits your next payoff.\n",
			len(state.Completed), garden.NextSeed(state.HistoricalDebtsPaid))
	}
	if streak.Current > 0 {
		fmt.Printf("  Streak: %d days (best %d)\n", streak.Current, streak.Longest)
	}
	fmt.Println()

	return nil
}
