package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Monthly cash flow and upcoming payment load",
	RunE:  runReport,
}

var reportMonths int

func init() {
	reportCmd.Flags().IntVar(&reportMonths, "months", 6, "Months of upcoming load to chart")
	rootCmd.AddCommand(reportCmd)
}

func cashFlowRows(stats []report.MonthlyStats, symbol string) [][]string {
	rows := make([][]string, 0, len(stats))
	for _, m := range stats {
		rows = append(rows, []string{
			m.Month.Format("Jan 2006"),
			cli.FormatMoney(symbol, m.Income),
			cli.FormatMoney(symbol, m.Expenses),
			cli.FormatMoney(symbol, m.DebtPayments),
			cli.FormatMoney(symbol, m.Net),
		})
	}
	return rows
}

func runReport(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	symbol := currencySymbol()
	stats := report.Aggregate(svc.Transactions())

	fmt.Println()
	fmt.Println(cli.RenderTitle("Cash flow by month"))
	if len(stats) == 0 {
		fmt.Println("  No transactions yet.")
	} else {
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Income", "Expenses", "Debt payments", "Net"},
			Rows:    cashFlowRows(stats, symbol),
		}))
	}

	load := report.UpcomingLoad(svc.ScheduledPayments(), time.Now(), reportMonths)
	total := 0.0
	for _, v := range load {
		total += v
	}
	if total > 0 {
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("Upcoming installment load, next %d months", reportMonths)))
		fmt.Printf("  %s\n", cli.RenderSparkline(load))
	}

	byCat := report.TotalsByCategory(svc.Transactions())
	if len(byCat) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderTitle("Spending by category"))
		for _, c := range byCat {
			fmt.Printf("  %-20s %s\n", truncate(c.Category, 20), cli.FormatMoney(symbol, c.Amount))
		}
	}
	fmt.Println()
	return nil
}
