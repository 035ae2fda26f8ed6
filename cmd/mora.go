package cmd

import (
	"fmt"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var moraCmd = &cobra.Command{
	Use:   "mora <debt>",
	Short: "Simulate late-payment fees",
	Long: "Project the late fee that accrues on a debt's pending balance after a " +
		"number of days in arrears. Advisory only: the result is never applied " +
		"to the debt.",
	Args: cobra.ExactArgs(1),
	RunE: runMora,
}

var (
	moraDays     int
	moraRate     string
	moraDaily    bool
	moraCompound bool
)

func init() {
	moraCmd.Flags().IntVar(&moraDays, "days", 30, "Days late")
	moraCmd.Flags().StringVar(&moraRate, "rate", "", "Late-fee rate, percent (default: the debt's rate)")
	moraCmd.Flags().BoolVar(&moraDaily, "daily", false, "Treat the rate as daily instead of annual")
	moraCmd.Flags().BoolVar(&moraCompound, "compound", false, "Compound the fee daily")
	rootCmd.AddCommand(moraCmd)
}

func runMora(_ *cobra.Command, args []string) error {
	svc, cfg, err := openService()
	if err != nil {
		return err
	}

	debt, err := findDebt(svc, args[0])
	if err != nil {
		return err
	}

	rate := debt.Rate
	if moraRate != "" {
		if rate, err = decimal.NewFromString(moraRate); err != nil {
			return fmt.Errorf("--rate: %w", err)
		}
	}

	basis := ledger.BasisAnnual
	if moraDaily || cfg.Ledger.MoraRateBasis == string(ledger.BasisDaily) {
		basis = ledger.BasisDaily
	}

	res, err := ledger.SimulateMora(debt.Remaining(), rate, basis, moraDays, moraCompound)
	if err != nil {
		return err
	}

	mode := "simple"
	if moraCompound {
		mode = "compound"
	}

	symbol := currencySymbol()
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MORA  %s, %d days late", debt.Name, moraDays)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Pending balance", cli.FormatMoney(symbol, debt.Remaining())},
			{"Rate", fmt.Sprintf("%s%% (%s, %s)", rate.String(), basis, mode)},
			{"Late fee", cli.FormatMoney(symbol, res.Fee)},
			{"New total", cli.FormatMoney(symbol, res.NewTotal)},
		},
	}))
	return nil
}
