package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/money"

	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay <debt or installment>",
	Short: "Settle cash against a scheduled installment",
	Long: "Apply a cash payment to an installment, funded from a declared expense. " +
		"The debt's paid total rises by the same amount; paying a debt off " +
		"grows your garden.",
	Args: cobra.ExactArgs(1),
	RunE: runPay,
}

var (
	payAmount string
	payFrom   string
)

func init() {
	payCmd.Flags().StringVar(&payAmount, "amount", "", "Cash to apply (default: the installment's remaining amount)")
	payCmd.Flags().StringVar(&payFrom, "from", "", "Expense to fund the payment from (id prefix or category)")
	_ = payCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	payment, err := findPayment(svc, args[0])
	if err != nil {
		return err
	}

	cash := payment.RemainingAmount()
	if payAmount != "" {
		if cash, err = money.ParseAmount(payAmount); err != nil {
			return fmt.Errorf("--amount: %w", err)
		}
	}

	expenseID := ""
	lower := strings.ToLower(payFrom)
	for _, e := range svc.OpenExpenses() {
		if strings.HasPrefix(e.ID, payFrom) || strings.Contains(strings.ToLower(e.Category), lower) {
			expenseID = e.ID
			break
		}
	}
	if expenseID == "" {
		return fmt.Errorf("no open expense matches %q", payFrom)
	}

	res, err := svc.Settle(payment.ID, cash, expenseID)
	if err != nil {
		return err
	}
	if _, err := svc.TouchStreak(); err != nil {
		return err
	}

	symbol := currencySymbol()
	fmt.Printf("\n  Applied %s to %s (month %d).\n",
		cli.FormatMoney(symbol, res.Applied), payment.DebtName, payment.MonthNumber)

	if res.InstallmentPaid && !res.DebtRetired {
		fmt.Println("  Installment settled.")
	}
	if res.DebtRetired {
		fmt.Printf("  %s is fully paid! 🎉\n", payment.DebtName)
	}
	if res.TierCompleted != nil {
		fmt.Printf("  Your %s bloomed %s  Next seed: %s.\n",
			res.TierCompleted.Name, res.TierCompleted.Icon, res.NextSeed)
	}

	if !flagQuiet {
		streak := svc.StreakSnapshot()
		if streak.Current > 1 {
			fmt.Printf("  🔥 %d day streak.\n", streak.Current)
		}
	}
	return nil
}
