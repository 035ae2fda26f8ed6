package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/finmate/internal/cli"
	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/money"
	"github.com/theirongolddev/finmate/internal/statement"

	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transactions"},
	Short:   "List and manage incomes and expenses",
	RunE:    runTxList,
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Declare an income or expense",
	RunE:  runTxAdd,
}

var txDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxDelete,
}

var txEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction's fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxEdit,
}

var txImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import transactions from a bank statement CSV",
	Long: `Import transactions from a CSV file. The first row must be a header
naming at least date, type, and amount; category and description are optional.
Rows that fail to parse are skipped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runTxImport,
}

var (
	txType     string
	txAmount   string
	txCategory string
	txDate     string
	txDesc     string
)

func init() {
	for _, c := range []*cobra.Command{txAddCmd, txEditCmd} {
		c.Flags().StringVar(&txType, "type", "expense", "Transaction type: income or expense")
		c.Flags().StringVar(&txAmount, "amount", "", "Amount")
		c.Flags().StringVar(&txCategory, "category", "", "Category")
		c.Flags().StringVar(&txDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
		c.Flags().StringVar(&txDesc, "desc", "", "Description")
	}

	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txEditCmd)
	txCmd.AddCommand(txDeleteCmd)
	txCmd.AddCommand(txImportCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxList(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	txs := svc.Transactions()
	if len(txs) == 0 {
		fmt.Println("\n  No transactions. Declare one with `finmate tx add`.")
		return nil
	}

	symbol := currencySymbol()
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		available := "-"
		if t.Type == model.Expense {
			available = cli.FormatMoney(symbol, t.Available())
		}
		rows = append(rows, []string{
			t.ID[:8],
			string(t.Type),
			truncate(t.Category, 18),
			cli.FormatMoney(symbol, t.Amount),
			available,
			cli.FormatDate(t.Date),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Type", "Category", "Amount", "Available", "Date"},
		Rows:    rows,
	}))
	return nil
}

func runTxAdd(_ *cobra.Command, _ []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	var typ model.TransactionType
	switch strings.ToLower(txType) {
	case "income":
		typ = model.Income
	case "expense":
		typ = model.Expense
	default:
		return fmt.Errorf("--type must be income or expense")
	}

	amount, err := money.ParseAmount(txAmount)
	if err != nil {
		return fmt.Errorf("--amount: %w", err)
	}

	var date time.Time
	if txDate != "" {
		if date, err = time.Parse("2006-01-02", txDate); err != nil {
			return fmt.Errorf("--date: use YYYY-MM-DD")
		}
	}

	t, err := svc.AddTransaction(ledger.TxInput{
		Type:        typ,
		Amount:      amount,
		Category:    txCategory,
		Date:        date,
		Description: txDesc,
	})
	if err != nil {
		return err
	}
	if _, err := svc.TouchStreak(); err != nil {
		return err
	}

	fmt.Printf("\n  Declared %s %s (%s).\n",
		string(t.Type), cli.FormatMoney(currencySymbol(), t.Amount), t.Category)
	return nil
}

func runTxEdit(cmd *cobra.Command, args []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	tx, err := findTransaction(svc, args[0])
	if err != nil {
		return err
	}

	var upd ledger.TxUpdate
	if cmd.Flags().Changed("type") {
		var typ model.TransactionType
		switch strings.ToLower(txType) {
		case "income":
			typ = model.Income
		case "expense":
			typ = model.Expense
		default:
			return fmt.Errorf("--type must be income or expense")
		}
		upd.Type = &typ
	}
	if cmd.Flags().Changed("amount") {
		amount, err := money.ParseAmount(txAmount)
		if err != nil {
			return fmt.Errorf("--amount: %w", err)
		}
		upd.Amount = &amount
	}
	if cmd.Flags().Changed("category") {
		upd.Category = &txCategory
	}
	if cmd.Flags().Changed("date") {
		date, err := time.Parse("2006-01-02", txDate)
		if err != nil {
			return fmt.Errorf("--date: use YYYY-MM-DD")
		}
		upd.Date = &date
	}
	if cmd.Flags().Changed("desc") {
		upd.Description = &txDesc
	}

	if err := svc.UpdateTransaction(tx.ID, upd); err != nil {
		return err
	}
	fmt.Printf("\n  Updated %s %s.\n", string(tx.Type), tx.Category)
	return nil
}

func findTransaction(svc *ledger.Service, key string) (model.Transaction, error) {
	for _, t := range svc.Transactions() {
		if strings.HasPrefix(t.ID, key) {
			return t, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("no transaction matches %q", key)
}

func runTxImport(_ *cobra.Command, args []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	res, err := statement.ImportCSV(args[0])
	if err != nil {
		return err
	}

	imported := 0
	for _, in := range res.Rows {
		if _, err := svc.AddTransaction(in); err != nil {
			res.Skipped++
			if res.LineError == "" {
				res.LineError = err.Error()
			}
			continue
		}
		imported++
	}
	if imported > 0 {
		if _, err := svc.TouchStreak(); err != nil {
			return err
		}
	}

	fmt.Printf("\n  Imported %d transaction(s) from %s.\n", imported, args[0])
	if res.Skipped > 0 {
		fmt.Println(cli.WarnStyle.Render(
			fmt.Sprintf("  Skipped %d row(s), first error: %s", res.Skipped, res.LineError)))
	}
	return nil
}

func runTxDelete(_ *cobra.Command, args []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	t, err := findTransaction(svc, args[0])
	if err != nil {
		return err
	}
	if err := svc.DeleteTransaction(t.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted %s %s.\n", string(t.Type), t.Category)
	return nil
}
