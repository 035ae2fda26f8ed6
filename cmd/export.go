package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/finmate/internal/statement"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file.json]",
	Short: "Export the whole ledger as a JSON backup",
	Long: `Export debts, schedules, transactions, garden progress, and profile
as indented JSON. Writes to stdout when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	svc, _, err := openService()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return statement.Export(os.Stdout, svc)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := statement.Export(f, svc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("\n  Exported ledger to %s.\n", args[0])
	return nil
}
