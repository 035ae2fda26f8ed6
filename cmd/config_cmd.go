package cmd

import (
	"fmt"

	"github.com/theirongolddev/finmate/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Database:        %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Ledger]")
	fmt.Printf("    Proration policy: %s\n", cfg.Ledger.ProrationPolicy)
	fmt.Printf("    Mora rate basis:  %s\n", cfg.Ledger.MoraRateBasis)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `finmate setup` to reconfigure.")
	return nil
}
