package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/finmate/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to finmate!")
	fmt.Println()

	// 1. Profile
	fmt.Println("  1. Your name (shown on the dashboard)")
	fmt.Print("     > ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)

	fmt.Println()
	fmt.Println("  2. Email (optional, blank to skip)")
	fmt.Print("     > ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	// 2. Currency
	fmt.Println()
	fmt.Println("  3. Currency symbol")
	fmt.Printf("     Current: %s (Enter to keep)\n", cfg.General.CurrencySymbol)
	fmt.Print("     > ")
	symbol, _ := reader.ReadString('\n')
	symbol = strings.TrimSpace(symbol)
	if symbol != "" {
		cfg.General.CurrencySymbol = symbol
	}

	// 3. Theme
	fmt.Println()
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Garden")
	fmt.Println("     (3) Catppuccin Mocha")
	fmt.Println("     (4) Tokyo Night")
	fmt.Println("     (5) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "garden"
	case "3":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "4":
		cfg.Appearance.Theme = "tokyo-night"
	case "5":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save config, then profile
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if name != "" {
		svc, _, err := openService()
		if err != nil {
			return err
		}
		if err := svc.SetProfile(name, email, ""); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `finmate setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
