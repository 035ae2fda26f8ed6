// Package cmd implements the finmate CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/finmate/internal/config"
	"github.com/theirongolddev/finmate/internal/ledger"
	"github.com/theirongolddev/finmate/internal/model"
	"github.com/theirongolddev/finmate/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "finmate",
	Short: "Personal debt tracker",
	Long:  "Track your debts, plan cent-exact payment schedules, and grow your financial garden.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	defer closeService()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

var (
	appCfg     config.Config
	appService *ledger.Service
	appDB      *store.DB
)

// openService loads config, opens the database, and builds the service.
// Commands share one instance per process.
func openService() (*ledger.Service, config.Config, error) {
	if appService != nil {
		return appService, appCfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	db, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, cfg, err
	}

	svc, err := ledger.NewService(db)
	if err != nil {
		_ = db.Close()
		return nil, cfg, err
	}

	appCfg = cfg
	appService = svc
	appDB = db
	return svc, cfg, nil
}

func closeService() {
	if appDB != nil {
		_ = appDB.Close()
		appDB = nil
		appService = nil
	}
}

// findDebt resolves a debt by id prefix or case-insensitive name substring.
func findDebt(svc *ledger.Service, key string) (model.Debt, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return model.Debt{}, fmt.Errorf("debt name or id required")
	}

	var matches []model.Debt
	lower := strings.ToLower(key)
	for _, d := range svc.Debts() {
		if strings.HasPrefix(d.ID, key) || strings.Contains(strings.ToLower(d.Name), lower) {
			matches = append(matches, d)
		}
	}

	switch len(matches) {
	case 0:
		return model.Debt{}, fmt.Errorf("no debt matches %q", key)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, d := range matches {
			names[i] = d.Name
		}
		return model.Debt{}, fmt.Errorf("%q is ambiguous: %s", key, strings.Join(names, ", "))
	}
}

// findPayment resolves a scheduled payment by id prefix, or by debt match
// picking its earliest unpaid installment.
func findPayment(svc *ledger.Service, key string) (model.ScheduledPayment, error) {
	for _, p := range svc.ScheduledPayments() {
		if strings.HasPrefix(p.ID, key) {
			return p, nil
		}
	}

	debt, err := findDebt(svc, key)
	if err != nil {
		return model.ScheduledPayment{}, fmt.Errorf("no installment matches %q", key)
	}
	for _, p := range svc.ScheduledPayments() {
		if p.DebtID == debt.ID && !p.Paid {
			return p, nil
		}
	}
	return model.ScheduledPayment{}, fmt.Errorf("%s has no unpaid installments", debt.Name)
}

func currencySymbol() string {
	if appCfg.General.CurrencySymbol != "" {
		return appCfg.General.CurrencySymbol
	}
	return "$"
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
