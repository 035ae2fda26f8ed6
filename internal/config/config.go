package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all finmate configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Ledger     LedgerConfig     `toml:"ledger"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DataDir        string `toml:"data_dir,omitempty"`
}

// LedgerConfig holds debt calculation settings.
type LedgerConfig struct {
	// ProrationPolicy is "exact" or "naive". Exact spreads rounding residue
	// into the first installment so a plan always sums to the pending balance.
	ProrationPolicy string `toml:"proration_policy"`

	// MoraRateBasis is "annual" or "daily", the default for mora simulations.
	MoraRateBasis string `toml:"mora_rate_basis"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencySymbol: "$",
		},
		Ledger: LedgerConfig{
			ProrationPolicy: "exact",
			MoraRateBasis:   "annual",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finmate")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finmate")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns where the database lives: the configured override, or the
// XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finmate")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finmate")
}

// DBPath returns the full path to the ledger database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "finmate.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
