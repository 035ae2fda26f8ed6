package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, want $", cfg.General.CurrencySymbol)
	}
	if cfg.Ledger.ProrationPolicy != "exact" {
		t.Errorf("ProrationPolicy = %q, want exact", cfg.Ledger.ProrationPolicy)
	}
	if cfg.Ledger.MoraRateBasis != "annual" {
		t.Errorf("MoraRateBasis = %q, want annual", cfg.Ledger.MoraRateBasis)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "€"
	cfg.Ledger.ProrationPolicy = "naive"
	cfg.Appearance.Theme = "flexoki-light"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.CurrencySymbol != "€" {
		t.Errorf("CurrencySymbol = %q, want €", got.General.CurrencySymbol)
	}
	if got.Ledger.ProrationPolicy != "naive" {
		t.Errorf("ProrationPolicy = %q, want naive", got.Ledger.ProrationPolicy)
	}
	if got.Appearance.Theme != "flexoki-light" {
		t.Errorf("Theme = %q", got.Appearance.Theme)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "finmate", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"flexoki-light\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-light" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Ledger.ProrationPolicy != "exact" {
		t.Errorf("ProrationPolicy = %q, unset sections should keep defaults", cfg.Ledger.ProrationPolicy)
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "finmate") {
		t.Errorf("DataDir = %q", got)
	}

	cfg.General.DataDir = "/opt/finmate-data"
	if got := DataDir(cfg); got != "/opt/finmate-data" {
		t.Errorf("DataDir override = %q", got)
	}
	if got := DBPath(cfg); got != filepath.Join("/opt/finmate-data", "finmate.db") {
		t.Errorf("DBPath = %q", got)
	}
}
