package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Issuer.CompanyName != "SM Enterprises" {
		t.Errorf("CompanyName = %q", cfg.Issuer.CompanyName)
	}
	if cfg.Export.DefaultTitle != "Quotation for Home Theatre 7.1.4" {
		t.Errorf("DefaultTitle = %q", cfg.Export.DefaultTitle)
	}
	if cfg.Export.SettleDelayMs != 500 {
		t.Errorf("SettleDelayMs = %d, want 500", cfg.Export.SettleDelayMs)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `
issuer:
  companyname: "SRC Enterprises"
export:
  settledelayms: 250
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Issuer.CompanyName != "SRC Enterprises" {
		t.Errorf("CompanyName = %q, want file override", cfg.Issuer.CompanyName)
	}
	if cfg.Export.SettleDelayMs != 250 {
		t.Errorf("SettleDelayMs = %d, want 250", cfg.Export.SettleDelayMs)
	}
	// Untouched keys keep their defaults.
	if len(cfg.Issuer.ContactNumbers) != 2 {
		t.Errorf("ContactNumbers = %v", cfg.Issuer.ContactNumbers)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("QUOTATION_ISSUER_COMPANYNAME", "Env Enterprises")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Issuer.CompanyName != "Env Enterprises" {
		t.Errorf("CompanyName = %q, want env override", cfg.Issuer.CompanyName)
	}
}
