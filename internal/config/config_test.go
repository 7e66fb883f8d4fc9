package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `---
currentLoan:
  name: existing mortgage
  principal: 300000.00
  interestRate: 6.5
  term: 360
  paymentsMade: 0
  monthlyPMI: 0.00

refinance:
  name: 5.5% offer
  principal: 0
  interestRate: 5.5
  term: 360
  closingCosts: 6000.00

analysis:
  homeValue: 450000.00
  horizonMonths: 60
  discountRate: 3.0
  startDate: "2026-09"

logging:
  level: debug
  format: console

output:
  format: csv
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeTempConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.CurrentLoan.Name != "existing mortgage" {
		t.Errorf("CurrentLoan.Name = %q", conf.CurrentLoan.Name)
	}
	if conf.CurrentLoan.Principal != 300000 {
		t.Errorf("CurrentLoan.Principal = %v, expected 300000", conf.CurrentLoan.Principal)
	}
	if conf.CurrentLoan.InterestRate != 6.5 {
		t.Errorf("CurrentLoan.InterestRate = %v, expected 6.5", conf.CurrentLoan.InterestRate)
	}
	if conf.Refinance.Term != 360 {
		t.Errorf("Refinance.Term = %v, expected 360", conf.Refinance.Term)
	}
	if conf.Refinance.ClosingCosts != 6000 {
		t.Errorf("Refinance.ClosingCosts = %v, expected 6000", conf.Refinance.ClosingCosts)
	}
	if conf.Analysis.HorizonMonths != 60 {
		t.Errorf("Analysis.HorizonMonths = %v, expected 60", conf.Analysis.HorizonMonths)
	}
	if conf.Analysis.StartDate != "2026-09" {
		t.Errorf("Analysis.StartDate = %q, expected 2026-09", conf.Analysis.StartDate)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadConfiguration() with missing file expected error")
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf, err := LoadConfiguration(writeTempConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("ValidateConfiguration() = %v, expected no warnings", warnings)
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	conf, err := LoadConfiguration(writeTempConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	conf.Refinance.Principal = 350000 // cash-out
	conf.Refinance.ClosingCosts = 0
	conf.Analysis.HorizonMonths = 400

	warnings := conf.ValidateConfiguration()
	if len(warnings) != 3 {
		t.Fatalf("ValidateConfiguration() returned %d warnings, expected 3: %v", len(warnings), warnings)
	}

	joined := strings.Join(warnings, "\n")
	for _, fragment := range []string{"cash-out", "Horizon", "upfront cost is zero"} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("ValidateConfiguration() warnings missing %q: %v", fragment, warnings)
		}
	}
}
