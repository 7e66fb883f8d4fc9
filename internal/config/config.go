// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/refi-analyzer/pkg/amortization"
	"github.com/iwvelando/refi-analyzer/pkg/constants"
	"github.com/iwvelando/refi-analyzer/pkg/mathutil"
	"github.com/iwvelando/refi-analyzer/pkg/refinance"
	"github.com/iwvelando/refi-analyzer/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for refi-analyzer.
type Configuration struct {
	CurrentLoan CurrentLoan
	Refinance   RefinanceOffer
	Analysis    Analysis
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Analysis holds the comparison horizon and discounting parameters.
type Analysis struct {
	HomeValue     float64
	HorizonMonths int
	DiscountRate  float64 // percent APR, e.g. 5.0
	StartDate     string  // optional YYYY-MM label for schedule rows
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings for suspicious but computable inputs. Hard precondition
// violations are reported as errors by the engine at computation time, not
// here.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	remaining, err := amortization.RemainingBalance(
		c.CurrentLoan.Principal,
		mathutil.PercentToFraction(c.CurrentLoan.InterestRate),
		c.CurrentLoan.Term,
		c.CurrentLoan.PaymentsMade,
	)
	if err == nil {
		if warning := validation.ValidateRefinancePrincipal(c.Refinance.Principal, remaining); warning != "" {
			warnings = append(warnings, warning)
		}
		if warning := validation.ValidateLTV(remaining, c.Analysis.HomeValue); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	remainingTerm := c.CurrentLoan.Term - c.CurrentLoan.PaymentsMade
	if warning := validation.ValidateHorizon(c.Analysis.HorizonMonths, remainingTerm, c.Refinance.Term); warning != "" {
		warnings = append(warnings, warning)
	}

	principal := c.Refinance.Principal
	if principal == 0 {
		principal = remaining
	}
	upfront := refinance.EffectiveUpfrontCost(principal, c.Refinance.PointsPercent,
		c.Refinance.LenderCredits, c.Refinance.ClosingCosts)
	if warning := validation.ValidateUpfrontCost(upfront); warning != "" {
		warnings = append(warnings, warning)
	}

	return warnings
}
