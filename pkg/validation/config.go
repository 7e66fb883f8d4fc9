// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/refi-analyzer/pkg/constants"
	"github.com/iwvelando/refi-analyzer/pkg/mathutil"
)

// ValidateRefinancePrincipal warns when an explicitly configured refinance
// principal differs from the current loan's remaining balance; cash-out or
// cash-in refinances are legitimate but worth flagging.
func ValidateRefinancePrincipal(refiPrincipal, remainingBalance float64) string {
	if refiPrincipal == 0 {
		return ""
	}
	if !mathutil.WithinTolerance(refiPrincipal, remainingBalance, constants.ToleranceForComparison) {
		return fmt.Sprintf("Refinance principal %.2f differs from current remaining balance %.2f - treating as cash-out/cash-in refinance",
			refiPrincipal, remainingBalance)
	}
	return ""
}

// ValidateHorizon warns when the analysis horizon extends past both loans;
// months beyond the longer payoff contribute nothing to the comparison.
func ValidateHorizon(horizonMonths, currentRemainingTerm, refiTerm int) string {
	if horizonMonths > currentRemainingTerm && horizonMonths > refiTerm {
		return fmt.Sprintf("Horizon of %d months extends past both loan payoffs (%d and %d months) - later months add no savings",
			horizonMonths, currentRemainingTerm, refiTerm)
	}
	return ""
}

// ValidateUpfrontCost warns when the effective upfront cost is zero, which
// makes the break-even immediate and the comparison trivially favorable
// whenever savings are positive.
func ValidateUpfrontCost(upfrontCost float64) string {
	if upfrontCost <= 0 {
		return "Effective upfront cost is zero - break-even is immediate and NPV equals the discounted savings"
	}
	return ""
}

// ValidateLTV warns about underwater loans when a home value is configured.
func ValidateLTV(remainingBalance, homeValue float64) string {
	if homeValue <= 0 {
		return ""
	}
	if remainingBalance > homeValue {
		return fmt.Sprintf("Remaining balance %.2f exceeds home value %.2f (LTV %.1f%%) - loan is underwater",
			remainingBalance, homeValue, mathutil.CalculatePercentage(remainingBalance, homeValue))
	}
	return ""
}
