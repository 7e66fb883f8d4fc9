// Package adapters converts configuration structures into the engine's value
// types, handling percent-to-fraction conversion and the derivation of the
// current loan's forward-looking position.
package adapters

import (
	"github.com/iwvelando/refi-analyzer/internal/config"
	"github.com/iwvelando/refi-analyzer/pkg/amortization"
	"github.com/iwvelando/refi-analyzer/pkg/mathutil"
	"github.com/iwvelando/refi-analyzer/pkg/refinance"
)

// CurrentLoanTerms derives the forward-looking terms of the current loan: its
// remaining balance becomes the principal and its remaining months the term,
// so the schedule runs from today rather than origination.
func CurrentLoanTerms(loan config.CurrentLoan) (amortization.LoanTerms, error) {
	rate := mathutil.PercentToFraction(loan.InterestRate)
	remaining, err := amortization.RemainingBalance(loan.Principal, rate, loan.Term, loan.PaymentsMade)
	if err != nil {
		return amortization.LoanTerms{}, err
	}

	terms := amortization.LoanTerms{
		Name:         loan.Name,
		Principal:    remaining,
		AnnualRate:   rate,
		TermMonths:   loan.Term - loan.PaymentsMade,
		MonthlyPMI:   loan.MonthlyPMI,
		PMICutoffLTV: mathutil.PercentToFraction(loan.PMICutoffLTV),
	}
	return terms, terms.Validate()
}

// RefinanceLoanTerms converts a refinance offer, defaulting its principal to
// the current remaining balance and folding points, credits, and closing
// costs into the effective upfront cost.
func RefinanceLoanTerms(offer config.RefinanceOffer, currentRemaining float64) (amortization.LoanTerms, error) {
	principal := offer.Principal
	if principal == 0 {
		principal = currentRemaining
	}

	terms := amortization.LoanTerms{
		Name:           offer.Name,
		Principal:      principal,
		AnnualRate:     mathutil.PercentToFraction(offer.InterestRate),
		TermMonths:     offer.Term,
		MonthlyPMI:     offer.MonthlyPMI,
		PMICutoffLTV:   mathutil.PercentToFraction(offer.PMICutoffLTV),
		UpfrontCost:    refinance.EffectiveUpfrontCost(principal, offer.PointsPercent, offer.LenderCredits, offer.ClosingCosts),
		ExtraPrincipal: offer.ExtraPrincipal,
	}
	return terms, terms.Validate()
}
