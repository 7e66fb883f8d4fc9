// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
	"testing"

	"github.com/iwvelando/refi-analyzer/pkg/amortization"
)

// SampleCurrentLoan returns a 30-year 6.5% loan used across test packages.
func SampleCurrentLoan() amortization.LoanTerms {
	return amortization.LoanTerms{
		Name:       "current",
		Principal:  300000,
		AnnualRate: 0.065,
		TermMonths: 360,
	}
}

// SampleRefinance returns a 30-year 5.5% offer with $6000 closing costs.
func SampleRefinance() amortization.LoanTerms {
	return amortization.LoanTerms{
		Name:        "refinance",
		Principal:   300000,
		AnnualRate:  0.055,
		TermMonths:  360,
		UpfrontCost: 6000,
	}
}

// AssertInDelta fails the test when got differs from want by more than delta.
func AssertInDelta(t *testing.T, label string, got, want, delta float64) {
	t.Helper()
	if math.Abs(got-want) > delta {
		t.Errorf("%s = %.4f, expected %.4f (±%.4f)", label, got, want, delta)
	}
}
