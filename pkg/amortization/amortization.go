// Package amortization implements level-payment loan math: fixed monthly
// payment calculation, month-by-month amortization schedules, and the
// closed-form remaining balance of a partially paid loan.
//
// All rates are fractional annual rates (0.065 for 6.5% APR) and all amounts
// keep full floating precision; rounding to currency precision happens only
// at the presentation boundary.
package amortization

import (
	"fmt"
	"math"

	"github.com/iwvelando/refi-analyzer/pkg/constants"
)

// LoanTerms describes a fully amortizing fixed-rate loan. Values are
// immutable once constructed; every computation derives fresh results from
// them.
type LoanTerms struct {
	Name       string
	Principal  float64
	AnnualRate float64 // fraction, e.g. 0.065
	TermMonths int

	// MonthlyPMI is a flat monthly mortgage-insurance amount. When
	// PMICutoffLTV is set (fraction of the original principal), PMI stops in
	// the first month whose ending balance drops to or below the cutoff.
	MonthlyPMI   float64
	PMICutoffLTV float64

	// UpfrontCost is the closing cost paid at month zero; only meaningful for
	// a refinance offer.
	UpfrontCost float64

	// ExtraPrincipal is an optional additional principal payment applied every
	// month, which shortens the schedule.
	ExtraPrincipal float64
}

// Row is one month of an amortization schedule. Balance is the remaining
// principal after the month's payment.
type Row struct {
	Month     int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// InvalidInputError reports a precondition violation on a calculation input.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %g: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the loan terms against the engine's preconditions.
func (t LoanTerms) Validate() error {
	if t.Principal <= 0 {
		return &InvalidInputError{Field: "principal", Value: t.Principal, Reason: "must be positive"}
	}
	if t.TermMonths <= 0 {
		return &InvalidInputError{Field: "termMonths", Value: float64(t.TermMonths), Reason: "must be positive"}
	}
	if t.AnnualRate < 0 {
		return &InvalidInputError{Field: "annualRate", Value: t.AnnualRate, Reason: "must not be negative"}
	}
	if t.MonthlyPMI < 0 {
		return &InvalidInputError{Field: "monthlyPMI", Value: t.MonthlyPMI, Reason: "must not be negative"}
	}
	if t.UpfrontCost < 0 {
		return &InvalidInputError{Field: "upfrontCost", Value: t.UpfrontCost, Reason: "must not be negative"}
	}
	if t.ExtraPrincipal < 0 {
		return &InvalidInputError{Field: "extraPrincipal", Value: t.ExtraPrincipal, Reason: "must not be negative"}
	}
	return nil
}

// MonthlyPayment calculates the fixed monthly principal-and-interest payment
// using the standard level-payment formula. A zero rate degenerates to
// straight-line principal repayment.
func MonthlyPayment(principal, annualRate float64, termMonths int) (float64, error) {
	if principal <= 0 {
		return 0, &InvalidInputError{Field: "principal", Value: principal, Reason: "must be positive"}
	}
	if termMonths <= 0 {
		return 0, &InvalidInputError{Field: "termMonths", Value: float64(termMonths), Reason: "must be positive"}
	}
	if annualRate < 0 {
		return 0, &InvalidInputError{Field: "annualRate", Value: annualRate, Reason: "must not be negative"}
	}

	if annualRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths), nil
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1.00+monthlyRate, float64(termMonths))
	return principal * monthlyRate * power / (power - 1.00), nil
}

// InterestPayment calculates the interest portion of one payment.
func InterestPayment(remainingBalance, annualRate float64) float64 {
	return remainingBalance * annualRate / constants.MonthsPerYear
}

// Schedule generates the full amortization schedule for the given terms. The
// result is an ordered sequence with one row per month; identical inputs
// always yield identical output.
//
// The principal portion is clamped so it never exceeds the remaining balance,
// and a sub-currency-unit residual left by rounding drift on the final month
// is folded into that month's principal so the schedule ends at exactly zero.
func Schedule(terms LoanTerms) ([]Row, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	payment, err := MonthlyPayment(terms.Principal, terms.AnnualRate, terms.TermMonths)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, terms.TermMonths)
	balance := terms.Principal
	for month := 1; month <= terms.TermMonths; month++ {
		interest := InterestPayment(balance, terms.AnnualRate)
		principal := payment - interest + terms.ExtraPrincipal
		if principal > balance {
			principal = balance
		}
		balance -= principal

		if month == terms.TermMonths && balance > 0 && balance < constants.CurrencyUnit {
			principal += balance
			balance = 0
		}

		rows = append(rows, Row{
			Month:     month,
			Payment:   interest + principal,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})

		if balance == 0 {
			break
		}
	}

	return rows, nil
}

// RemainingBalance computes the principal still owed after paymentsMade
// payments, using the closed-form annuity expression rather than iterating a
// schedule.
func RemainingBalance(principal, annualRate float64, termMonths, paymentsMade int) (float64, error) {
	payment, err := MonthlyPayment(principal, annualRate, termMonths)
	if err != nil {
		return 0, err
	}
	if paymentsMade < 0 || paymentsMade > termMonths {
		return 0, &InvalidInputError{Field: "paymentsMade", Value: float64(paymentsMade), Reason: "must be between 0 and the loan term"}
	}

	var balance float64
	if annualRate == 0 {
		balance = principal - payment*float64(paymentsMade)
	} else {
		monthlyRate := annualRate / constants.MonthsPerYear
		growth := math.Pow(1.00+monthlyRate, float64(paymentsMade))
		balance = principal*growth - payment*(growth-1.00)/monthlyRate
	}

	// A fully (or nearly) paid loan leaves only rounding drift behind.
	if balance < constants.CurrencyUnit {
		return 0, nil
	}
	return balance, nil
}

// TotalInterest sums the interest portions of a schedule.
func TotalInterest(rows []Row) float64 {
	total := 0.00
	for _, row := range rows {
		total += row.Interest
	}
	return total
}

// MonthlyPMIAt returns the mortgage-insurance amount owed for a month whose
// ending balance is the given value. Without a configured cutoff PMI is a
// flat add-on for the loan's full term.
func (t LoanTerms) MonthlyPMIAt(balance float64) float64 {
	if t.MonthlyPMI == 0 {
		return 0
	}
	if t.PMICutoffLTV > 0 && balance/t.Principal <= t.PMICutoffLTV {
		return 0
	}
	return t.MonthlyPMI
}
