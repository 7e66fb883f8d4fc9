// Package refinance implements the comparison math between a current loan and
// a refinance offer: monthly savings, break-even month, discounted savings
// streams, and net present value.
package refinance

import (
	"math"

	"github.com/iwvelando/refi-analyzer/pkg/amortization"
	"github.com/iwvelando/refi-analyzer/pkg/constants"
)

// Savings breaks down the monthly savings of refinancing.
type Savings struct {
	PI    float64 // current P&I minus new P&I
	PMI   float64 // current PMI minus new PMI
	Total float64
}

// MonthlySavings computes the first-month savings of the refinance offer over
// the current loan. PMI is taken at its initial (full-balance) amount.
func MonthlySavings(current, refi amortization.LoanTerms) (Savings, error) {
	currentPayment, err := amortization.MonthlyPayment(current.Principal, current.AnnualRate, current.TermMonths)
	if err != nil {
		return Savings{}, err
	}
	refiPayment, err := amortization.MonthlyPayment(refi.Principal, refi.AnnualRate, refi.TermMonths)
	if err != nil {
		return Savings{}, err
	}

	s := Savings{
		PI:  currentPayment - refiPayment,
		PMI: current.MonthlyPMIAt(current.Principal) - refi.MonthlyPMIAt(refi.Principal),
	}
	s.Total = s.PI + s.PMI
	return s, nil
}

// BreakEvenMonth returns the first month by which cumulative monthly savings
// meet or exceed the upfront cost, i.e. ceiling(cost/savings); partial months
// round up. The second return is false when savings are non-positive and the
// refinance never pays for itself.
func BreakEvenMonth(upfrontCost, monthlySavings float64) (int, bool) {
	if monthlySavings <= 0 {
		return 0, false
	}
	return int(math.Ceil(upfrontCost / monthlySavings)), true
}

// BreakEven combines the two loans' monthly savings with the offer's upfront
// cost into a break-even month; the second return is false when the refinance
// never pays for itself.
func BreakEven(current, refi amortization.LoanTerms) (int, bool, error) {
	savings, err := MonthlySavings(current, refi)
	if err != nil {
		return 0, false, err
	}
	month, achievable := BreakEvenMonth(refi.UpfrontCost, savings.Total)
	return month, achievable, nil
}

// NPVOverHorizon builds the savings stream for the horizon and discounts it
// against the offer's upfront cost.
func NPVOverHorizon(current, refi amortization.LoanTerms, annualDiscountRate float64, horizonMonths int) (float64, error) {
	stream, err := SavingsStream(current, refi, horizonMonths)
	if err != nil {
		return 0, err
	}
	return NPV(stream, annualDiscountRate, refi.UpfrontCost)
}

// SavingsStream builds the per-month total-cost difference (current minus
// refinance, P&I plus PMI) over the horizon. Once a loan's schedule ends its
// contribution drops to zero, so the stream reflects the other loan's full
// ongoing payment from that point on.
func SavingsStream(current, refi amortization.LoanTerms, horizonMonths int) ([]float64, error) {
	if horizonMonths <= 0 {
		return nil, &amortization.InvalidInputError{Field: "horizonMonths", Value: float64(horizonMonths), Reason: "must be positive"}
	}

	currentRows, err := amortization.Schedule(current)
	if err != nil {
		return nil, err
	}
	refiRows, err := amortization.Schedule(refi)
	if err != nil {
		return nil, err
	}

	stream := make([]float64, horizonMonths)
	for m := 0; m < horizonMonths; m++ {
		stream[m] = monthlyCost(current, currentRows, m) - monthlyCost(refi, refiRows, m)
	}
	return stream, nil
}

func monthlyCost(terms amortization.LoanTerms, rows []amortization.Row, index int) float64 {
	if index >= len(rows) {
		return 0
	}
	row := rows[index]
	return row.Payment + terms.MonthlyPMIAt(row.Balance)
}

// NPV discounts a monthly savings stream to present value and subtracts the
// upfront cost paid at month zero. A positive result means the refinance is
// favorable over the stream's horizon at the given rate; that is a summary
// judgment, not a guarantee.
func NPV(stream []float64, annualDiscountRate, upfrontCost float64) (float64, error) {
	if len(stream) == 0 {
		return 0, &amortization.InvalidInputError{Field: "horizonMonths", Value: 0, Reason: "must be positive"}
	}
	if annualDiscountRate < -1 {
		return 0, &amortization.InvalidInputError{Field: "discountRate", Value: annualDiscountRate, Reason: "must not be below -100%"}
	}

	monthlyRate := annualDiscountRate / constants.MonthsPerYear
	npv := -upfrontCost
	for m, savings := range stream {
		npv += savings / math.Pow(1.00+monthlyRate, float64(m+1))
	}
	return npv, nil
}

// EffectiveUpfrontCost computes the out-of-pocket cost of a refinance at
// month zero: points as a percentage of the new principal, less lender
// credits (never below zero), plus other closing costs.
func EffectiveUpfrontCost(principal, pointsPercent, lenderCredits, closingCosts float64) float64 {
	pointsCost := pointsPercent / constants.PercentageMultiplier * principal
	net := pointsCost - lenderCredits
	if net < 0 {
		net = 0
	}
	return net + closingCosts
}

// LTV computes the loan-to-value ratio as a fraction. A non-positive home
// value yields +Inf.
func LTV(balance, homeValue float64) float64 {
	if homeValue <= 0 {
		return math.Inf(1)
	}
	return balance / homeValue
}
