// Package comparison assembles the full current-versus-refinance analysis
// from a loaded configuration.
package comparison

import (
	"fmt"

	"github.com/iwvelando/refi-analyzer/internal/config"
	"github.com/iwvelando/refi-analyzer/pkg/adapters"
	"github.com/iwvelando/refi-analyzer/pkg/amortization"
	"github.com/iwvelando/refi-analyzer/pkg/mathutil"
	"github.com/iwvelando/refi-analyzer/pkg/refinance"
	"go.uber.org/zap"
)

// Comparison holds every derived metric for one analysis. It has no identity
// beyond the computation that produced it; running Compare twice on the same
// configuration yields identical values.
type Comparison struct {
	CurrentName   string
	RefinanceName string

	RemainingBalance    float64
	RemainingTermMonths int

	CurrentPayment   float64
	RefinancePayment float64
	Savings          refinance.Savings

	UpfrontCost    float64
	BreakEvenMonth int
	BreakEvenNever bool

	HorizonMonths int
	NPV           float64
	Favorable     bool

	CurrentLTV   float64
	RefinanceLTV float64

	CurrentTotalInterest   float64
	RefinanceTotalInterest float64
	InterestSaved          float64

	CurrentSchedule   []amortization.Row
	RefinanceSchedule []amortization.Row

	StartDate string
}

// Compare runs the full analysis described by the configuration.
func Compare(logger *zap.Logger, conf config.Configuration) (*Comparison, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	current, err := adapters.CurrentLoanTerms(conf.CurrentLoan)
	if err != nil {
		return nil, err
	}
	refi, err := adapters.RefinanceLoanTerms(conf.Refinance, current.Principal)
	if err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("comparing %s against %s with remaining balance %.2f over %d months",
		current.Name, refi.Name, current.Principal, conf.Analysis.HorizonMonths),
		zap.String("op", "comparison.Compare"),
	)

	currentSchedule, err := amortization.Schedule(current)
	if err != nil {
		return nil, err
	}
	refiSchedule, err := amortization.Schedule(refi)
	if err != nil {
		return nil, err
	}

	savings, err := refinance.MonthlySavings(current, refi)
	if err != nil {
		return nil, err
	}

	npv, err := refinance.NPVOverHorizon(current, refi,
		mathutil.PercentToFraction(conf.Analysis.DiscountRate), conf.Analysis.HorizonMonths)
	if err != nil {
		return nil, err
	}

	currentPayment, err := amortization.MonthlyPayment(current.Principal, current.AnnualRate, current.TermMonths)
	if err != nil {
		return nil, err
	}
	refiPayment, err := amortization.MonthlyPayment(refi.Principal, refi.AnnualRate, refi.TermMonths)
	if err != nil {
		return nil, err
	}

	breakEven, achievable := refinance.BreakEvenMonth(refi.UpfrontCost, savings.Total)
	if !achievable {
		logger.Debug("monthly savings are non-positive, refinance never breaks even",
			zap.String("op", "comparison.Compare"),
		)
	}

	result := &Comparison{
		CurrentName:            current.Name,
		RefinanceName:          refi.Name,
		RemainingBalance:       current.Principal,
		RemainingTermMonths:    current.TermMonths,
		CurrentPayment:         currentPayment,
		RefinancePayment:       refiPayment,
		Savings:                savings,
		UpfrontCost:            refi.UpfrontCost,
		BreakEvenMonth:         breakEven,
		BreakEvenNever:         !achievable,
		HorizonMonths:          conf.Analysis.HorizonMonths,
		NPV:                    npv,
		Favorable:              npv > 0,
		CurrentLTV:             refinance.LTV(current.Principal, conf.Analysis.HomeValue),
		RefinanceLTV:           refinance.LTV(refi.Principal, conf.Analysis.HomeValue),
		CurrentTotalInterest:   amortization.TotalInterest(currentSchedule),
		RefinanceTotalInterest: amortization.TotalInterest(refiSchedule),
		CurrentSchedule:        currentSchedule,
		RefinanceSchedule:      refiSchedule,
		StartDate:              conf.Analysis.StartDate,
	}
	result.InterestSaved = result.CurrentTotalInterest - result.RefinanceTotalInterest

	return result, nil
}
