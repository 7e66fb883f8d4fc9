// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

// CurrentLoan describes the existing mortgage as originated. The analyzer
// derives the forward-looking position (remaining balance and term) from the
// number of payments already made.
type CurrentLoan struct {
	Name         string
	Principal    float64 // original principal
	InterestRate float64 // percent APR, e.g. 6.75
	Term         int     // original term in months
	PaymentsMade int
	MonthlyPMI   float64
	PMICutoffLTV float64 // percent of original principal; 0 disables the cutoff
}

// RefinanceOffer describes the proposed replacement loan.
type RefinanceOffer struct {
	Name           string
	Principal      float64 // 0 means refinance the current remaining balance
	InterestRate   float64 // percent APR
	Term           int     // months
	PointsPercent  float64 // points as percent of the new principal
	LenderCredits  float64
	ClosingCosts   float64
	MonthlyPMI     float64
	PMICutoffLTV   float64
	ExtraPrincipal float64 // optional extra principal paid every month
}
