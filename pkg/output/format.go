// Package output provides utilities for formatting and displaying comparison
// results.
package output

import (
	"fmt"
	"math"

	"github.com/iwvelando/refi-analyzer/internal/comparison"
	"github.com/iwvelando/refi-analyzer/pkg/amortization"
	"github.com/iwvelando/refi-analyzer/pkg/constants"
	"github.com/iwvelando/refi-analyzer/pkg/datetime"
	"github.com/iwvelando/refi-analyzer/pkg/format"
	"github.com/iwvelando/refi-analyzer/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(result *comparison.Comparison) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Refinance analysis: %s vs %s ---\n", result.CurrentName, result.RefinanceName)
	fmt.Printf("Remaining balance       | %s over %d months\n",
		format.Currency(mathutil.Round(result.RemainingBalance)), result.RemainingTermMonths)
	fmt.Printf("Monthly P&I             | %s -> %s\n",
		format.Currency(mathutil.Round(result.CurrentPayment)),
		format.Currency(mathutil.Round(result.RefinancePayment)))
	fmt.Printf("Monthly savings         | %s (P&I %s, PMI %s)\n",
		format.Currency(mathutil.Round(result.Savings.Total)),
		format.Currency(mathutil.Round(result.Savings.PI)),
		format.Currency(mathutil.Round(result.Savings.PMI)))
	fmt.Printf("Upfront cost            | %s\n", format.Currency(mathutil.Round(result.UpfrontCost)))

	if result.BreakEvenNever {
		fmt.Printf("Break-even              | never\n")
	} else {
		fmt.Printf("Break-even              | %d months\n", result.BreakEvenMonth)
	}

	verdict := "unfavorable"
	if result.Favorable {
		verdict = "favorable"
	}
	fmt.Printf("NPV over %3d months     | %s (%s)\n", result.HorizonMonths,
		format.Currency(mathutil.Round(result.NPV)), verdict)

	if !math.IsInf(result.CurrentLTV, 1) {
		fmt.Printf("LTV                     | %s -> %s\n",
			format.Percent(result.CurrentLTV*constants.PercentageMultiplier),
			format.Percent(result.RefinanceLTV*constants.PercentageMultiplier))
	}
	fmt.Printf("Total interest          | %s -> %s (saves %s if held to payoff)\n",
		format.Currency(mathutil.Round(result.CurrentTotalInterest)),
		format.Currency(mathutil.Round(result.RefinanceTotalInterest)),
		format.Currency(mathutil.Round(result.InterestSaved)))

	fmt.Printf("\nFirst %d months:\n", constants.PrettyScheduleRows)
	fmt.Printf("Month | Current Payment | Interest | Principal | Balance      | Refi Payment | Interest | Principal | Balance\n")
	fmt.Printf("_____ | _______________ | ________ | _________ | _______      | ____________ | ________ | _________ | _______\n")
	rows := constants.PrettyScheduleRows
	if len(result.CurrentSchedule) < rows {
		rows = len(result.CurrentSchedule)
	}
	if len(result.RefinanceSchedule) < rows {
		rows = len(result.RefinanceSchedule)
	}
	for i := 0; i < rows; i++ {
		cur := result.CurrentSchedule[i]
		refi := result.RefinanceSchedule[i]
		_, _ = p.Printf("%5d | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
			cur.Month, cur.Payment, cur.Interest, cur.Principal, cur.Balance,
			refi.Payment, refi.Interest, refi.Principal, refi.Balance)
	}
}

// CsvFormat outputs both amortization schedules in comma-separated value
// format, one row per month; a loan already paid off pads with zeros.
func CsvFormat(result *comparison.Comparison) {
	months := len(result.CurrentSchedule)
	if len(result.RefinanceSchedule) > months {
		months = len(result.RefinanceSchedule)
	}

	withDates := result.StartDate != ""
	fmt.Printf(`"month"`)
	if withDates {
		fmt.Printf(`,"date"`)
	}
	for _, name := range []string{"current", "refinance"} {
		fmt.Printf(`,"%s payment","%s interest","%s principal","%s balance"`, name, name, name, name)
	}
	fmt.Printf("\n")

	for i := 0; i < months; i++ {
		fmt.Printf(`"%d"`, i+1)
		if withDates {
			date, err := datetime.OffsetDate(result.StartDate, datetime.DateTimeLayout, i)
			if err != nil {
				date = ""
			}
			fmt.Printf(`,"%s"`, date)
		}
		printCsvRow(result.CurrentSchedule, i)
		printCsvRow(result.RefinanceSchedule, i)
		fmt.Printf("\n")
	}
}

func printCsvRow(rows []amortization.Row, i int) {
	if i < len(rows) {
		row := rows[i]
		fmt.Printf(`,"%.2f","%.2f","%.2f","%.2f"`, row.Payment, row.Interest, row.Principal, row.Balance)
	} else {
		fmt.Printf(`,"0.00","0.00","0.00","0.00"`)
	}
}
