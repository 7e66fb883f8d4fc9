// Package constants provides shared constants for the refi-analyzer application.
package constants

// DateTimeLayout is the format expected for the optional schedule start date
// in config files and is also the output date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// CurrencyUnit is one whole unit of currency; residual balances below this
	// on a schedule's final month are folded into the final principal portion.
	CurrencyUnit = 1.0

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ToleranceForComparison is the tolerance for financial comparisons
	ToleranceForComparison = 1.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// PrettyScheduleRows is the number of leading amortization rows shown in
	// pretty output; the full schedules are available via CSV output.
	PrettyScheduleRows = 12
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
