// Package constants provides shared constants for the creditcalc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxSchedulePeriods caps a differentiated schedule at 10000 years of
	// monthly payments
	MaxSchedulePeriods = 120000
)

// Loan types accepted by --type.
const (
	// LoanTypeAnnuity selects the fixed monthly payment model
	LoanTypeAnnuity = "annuity"

	// LoanTypeDiff selects the declining (differentiated) payment model
	LoanTypeDiff = "diff"
)

// Output format constants
const (
	// OutputFormatPlain prints integers without digit grouping
	OutputFormatPlain = "plain"

	// OutputFormatGrouped prints integers with English thousands separators
	OutputFormatGrouped = "grouped"
)

// Logging constants
const (
	// DefaultLogLevel keeps the report on stdout free of routine log noise
	DefaultLogLevel = "warn"

	// LogFormatJSON is the production zap encoder
	LogFormatJSON = "json"

	// LogFormatConsole is the development zap encoder
	LogFormatConsole = "console"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "creditcalc.yaml"

	// EnvPrefix prefixes environment overrides, e.g. CREDITCALC_LOGGING_LEVEL
	EnvPrefix = "CREDITCALC"
)

// User-facing messages
const (
	// IncorrectParametersMessage is printed for any invalid flag combination
	IncorrectParametersMessage = "Incorrect parameters."

	// NeverRepaidMessage is printed when the payment cannot amortize the loan
	NeverRepaidMessage = "Payment does not cover the monthly interest; this credit can never be repaid."

	// OutOfRangeMessage is printed when an amount or schedule is too large to compute
	OutOfRangeMessage = "The numbers for this credit are too large to compute."

	// CalculationFailedMessage is printed for any other calculation failure
	CalculationFailedMessage = "This credit could not be calculated."
)
