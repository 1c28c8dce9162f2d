package loans

import "github.com/iwvelando/creditcalc/pkg/constants"

// MonthlyRate converts a nominal yearly interest rate in percent into the
// effective monthly decimal rate used by every formula in this package.
func MonthlyRate(yearlyRatePercent float64) float64 {
	return yearlyRatePercent / (constants.MonthsPerYear * constants.PercentageMultiplier)
}
