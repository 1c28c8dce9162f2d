// Package loans provides the annuity and differentiated repayment formulas.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/creditcalc/pkg/constants"
	"github.com/iwvelando/creditcalc/pkg/mathutil"
)

// ErrNeverRepaid is returned when a payment does not exceed the monthly
// interest on the principal, so the balance never shrinks.
var ErrNeverRepaid = errors.New("payment does not exceed the monthly interest")

// Duration is a repayment period split into whole years and months.
type Duration struct {
	Years  int64
	Months int64
}

// TotalMonths returns the duration expressed in months.
func (d Duration) TotalMonths() int64 {
	return d.Years*constants.MonthsPerYear + d.Months
}

// AnnuityFactor converts a principal into the fixed payment that repays it in
// n periods at monthly rate i.
func AnnuityFactor(n int64, i float64) float64 {
	power := math.Pow(1.00+i, float64(n))
	if math.IsInf(power, 1) {
		// i*p/(p-1) tends to i as p grows without bound.
		return i
	}
	return i * power / (power - 1.00)
}

// PresentFactor converts a fixed payment into the principal it repays.
func PresentFactor(n int64, i float64) float64 {
	return 1 / AnnuityFactor(n, i)
}

// DerivedPayment returns the fixed monthly payment for a principal, rounded up.
func DerivedPayment(principal, n int64, i float64) (int64, error) {
	payment, err := mathutil.CeilInt(float64(principal) * AnnuityFactor(n, i))
	if err != nil {
		return 0, fmt.Errorf("deriving payment: %w", err)
	}
	return payment, nil
}

// DerivedPrincipal returns the principal repaid by a fixed monthly payment,
// rounded up.
func DerivedPrincipal(payment, n int64, i float64) (int64, error) {
	principal, err := mathutil.CeilInt(float64(payment) * PresentFactor(n, i))
	if err != nil {
		return 0, fmt.Errorf("deriving principal: %w", err)
	}
	return principal, nil
}

// DerivedPeriodCount returns the number of monthly payments needed to repay
// principal, rounded up. The payment must exceed i*principal.
func DerivedPeriodCount(payment, principal int64, i float64) (int64, error) {
	interest := float64(i * float64(principal))
	if float64(payment) <= interest {
		return 0, fmt.Errorf("payment %d against monthly interest %.2f: %w", payment, interest, ErrNeverRepaid)
	}
	periods := math.Log(float64(payment)/(float64(payment)-interest)) / math.Log(1+i)
	count, err := mathutil.CeilInt(periods)
	if err != nil {
		return 0, fmt.Errorf("deriving period count: %w", err)
	}
	return count, nil
}

// SplitPeriods breaks a month count into whole years and remaining months.
func SplitPeriods(total int64) Duration {
	return Duration{
		Years:  total / constants.MonthsPerYear,
		Months: total % constants.MonthsPerYear,
	}
}
