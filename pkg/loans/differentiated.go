package loans

import (
	"fmt"

	"github.com/iwvelando/creditcalc/pkg/constants"
	"github.com/iwvelando/creditcalc/pkg/mathutil"
)

// DifferentiatedPayment returns the payment due in period k (1-indexed) of a
// loan whose principal is repaid in equal parts over periods months.
// Interest accrues on the principal still outstanding at the start of k.
func DifferentiatedPayment(k, principal, periods int64, i float64) (int64, error) {
	p := float64(principal)
	n := float64(periods)
	// Explicit conversions keep each product rounded on its own so FMA-capable
	// platforms produce the same results.
	interest := float64(float64(i*p) * (1 - float64(k-1)/n))
	payment, err := mathutil.CeilInt(p/n + interest)
	if err != nil {
		return 0, fmt.Errorf("deriving payment for month %d: %w", k, err)
	}
	return payment, nil
}

// DifferentiatedSchedule returns every monthly payment in period order.
// Each entry depends only on its own index. At most
// constants.MaxSchedulePeriods payments are produced.
func DifferentiatedSchedule(principal, periods int64, i float64) ([]int64, error) {
	if periods < 1 || periods > constants.MaxSchedulePeriods {
		return nil, fmt.Errorf("schedule of %d months, expected 1 to %d: %w",
			periods, constants.MaxSchedulePeriods, mathutil.ErrOutOfRange)
	}
	schedule := make([]int64, periods)
	for k := int64(1); k <= periods; k++ {
		payment, err := DifferentiatedPayment(k, principal, periods, i)
		if err != nil {
			return nil, err
		}
		schedule[k-1] = payment
	}
	return schedule, nil
}
