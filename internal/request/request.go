// Package request turns command-line arguments into a validated LoanRequest.
package request

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/creditcalc/pkg/constants"
)

// ErrIncorrectParameters is returned for any argument combination that does
// not describe exactly one calculation.
var ErrIncorrectParameters = errors.New("incorrect parameters")

// Mode selects the amortization model.
type Mode int

const (
	// ModeAnnuity repays the loan with a fixed monthly payment.
	ModeAnnuity Mode = iota + 1
	// ModeDifferentiated repays equal principal parts plus declining interest.
	ModeDifferentiated
)

// ParseMode maps a --type value onto a Mode.
func ParseMode(value string) (Mode, error) {
	switch value {
	case constants.LoanTypeAnnuity:
		return ModeAnnuity, nil
	case constants.LoanTypeDiff:
		return ModeDifferentiated, nil
	default:
		return 0, fmt.Errorf("unknown loan type %q: %w", value, ErrIncorrectParameters)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeAnnuity:
		return constants.LoanTypeAnnuity
	case ModeDifferentiated:
		return constants.LoanTypeDiff
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// LoanRequest holds the loan quantities supplied on the command line. A nil
// quantity is the one to solve for.
type LoanRequest struct {
	Mode            Mode
	Principal       *int64
	Payment         *int64
	Periods         *int64
	InterestPercent float64
}

// Validate checks that the request describes exactly one calculation.
func Validate(req LoanRequest) error {
	if !(req.InterestPercent > 0) || math.IsInf(req.InterestPercent, 1) {
		return fmt.Errorf("interest must be a positive number, got %v: %w", req.InterestPercent, ErrIncorrectParameters)
	}

	quantities := []struct {
		name  string
		value *int64
	}{
		{"principal", req.Principal},
		{"payment", req.Payment},
		{"periods", req.Periods},
	}
	missing := 0
	for _, q := range quantities {
		if q.value == nil {
			missing++
			continue
		}
		if *q.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d: %w", q.name, *q.value, ErrIncorrectParameters)
		}
	}

	switch req.Mode {
	case ModeDifferentiated:
		if req.Principal == nil || req.Periods == nil {
			return fmt.Errorf("diff requires principal and periods: %w", ErrIncorrectParameters)
		}
		if req.Payment != nil {
			return fmt.Errorf("diff does not accept a payment: %w", ErrIncorrectParameters)
		}
	case ModeAnnuity:
		if missing != 1 {
			return fmt.Errorf("annuity requires exactly one of principal, payment, periods to be omitted, %d omitted: %w",
				missing, ErrIncorrectParameters)
		}
	default:
		return fmt.Errorf("loan type is required: %w", ErrIncorrectParameters)
	}

	return nil
}
