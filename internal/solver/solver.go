// Package solver selects and runs the calculation described by a LoanRequest.
package solver

import (
	"fmt"

	"github.com/iwvelando/creditcalc/internal/request"
	"github.com/iwvelando/creditcalc/pkg/loans"
	"github.com/iwvelando/creditcalc/pkg/mathutil"
	"go.uber.org/zap"
)

// Kind identifies which quantity a Result carries.
type Kind int

const (
	// KindPayment is a derived annuity payment.
	KindPayment Kind = iota + 1
	// KindPrincipal is a derived annuity principal.
	KindPrincipal
	// KindDuration is a derived repayment duration.
	KindDuration
	// KindSchedule is a differentiated payment schedule.
	KindSchedule
)

// Result is the outcome of one calculation. Only the field matching Kind is
// set, apart from Overpayment which is always set.
type Result struct {
	Kind        Kind
	Payment     int64
	Principal   int64
	Duration    loans.Duration
	Schedule    []int64
	Overpayment int64
}

// Solve computes the missing quantity of req and the total overpayment.
func Solve(logger *zap.Logger, req request.LoanRequest) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := request.Validate(req); err != nil {
		return nil, err
	}

	i := loans.MonthlyRate(req.InterestPercent)
	logger.Debug(fmt.Sprintf("solving %s loan at monthly rate %.6f", req.Mode, i),
		zap.String("op", "solver.Solve"),
	)

	if req.Mode == request.ModeDifferentiated {
		return solveDifferentiated(logger, *req.Principal, *req.Periods, i)
	}

	switch {
	case req.Payment == nil:
		return solvePayment(logger, *req.Principal, *req.Periods, i)
	case req.Principal == nil:
		return solvePrincipal(logger, *req.Payment, *req.Periods, i)
	default:
		return solveDuration(logger, *req.Principal, *req.Payment, i)
	}
}

func solveDifferentiated(logger *zap.Logger, principal, periods int64, i float64) (*Result, error) {
	schedule, err := loans.DifferentiatedSchedule(principal, periods, i)
	if err != nil {
		return nil, err
	}
	total, err := mathutil.Sum(schedule)
	if err != nil {
		return nil, fmt.Errorf("totaling differentiated schedule: %w", err)
	}
	logger.Debug(fmt.Sprintf("differentiated schedule of %d payments totals %d", periods, total),
		zap.String("op", "solver.solveDifferentiated"),
	)
	return &Result{
		Kind:        KindSchedule,
		Schedule:    schedule,
		Overpayment: total - principal,
	}, nil
}

func solvePayment(logger *zap.Logger, principal, periods int64, i float64) (*Result, error) {
	payment, err := loans.DerivedPayment(principal, periods, i)
	if err != nil {
		return nil, err
	}
	logger.Debug(fmt.Sprintf("derived payment %d for principal %d over %d months", payment, principal, periods),
		zap.String("op", "solver.solvePayment"),
	)
	total, err := mathutil.Mul(periods, payment)
	if err != nil {
		return nil, fmt.Errorf("totaling annuity payments: %w", err)
	}
	return &Result{
		Kind:        KindPayment,
		Payment:     payment,
		Overpayment: total - principal,
	}, nil
}

func solvePrincipal(logger *zap.Logger, payment, periods int64, i float64) (*Result, error) {
	principal, err := loans.DerivedPrincipal(payment, periods, i)
	if err != nil {
		return nil, err
	}
	logger.Debug(fmt.Sprintf("derived principal %d for payment %d over %d months", principal, payment, periods),
		zap.String("op", "solver.solvePrincipal"),
	)
	total, err := mathutil.Mul(periods, payment)
	if err != nil {
		return nil, fmt.Errorf("totaling annuity payments: %w", err)
	}
	return &Result{
		Kind:        KindPrincipal,
		Principal:   principal,
		Overpayment: total - principal,
	}, nil
}

func solveDuration(logger *zap.Logger, principal, payment int64, i float64) (*Result, error) {
	count, err := loans.DerivedPeriodCount(payment, principal, i)
	if err != nil {
		return nil, err
	}
	duration := loans.SplitPeriods(count)
	logger.Debug(fmt.Sprintf("derived %d months for principal %d at payment %d", count, principal, payment),
		zap.String("op", "solver.solveDuration"),
	)
	total, err := mathutil.Mul(duration.TotalMonths(), payment)
	if err != nil {
		return nil, fmt.Errorf("totaling annuity payments: %w", err)
	}
	return &Result{
		Kind:        KindDuration,
		Duration:    duration,
		Overpayment: total - principal,
	}, nil
}
