package solver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iwvelando/creditcalc/internal/request"
	"github.com/iwvelando/creditcalc/pkg/loans"
	"github.com/iwvelando/creditcalc/pkg/mathutil"
	"go.uber.org/zap"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestSolveAnnuity(t *testing.T) {
	tests := []struct {
		name     string
		req      request.LoanRequest
		expected Result
	}{
		{
			name: "Payment",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Principal: int64Ptr(1000000), Periods: int64Ptr(60), InterestPercent: 10,
			},
			expected: Result{Kind: KindPayment, Payment: 21248, Overpayment: 274880},
		},
		{
			name: "Principal",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Payment: int64Ptr(8722), Periods: int64Ptr(120), InterestPercent: 5.6,
			},
			expected: Result{Kind: KindPrincipal, Principal: 800019, Overpayment: 246621},
		},
		{
			name: "Whole years",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Principal: int64Ptr(500000), Payment: int64Ptr(23000), InterestPercent: 7.8,
			},
			expected: Result{Kind: KindDuration, Duration: loans.Duration{Years: 2}, Overpayment: 52000},
		},
		{
			name: "Years and months",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Principal: int64Ptr(1000000), Payment: int64Ptr(15000), InterestPercent: 10,
			},
			expected: Result{Kind: KindDuration, Duration: loans.Duration{Years: 8, Months: 2}, Overpayment: 470000},
		},
		{
			name: "Months only",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Principal: int64Ptr(100000), Payment: int64Ptr(10000), InterestPercent: 10,
			},
			expected: Result{Kind: KindDuration, Duration: loans.Duration{Months: 11}, Overpayment: 10000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Solve(zap.NewNop(), tt.req)
			if err != nil {
				t.Fatalf("Solve() error = %v", err)
			}
			if !reflect.DeepEqual(*result, tt.expected) {
				t.Errorf("Solve() = %+v, expected %+v", *result, tt.expected)
			}
		})
	}
}

func TestSolveDifferentiated(t *testing.T) {
	req := request.LoanRequest{
		Mode: request.ModeDifferentiated, Principal: int64Ptr(1000000), Periods: int64Ptr(10), InterestPercent: 9.6,
	}

	result, err := Solve(nil, req)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if result.Kind != KindSchedule {
		t.Fatalf("Kind = %v, expected KindSchedule", result.Kind)
	}

	expected := []int64{108000, 107200, 106400, 105600, 104800, 104000, 103200, 102400, 101600, 100800}
	if !reflect.DeepEqual(result.Schedule, expected) {
		t.Errorf("Schedule = %v, expected %v", result.Schedule, expected)
	}

	var total int64
	for _, payment := range result.Schedule {
		total += payment
	}
	if result.Overpayment != total-1000000 || result.Overpayment != 44000 {
		t.Errorf("Overpayment = %d, schedule total %d", result.Overpayment, total)
	}
}

func TestSolveOverpaymentIsNonNegative(t *testing.T) {
	for _, principal := range []int64{1000, 250000, 1000000} {
		for _, periods := range []int64{1, 12, 60, 300} {
			for _, yearly := range []float64{0.1, 4.5, 12, 30} {
				for _, mode := range []request.Mode{request.ModeAnnuity, request.ModeDifferentiated} {
					req := request.LoanRequest{
						Mode: mode, Principal: int64Ptr(principal), Periods: int64Ptr(periods), InterestPercent: yearly,
					}
					result, err := Solve(zap.NewNop(), req)
					if err != nil {
						t.Fatalf("Solve(%+v) error = %v", req, err)
					}
					if result.Overpayment < 0 {
						t.Errorf("%v principal=%d periods=%d yearly=%v: overpayment %d",
							mode, principal, periods, yearly, result.Overpayment)
					}
				}
			}
		}
	}
}

func TestSolveNeverRepaid(t *testing.T) {
	req := request.LoanRequest{
		Mode: request.ModeAnnuity, Principal: int64Ptr(1000000), Payment: int64Ptr(5000), InterestPercent: 12,
	}

	result, err := Solve(zap.NewNop(), req)
	if !errors.Is(err, loans.ErrNeverRepaid) {
		t.Errorf("Solve() error = %v, expected ErrNeverRepaid", err)
	}
	if result != nil {
		t.Errorf("Solve() returned a partial result %+v", result)
	}
}

func TestSolveRejectsMalformedRequest(t *testing.T) {
	req := request.LoanRequest{
		Mode: request.ModeAnnuity, Principal: int64Ptr(1000000), InterestPercent: 10,
	}

	if _, err := Solve(zap.NewNop(), req); !errors.Is(err, request.ErrIncorrectParameters) {
		t.Errorf("Solve() error = %v, expected ErrIncorrectParameters", err)
	}
}

func TestSolveOverpaymentOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		req  request.LoanRequest
	}{
		{
			name: "Principal with huge payment",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Payment: int64Ptr(500000000000000000), Periods: int64Ptr(100), InterestPercent: 100,
			},
		},
		{
			name: "Payment over many periods",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Principal: int64Ptr(4000000000000000000), Periods: int64Ptr(1000), InterestPercent: 12,
			},
		},
		{
			name: "Duration with huge payment",
			req: request.LoanRequest{
				Mode: request.ModeAnnuity, Principal: int64Ptr(9000000000000000000), Payment: int64Ptr(1000000000000000000), InterestPercent: 1,
			},
		},
		{
			name: "Schedule too long",
			req: request.LoanRequest{
				Mode: request.ModeDifferentiated, Principal: int64Ptr(1000), Periods: int64Ptr(9223372036854775807), InterestPercent: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Solve(zap.NewNop(), tt.req)
			if !errors.Is(err, mathutil.ErrOutOfRange) {
				t.Errorf("Solve() error = %v, expected ErrOutOfRange", err)
			}
			if result != nil {
				t.Errorf("Solve() returned a partial result %+v", result)
			}
		})
	}
}
