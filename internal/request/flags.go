package request

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

// Flags binds the loan flags to a pflag.FlagSet. Callers may register extra
// flags on FlagSet before calling Parse.
type Flags struct {
	set       *pflag.FlagSet
	loanType  string
	principal int64
	payment   int64
	periods   int64
	interest  float64
}

// NewFlags creates a flag set with --type, --principal, --payment, --periods
// and --interest defined.
func NewFlags(name string) *Flags {
	f := &Flags{set: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	f.set.SetOutput(io.Discard)
	f.set.StringVar(&f.loanType, "type", "", "loan type: annuity or diff")
	f.set.Var((*decimalInt64)(&f.principal), "principal", "loan principal")
	f.set.Var((*decimalInt64)(&f.payment), "payment", "monthly payment")
	f.set.Var((*decimalInt64)(&f.periods), "periods", "number of monthly payments")
	f.set.Float64Var(&f.interest, "interest", 0, "nominal yearly interest rate in percent")
	return f
}

// FlagSet exposes the underlying set for registering additional flags.
func (f *Flags) FlagSet() *pflag.FlagSet {
	return f.set
}

// Parse parses args, which must not include the program name. A help request
// is returned as pflag.ErrHelp.
func (f *Flags) Parse(args []string) error {
	if err := f.set.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%v: %w", err, ErrIncorrectParameters)
	}
	if f.set.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %v: %w", f.set.Args(), ErrIncorrectParameters)
	}
	return nil
}

// Request builds and validates the LoanRequest from parsed flags.
func (f *Flags) Request() (LoanRequest, error) {
	if !f.set.Changed("type") {
		return LoanRequest{}, fmt.Errorf("loan type is required: %w", ErrIncorrectParameters)
	}
	mode, err := ParseMode(f.loanType)
	if err != nil {
		return LoanRequest{}, err
	}

	req := LoanRequest{
		Mode:            mode,
		Principal:       f.optional("principal", f.principal),
		Payment:         f.optional("payment", f.payment),
		Periods:         f.optional("periods", f.periods),
		InterestPercent: f.interest,
	}
	if err := Validate(req); err != nil {
		return LoanRequest{}, err
	}
	return req, nil
}

func (f *Flags) optional(name string, value int64) *int64 {
	if !f.set.Changed(name) {
		return nil
	}
	v := value
	return &v
}

// Parse parses args and returns the validated request.
func Parse(args []string) (LoanRequest, error) {
	f := NewFlags("creditcalc")
	if err := f.Parse(args); err != nil {
		return LoanRequest{}, err
	}
	return f.Request()
}

// decimalInt64 is an int64 flag read strictly in base 10, so a leading zero
// is not octal and 0x/0b prefixes are rejected.
type decimalInt64 int64

func (d *decimalInt64) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*d = decimalInt64(v)
	return nil
}

func (d *decimalInt64) String() string {
	return strconv.FormatInt(int64(*d), 10)
}

func (d *decimalInt64) Type() string {
	return "int"
}
