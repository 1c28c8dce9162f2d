// Package output renders calculation results as the text report.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/creditcalc/internal/solver"
	"github.com/iwvelando/creditcalc/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Options controls how amounts and month labels are rendered.
type Options struct {
	Format         string // plain, grouped
	MonthLabelBase int64  // label of the first scheduled month
}

// DefaultOptions reproduces the reference report byte for byte.
func DefaultOptions() Options {
	return Options{Format: constants.OutputFormatPlain, MonthLabelBase: 0}
}

func (o Options) amount(v int64) string {
	if o.Format == constants.OutputFormatGrouped {
		return message.NewPrinter(language.English).Sprintf("%d", v)
	}
	return strconv.FormatInt(v, 10)
}

// FormatDuration describes how long repayment takes.
func FormatDuration(years, months int64) string {
	yearsClause := fmt.Sprintf("%d %s", years, plural(years, "year"))
	monthsClause := fmt.Sprintf("%d %s", months, plural(months, "month"))

	var need string
	switch {
	case years == 0:
		need = monthsClause
	case months == 0:
		need = yearsClause
	default:
		need = yearsClause + " and " + monthsClause
	}
	return fmt.Sprintf("You need %s to repay this credit!", need)
}

func plural(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// FormatPayment reports a derived annuity payment.
func FormatPayment(payment int64, opts Options) string {
	return fmt.Sprintf("Your annuity payment = %s!", opts.amount(payment))
}

// FormatPrincipal reports a derived annuity principal.
func FormatPrincipal(principal int64, opts Options) string {
	return fmt.Sprintf("Your credit principal = %s!", opts.amount(principal))
}

// FormatSchedule lists the differentiated payments one per line.
func FormatSchedule(schedule []int64, opts Options) string {
	lines := make([]string, len(schedule))
	for k, payment := range schedule {
		lines[k] = fmt.Sprintf("Month %d: paid out %s", opts.MonthLabelBase+int64(k), opts.amount(payment))
	}
	return strings.Join(lines, "\n")
}

// FormatOverpayment reports the total paid beyond the principal.
func FormatOverpayment(overpayment int64, opts Options) string {
	return "Overpayment = " + opts.amount(overpayment)
}

// Render writes the full report for result to w.
func Render(w io.Writer, result *solver.Result, opts Options) error {
	var b strings.Builder
	switch result.Kind {
	case solver.KindSchedule:
		b.WriteString(FormatSchedule(result.Schedule, opts))
		b.WriteString("\n\n")
	case solver.KindPayment:
		b.WriteString(FormatPayment(result.Payment, opts))
		b.WriteString("\n")
	case solver.KindPrincipal:
		b.WriteString(FormatPrincipal(result.Principal, opts))
		b.WriteString("\n")
	case solver.KindDuration:
		b.WriteString(FormatDuration(result.Duration.Years, result.Duration.Months))
		b.WriteString("\n")
	default:
		return fmt.Errorf("unknown result kind %d", result.Kind)
	}
	b.WriteString(FormatOverpayment(result.Overpayment, opts))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
