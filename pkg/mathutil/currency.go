// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned when a whole amount does not fit in an int64.
var ErrOutOfRange = errors.New("value is out of integer range")

// CeilInt rounds a value up to the nearest whole currency unit or period.
func CeilInt(val float64) (int64, error) {
	c := math.Ceil(val)
	if math.IsNaN(c) || c >= math.MaxInt64 || c < math.MinInt64 {
		return 0, fmt.Errorf("ceiling of %v: %w", val, ErrOutOfRange)
	}
	return int64(c), nil
}

// Sum adds a slice of whole amounts.
func Sum(values []int64) (int64, error) {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromInt(v))
	}
	return toInt64(total)
}

// Mul multiplies two whole amounts.
func Mul(a, b int64) (int64, error) {
	return toInt64(decimal.NewFromInt(a).Mul(decimal.NewFromInt(b)))
}

func toInt64(d decimal.Decimal) (int64, error) {
	n := d.BigInt()
	if !n.IsInt64() {
		return 0, fmt.Errorf("%s: %w", d.String(), ErrOutOfRange)
	}
	return n.Int64(), nil
}
