// Package money fixes amounts to integer cents so that change
// calculations compare against zero exactly, with decimal conversion
// at the boundary.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrPrecision = errors.New("money: sub-cent precision")
	ErrNegative  = errors.New("money: negative amount")
)

// Cents is an amount of money in whole cents.
type Cents int64

// FromDecimal converts an exact decimal amount to cents. Amounts with
// more than two fractional digits are rejected rather than rounded.
func FromDecimal(d decimal.Decimal) (Cents, error) {
	scaled := d.Mul(decimal.NewFromInt(100))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrPrecision, d.String())
	}
	return Cents(scaled.IntPart()), nil
}

// Parse converts a decimal string such as "0.10" to cents.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return FromDecimal(d)
}

// MustParse is Parse for hard-coded amounts; it panics on bad input.
func MustParse(s string) Cents {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Sum adds a sequence of coin values.
func Sum(coins []Cents) Cents {
	var total Cents
	for _, c := range coins {
		total += c
	}
	return total
}
