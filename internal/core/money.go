// Package core provides the cash movement domain.
//
// This file contains functions for parsing monetary amounts typed by the
// operator and rendering them with two decimal places.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts are bounded so formatting them stays cheap. The exponent is checked
// before any arithmetic, since comparing a huge exponent rescales the
// coefficient.
const (
	maxAmountExponent = 15
	minAmountExponent = -20
)

var maxAmount = decimal.New(1, maxAmountExponent)

// ParseAmount converts operator input into a decimal amount.
//
// Leading and trailing spaces and an optional "R$" prefix are ignored. A comma
// is accepted as decimal separator when the input has no dot. Signs and
// exponents are allowed, so negative and zero amounts parse successfully.
// Magnitudes of 10^15 and above, or with more than 20 fractional digits, are
// rejected.
//
// Examples:
//
//	ParseAmount("150.75")  -> 150.75, nil
//	ParseAmount("150,75")  -> 150.75, nil
//	ParseAmount("R$ -20")  -> -20, nil
//	ParseAmount("abc")     -> 0, ErrInvalidAmount
//	ParseAmount("1e400")   -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amountInRange(d) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func amountInRange(d decimal.Decimal) bool {
	if exp := d.Exponent(); exp > maxAmountExponent || exp < minAmountExponent {
		return false
	}
	return d.Abs().Cmp(maxAmount) < 0
}

// FormatAmount renders an amount with exactly two decimals, rounding half away
// from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
