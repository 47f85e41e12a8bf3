// Package money centralizes currency arithmetic so every derived total
// rounds the same way.
package money

import "github.com/shopspring/decimal"

// FromCents converts an integer cent amount into a currency decimal.
func FromCents(cents int) decimal.Decimal {
	return decimal.NewFromInt(int64(cents)).Shift(-2)
}

// FromBps converts basis points into a fractional rate (800 -> 0.08).
func FromBps(bps int) decimal.Decimal {
	return decimal.NewFromInt(int64(bps)).Shift(-4)
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Cents returns the amount as whole cents after display rounding.
func Cents(amount decimal.Decimal) int64 {
	return Round2(amount).Shift(2).IntPart()
}

// Format renders a two-decimal display string without a currency symbol.
func Format(amount decimal.Decimal) string {
	return Round2(amount).StringFixed(2)
}
