package domain

import "github.com/shopspring/decimal"

// All monetary amounts in this package are integer minor units (cents).
// Fractional rates (discount, tax) are applied through decimal arithmetic
// and rounded half-up to the minor unit, so repeated calculations never
// accumulate binary floating-point drift.

// ApplyRate multiplies a cent amount by a fractional rate and rounds
// half-up to the nearest cent.
func ApplyRate(amountCents int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amountCents).Mul(rate).Round(0).IntPart()
}

// RateFromFloat converts a float rate (e.g. 0.14) to its decimal form.
// Construction-time config is the only place floats enter the engine.
func RateFromFloat(rate float64) decimal.Decimal {
	return decimal.NewFromFloat(rate)
}

// ValidRate reports whether rate is a fraction in [0,1].
func ValidRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(1))
}
