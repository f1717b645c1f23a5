package analytics

import "github.com/shopspring/decimal"

// roundAmount rounds a monetary value to a whole unit, half to even, so an
// expense of 1102.5 is reported as 1102.
func roundAmount(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(0).Float64()
	return f
}

// roundHalfUp rounds to a whole unit, half away from zero.
func roundHalfUp(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(0).Float64()
	return f
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
