package utils

import "math"

// Money is handled as integer cents throughout the application. Floating
// point only appears at the JSON/display boundary.

// ToCents converts a decimal amount (e.g. request payload) to integer cents
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToDecimal converts integer cents back to a 2-dp decimal for display
func ToDecimal(cents int64) float64 {
	return float64(cents) / 100
}

// PercentOf applies a percentage rate to an amount in cents, rounding half
// up. The rate is converted to basis points first so that rates like 2.5
// stay exact in integer arithmetic.
func PercentOf(cents int64, ratePct float64) int64 {
	bp := int64(math.Round(ratePct * 100))
	half := int64(5000)
	if cents < 0 {
		half = -5000
	}
	return (cents*bp + half) / 10000
}
