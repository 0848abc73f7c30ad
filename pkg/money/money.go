// Package money provides fixed-point currency arithmetic in integer cents.
// Amounts are stored and aggregated as int64 cents exclusively; floating point
// appears only at the display/JSON boundary.
package money

import (
	"fmt"
	"math"
)

// RoundHalfEven rounds x to the nearest integer using banker's rounding
// (round-half-to-even). This is the single rounding primitive used for every
// conversion in the system, so cent amounts never drift between components.
func RoundHalfEven(x float64) int64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff > 0.5:
		return int64(floor) + 1
	case diff < 0.5:
		return int64(floor)
	default:
		// Exactly halfway: round to the even neighbour.
		if int64(floor)%2 == 0 {
			return int64(floor)
		}
		return int64(floor) + 1
	}
}

// ToCents converts a major-unit amount (e.g. 35.00) to integer cents.
func ToCents(major float64) int64 {
	return RoundHalfEven(major * 100)
}

// FromCents converts integer cents to a major-unit float for display.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Format renders cents as a major-unit decimal string with two digits,
// e.g. 350000 -> "3500.00".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
