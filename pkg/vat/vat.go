// Package vat derives net/VAT splits from gross, tax-inclusive totals.
package vat

import "github.com/pveldman/studioadmin/pkg/money"

// Split derives the net and VAT components of a gross (tax-inclusive) total in
// cents for the given rate percentage. The VAT component is rounded; the net
// component is the remainder, so net+vat == gross holds for every input.
//
// Rates at or below zero yield a zero VAT component. Rate validation is the
// caller's concern (rates are checked at the settings boundary, not here).
func Split(grossCents int64, ratePercent float64) (netCents, vatCents int64) {
	if ratePercent <= 0 {
		return grossCents, 0
	}
	vatCents = money.RoundHalfEven(float64(grossCents) * ratePercent / (100 + ratePercent))
	return grossCents - vatCents, vatCents
}
