package money

import (
	"github.com/shopspring/decimal"
)

// Amounts are accumulated as exact decimals so that summing many bookings or
// expenses never drifts the way binary floats do. Rounding happens once, at
// the reporting boundary.

// Zero returns the zero amount.
func Zero() decimal.Decimal {
	return decimal.Zero
}

// FromFloat converts a float input (fixtures, external payloads) to an exact amount.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Sum adds the provided amounts.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Round2 rounds an amount to 2 decimal places.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// Float renders an amount for a report payload, rounded to 2 decimal places.
func Float(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}

// Ratio returns a*100/b rounded to 2 decimals, or 0 when b is zero.
// Every percentage in the reports special-cases its denominator this way.
func Ratio(a, b decimal.Decimal) float64 {
	if b.IsZero() {
		return 0
	}
	return a.Mul(decimal.NewFromInt(100)).Div(b).Round(2).InexactFloat64()
}
