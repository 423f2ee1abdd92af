// Package quantity provides rounding and rendering of reported quantities.
// Calculators report rounded values so output is reproducible regardless of
// platform float formatting.
package quantity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds a value to the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Round2 rounds to 2 decimal places, the convention for powers and voltages.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// Round3 rounds to 3 decimal places, the convention for ratios such as
// power factor and per-unit values.
func Round3(v float64) float64 {
	return Round(v, 3)
}

// Format renders a value with the given number of decimal places,
// without trailing-zero trimming.
func Format(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every value is finite.
func AllFinite(values ...float64) bool {
	for _, v := range values {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
