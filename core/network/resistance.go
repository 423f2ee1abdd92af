// Package network provides resistor network equivalent calculators.
package network

import (
	"gridcalc/core/quantity"
	"gridcalc/internal/errors"
)

// Series returns the equivalent resistance of resistors connected
// end-to-end: the sum of the values. An empty slice yields 0.
func Series(values []float64) (float64, error) {
	if err := validate(values); err != nil {
		return 0, err
	}

	total := 0.0
	for _, r := range values {
		total += r
	}
	return total, nil
}

// Parallel returns the equivalent resistance of resistors connected
// side-by-side: the reciprocal of the sum of reciprocals.
//
// An empty slice yields 0. Physically an open circuit has infinite
// resistance; the zero sentinel is a documented policy kept for
// compatibility with the series case, not a physical answer.
func Parallel(values []float64) (float64, error) {
	if err := validate(values); err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, r := range values {
		sum += 1 / r
	}
	return 1 / sum, nil
}

func validate(values []float64) error {
	for i, r := range values {
		if !quantity.IsFinite(r) {
			return errors.Inputf("resistance at index %d is not finite: %v", i, r)
		}
		if r <= 0 {
			return errors.Inputf("resistance at index %d must be positive, got %v", i, r)
		}
	}
	return nil
}
