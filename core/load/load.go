// Package load provides single-load power quantity calculators.
package load

import (
	"math"

	"gridcalc/core/quantity"
	"gridcalc/internal/errors"
)

// Result contains the derived quantities for one load.
type Result struct {
	// RealPower is the input real power P in watts
	RealPower float64 `json:"real_power_w"`

	// ReactivePower is the input reactive power Q in vars
	ReactivePower float64 `json:"reactive_power_var"`

	// ApparentPower is S = sqrt(P²+Q²) in volt-amps, rounded to 2 decimals
	ApparentPower float64 `json:"apparent_power_va"`

	// PowerFactor is P/S, rounded to 3 decimals; 0 when S is 0
	PowerFactor float64 `json:"power_factor"`
}

// PowerFactor computes apparent power and power factor for a load with real
// power p (watts) and reactive power q (vars). A zero apparent power yields
// a zero power factor rather than a division-by-zero fault.
func PowerFactor(p, q float64) (Result, error) {
	if !quantity.AllFinite(p, q) {
		return Result{}, errors.Inputf("real and reactive power must be finite, got P=%v Q=%v", p, q)
	}

	s := math.Hypot(p, q)
	pf := 0.0
	if s != 0 {
		pf = p / s
	}

	return Result{
		RealPower:     p,
		ReactivePower: q,
		ApparentPower: quantity.Round2(s),
		PowerFactor:   quantity.Round3(pf),
	}, nil
}

// ThreePhasePower computes the real power of a balanced three-phase load
// from line voltage (volts), line current (amps) and power factor,
// rounded to 2 decimals.
func ThreePhasePower(vLine, iLine, pf float64) (float64, error) {
	if !quantity.AllFinite(vLine, iLine, pf) {
		return 0, errors.Input("three-phase inputs must be finite")
	}
	if vLine < 0 || iLine < 0 {
		return 0, errors.Inputf("voltage and current must be non-negative, got V=%v I=%v", vLine, iLine)
	}
	if pf < -1 || pf > 1 {
		return 0, errors.Inputf("power factor must be in [-1, 1], got %v", pf)
	}

	return quantity.Round2(math.Sqrt(3) * vLine * iLine * pf), nil
}
