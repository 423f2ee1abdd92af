// Package netload provides net-load, ramp, and reserve statistics for
// parallel load and renewable generation series.
package netload

import (
	"math"

	"gridcalc/internal/errors"
)

// Profile holds aligned MW series with a fixed sampling step.
type Profile struct {
	// LoadMW is gross demand
	LoadMW []float64 `json:"load_mw"`

	// PVMW and WindMW are renewable injections netted off the load
	PVMW   []float64 `json:"pv_mw"`
	WindMW []float64 `json:"wind_mw"`

	// StepMinutes is the sampling interval
	StepMinutes float64 `json:"step_minutes"`
}

// Stats are the derived series and headline figures.
type Stats struct {
	// NetLoadMW is load minus PV minus wind, per sample
	NetLoadMW []float64 `json:"net_load_mw"`

	// RampMW is the sample-to-sample net-load change; entry i is the ramp
	// into sample i+1
	RampMW []float64 `json:"ramp_mw"`

	// ReserveReqMW is the reserve requirement per sample: the reserve
	// fraction times the running peak load seen so far
	ReserveReqMW []float64 `json:"reserve_req_mw"`

	PeakLoadMW    float64 `json:"peak_load_mw"`
	MinNetLoadMW  float64 `json:"min_net_load_mw"`
	MaxRampUpMW   float64 `json:"max_ramp_up_mw"`
	MaxRampDownMW float64 `json:"max_ramp_down_mw"`
}

// Analyze derives net-load statistics. reserveFraction is the reserve
// policy as a fraction of running peak load (e.g. 0.03 for 3%).
func Analyze(p Profile, reserveFraction float64) (Stats, error) {
	n := len(p.LoadMW)
	if n == 0 {
		return Stats{}, errors.Input("profile has no samples")
	}
	if len(p.PVMW) != n || len(p.WindMW) != n {
		return Stats{}, errors.Newf(errors.TypeDimension,
			"series lengths differ: load=%d pv=%d wind=%d", n, len(p.PVMW), len(p.WindMW))
	}
	if p.StepMinutes <= 0 {
		return Stats{}, errors.Inputf("step must be positive, got %v minutes", p.StepMinutes)
	}
	if reserveFraction < 0 {
		return Stats{}, errors.Inputf("reserve fraction must be non-negative, got %v", reserveFraction)
	}

	stats := Stats{
		NetLoadMW:     make([]float64, n),
		ReserveReqMW:  make([]float64, n),
		PeakLoadMW:    math.Inf(-1),
		MinNetLoadMW:  math.Inf(1),
		MaxRampUpMW:   math.Inf(-1),
		MaxRampDownMW: math.Inf(1),
	}
	if n > 1 {
		stats.RampMW = make([]float64, n-1)
	}

	runningPeak := math.Inf(-1)
	for i := 0; i < n; i++ {
		net := p.LoadMW[i] - p.PVMW[i] - p.WindMW[i]
		stats.NetLoadMW[i] = net

		if p.LoadMW[i] > stats.PeakLoadMW {
			stats.PeakLoadMW = p.LoadMW[i]
		}
		if net < stats.MinNetLoadMW {
			stats.MinNetLoadMW = net
		}
		if p.LoadMW[i] > runningPeak {
			runningPeak = p.LoadMW[i]
		}
		stats.ReserveReqMW[i] = reserveFraction * runningPeak

		if i > 0 {
			ramp := net - stats.NetLoadMW[i-1]
			stats.RampMW[i-1] = ramp
			if ramp > stats.MaxRampUpMW {
				stats.MaxRampUpMW = ramp
			}
			if ramp < stats.MaxRampDownMW {
				stats.MaxRampDownMW = ramp
			}
		}
	}

	if n == 1 {
		stats.MaxRampUpMW, stats.MaxRampDownMW = 0, 0
	}
	return stats, nil
}
