// Package stability provides classical swing-equation simulation.
package stability

import (
	"math"

	"gridcalc/internal/errors"
)

// Params describes a single machine against an infinite bus.
type Params struct {
	// InertiaH is the inertia constant in MW·s/MVA
	InertiaH float64 `json:"inertia_h"`

	// Damping is the damping coefficient
	Damping float64 `json:"damping"`

	// MechanicalPU is the mechanical input power in per-unit
	MechanicalPU float64 `json:"mechanical_pu"`

	// ElectricalMaxPU is the peak electrical power transfer in per-unit;
	// electrical output follows Pe = ElectricalMaxPU·sin(δ)
	ElectricalMaxPU float64 `json:"electrical_max_pu"`

	// Delta0 and Omega0 are the initial rotor angle (rad) and speed
	// deviation (rad/s)
	Delta0 float64 `json:"delta0_rad"`
	Omega0 float64 `json:"omega0_rad_s"`
}

// Response is a simulated swing trajectory.
type Response struct {
	// Times are the sample instants in seconds
	Times []float64 `json:"times_s"`

	// DeltaRad is the rotor angle series
	DeltaRad []float64 `json:"delta_rad"`

	// OmegaRadS is the speed deviation series
	OmegaRadS []float64 `json:"omega_rad_s"`

	// MaxDeltaRad is the largest angle excursion magnitude
	MaxDeltaRad float64 `json:"max_delta_rad"`

	// Stable is false when the rotor angle ran past π (pole slip)
	Stable bool `json:"stable"`
}

// SimulateSwing integrates the swing equation
//
//	2H·dω/dt = Pm − Pmax·sin(δ) − D·ω,  dδ/dt = ω
//
// with explicit Euler steps of dt seconds over tEnd seconds.
func SimulateSwing(p Params, tEnd, dt float64) (Response, error) {
	if p.InertiaH <= 0 {
		return Response{}, errors.Inputf("inertia constant must be positive, got %v", p.InertiaH)
	}
	if p.Damping < 0 {
		return Response{}, errors.Inputf("damping must be non-negative, got %v", p.Damping)
	}
	if tEnd <= 0 || dt <= 0 || dt >= tEnd {
		return Response{}, errors.Inputf("need 0 < dt < tEnd, got dt=%v tEnd=%v", dt, tEnd)
	}

	steps := int(tEnd / dt)
	resp := Response{
		Times:     make([]float64, steps),
		DeltaRad:  make([]float64, steps),
		OmegaRadS: make([]float64, steps),
		Stable:    true,
	}

	delta, omega := p.Delta0, p.Omega0
	for i := 0; i < steps; i++ {
		resp.Times[i] = float64(i) * dt
		resp.DeltaRad[i] = delta
		resp.OmegaRadS[i] = omega

		if abs := math.Abs(delta); abs > resp.MaxDeltaRad {
			resp.MaxDeltaRad = abs
		}
		if math.Abs(delta) > math.Pi {
			resp.Stable = false
		}

		pe := p.ElectricalMaxPU * math.Sin(delta)
		omega += dt * (p.MechanicalPU - pe - p.Damping*omega) / (2 * p.InertiaH)
		delta += dt * omega
	}

	return resp, nil
}
