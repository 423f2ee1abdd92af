// Package wind provides wind turbine and farm output calculators.
package wind

import (
	"math"

	"gridcalc/internal/errors"
)

// CurveType selects the power curve model.
type CurveType string

const (
	// CurvePiecewise ramps cubically from cut-in to rated, then holds rated
	CurvePiecewise CurveType = "piecewise"

	// CurveCp uses a saturating power-coefficient approximation against
	// the kinetic power in the swept area
	CurveCp CurveType = "cp"
)

// Turbine is a horizontal-axis turbine with a simple power curve.
type Turbine struct {
	// RatedPowerW is the nameplate electrical rating in watts
	RatedPowerW float64 `json:"rated_power_w"`

	// RotorDiameterM is the rotor diameter in meters
	RotorDiameterM float64 `json:"rotor_diameter_m"`

	// CutIn, RatedWind, CutOut are the operating wind speeds in m/s
	CutIn     float64 `json:"cut_in_ms"`
	RatedWind float64 `json:"rated_wind_ms"`
	CutOut    float64 `json:"cut_out_ms"`

	// AirDensity in kg/m³
	AirDensity float64 `json:"air_density"`

	// GearboxEff and GeneratorEff are drivetrain efficiencies in (0, 1]
	GearboxEff   float64 `json:"gearbox_eff"`
	GeneratorEff float64 `json:"generator_eff"`

	// Curve selects the power curve model
	Curve CurveType `json:"curve"`
}

// NewTurbine builds a turbine with the journal's default operating range
// and drivetrain efficiencies.
func NewTurbine(ratedPowerW, rotorDiameterM float64) (Turbine, error) {
	t := Turbine{
		RatedPowerW:    ratedPowerW,
		RotorDiameterM: rotorDiameterM,
		CutIn:          3,
		RatedWind:      12,
		CutOut:         25,
		AirDensity:     1.225,
		GearboxEff:     0.97,
		GeneratorEff:   0.95,
		Curve:          CurvePiecewise,
	}
	return t, t.Validate()
}

// Validate checks turbine parameters.
func (t Turbine) Validate() error {
	if t.RatedPowerW <= 0 || t.RotorDiameterM <= 0 {
		return errors.Input("rated power and rotor diameter must be positive")
	}
	if !(t.CutIn < t.RatedWind && t.RatedWind < t.CutOut) {
		return errors.Inputf("wind speeds must satisfy cut-in < rated < cut-out, got %v < %v < %v",
			t.CutIn, t.RatedWind, t.CutOut)
	}
	if t.AirDensity <= 0 {
		return errors.Inputf("air density must be positive, got %v", t.AirDensity)
	}
	if t.GearboxEff <= 0 || t.GearboxEff > 1 || t.GeneratorEff <= 0 || t.GeneratorEff > 1 {
		return errors.Input("drivetrain efficiencies must be in (0, 1]")
	}
	switch t.Curve {
	case CurvePiecewise, CurveCp:
	default:
		return errors.NotSupported("power curve " + string(t.Curve))
	}
	return nil
}

// RotorArea returns the swept area in m².
func (t Turbine) RotorArea() float64 {
	r := t.RotorDiameterM / 2
	return math.Pi * r * r
}

// Power returns electrical output in watts at wind speed v (m/s).
// Output is zero below cut-in and at or above cut-out.
func (t Turbine) Power(v float64) float64 {
	if v < t.CutIn || v >= t.CutOut {
		return 0
	}

	var mech float64
	switch t.Curve {
	case CurveCp:
		const cpMax, k = 0.45, 3.0
		cp := cpMax * (1 - math.Exp(-k*v/t.RatedWind))
		kinetic := 0.5 * t.AirDensity * t.RotorArea() * v * v * v
		mech = math.Min(cp*kinetic, t.RatedPowerW)
	default:
		if v < t.RatedWind {
			frac := (v - t.CutIn) / (t.RatedWind - t.CutIn)
			mech = t.RatedPowerW * frac * frac * frac
		} else {
			mech = t.RatedPowerW
		}
	}

	elec := mech * t.GearboxEff * t.GeneratorEff
	return math.Min(elec, t.RatedPowerW)
}

// SimulateSeries returns electrical output for each wind-speed sample.
func (t Turbine) SimulateSeries(windSpeeds []float64) []float64 {
	out := make([]float64, len(windSpeeds))
	for i, v := range windSpeeds {
		out[i] = t.Power(v)
	}
	return out
}

// EnergyWh integrates a power series with a fixed step of dtSeconds into
// watt-hours.
func EnergyWh(powersW []float64, dtSeconds float64) (float64, error) {
	if dtSeconds <= 0 {
		return 0, errors.Inputf("time step must be positive, got %v", dtSeconds)
	}
	total := 0.0
	for _, p := range powersW {
		total += p * dtSeconds
	}
	return total / 3600, nil
}

// CapacityFactor returns produced energy over nameplate energy for a power
// series with a fixed step.
func (t Turbine) CapacityFactor(powersW []float64, dtSeconds float64) (float64, error) {
	if len(powersW) == 0 {
		return 0, errors.Input("capacity factor requires at least one sample")
	}
	produced, err := EnergyWh(powersW, dtSeconds)
	if err != nil {
		return 0, err
	}
	nameplate := t.RatedPowerW * float64(len(powersW)) * dtSeconds / 3600
	return produced / nameplate, nil
}
