package wind

import (
	"math"

	"gridcalc/internal/errors"
)

// Farm is a rectangular grid of identical turbines with Jensen-model wake
// losses between rows.
type Farm struct {
	// Rows and Cols define the layout; wind flows along rows, so each row
	// sits in the wake of the rows upstream of it
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// Spacing is the row spacing in rotor diameters
	Spacing float64 `json:"spacing_diameters"`

	// WakeDecay is the Jensen decay constant, typically 0.05–0.1
	WakeDecay float64 `json:"wake_decay"`

	// ThrustCoefficient for the wake deficit, typically around 0.8
	ThrustCoefficient float64 `json:"thrust_coefficient"`

	// Turbine is the common turbine model
	Turbine Turbine `json:"turbine"`
}

// NewFarm builds a farm with journal-typical wake parameters.
func NewFarm(rows, cols int, spacing float64, turbine Turbine) (Farm, error) {
	f := Farm{
		Rows:              rows,
		Cols:              cols,
		Spacing:           spacing,
		WakeDecay:         0.075,
		ThrustCoefficient: 0.8,
		Turbine:           turbine,
	}
	return f, f.Validate()
}

// Validate checks farm parameters.
func (f Farm) Validate() error {
	if f.Rows < 1 || f.Cols < 1 {
		return errors.Inputf("farm layout must be at least 1×1, got %d×%d", f.Rows, f.Cols)
	}
	if f.Spacing <= 0 {
		return errors.Inputf("row spacing must be positive, got %v", f.Spacing)
	}
	if f.WakeDecay <= 0 {
		return errors.Inputf("wake decay must be positive, got %v", f.WakeDecay)
	}
	if f.ThrustCoefficient <= 0 || f.ThrustCoefficient >= 1 {
		return errors.Inputf("thrust coefficient must be in (0, 1), got %v", f.ThrustCoefficient)
	}
	return f.Turbine.Validate()
}

// WakeSpeed returns the Jensen-model wind speed at downstream distance
// xDist meters behind a rotor seeing free-stream speed v.
func (f Farm) WakeSpeed(v, xDist float64) float64 {
	r0 := f.Turbine.RotorDiameterM / 2
	r := r0 + f.WakeDecay*xDist
	deficit := (1 - math.Sqrt(1-f.ThrustCoefficient)) * (r0 / r) * (r0 / r)
	return v * (1 - deficit)
}

// Power returns total farm output in watts for a uniform free-stream wind
// speed, along with per-turbine outputs in row-major order. The first row
// sees free wind; downstream rows see the wake-reduced speed.
func (f Farm) Power(v float64) (float64, []float64) {
	outputs := make([]float64, f.Rows*f.Cols)
	total := 0.0

	for row := 0; row < f.Rows; row++ {
		vEff := v
		if row > 0 {
			xDist := float64(row) * f.Spacing * f.Turbine.RotorDiameterM
			vEff = f.WakeSpeed(v, xDist)
		}
		p := f.Turbine.Power(vEff)
		for col := 0; col < f.Cols; col++ {
			outputs[row*f.Cols+col] = p
			total += p
		}
	}

	return total, outputs
}

// IdealPower returns farm output ignoring wakes: turbine count times the
// single-turbine output.
func (f Farm) IdealPower(v float64) float64 {
	return float64(f.Rows*f.Cols) * f.Turbine.Power(v)
}

// WakeLossPct returns the percentage of ideal output lost to wakes at wind
// speed v; zero when the ideal output is zero.
func (f Farm) WakeLossPct(v float64) float64 {
	ideal := f.IdealPower(v)
	if ideal == 0 {
		return 0
	}
	actual, _ := f.Power(v)
	return (ideal - actual) / ideal * 100
}
