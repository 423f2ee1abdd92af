// Package transformer provides two-winding transformer calculators.
package transformer

import (
	"math"
	"math/cmplx"

	"gridcalc/internal/errors"
)

// TapStudy describes a two-winding transformer with a series impedance and
// an off-nominal tap serving a complex load at its secondary.
type TapStudy struct {
	// PrimaryKV is the applied primary line-line voltage in kV
	PrimaryKV float64

	// ZSeriesPU is the series impedance in per-unit on the system base
	ZSeriesPU float64

	// SBaseMVA is the system apparent power base in MVA
	SBaseMVA float64

	// PrimaryBaseKV and SecondaryBaseKV are the winding voltage bases
	PrimaryBaseKV   float64
	SecondaryBaseKV float64

	// TapPU is the off-nominal tap ratio in per-unit (1.0 = nominal)
	TapPU float64

	// LoadMVA and LoadPF describe the secondary load
	LoadMVA float64
	LoadPF  float64
}

// SecondaryVoltage returns the loaded secondary line-line voltage in kV and
// the effective turns ratio. The series impedance is modeled on the primary
// side; the load is reflected through the tap-adjusted turns ratio.
func SecondaryVoltage(s TapStudy) (kv float64, ratio float64, err error) {
	if s.PrimaryKV <= 0 || s.SBaseMVA <= 0 || s.PrimaryBaseKV <= 0 || s.SecondaryBaseKV <= 0 {
		return 0, 0, errors.Input("transformer voltages and power base must be positive")
	}
	if s.TapPU <= 0 {
		return 0, 0, errors.Inputf("tap ratio must be positive, got %v", s.TapPU)
	}
	if s.LoadPF <= 0 || s.LoadPF > 1 {
		return 0, 0, errors.Inputf("load power factor must be in (0, 1], got %v", s.LoadPF)
	}

	zBase := (s.PrimaryBaseKV * 1e3) * (s.PrimaryBaseKV * 1e3) / (s.SBaseMVA * 1e6)
	zSeries := complex(s.ZSeriesPU*zBase, 0)

	a := (s.PrimaryBaseKV / s.SecondaryBaseKV) * s.TapPU

	// Complex load power, lagging.
	sinPhi := math.Sqrt(1 - s.LoadPF*s.LoadPF)
	loadVA := complex(s.LoadMVA*1e6*s.LoadPF, s.LoadMVA*1e6*sinPhi)

	vpLine := complex(s.PrimaryKV*1e3, 0)
	sqrt3 := complex(math.Sqrt(3), 0)

	// Load reflected to the primary through a², primary line current,
	// series drop, then back through the turns ratio.
	sp := loadVA / complex(a*a, 0)
	ipLine := cmplx.Conj(sp) / (sqrt3 * vpLine)
	vDrop := ipLine * zSeries
	vpLoaded := vpLine - vDrop*sqrt3
	vsLine := vpLoaded / complex(a, 0)

	return cmplx.Abs(vsLine) / 1e3, a, nil
}
