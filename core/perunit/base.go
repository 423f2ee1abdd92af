// Package perunit provides per-unit system base conversions.
package perunit

import (
	"math"

	"gridcalc/internal/errors"
)

// Base is a per-unit base built from system MVA and kV ratings.
// Derived current and impedance bases depend on whether the system is
// single- or three-phase.
type Base struct {
	// SBase is the apparent power base in volt-amps
	SBase float64

	// VBase is the voltage base in volts (line-line for three-phase)
	VBase float64

	// IBase is the derived current base in amps
	IBase float64

	// ZBase is the derived impedance base in ohms
	ZBase float64

	// ThreePhase indicates a three-phase system
	ThreePhase bool
}

// NewBase builds a per-unit base from an apparent power base in MVA and a
// voltage base in kV.
func NewBase(sBaseMVA, vBaseKV float64, threePhase bool) (Base, error) {
	if sBaseMVA <= 0 || vBaseKV <= 0 {
		return Base{}, errors.Inputf("bases must be positive, got S=%v MVA V=%v kV", sBaseMVA, vBaseKV)
	}

	b := Base{
		SBase:      sBaseMVA * 1e6,
		VBase:      vBaseKV * 1e3,
		ThreePhase: threePhase,
	}
	if threePhase {
		b.IBase = b.SBase / (math.Sqrt(3) * b.VBase)
	} else {
		b.IBase = b.SBase / b.VBase
	}
	b.ZBase = b.VBase * b.VBase / b.SBase
	return b, nil
}

// VoltagePU converts a voltage in volts to per-unit.
func (b Base) VoltagePU(v float64) float64 { return v / b.VBase }

// CurrentPU converts a current in amps to per-unit.
func (b Base) CurrentPU(i float64) float64 { return i / b.IBase }

// PowerPU converts an apparent power in MVA to per-unit.
func (b Base) PowerPU(sMVA float64) float64 { return sMVA * 1e6 / b.SBase }

// ImpedancePU converts an impedance in ohms to per-unit.
func (b Base) ImpedancePU(zOhm float64) float64 { return zOhm / b.ZBase }

// Voltage converts a per-unit voltage back to volts.
func (b Base) Voltage(vpu float64) float64 { return vpu * b.VBase }

// Current converts a per-unit current back to amps.
func (b Base) Current(ipu float64) float64 { return ipu * b.IBase }

// Power converts a per-unit power back to MVA.
func (b Base) Power(spu float64) float64 { return spu * b.SBase / 1e6 }

// Impedance converts a per-unit impedance back to ohms.
func (b Base) Impedance(zpu float64) float64 { return zpu * b.ZBase }

// ChangeBaseZ re-bases a per-unit impedance from one base to another.
func ChangeBaseZ(zPU float64, from, to Base) float64 {
	return zPU * (from.ZBase / to.ZBase)
}

// ReferToPrimary refers a transformer secondary impedance, given in per-unit
// on the transformer's own base, through an off-nominal tap to the primary
// side and expresses it in per-unit on the system base.
func ReferToPrimary(zsPU, xfmrMVA, vpKV, vsKV, tapPU float64, system Base) (float64, error) {
	if xfmrMVA <= 0 || vpKV <= 0 || vsKV <= 0 || tapPU <= 0 {
		return 0, errors.Input("transformer ratings and tap must be positive")
	}

	a := (vpKV / vsKV) * tapPU
	zbSecondary := (vsKV * 1e3) * (vsKV * 1e3) / (xfmrMVA * 1e6)
	zsOhm := zsPU * zbSecondary
	zpOhm := a * a * zsOhm
	return zpOhm / system.ZBase, nil
}
