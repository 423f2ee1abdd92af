// Package fault provides symmetrical-component fault current calculators.
//
// Sequence impedances are the Thevenin equivalents seen from the fault bus,
// in per-unit; all currents are per-unit phasors.
package fault

import (
	"math"
	"math/cmplx"
	"strings"

	"gridcalc/internal/errors"
)

// Kind identifies the shunt fault type.
type Kind string

const (
	// ThreePhase is a balanced three-phase fault
	ThreePhase Kind = "3PH"

	// LineGround is a single line-to-ground fault
	LineGround Kind = "LG"

	// LineLine is a line-to-line fault
	LineLine Kind = "LL"

	// LineLineGround is a double line-to-ground fault
	LineLineGround Kind = "LLG"
)

// ParseKind normalizes a fault kind string. "SLG" is accepted as an alias
// for LineGround.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "3PH", "3P", "THREE_PHASE":
		return ThreePhase, nil
	case "LG", "SLG":
		return LineGround, nil
	case "LL":
		return LineLine, nil
	case "LLG":
		return LineLineGround, nil
	}
	return "", errors.NotSupported("fault kind " + s)
}

// SequenceNet holds the Thevenin sequence impedances to the fault point and
// the fault impedance, all in per-unit.
type SequenceNet struct {
	Z1 complex128 // positive sequence
	Z2 complex128 // negative sequence
	Z0 complex128 // zero sequence
	Zf complex128 // fault impedance
}

// Currents holds sequence and phase fault currents in per-unit.
type Currents struct {
	I0, I1, I2 complex128
	Ia, Ib, Ic complex128
}

// MagnitudeA returns the phase-A current magnitude, the conventional
// single-number summary of fault severity.
func (c Currents) MagnitudeA() float64 {
	return cmplx.Abs(c.Ia)
}

// a is the 120° rotation operator of the symmetrical component transform.
var a = cmplx.Exp(complex(0, 2*math.Pi/3))

// Calculate solves the sequence network interconnection for the given fault
// kind and returns sequence and phase currents. prefault is the prefault
// positive-sequence voltage at the fault bus in per-unit.
func Calculate(prefault complex128, net SequenceNet, kind Kind) (Currents, error) {
	var c Currents

	switch kind {
	case ThreePhase:
		denom := net.Z1 + net.Zf
		if denom == 0 {
			return c, errors.Input("three-phase fault has zero impedance path")
		}
		c.I1 = prefault / denom

	case LineGround:
		denom := net.Z1 + net.Z2 + net.Z0 + 3*net.Zf
		if denom == 0 {
			return c, errors.Input("line-to-ground fault has zero impedance path")
		}
		c.I1 = prefault / denom
		c.I2 = c.I1
		c.I0 = c.I1

	case LineLine:
		denom := net.Z1 + net.Z2 + net.Zf
		if denom == 0 {
			return c, errors.Input("line-to-line fault has zero impedance path")
		}
		c.I1 = prefault / denom
		c.I2 = -c.I1

	case LineLineGround:
		zg := net.Z0 + 3*net.Zf
		if net.Z2+zg == 0 {
			return c, errors.Input("double line-to-ground fault has zero impedance path")
		}
		denom := net.Z1 + (net.Z2*zg)/(net.Z2+zg)
		if denom == 0 {
			return c, errors.Input("double line-to-ground fault has zero impedance path")
		}
		c.I1 = prefault / denom
		c.I2 = -zg / (net.Z2 + zg) * c.I1
		c.I0 = -net.Z2 / (net.Z2 + zg) * c.I1

	default:
		return c, errors.NotSupported("fault kind " + string(kind))
	}

	// Phase currents from sequence components.
	c.Ia = c.I0 + c.I1 + c.I2
	c.Ib = c.I0 + a*a*c.I1 + a*c.I2
	c.Ic = c.I0 + a*c.I1 + a*a*c.I2
	return c, nil
}
