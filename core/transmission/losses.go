// Package transmission provides transmission loss and efficiency calculators.
package transmission

import (
	"gridcalc/core/quantity"
	"gridcalc/internal/errors"
)

// Segment is one transmission segment carrying a current through a
// line resistance.
type Segment struct {
	// Current in amps
	Current float64 `json:"current_a"`

	// Resistance in ohms
	Resistance float64 `json:"resistance_ohm"`
}

// Loss returns the I²R dissipation of the segment in watts.
func (s Segment) Loss() float64 {
	return s.Current * s.Current * s.Resistance
}

// Report contains aggregate transmission results.
type Report struct {
	// SegmentLosses are the per-segment I²R losses in watts
	SegmentLosses []float64 `json:"segment_losses_w"`

	// TotalLoss is the summed loss in watts
	TotalLoss float64 `json:"total_loss_w"`

	// LoadPower is the delivered load power in watts
	LoadPower float64 `json:"load_power_w"`

	// Efficiency is load/(load+loss)×100, rounded to 2 decimals
	Efficiency float64 `json:"efficiency_pct"`
}

// Losses computes aggregate line losses for per-segment currents and
// resistances, plus the delivered load power. The two slices must have
// equal length; all values must be non-negative and finite.
func Losses(currents, resistances []float64, loadPower float64) (Report, error) {
	if len(currents) != len(resistances) {
		return Report{}, errors.Newf(errors.TypeDimension,
			"currents and resistances must have equal length, got %d and %d",
			len(currents), len(resistances))
	}
	if !quantity.IsFinite(loadPower) || loadPower < 0 {
		return Report{}, errors.Inputf("load power must be a non-negative finite value, got %v", loadPower)
	}

	segments := make([]Segment, len(currents))
	for i := range currents {
		if !quantity.AllFinite(currents[i], resistances[i]) {
			return Report{}, errors.Inputf("segment %d has non-finite values", i)
		}
		if currents[i] < 0 || resistances[i] < 0 {
			return Report{}, errors.Inputf("segment %d has negative current or resistance", i)
		}
		segments[i] = Segment{Current: currents[i], Resistance: resistances[i]}
	}

	return FromSegments(segments, loadPower)
}

// FromSegments computes the aggregate report for pre-built segments.
// Inputs are assumed validated.
func FromSegments(segments []Segment, loadPower float64) (Report, error) {
	report := Report{
		SegmentLosses: make([]float64, len(segments)),
		LoadPower:     loadPower,
	}

	for i, seg := range segments {
		loss := seg.Loss()
		report.SegmentLosses[i] = loss
		report.TotalLoss += loss
	}

	generated := loadPower + report.TotalLoss
	if generated > 0 {
		report.Efficiency = quantity.Round2(loadPower / generated * 100)
	}

	return report, nil
}
