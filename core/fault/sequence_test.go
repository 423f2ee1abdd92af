package fault

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcalc/internal/errors"
)

var strongGrid = SequenceNet{
	Z1: complex(0.2, 0.8),
	Z2: complex(0.2, 0.8),
	Z0: complex(0.1, 0.4),
}

func TestParseKind(t *testing.T) {
	for input, want := range map[string]Kind{
		"3PH": ThreePhase,
		"3p":  ThreePhase,
		"lg":  LineGround,
		"SLG": LineGround,
		"LL":  LineLine,
		"llg": LineLineGround,
	} {
		got, err := ParseKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseKind("2PH")
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func TestThreePhaseFault(t *testing.T) {
	c, err := Calculate(1, strongGrid, ThreePhase)
	require.NoError(t, err)

	assert.InDelta(t, 1/cmplx.Abs(strongGrid.Z1), c.MagnitudeA(), 1e-9)
	assert.Zero(t, c.I2)
	assert.Zero(t, c.I0)

	// Balanced fault: all phase magnitudes equal.
	assert.InDelta(t, cmplx.Abs(c.Ia), cmplx.Abs(c.Ib), 1e-9)
	assert.InDelta(t, cmplx.Abs(c.Ia), cmplx.Abs(c.Ic), 1e-9)
}

func TestLineGroundFault(t *testing.T) {
	c, err := Calculate(1, strongGrid, LineGround)
	require.NoError(t, err)

	denom := strongGrid.Z1 + strongGrid.Z2 + strongGrid.Z0
	assert.InDelta(t, 3/cmplx.Abs(denom), c.MagnitudeA(), 1e-9)
	assert.Equal(t, c.I1, c.I2)
	assert.Equal(t, c.I1, c.I0)

	// Healthy phases carry no fault current.
	assert.InDelta(t, 0, cmplx.Abs(c.Ib), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(c.Ic), 1e-12)
}

func TestLineLineFault(t *testing.T) {
	c, err := Calculate(1, strongGrid, LineLine)
	require.NoError(t, err)

	// Phase A is unfaulted; B and C carry equal and opposite current.
	assert.InDelta(t, 0, c.MagnitudeA(), 1e-12)
	assert.InDelta(t, cmplx.Abs(c.Ib), cmplx.Abs(c.Ic), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(c.Ib+c.Ic), 1e-12)

	// |Ib| = √3·|I1| for a bolted line-to-line fault.
	assert.InDelta(t, math.Sqrt(3)*cmplx.Abs(c.I1), cmplx.Abs(c.Ib), 1e-12)
}

func TestLineLineGroundFault(t *testing.T) {
	c, err := Calculate(1, strongGrid, LineLineGround)
	require.NoError(t, err)

	// Phase A stays healthy; sequence currents sum to zero there.
	assert.InDelta(t, 0, c.MagnitudeA(), 1e-12)
	assert.Greater(t, cmplx.Abs(c.Ib), 0.0)
	assert.Greater(t, cmplx.Abs(c.Ic), 0.0)
}

func TestFaultImpedanceReducesCurrent(t *testing.T) {
	bolted, err := Calculate(1, strongGrid, LineGround)
	require.NoError(t, err)

	withZf := strongGrid
	withZf.Zf = complex(0.05, 0.1)
	resisted, err := Calculate(1, withZf, LineGround)
	require.NoError(t, err)

	assert.Less(t, resisted.MagnitudeA(), bolted.MagnitudeA())
}

func TestZeroImpedancePath(t *testing.T) {
	_, err := Calculate(1, SequenceNet{}, ThreePhase)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestUnknownKind(t *testing.T) {
	_, err := Calculate(1, strongGrid, Kind("bogus"))
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}
