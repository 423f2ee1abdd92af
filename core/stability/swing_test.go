package stability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcalc/internal/errors"
)

func TestSimulateSwingAcceleratingMachine(t *testing.T) {
	// Mechanical input above the transfer limit: the rotor must run away.
	resp, err := SimulateSwing(Params{
		InertiaH:        3.5,
		MechanicalPU:    0.8,
		ElectricalMaxPU: 0.7,
	}, 20, 0.01)
	require.NoError(t, err)

	require.Len(t, resp.Times, 2000)
	assert.False(t, resp.Stable)
	assert.Greater(t, resp.MaxDeltaRad, math.Pi)

	// Angle grows monotonically from a standing start with excess torque.
	assert.Greater(t, resp.DeltaRad[1999], resp.DeltaRad[500])
}

func TestSimulateSwingDampedSettles(t *testing.T) {
	resp, err := SimulateSwing(Params{
		InertiaH:        3.5,
		Damping:         2,
		MechanicalPU:    0.5,
		ElectricalMaxPU: 1.0,
	}, 20, 0.005)
	require.NoError(t, err)

	assert.True(t, resp.Stable)
	assert.Less(t, resp.MaxDeltaRad, math.Pi)

	// Damped response settles toward the equilibrium angle asin(Pm/Pmax).
	equilibrium := math.Asin(0.5)
	final := resp.DeltaRad[len(resp.DeltaRad)-1]
	assert.InDelta(t, equilibrium, final, 0.15)
}

func TestSimulateSwingAtEquilibrium(t *testing.T) {
	equilibrium := math.Asin(0.5)
	resp, err := SimulateSwing(Params{
		InertiaH:        3.5,
		MechanicalPU:    0.5,
		ElectricalMaxPU: 1.0,
		Delta0:          equilibrium,
	}, 2, 0.01)
	require.NoError(t, err)

	// Starting balanced with zero speed deviation: nothing moves.
	for _, d := range resp.DeltaRad {
		assert.InDelta(t, equilibrium, d, 1e-9)
	}
	for _, w := range resp.OmegaRadS {
		assert.InDelta(t, 0, w, 1e-9)
	}
}

func TestSimulateSwingValidation(t *testing.T) {
	_, err := SimulateSwing(Params{InertiaH: 0, MechanicalPU: 0.5}, 5, 0.01)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = SimulateSwing(Params{InertiaH: 3.5, Damping: -1}, 5, 0.01)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = SimulateSwing(Params{InertiaH: 3.5}, 5, 10)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = SimulateSwing(Params{InertiaH: 3.5}, 0, 0.01)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
