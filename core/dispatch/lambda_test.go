package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcalc/internal/errors"
)

func journalUnits() []Unit {
	return []Unit{
		{A: 0.002, B: 10, C: 100, PMin: 10, PMax: 100},
		{A: 0.0035, B: 8, C: 120, PMin: 20, PMax: 80},
		{A: 0.001, B: 12, C: 150, PMin: 15, PMax: 120},
	}
}

func TestEconomic(t *testing.T) {
	got, err := Economic(journalUnits(), 180, DefaultOptions())
	require.NoError(t, err)

	// Cheap unit 2 rides its ceiling, expensive unit 3 its floor, and the
	// marginal unit 1 picks up the remainder.
	assert.InDelta(t, 85, got.OutputsMW[0], 1e-3)
	assert.InDelta(t, 80, got.OutputsMW[1], 1e-3)
	assert.InDelta(t, 15, got.OutputsMW[2], 1e-3)
	assert.InDelta(t, 10.34, got.Lambda, 1e-2)
	assert.InDelta(t, 2077.08, got.TotalCost, 0.5)

	total := 0.0
	for _, p := range got.OutputsMW {
		total += p
	}
	assert.InDelta(t, 180, total, 1e-4)
}

func TestEconomicEqualIncrementalCost(t *testing.T) {
	units := []Unit{
		{A: 0.01, B: 10, PMin: 0, PMax: 1000},
		{A: 0.02, B: 10, PMin: 0, PMax: 1000},
	}
	got, err := Economic(units, 300, DefaultOptions())
	require.NoError(t, err)

	// Both units interior: incremental costs equal lambda.
	for i, u := range units {
		ic := 2*u.A*got.OutputsMW[i] + u.B
		assert.InDelta(t, got.Lambda, ic, 1e-3, "unit %d", i)
	}
	// Inverse-A split: unit 0 carries twice unit 1.
	assert.InDelta(t, 200, got.OutputsMW[0], 1e-2)
	assert.InDelta(t, 100, got.OutputsMW[1], 1e-2)
}

func TestEconomicLimits(t *testing.T) {
	got, err := Economic(journalUnits(), 45, DefaultOptions())
	require.NoError(t, err)
	for i, u := range journalUnits() {
		assert.GreaterOrEqual(t, got.OutputsMW[i], u.PMin)
		assert.LessOrEqual(t, got.OutputsMW[i], u.PMax)
	}
}

func TestEconomicInfeasibleDemand(t *testing.T) {
	_, err := Economic(journalUnits(), 500, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = Economic(journalUnits(), 10, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestEconomicValidation(t *testing.T) {
	_, err := Economic(nil, 100, DefaultOptions())
	assert.True(t, errors.IsType(err, errors.TypeInput))

	units := journalUnits()
	units[0].A = 0
	_, err = Economic(units, 180, DefaultOptions())
	assert.True(t, errors.IsType(err, errors.TypeInput))

	units = journalUnits()
	units[1].PMin = 90
	_, err = Economic(units, 180, DefaultOptions())
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestEconomicConvergenceBudget(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxIterations = 2
	opts.Tolerance = 1e-12

	_, err := Economic(journalUnits(), 180, opts)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConvergence))
}

func TestUnitCost(t *testing.T) {
	u := Unit{A: 0.002, B: 10, C: 100}
	assert.InDelta(t, 0.002*85*85+10*85+100, u.Cost(85), 1e-9)
	assert.False(t, math.IsNaN(u.Cost(0)))
}
