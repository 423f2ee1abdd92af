package network

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcalc/internal/errors"
)

func TestSeries(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"three resistors", []float64{10, 20, 30}, 60},
		{"single resistor", []float64{47}, 47},
		{"empty", nil, 0},
		{"fractional", []float64{0.5, 0.25}, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Series(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParallel(t *testing.T) {
	got, err := Parallel([]float64{10, 20, 30})
	require.NoError(t, err)
	assert.InDelta(t, 5.4545, got, 1e-4)

	got, err = Parallel([]float64{100})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	// Equal resistors: R/n
	got, err = Parallel([]float64{60, 60, 60})
	require.NoError(t, err)
	assert.InDelta(t, 20, got, 1e-12)
}

func TestParallelEmptyIsZero(t *testing.T) {
	got, err := Parallel(nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestParallelMatchesReciprocalSum(t *testing.T) {
	values := []float64{3.3, 4.7, 10, 22, 47}
	got, err := Parallel(values)
	require.NoError(t, err)

	sum := 0.0
	for _, r := range values {
		sum += 1 / r
	}
	assert.InDelta(t, 1/sum, got, 1e-12)
}

func TestValidation(t *testing.T) {
	for _, values := range [][]float64{
		{10, -5},
		{0},
		{math.NaN()},
		{math.Inf(1)},
	} {
		_, err := Series(values)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeInput))

		_, err = Parallel(values)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeInput))
	}
}
