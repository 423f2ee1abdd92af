package transmission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcalc/internal/errors"
)

func TestLosses(t *testing.T) {
	got, err := Losses([]float64{100, 80, 60}, []float64{0.5, 0.8, 0.6}, 50000)
	require.NoError(t, err)

	assert.Equal(t, []float64{5000, 5120, 2160}, got.SegmentLosses)
	assert.Equal(t, 12280.0, got.TotalLoss)
	assert.InDelta(t, 80.28, got.Efficiency, 0.005)
}

func TestLossesSingleSegment(t *testing.T) {
	got, err := Losses([]float64{10}, []float64{2}, 800)
	require.NoError(t, err)

	assert.Equal(t, 200.0, got.TotalLoss)
	assert.Equal(t, 80.0, got.Efficiency)
}

func TestLossesNoSegments(t *testing.T) {
	got, err := Losses(nil, nil, 1000)
	require.NoError(t, err)

	assert.Zero(t, got.TotalLoss)
	assert.Equal(t, 100.0, got.Efficiency)
}

func TestLossesZeroEverything(t *testing.T) {
	// No load and no loss: efficiency is left at zero rather than 0/0.
	got, err := Losses(nil, nil, 0)
	require.NoError(t, err)
	assert.Zero(t, got.Efficiency)
}

func TestLossesLengthMismatch(t *testing.T) {
	_, err := Losses([]float64{100, 80}, []float64{0.5}, 50000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeDimension))
}

func TestLossesNegativeInputs(t *testing.T) {
	_, err := Losses([]float64{-1}, []float64{0.5}, 50000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = Losses([]float64{1}, []float64{-0.5}, 50000)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = Losses([]float64{1}, []float64{0.5}, -1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestSegmentLoss(t *testing.T) {
	seg := Segment{Current: 100, Resistance: 0.5}
	assert.Equal(t, 5000.0, seg.Loss())
}
