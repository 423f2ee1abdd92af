package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 128.06, Round2(math.Hypot(100, 80)))
	assert.Equal(t, 0.781, Round3(100/math.Hypot(100, 80)))
	assert.Equal(t, 80.28, Round2(50000.0/62280*100))
	assert.Equal(t, 1.0, Round(0.999, 2))
	assert.Equal(t, -0.78, Round(-0.781, 2))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "128.06", Format(128.058, 2))
	assert.Equal(t, "0.781", Format(0.781, 3))
	assert.Equal(t, "60.00", Format(60, 2))
	assert.Equal(t, "1", Format(1.2, 0))
}

func TestFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))

	assert.True(t, AllFinite(1, 2, 3))
	assert.False(t, AllFinite(1, math.Inf(-1)))
	assert.True(t, AllFinite())
}
