package study

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridcalc/internal/errors"
)

const sampleStudy = `
load "feeder_a" {
  real_power_w       = 100
  reactive_power_var = 80
}

resistors "divider" {
  values      = [10, 20, 30]
  combination = "parallel"
}

transmission "line_1" {
  currents_a      = [100, 80, 60]
  resistances_ohm = [0.5, 0.8, 0.6]
  load_power_w    = 50000
}

fault "bus_7" {
  kind        = "LG"
  prefault_pu = 1.0
  z1          = [0.2, 0.8]
  z2          = [0.2, 0.8]
  z0          = [0.1, 0.4]
}

powerflow "four_bus" {
  slack        = 0
  overload_pct = 100

  bus "gen" { injection_mw = 150 }
  bus "b1"  { injection_mw = -50 }
  bus "b2"  { injection_mw = -60 }
  bus "b3"  { injection_mw = -40 }

  branch {
    from         = 0
    to           = 1
    reactance_pu = 0.2
    rate_mw      = 200
  }
  branch {
    from         = 1
    to           = 2
    reactance_pu = 0.25
    rate_mw      = 150
  }
}

dispatch "day_ahead" {
  demand_mw = 180

  unit "coal" {
    a        = 0.002
    b        = 10
    c        = 100
    p_min_mw = 10
    p_max_mw = 100
  }
  unit "gas" {
    a        = 0.0035
    b        = 8
    c        = 120
    p_min_mw = 20
    p_max_mw = 80
  }
}
`

func TestParse(t *testing.T) {
	study, err := NewScanner().Parse([]byte(sampleStudy), "sample.gc.hcl")
	require.NoError(t, err)
	assert.False(t, study.Empty())

	require.Len(t, study.Loads, 1)
	assert.Equal(t, "feeder_a", study.Loads[0].Name)
	assert.Equal(t, 100.0, study.Loads[0].RealPowerW)
	assert.Equal(t, 80.0, study.Loads[0].ReactivePowerVAR)

	require.Len(t, study.Resistors, 1)
	assert.Equal(t, []float64{10, 20, 30}, study.Resistors[0].Values)
	assert.Equal(t, "parallel", study.Resistors[0].Combination)

	require.Len(t, study.Transmissions, 1)
	assert.Equal(t, 50000.0, study.Transmissions[0].LoadPowerW)

	require.Len(t, study.Faults, 1)
	assert.Equal(t, complex(0.2, 0.8), Complex(study.Faults[0].Z1))
	assert.Equal(t, complex128(0), Complex(study.Faults[0].Zf), "omitted zf defaults to zero")

	require.Len(t, study.PowerFlows, 1)
	pf := study.PowerFlows[0]
	assert.Equal(t, 0, pf.Slack)
	require.NotNil(t, pf.OverloadPct)
	assert.Equal(t, 100.0, *pf.OverloadPct)
	assert.Len(t, pf.Buses, 4)
	assert.Len(t, pf.Branches, 2)
	assert.Equal(t, "gen", pf.Buses[0].Name)

	require.Len(t, study.Dispatches, 1)
	require.Len(t, study.Dispatches[0].Units, 2)
	assert.Equal(t, "coal", study.Dispatches[0].Units[0].Name)
}

func TestParseEmptyStudy(t *testing.T) {
	study, err := NewScanner().Parse([]byte(""), "empty.gc.hcl")
	require.NoError(t, err)
	assert.True(t, study.Empty())
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "case.gc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleStudy), 0644))

	study, err := NewScanner().ScanFile(path)
	require.NoError(t, err)
	assert.Len(t, study.Loads, 1)

	_, err = NewScanner().ScanFile(filepath.Join(dir, "missing.gc.hcl"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStudy))
}

func TestParseSyntaxError(t *testing.T) {
	_, err := NewScanner().Parse([]byte(`load "x" {`), "broken.gc.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStudy))
	assert.Contains(t, err.Error(), "broken.gc.hcl")
}

func TestParseUnknownAttribute(t *testing.T) {
	src := `
load "x" {
  real_power_w       = 1
  reactive_power_var = 2
  wattage            = 3
}
`
	_, err := NewScanner().Parse([]byte(src), "attrs.gc.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStudy))
}

func TestValidateCombination(t *testing.T) {
	src := `
resistors "bad" {
  values      = [1, 2]
  combination = "mesh"
}
`
	_, err := NewScanner().Parse([]byte(src), "comb.gc.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStudy))
	assert.Contains(t, err.Error(), "mesh")
}

func TestValidateImpedancePairs(t *testing.T) {
	src := `
fault "bad" {
  kind        = "LG"
  prefault_pu = 1.0
  z1          = [0.2]
  z2          = [0.2, 0.8]
  z0          = [0.1, 0.4]
}
`
	_, err := NewScanner().Parse([]byte(src), "pairs.gc.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStudy))
}

func TestValidateEmptyNestedBlocks(t *testing.T) {
	_, err := NewScanner().Parse([]byte(`
powerflow "empty" {
  slack = 0
}
`), "pf.gc.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStudy))

	_, err = NewScanner().Parse([]byte(`
dispatch "empty" {
  demand_mw = 100
}
`), "disp.gc.hcl")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStudy))
}
