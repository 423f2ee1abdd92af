// Package study provides declarative study files describing calculation
// subjects: loads, resistor networks, transmission segment sets, sequence
// networks, DC load flow cases, and dispatch problems.
package study

// Study is a parsed study file.
type Study struct {
	Loads         []LoadBlock         `hcl:"load,block"`
	Resistors     []ResistorBlock     `hcl:"resistors,block"`
	Transmissions []TransmissionBlock `hcl:"transmission,block"`
	Faults        []FaultBlock        `hcl:"fault,block"`
	PowerFlows    []PowerFlowBlock    `hcl:"powerflow,block"`
	Dispatches    []DispatchBlock     `hcl:"dispatch,block"`
}

// Empty reports whether the study declares no subjects.
func (s *Study) Empty() bool {
	return len(s.Loads) == 0 && len(s.Resistors) == 0 && len(s.Transmissions) == 0 &&
		len(s.Faults) == 0 && len(s.PowerFlows) == 0 && len(s.Dispatches) == 0
}

// LoadBlock declares a load by real and reactive power.
type LoadBlock struct {
	Name             string  `hcl:"name,label"`
	RealPowerW       float64 `hcl:"real_power_w"`
	ReactivePowerVAR float64 `hcl:"reactive_power_var"`
}

// ResistorBlock declares a resistor collection and how to combine it.
type ResistorBlock struct {
	Name string `hcl:"name,label"`

	// Values are resistances in ohms
	Values []float64 `hcl:"values"`

	// Combination is "series" or "parallel"
	Combination string `hcl:"combination"`
}

// TransmissionBlock declares per-segment currents and resistances plus the
// delivered load power.
type TransmissionBlock struct {
	Name           string    `hcl:"name,label"`
	CurrentsA      []float64 `hcl:"currents_a"`
	ResistancesOhm []float64 `hcl:"resistances_ohm"`
	LoadPowerW     float64   `hcl:"load_power_w"`
}

// FaultBlock declares a sequence network and fault kind. Impedances are
// two-element [real, imag] per-unit pairs.
type FaultBlock struct {
	Name       string    `hcl:"name,label"`
	Kind       string    `hcl:"kind"`
	PrefaultPU float64   `hcl:"prefault_pu"`
	Z1         []float64 `hcl:"z1"`
	Z2         []float64 `hcl:"z2"`
	Z0         []float64 `hcl:"z0"`
	Zf         []float64 `hcl:"zf,optional"`
}

// PowerFlowBlock declares a DC load flow case; an overload threshold turns
// on N-1 screening.
type PowerFlowBlock struct {
	Name        string        `hcl:"name,label"`
	Slack       int           `hcl:"slack"`
	OverloadPct *float64      `hcl:"overload_pct,optional"`
	Buses       []BusBlock    `hcl:"bus,block"`
	Branches    []BranchBlock `hcl:"branch,block"`
}

// BusBlock declares one bus with its net injection. Bus indices follow
// declaration order.
type BusBlock struct {
	Name        string  `hcl:"name,label"`
	InjectionMW float64 `hcl:"injection_mw"`
}

// BranchBlock declares one branch by zero-based bus indices.
type BranchBlock struct {
	From        int     `hcl:"from"`
	To          int     `hcl:"to"`
	ReactancePU float64 `hcl:"reactance_pu"`
	RateMW      float64 `hcl:"rate_mw,optional"`
}

// DispatchBlock declares an economic dispatch problem.
type DispatchBlock struct {
	Name     string      `hcl:"name,label"`
	DemandMW float64     `hcl:"demand_mw"`
	Units    []UnitBlock `hcl:"unit,block"`
}

// UnitBlock declares one generating unit's quadratic cost and limits.
type UnitBlock struct {
	Name   string  `hcl:"name,label"`
	A      float64 `hcl:"a"`
	B      float64 `hcl:"b"`
	C      float64 `hcl:"c,optional"`
	PMinMW float64 `hcl:"p_min_mw"`
	PMaxMW float64 `hcl:"p_max_mw"`
}
