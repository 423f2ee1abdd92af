// Package powerflow provides DC load flow and contingency screening.
//
// The DC approximation treats branches as pure reactances with unity
// voltage magnitudes, so bus angles follow from a single linear solve and
// branch flows are angle differences over reactance. Injections and flows
// are in MW on the system base.
package powerflow

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"gridcalc/internal/errors"
)

// Branch is a transmission branch between two buses.
type Branch struct {
	// From and To are zero-based bus indices
	From int `json:"from"`
	To   int `json:"to"`

	// ReactancePU is the series reactance in per-unit
	ReactancePU float64 `json:"reactance_pu"`

	// RateMW is the thermal rating; 0 means unrated
	RateMW float64 `json:"rate_mw"`
}

// System is a DC load flow case.
type System struct {
	// Buses is the bus count
	Buses int `json:"buses"`

	// Slack is the reference bus index
	Slack int `json:"slack"`

	// Branches are the network branches
	Branches []Branch `json:"branches"`

	// InjectionsMW are net bus injections (generation minus load)
	InjectionsMW []float64 `json:"injections_mw"`
}

// Flow is the solved loading of one branch.
type Flow struct {
	From int `json:"from"`
	To   int `json:"to"`

	// MW is the active power flow, positive from From to To
	MW float64 `json:"mw"`

	// RateMW is the branch rating carried through from the input
	RateMW float64 `json:"rate_mw"`

	// LoadingPct is 100·|MW|/rate; NaN for unrated branches
	LoadingPct float64 `json:"loading_pct"`
}

// Solution holds solved bus angles and branch flows.
type Solution struct {
	// AnglesRad are bus voltage angles, zero at the slack
	AnglesRad []float64 `json:"angles_rad"`

	// Flows are per-branch loadings in input order
	Flows []Flow `json:"flows"`
}

// Validate checks structural consistency of the case.
func (s System) Validate() error {
	if s.Buses < 1 {
		return errors.Inputf("system needs at least one bus, got %d", s.Buses)
	}
	if s.Slack < 0 || s.Slack >= s.Buses {
		return errors.Inputf("slack bus %d out of range [0, %d)", s.Slack, s.Buses)
	}
	if len(s.InjectionsMW) != s.Buses {
		return errors.Newf(errors.TypeDimension,
			"injections length %d does not match bus count %d", len(s.InjectionsMW), s.Buses)
	}
	for i, br := range s.Branches {
		if br.From < 0 || br.From >= s.Buses || br.To < 0 || br.To >= s.Buses {
			return errors.Inputf("branch %d endpoints (%d,%d) out of range", i, br.From, br.To)
		}
		if br.From == br.To {
			return errors.Inputf("branch %d connects bus %d to itself", i, br.From)
		}
		if br.ReactancePU == 0 {
			return errors.Inputf("branch %d has zero reactance", i)
		}
	}
	return nil
}

// Solve runs a DC load flow and returns bus angles and branch flows.
// A singular reduced susceptance matrix (an islanded network) is reported
// as an input error.
func Solve(sys System) (Solution, error) {
	if err := sys.Validate(); err != nil {
		return Solution{}, err
	}

	angles, err := solveAngles(sys)
	if err != nil {
		return Solution{}, err
	}

	flows := make([]Flow, len(sys.Branches))
	for i, br := range sys.Branches {
		mw := (angles[br.From] - angles[br.To]) / br.ReactancePU
		pct := math.NaN()
		if br.RateMW > 0 {
			pct = 100 * math.Abs(mw) / br.RateMW
		}
		flows[i] = Flow{From: br.From, To: br.To, MW: mw, RateMW: br.RateMW, LoadingPct: pct}
	}

	return Solution{AnglesRad: angles, Flows: flows}, nil
}

func solveAngles(sys System) ([]float64, error) {
	n := sys.Buses
	angles := make([]float64, n)
	if n == 1 {
		return angles, nil
	}

	b := mat.NewDense(n, n, nil)
	for _, br := range sys.Branches {
		susceptance := -1.0 / br.ReactancePU
		b.Set(br.From, br.From, b.At(br.From, br.From)-susceptance)
		b.Set(br.To, br.To, b.At(br.To, br.To)-susceptance)
		b.Set(br.From, br.To, b.At(br.From, br.To)+susceptance)
		b.Set(br.To, br.From, b.At(br.To, br.From)+susceptance)
	}

	// Remove the slack row/column and solve the reduced system.
	keep := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != sys.Slack {
			keep = append(keep, i)
		}
	}

	reduced := mat.NewDense(n-1, n-1, nil)
	rhs := mat.NewVecDense(n-1, nil)
	for ri, i := range keep {
		for ci, j := range keep {
			reduced.Set(ri, ci, b.At(i, j))
		}
		rhs.SetVec(ri, sys.InjectionsMW[i])
	}

	var theta mat.VecDense
	if err := theta.SolveVec(reduced, rhs); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "susceptance matrix is singular (islanded network)", err)
	}

	for ri, i := range keep {
		angles[i] = theta.AtVec(ri)
	}
	return angles, nil
}
