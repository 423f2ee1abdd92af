// Package dispatch provides economic dispatch by lambda iteration.
package dispatch

import (
	"math"

	"gridcalc/internal/errors"
)

// Unit is a dispatchable generating unit with a quadratic cost curve
// C(P) = A·P² + B·P + C.
type Unit struct {
	// A, B, C are the quadratic cost coefficients
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`

	// PMin and PMax bound the unit output in MW
	PMin float64 `json:"p_min_mw"`
	PMax float64 `json:"p_max_mw"`
}

// Cost evaluates the unit cost at output p.
func (u Unit) Cost(p float64) float64 {
	return u.A*p*p + u.B*p + u.C
}

// Result is a converged dispatch.
type Result struct {
	// OutputsMW are per-unit dispatched outputs
	OutputsMW []float64 `json:"outputs_mw"`

	// Lambda is the system incremental cost at the solution
	Lambda float64 `json:"lambda"`

	// TotalCost is the summed production cost
	TotalCost float64 `json:"total_cost"`
}

// Options tune the lambda iteration.
type Options struct {
	// Tolerance is the acceptable demand mismatch in MW
	Tolerance float64

	// MaxIterations bounds the bisection
	MaxIterations int

	// LambdaMax is the upper bracket for the incremental cost
	LambdaMax float64
}

// DefaultOptions match the journal's iteration settings.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-5,
		MaxIterations: 100,
		LambdaMax:     1e4,
	}
}

// Economic dispatches the units to meet demand (MW) at minimum cost using
// bisection on the system lambda, clamping each unit to its limits.
// Demand outside the total capability range is an input error; failure to
// close the mismatch within the iteration budget is a convergence error.
func Economic(units []Unit, demand float64, opts Options) (Result, error) {
	if len(units) == 0 {
		return Result{}, errors.Input("dispatch requires at least one unit")
	}
	if opts.Tolerance <= 0 || opts.MaxIterations <= 0 || opts.LambdaMax <= 0 {
		return Result{}, errors.Input("dispatch options must be positive")
	}

	var minCap, maxCap float64
	for i, u := range units {
		if u.A <= 0 {
			return Result{}, errors.Inputf("unit %d has non-positive quadratic coefficient", i)
		}
		if u.PMin > u.PMax {
			return Result{}, errors.Inputf("unit %d has PMin %v above PMax %v", i, u.PMin, u.PMax)
		}
		minCap += u.PMin
		maxCap += u.PMax
	}
	if demand < minCap || demand > maxCap {
		return Result{}, errors.Inputf(
			"demand %v MW outside dispatchable range [%v, %v] MW", demand, minCap, maxCap)
	}

	low, high := 0.0, opts.LambdaMax
	outputs := make([]float64, len(units))
	var lambda float64

	converged := false
	for it := 0; it < opts.MaxIterations; it++ {
		lambda = 0.5 * (low + high)

		total := 0.0
		for i, u := range units {
			// Unconstrained optimum: equal incremental cost dC/dP = λ.
			p := (lambda - u.B) / (2 * u.A)
			p = math.Max(u.PMin, math.Min(u.PMax, p))
			outputs[i] = p
			total += p
		}

		mismatch := total - demand
		if math.Abs(mismatch) < opts.Tolerance {
			converged = true
			break
		}
		if mismatch > 0 {
			high = lambda
		} else {
			low = lambda
		}
	}

	if !converged {
		return Result{}, errors.Convergence("lambda iteration did not close the demand mismatch")
	}

	result := Result{OutputsMW: outputs, Lambda: lambda}
	for i, u := range units {
		result.TotalCost += u.Cost(outputs[i])
	}
	return result, nil
}
