package powerflow

// Overload is a branch loaded beyond the screening threshold under an
// outage.
type Overload struct {
	From       int     `json:"from"`
	To         int     `json:"to"`
	MW         float64 `json:"mw"`
	RateMW     float64 `json:"rate_mw"`
	LoadingPct float64 `json:"loading_pct"`
}

// OutageResult is the screening outcome for one branch outage.
type OutageResult struct {
	// Outage is the index of the removed branch
	Outage int `json:"outage"`

	// Islanded marks outages that split the network
	Islanded bool `json:"islanded"`

	// Overloads are branches above the threshold, empty when secure
	Overloads []Overload `json:"overloads"`
}

// Secure reports whether the outage caused neither islanding nor overloads.
func (r OutageResult) Secure() bool {
	return !r.Islanded && len(r.Overloads) == 0
}

// ScreenN1 removes each branch in turn, re-solves the DC load flow, and
// reports overloads above overloadPct. Outages that island the network are
// flagged rather than failing the screen. The base-case solution is
// returned alongside the per-outage results.
func ScreenN1(sys System, overloadPct float64) (Solution, []OutageResult, error) {
	base, err := Solve(sys)
	if err != nil {
		return Solution{}, nil, err
	}

	results := make([]OutageResult, 0, len(sys.Branches))
	for k := range sys.Branches {
		outaged := sys
		outaged.Branches = make([]Branch, 0, len(sys.Branches)-1)
		outaged.Branches = append(outaged.Branches, sys.Branches[:k]...)
		outaged.Branches = append(outaged.Branches, sys.Branches[k+1:]...)

		sol, err := Solve(outaged)
		if err != nil {
			results = append(results, OutageResult{Outage: k, Islanded: true})
			continue
		}

		var overloads []Overload
		for _, f := range sol.Flows {
			if f.LoadingPct > overloadPct {
				overloads = append(overloads, Overload{
					From: f.From, To: f.To, MW: f.MW,
					RateMW: f.RateMW, LoadingPct: f.LoadingPct,
				})
			}
		}
		results = append(results, OutageResult{Outage: k, Overloads: overloads})
	}

	return base, results, nil
}
