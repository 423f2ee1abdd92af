// Package analysis - Built-in analyses
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gridcalc/core/dispatch"
	"gridcalc/core/fault"
	"gridcalc/core/load"
	"gridcalc/core/network"
	"gridcalc/core/output"
	"gridcalc/core/powerflow"
	"gridcalc/core/study"
	"gridcalc/core/transmission"
)

// funcAnalysis adapts a function to the Analysis interface.
type funcAnalysis struct {
	name        string
	description string
	run         func(s *study.Study) ([]output.Report, error)
}

func (f funcAnalysis) Name() string        { return f.name }
func (f funcAnalysis) Description() string { return f.description }
func (f funcAnalysis) Run(s *study.Study) ([]output.Report, error) {
	return f.run(s)
}

func builtins() []Analysis {
	return []Analysis{
		funcAnalysis{
			name:        "load-power-factor",
			description: "Apparent power and power factor per load",
			run:         runLoads,
		},
		funcAnalysis{
			name:        "resistance",
			description: "Series or parallel equivalent resistance per resistor set",
			run:         runResistors,
		},
		funcAnalysis{
			name:        "transmission-losses",
			description: "I²R losses and delivery efficiency per segment set",
			run:         runTransmissions,
		},
		funcAnalysis{
			name:        "fault-currents",
			description: "Symmetrical-component fault currents per sequence network",
			run:         runFaults,
		},
		funcAnalysis{
			name:        "dc-powerflow",
			description: "DC load flow angles and branch flows, with optional N-1 screen",
			run:         runPowerFlows,
		},
		funcAnalysis{
			name:        "economic-dispatch",
			description: "Lambda-iteration economic dispatch per problem",
			run:         runDispatches,
		},
	}
}

func runLoads(s *study.Study) ([]output.Report, error) {
	var reports []output.Report
	for _, b := range s.Loads {
		result, err := load.PowerFactor(b.RealPowerW, b.ReactivePowerVAR)
		if err != nil {
			return nil, err
		}
		reports = append(reports, output.Report{
			Analysis: "load-power-factor",
			Subject:  b.Name,
			Rows: []output.Row{
				output.Num("Real power", result.RealPower, 2, "W"),
				output.Num("Reactive power", result.ReactivePower, 2, "var"),
				output.Num("Apparent power", result.ApparentPower, 2, "VA"),
				output.Num("Power factor", result.PowerFactor, 3, ""),
			},
		})
	}
	return reports, nil
}

func runResistors(s *study.Study) ([]output.Report, error) {
	var reports []output.Report
	for _, b := range s.Resistors {
		var (
			equivalent float64
			err        error
		)
		if b.Combination == "series" {
			equivalent, err = network.Series(b.Values)
		} else {
			equivalent, err = network.Parallel(b.Values)
		}
		if err != nil {
			return nil, err
		}
		reports = append(reports, output.Report{
			Analysis: "resistance",
			Subject:  b.Name,
			Rows: []output.Row{
				output.Str("Combination", b.Combination, ""),
				output.Num("Resistor count", float64(len(b.Values)), 0, ""),
				output.Num("Equivalent resistance", equivalent, 2, "Ω"),
			},
		})
	}
	return reports, nil
}

func runTransmissions(s *study.Study) ([]output.Report, error) {
	var reports []output.Report
	for _, b := range s.Transmissions {
		report, err := transmission.Losses(b.CurrentsA, b.ResistancesOhm, b.LoadPowerW)
		if err != nil {
			return nil, err
		}

		rows := make([]output.Row, 0, len(report.SegmentLosses)+3)
		for i, loss := range report.SegmentLosses {
			rows = append(rows, output.Num(fmt.Sprintf("Segment %d loss", i+1), loss, 2, "W"))
		}
		rows = append(rows,
			output.Num("Total loss", report.TotalLoss, 2, "W"),
			output.Num("Load power", report.LoadPower, 2, "W"),
			output.Num("Efficiency", report.Efficiency, 2, "%"),
		)
		reports = append(reports, output.Report{
			Analysis: "transmission-losses",
			Subject:  b.Name,
			Rows:     rows,
		})
	}
	return reports, nil
}

func runFaults(s *study.Study) ([]output.Report, error) {
	var reports []output.Report
	for _, b := range s.Faults {
		kind, err := fault.ParseKind(b.Kind)
		if err != nil {
			return nil, err
		}
		net := fault.SequenceNet{
			Z1: study.Complex(b.Z1),
			Z2: study.Complex(b.Z2),
			Z0: study.Complex(b.Z0),
			Zf: study.Complex(b.Zf),
		}
		currents, err := fault.Calculate(complex(b.PrefaultPU, 0), net, kind)
		if err != nil {
			return nil, err
		}
		reports = append(reports, output.Report{
			Analysis: "fault-currents",
			Subject:  b.Name,
			Rows: []output.Row{
				output.Str("Fault kind", string(kind), ""),
				output.Num("|Ia|", cmplx.Abs(currents.Ia), 3, "pu"),
				output.Num("|Ib|", cmplx.Abs(currents.Ib), 3, "pu"),
				output.Num("|Ic|", cmplx.Abs(currents.Ic), 3, "pu"),
				output.Num("|I1|", cmplx.Abs(currents.I1), 3, "pu"),
				output.Num("|I2|", cmplx.Abs(currents.I2), 3, "pu"),
				output.Num("|I0|", cmplx.Abs(currents.I0), 3, "pu"),
			},
		})
	}
	return reports, nil
}

func runPowerFlows(s *study.Study) ([]output.Report, error) {
	var reports []output.Report
	for _, b := range s.PowerFlows {
		sys := powerflow.System{
			Buses:        len(b.Buses),
			Slack:        b.Slack,
			InjectionsMW: make([]float64, len(b.Buses)),
		}
		for i, bus := range b.Buses {
			sys.InjectionsMW[i] = bus.InjectionMW
		}
		for _, br := range b.Branches {
			sys.Branches = append(sys.Branches, powerflow.Branch{
				From: br.From, To: br.To,
				ReactancePU: br.ReactancePU, RateMW: br.RateMW,
			})
		}

		sol, err := powerflow.Solve(sys)
		if err != nil {
			return nil, err
		}

		rows := make([]output.Row, 0, len(b.Buses)+len(sol.Flows))
		for i, bus := range b.Buses {
			rows = append(rows, output.Num("Angle "+bus.Name, sol.AnglesRad[i], 4, "rad"))
		}
		for _, f := range sol.Flows {
			label := fmt.Sprintf("Flow %s→%s", b.Buses[f.From].Name, b.Buses[f.To].Name)
			rows = append(rows, output.Num(label, f.MW, 2, "MW"))
		}
		reports = append(reports, output.Report{
			Analysis: "dc-powerflow",
			Subject:  b.Name,
			Rows:     rows,
		})

		if b.OverloadPct != nil {
			screen, err := screenReport(b, sys, *b.OverloadPct)
			if err != nil {
				return nil, err
			}
			reports = append(reports, screen)
		}
	}
	return reports, nil
}

func screenReport(b study.PowerFlowBlock, sys powerflow.System, overloadPct float64) (output.Report, error) {
	_, results, err := powerflow.ScreenN1(sys, overloadPct)
	if err != nil {
		return output.Report{}, err
	}

	var rows []output.Row
	insecure := 0
	for _, r := range results {
		br := b.Branches[r.Outage]
		label := fmt.Sprintf("Outage %s→%s", b.Buses[br.From].Name, b.Buses[br.To].Name)
		switch {
		case r.Islanded:
			insecure++
			rows = append(rows, output.Str(label, "ISLANDED", ""))
		case len(r.Overloads) > 0:
			insecure++
			worst := 0.0
			for _, ov := range r.Overloads {
				worst = math.Max(worst, ov.LoadingPct)
			}
			rows = append(rows, output.Num(label+" worst loading", worst, 1, "%"))
		default:
			rows = append(rows, output.Str(label, "secure", ""))
		}
	}
	rows = append(rows, output.Num("Insecure outages", float64(insecure), 0, ""))

	return output.Report{
		Analysis: "n1-screen",
		Subject:  b.Name,
		Rows:     rows,
	}, nil
}

func runDispatches(s *study.Study) ([]output.Report, error) {
	var reports []output.Report
	for _, b := range s.Dispatches {
		units := make([]dispatch.Unit, len(b.Units))
		for i, u := range b.Units {
			units[i] = dispatch.Unit{A: u.A, B: u.B, C: u.C, PMin: u.PMinMW, PMax: u.PMaxMW}
		}

		result, err := dispatch.Economic(units, b.DemandMW, dispatch.DefaultOptions())
		if err != nil {
			return nil, err
		}

		rows := make([]output.Row, 0, len(units)+3)
		for i, u := range b.Units {
			rows = append(rows, output.Num("Output "+u.Name, result.OutputsMW[i], 2, "MW"))
		}
		rows = append(rows,
			output.Num("Demand", b.DemandMW, 2, "MW"),
			output.Num("Lambda", result.Lambda, 3, ""),
			output.Num("Total cost", result.TotalCost, 2, ""),
		)
		reports = append(reports, output.Report{
			Analysis: "economic-dispatch",
			Subject:  b.Name,
			Rows:     rows,
		})
	}
	return reports, nil
}
