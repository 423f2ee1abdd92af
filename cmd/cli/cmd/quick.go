// Package cmd - one-shot calculator commands
package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gridcalc/core/load"
	"gridcalc/core/network"
	"gridcalc/core/output"
	"gridcalc/core/transmission"
	"gridcalc/internal/config"
	"gridcalc/internal/errors"
)

var (
	loadP float64
	loadQ float64

	networkSeries   string
	networkParallel string

	transCurrents    string
	transResistances string
	transLoadPower   float64
)

// loadCmd computes apparent power and power factor for one load
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Apparent power and power factor for one load",
	Example: `  gridcalc load --p 100 --q 80`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := load.PowerFactor(loadP, loadQ)
		if err != nil {
			return err
		}
		return render(output.Report{
			Analysis: "load-power-factor",
			Rows: []output.Row{
				output.Num("Real power", result.RealPower, 2, "W"),
				output.Num("Reactive power", result.ReactivePower, 2, "var"),
				output.Num("Apparent power", result.ApparentPower, 2, "VA"),
				output.Num("Power factor", result.PowerFactor, 3, ""),
			},
		})
	},
}

// networkCmd computes equivalent resistance of a resistor collection
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Series or parallel equivalent resistance",
	Example: `  gridcalc network --series 10,20,30
  gridcalc network --parallel 10,20,30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (networkSeries == "") == (networkParallel == "") {
			return errors.Input("exactly one of --series or --parallel is required")
		}

		combination, spec := "series", networkSeries
		if networkParallel != "" {
			combination, spec = "parallel", networkParallel
		}
		values, err := parseFloats(spec)
		if err != nil {
			return err
		}

		var equivalent float64
		if combination == "series" {
			equivalent, err = network.Series(values)
		} else {
			equivalent, err = network.Parallel(values)
		}
		if err != nil {
			return err
		}
		return render(output.Report{
			Analysis: "resistance",
			Rows: []output.Row{
				output.Str("Combination", combination, ""),
				output.Num("Equivalent resistance", equivalent, 2, "Ω"),
			},
		})
	},
}

// transmissionCmd computes aggregate line losses and efficiency
var transmissionCmd = &cobra.Command{
	Use:   "transmission",
	Short: "Transmission losses and delivery efficiency",
	Example: `  gridcalc transmission --currents 100,80,60 --resistances 0.5,0.8,0.6 --load 50000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		currents, err := parseFloats(transCurrents)
		if err != nil {
			return err
		}
		resistances, err := parseFloats(transResistances)
		if err != nil {
			return err
		}

		report, err := transmission.Losses(currents, resistances, transLoadPower)
		if err != nil {
			return err
		}
		return render(output.Report{
			Analysis: "transmission-losses",
			Rows: []output.Row{
				output.Num("Total loss", report.TotalLoss, 2, "W"),
				output.Num("Load power", report.LoadPower, 2, "W"),
				output.Num("Efficiency", report.Efficiency, 2, "%"),
			},
		})
	},
}

func init() {
	loadCmd.Flags().Float64Var(&loadP, "p", 0, "real power in watts")
	loadCmd.Flags().Float64Var(&loadQ, "q", 0, "reactive power in vars")

	networkCmd.Flags().StringVar(&networkSeries, "series", "", "comma-separated resistances in ohms")
	networkCmd.Flags().StringVar(&networkParallel, "parallel", "", "comma-separated resistances in ohms")

	transmissionCmd.Flags().StringVar(&transCurrents, "currents", "", "comma-separated segment currents in amps")
	transmissionCmd.Flags().StringVar(&transResistances, "resistances", "", "comma-separated segment resistances in ohms")
	transmissionCmd.Flags().Float64Var(&transLoadPower, "load", 0, "delivered load power in watts")
}

func parseFloats(spec string) ([]float64, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Inputf("invalid number %q", part)
		}
		values = append(values, v)
	}
	return values, nil
}

func render(report output.Report) error {
	cfg := config.Get()
	format, err := output.ParseFormat(cfg.Output.DefaultFormat)
	if err != nil {
		format = output.FormatText
	}
	formatter, err := output.NewFormatter(format, cfg.Output.NoColor)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, []output.Report{report})
}
