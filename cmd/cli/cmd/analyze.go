// Package cmd - analyze command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridcalc/core/analysis"
	"gridcalc/core/output"
	"gridcalc/core/study"
	"gridcalc/internal/config"
	"gridcalc/internal/logging"
)

var (
	analyzeFormat string
	analyzeOnly   []string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <study-file>",
	Short: "Run analyses over a study file",
	Long: `Parse an HCL study file and run the registered analyses over it.

Examples:
  gridcalc analyze substation.gc.hcl
  gridcalc analyze --format markdown feeders.gc.hcl
  gridcalc analyze --only load-power-factor,resistance case.gc.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "output format (text, json, markdown)")
	analyzeCmd.Flags().StringSliceVar(&analyzeOnly, "only", nil, "run only the named analyses")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	formatName := analyzeFormat
	if formatName == "" {
		formatName = cfg.Output.DefaultFormat
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logging.Info("parsing study file", zap.String("path", args[0]))
	parsed, err := study.NewScanner().ScanFile(args[0])
	if err != nil {
		return err
	}
	if parsed.Empty() {
		logging.Warn("study file declares no subjects", zap.String("path", args[0]))
		return nil
	}

	reports, err := analysis.Default().RunAll(parsed, analyzeOnly)
	if err != nil {
		return err
	}
	logging.Info("analyses complete", zap.Int("reports", len(reports)))

	formatter, err := output.NewFormatter(format, cfg.Output.NoColor)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, reports)
}

// listCmd prints the registered analyses
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered analyses",
	Run: func(cmd *cobra.Command, args []string) {
		registry := analysis.Default()
		for _, name := range registry.Names() {
			a, _ := registry.Get(name)
			cmd.Printf("%-22s %s\n", name, a.Description())
		}
	},
}
