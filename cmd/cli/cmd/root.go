// Package cmd provides the CLI commands for gridcalc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridcalc/internal/config"
	"gridcalc/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gridcalc",
	Short: "Power-systems quantity calculators",
	Long: `gridcalc is a toolkit of stateless electrical-engineering calculators.

It computes load power factors, resistor network equivalents, transmission
losses, fault currents, DC load flows, and economic dispatches, either from
one-shot flags or from a declarative HCL study file.

Examples:
  gridcalc load --p 100 --q 80
  gridcalc network --parallel 10,20,30
  gridcalc analyze substation.gc.hcl --format json`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gridcalc.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(transmissionCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gridcalc version 0.1.0")
	},
}
