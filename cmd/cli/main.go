// Package main is the entry point for the gridcalc CLI.
package main

import (
	"os"

	"gridcalc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
