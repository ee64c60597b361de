// Package main is the readiness API server and command line scorer.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "readiness",
	Short:         "Learner readiness scoring service",
	Long:          "Scores learner progress across seven weighted categories and returns a readiness level with a recommendation, over HTTP or from the command line.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
