package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"readiness-api/internal/readiness"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the category weight table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := readiness.ValidateWeights(); err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tWEIGHT\tLABEL")
		for _, c := range readiness.Categories() {
			fmt.Fprintf(w, "%s\t%.2f\t%s\n", c, c.Weight(), c.Label())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}
