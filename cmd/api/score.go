package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"readiness-api/internal/readiness"
)

var scoreFile string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a learner progress JSON document",
	Long:  "Reads a learner progress JSON object from --file (or stdin with -), validates it like the HTTP endpoint does, and prints the readiness result as JSON.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "-", "Path to a JSON file, or - for stdin")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	body, err := readInput(cmd, scoreFile)
	if err != nil {
		return err
	}

	p, err := readiness.NewValidator().DecodeProgress(body)
	if err != nil {
		var verr *readiness.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return fmt.Errorf("%d validation error(s)", len(verr.Messages))
		}
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(readiness.Compute(p))
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}
