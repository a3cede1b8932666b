package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinscore/edsscalc/internal/edss"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <visual> <brainstem> <pyramidal> <cerebellar> <sensory> <bowel-bladder> <cerebral> <ambulation>",
		Short: "Compute a single EDSS score from the eight raw sub-scores",
		Args:  cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := parseScoreArgs(args)
			if err != nil {
				return exitError(3, "invalid input: %v", err)
			}
			score, err := edss.Calculate(raw)
			if err != nil {
				var de *edss.DomainError
				if errors.As(err, &de) {
					return exitError(2, "%v", err)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), score)
			return nil
		},
	}
}

func parseScoreArgs(args []string) (edss.RawScores, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return edss.RawScores{}, fmt.Errorf("argument %d: %q is not an integer", i+1, a)
		}
		vals[i] = n
	}
	return edss.RawScores{
		Visual:       vals[0],
		Brainstem:    vals[1],
		Pyramidal:    vals[2],
		Cerebellar:   vals[3],
		Sensory:      vals[4],
		BowelBladder: vals[5],
		Cerebral:     vals[6],
		Ambulation:   vals[7],
	}, nil
}
