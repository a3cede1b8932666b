package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinscore/edsscalc/internal/fieldmap"
)

func newDictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dicts",
		Short: "List built-in field dictionaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := fieldmap.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				d, err := fieldmap.LoadBuiltin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", name, d.Description)
			}
			return nil
		},
	}
}
