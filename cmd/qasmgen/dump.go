package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <circuit.yaml>",
		Short: "Build a circuit description and print its JSON instruction list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(c.DumpInstructions()))
			return nil
		},
	}
}
