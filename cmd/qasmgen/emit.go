package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantumforge/qasmgen/descriptor"
	"github.com/quantumforge/qasmgen/ir"
	"github.com/quantumforge/qasmgen/logger"
	"github.com/quantumforge/qasmgen/qasm"
)

func newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit <circuit.yaml>",
		Short: "Build a circuit description and print its OpenQASM program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildFromFile(args[0])
			if err != nil {
				return err
			}
			stats := c.GetStats()
			log := logger.Logger()
			log.Debug().
				Int("nbQubits", stats.NbQubits).
				Int("nbGates", stats.NbGates).
				Int("nbMeasurements", stats.NbMeasurements).
				Msg("circuit built")
			if cfg.Out != "" {
				return qasm.WriteFile(c, cfg.Out)
			}
			fmt.Fprint(cmd.OutOrStdout(), qasm.Generate(c))
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write the program to this file instead of stdout")
	return cmd
}

func buildFromFile(path string) (*ir.Circuit, error) {
	d, err := descriptor.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return d.Build()
}
