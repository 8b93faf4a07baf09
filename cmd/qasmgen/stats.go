package main

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/quantumforge/qasmgen/ir"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <circuit.yaml>",
		Short: "Build a circuit description and print its statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildFromFile(args[0])
			if err != nil {
				return err
			}
			stats := c.GetStats()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Metric", "Value"})
			t.AppendRows([]table.Row{
				{"Quantum registers", stats.NbQuantumRegisters},
				{"Qubits", stats.NbQubits},
				{"Classical registers", stats.NbClassicalRegisters},
				{"Classical bits", stats.NbClassicalBits},
				{"Gates", stats.NbGates},
				{"Measurements", stats.NbMeasurements},
				{"Barriers", stats.NbBarriers},
			})
			t.AppendSeparator()

			kinds := make([]ir.GateKind, 0, len(stats.GateCounts))
			for k := range stats.GateCounts {
				kinds = append(kinds, k)
			}
			sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
			for _, k := range kinds {
				t.AppendRow(table.Row{k.Label(), stats.GateCounts[k]})
			}
			t.Render()
			return nil
		},
	}
}
