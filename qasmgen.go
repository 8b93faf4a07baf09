// Package qasmgen builds in-memory quantum circuit representations and
// lowers them into OpenQASM 2.0 source text.
//
// The ir package holds the circuit IR and its validated gate
// constructors; the qasm package renders program text; the descriptor
// package builds circuits from YAML descriptions. This package re-exports
// the common entry points.
package qasmgen

import (
	"github.com/quantumforge/qasmgen/ir"
	"github.com/quantumforge/qasmgen/qasm"
)

// NewCircuit creates a circuit over the given registers.
func NewCircuit(qregs []ir.QuantumRegister, cregs []ir.ClassicalRegister) *ir.Circuit {
	return ir.New(qregs, cregs)
}

// Generate renders the circuit as OpenQASM 2.0 program text.
func Generate(c *ir.Circuit) string {
	return qasm.Generate(c)
}

// WriteFile renders the circuit and writes the program text to path,
// creating or overwriting the file.
func WriteFile(c *ir.Circuit, path string) error {
	return qasm.WriteFile(c, path)
}
