// Package qasm lowers a circuit IR into OpenQASM 2.0 source text.
package qasm

import (
	"fmt"
	"strings"

	"github.com/quantumforge/qasmgen/ir"
)

const header = "OPENQASM 2.0;\ninclude \"qelib1.inc\";\n"

// Generate renders the complete program text for the circuit: the
// two-line format header, one qreg declaration per quantum register in
// storage order, one creg declaration per classical register in storage
// order, then one line per gate in program order. It is a pure function
// of the circuit's current state; repeated calls on an unmodified
// circuit return byte-identical text.
func Generate(c *ir.Circuit) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, reg := range c.QuantumRegisters() {
		fmt.Fprintf(&sb, "qreg %s[%d];\n", reg.Name, reg.Size)
	}
	for _, reg := range c.ClassicalRegisters() {
		fmt.Fprintf(&sb, "creg %s[%d];\n", reg.Name, reg.Size)
	}
	for _, g := range c.Gates() {
		sb.WriteString(g.Rendered())
	}
	return sb.String()
}
