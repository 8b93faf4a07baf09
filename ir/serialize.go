package ir

import "encoding/json"

// The instruction dump is a JSON re-serialization of the gate log with
// numeric operation tags (the GateKind values) instead of named gate
// records, plus the register declarations. Program order is preserved;
// the output is deterministic for a given circuit.

type programForSerialization struct {
	QuantumRegisters   []registerForSerialization    `json:"quantum_registers"`
	ClassicalRegisters []registerForSerialization    `json:"classical_registers"`
	Instructions       []instructionForSerialization `json:"instructions"`
}

type registerForSerialization struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type instructionForSerialization struct {
	Op       int                       `json:"op"`
	Operands []operandForSerialization `json:"operands,omitempty"`
}

type operandForSerialization struct {
	Register  string `json:"register"`
	Index     int    `json:"index"`
	Classical bool   `json:"classical,omitempty"`
}

// DumpInstructions serializes the circuit's declarations and gate log as
// an indented JSON instruction list.
func (c *Circuit) DumpInstructions() []byte {
	p := &programForSerialization{
		QuantumRegisters:   make([]registerForSerialization, len(c.qregs)),
		ClassicalRegisters: make([]registerForSerialization, len(c.cregs)),
		Instructions:       make([]instructionForSerialization, len(c.gates)),
	}
	for i, r := range c.qregs {
		p.QuantumRegisters[i] = registerForSerialization{Name: r.Name, Size: r.Size}
	}
	for i, r := range c.cregs {
		p.ClassicalRegisters[i] = registerForSerialization{Name: r.Name, Size: r.Size}
	}
	for i, g := range c.gates {
		insn := instructionForSerialization{Op: int(g.kind)}
		for _, op := range g.operands {
			insn.Operands = append(insn.Operands, operandForSerialization{
				Register:  op.Register,
				Index:     op.Index,
				Classical: op.Classical,
			})
		}
		p.Instructions[i] = insn
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}
