package ir

type Stats struct {
	// number of quantum registers and total qubits across them
	NbQuantumRegisters int
	NbQubits           int
	// number of classical registers and total bits across them
	NbClassicalRegisters int
	NbClassicalBits      int
	// number of recorded gates, including measurements and barriers
	NbGates int
	// number of measurement instructions
	NbMeasurements int
	// number of barrier instructions
	NbBarriers int
	// recorded gates by kind
	GateCounts map[GateKind]int
}

// GetStats walks the registers and the gate log once and returns the
// aggregate counts.
func (c *Circuit) GetStats() Stats {
	r := Stats{
		NbQuantumRegisters:   len(c.qregs),
		NbClassicalRegisters: len(c.cregs),
		NbGates:              len(c.gates),
		GateCounts:           make(map[GateKind]int),
	}
	for _, reg := range c.qregs {
		r.NbQubits += reg.Size
	}
	for _, reg := range c.cregs {
		r.NbClassicalBits += reg.Size
	}
	for _, g := range c.gates {
		r.GateCounts[g.kind]++
		switch g.kind {
		case GateMeasure:
			r.NbMeasurements++
		case GateBarrier:
			r.NbBarriers++
		}
	}
	return r
}
