package ir

// GateKind enumerates the operations a circuit can record. The numeric
// values are stable and double as the instruction tags of the JSON dump.
type GateKind int

const (
	GateHadamard GateKind = iota + 1
	GatePauliX
	GatePauliY
	GatePauliZ
	GateIdentity
	GateS
	GateSDagger
	GateT
	GateTDagger
	GateCX
	GateCY
	GateCZ
	GateCH
	GateCCX
	GateMeasure
	GateBarrier
)

var gateLabels = map[GateKind]string{
	GateHadamard: "Hadamard",
	GatePauliX:   "Pauli-X",
	GatePauliY:   "Pauli-Y",
	GatePauliZ:   "Pauli-Z",
	GateIdentity: "Identity",
	GateS:        "S",
	GateSDagger:  "S-dagger",
	GateT:        "T",
	GateTDagger:  "T-dagger",
	GateCX:       "CNOT",
	GateCY:       "Controlled-Y",
	GateCZ:       "Controlled-Z",
	GateCH:       "Controlled-H",
	GateCCX:      "Toffoli",
	GateMeasure:  "Measure",
	GateBarrier:  "Barrier",
}

// Label returns the human-readable operation name for the kind.
func (k GateKind) Label() string {
	return gateLabels[k]
}

// Operand identifies one register position referenced by a gate.
type Operand struct {
	Register  string
	Index     int
	Classical bool
}

// GateRecord is one recorded instruction: its kind, its label, the exact
// rendered instruction line (newline-terminated), and the operands it
// referenced. Records are produced only by the gate constructors on
// Circuit and are immutable once appended.
type GateRecord struct {
	kind     GateKind
	rendered string
	operands []Operand
}

func newGateRecord(kind GateKind, rendered string, operands ...Operand) GateRecord {
	return GateRecord{kind: kind, rendered: rendered, operands: operands}
}

// Kind returns the operation kind.
func (g GateRecord) Kind() GateKind { return g.kind }

// Label returns the human-readable operation name, e.g. "Hadamard".
func (g GateRecord) Label() string { return g.kind.Label() }

// Rendered returns the instruction line exactly as it appears in the
// generated program, including the trailing newline.
func (g GateRecord) Rendered() string { return g.rendered }

// Operands returns a copy of the operand list in validation order.
func (g GateRecord) Operands() []Operand {
	out := make([]Operand, len(g.operands))
	copy(out, g.operands)
	return out
}
