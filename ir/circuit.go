package ir

import "fmt"

// Circuit owns an ordered set of quantum registers, an ordered set of
// classical registers, and an append-only log of applied gates. The
// register sets are fixed at construction; gate constructors are the
// only mutators and append in program order. A Circuit is not safe for
// concurrent mutation.
type Circuit struct {
	qregs []QuantumRegister
	cregs []ClassicalRegister
	gates []GateRecord
}

// New creates a circuit over the given registers. The slices are copied;
// the circuit never mutates a register after construction.
func New(qregs []QuantumRegister, cregs []ClassicalRegister) *Circuit {
	c := &Circuit{
		qregs: make([]QuantumRegister, len(qregs)),
		cregs: make([]ClassicalRegister, len(cregs)),
	}
	copy(c.qregs, qregs)
	copy(c.cregs, cregs)
	return c
}

// QuantumRegisters returns the quantum registers in storage order.
func (c *Circuit) QuantumRegisters() []QuantumRegister {
	out := make([]QuantumRegister, len(c.qregs))
	copy(out, c.qregs)
	return out
}

// ClassicalRegisters returns the classical registers in storage order.
func (c *Circuit) ClassicalRegisters() []ClassicalRegister {
	out := make([]ClassicalRegister, len(c.cregs))
	copy(out, c.cregs)
	return out
}

// Gates returns the gate log in program order, the order the gates were
// successfully applied.
func (c *Circuit) Gates() []GateRecord {
	out := make([]GateRecord, len(c.gates))
	copy(out, c.gates)
	return out
}

// NbGates returns the number of recorded gates.
func (c *Circuit) NbGates() int {
	return len(c.gates)
}

// HasQuantumRegister reports whether reg is a member of the circuit's
// quantum register set. Membership is structural: name and size must
// both match.
func (c *Circuit) HasQuantumRegister(reg QuantumRegister) bool {
	for _, r := range c.qregs {
		if r == reg {
			return true
		}
	}
	return false
}

// HasClassicalRegister reports whether reg is a member of the circuit's
// classical register set.
func (c *Circuit) HasClassicalRegister(reg ClassicalRegister) bool {
	for _, r := range c.cregs {
		if r == reg {
			return true
		}
	}
	return false
}

// checkQuantum validates one (register, position) quantum operand:
// bounds first, then membership.
func (c *Circuit) checkQuantum(reg QuantumRegister, pos int) error {
	if pos < 0 || pos >= reg.Size {
		return fmt.Errorf("%w: position %d of qreg %s[%d]", ErrIndexOutOfRange, pos, reg.Name, reg.Size)
	}
	if len(c.qregs) == 0 {
		return fmt.Errorf("%w: circuit has no quantum registers", ErrRegisterSetEmpty)
	}
	if !c.HasQuantumRegister(reg) {
		return fmt.Errorf("%w: qreg %s[%d]", ErrUnknownRegister, reg.Name, reg.Size)
	}
	return nil
}

// checkClassical validates one (register, position) classical operand.
func (c *Circuit) checkClassical(reg ClassicalRegister, pos int) error {
	if pos < 0 || pos >= reg.Size {
		return fmt.Errorf("%w: position %d of creg %s[%d]", ErrIndexOutOfRange, pos, reg.Name, reg.Size)
	}
	if len(c.cregs) == 0 {
		return fmt.Errorf("%w: circuit has no classical registers", ErrRegisterSetEmpty)
	}
	if !c.HasClassicalRegister(reg) {
		return fmt.Errorf("%w: creg %s[%d]", ErrUnknownRegister, reg.Name, reg.Size)
	}
	return nil
}
