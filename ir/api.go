package ir

import (
	"fmt"
	"strings"
)

// Gate constructors. Each validates its operands left-to-right (bounds
// before membership, control before target), and only on success renders
// the instruction line and appends it to the gate log. A failed call
// leaves the circuit untouched.

var singleQubitMnemonics = map[GateKind]string{
	GateHadamard: "h",
	GatePauliX:   "x",
	GatePauliY:   "y",
	GatePauliZ:   "z",
	GateIdentity: "i",
	GateS:        "s",
	GateSDagger:  "sdg",
	GateT:        "t",
	GateTDagger:  "tdg",
}

var controlledMnemonics = map[GateKind]string{
	GateCX: "cx",
	GateCY: "cy",
	GateCZ: "cz",
	GateCH: "ch",
}

func (c *Circuit) applySingle(kind GateKind, reg QuantumRegister, pos int) error {
	if err := c.checkQuantum(reg, pos); err != nil {
		return err
	}
	rendered := fmt.Sprintf("%s %s[%d];\n", singleQubitMnemonics[kind], reg.Name, pos)
	c.gates = append(c.gates, newGateRecord(kind, rendered,
		Operand{Register: reg.Name, Index: pos},
	))
	return nil
}

func (c *Circuit) applyControlled(kind GateKind, control QuantumRegister, cpos int, target QuantumRegister, tpos int) error {
	if err := c.checkQuantum(control, cpos); err != nil {
		return err
	}
	if err := c.checkQuantum(target, tpos); err != nil {
		return err
	}
	rendered := fmt.Sprintf("%s %s[%d], %s[%d];\n", controlledMnemonics[kind], control.Name, cpos, target.Name, tpos)
	c.gates = append(c.gates, newGateRecord(kind, rendered,
		Operand{Register: control.Name, Index: cpos},
		Operand{Register: target.Name, Index: tpos},
	))
	return nil
}

// Hadamard applies an H gate to reg[pos].
func (c *Circuit) Hadamard(reg QuantumRegister, pos int) error {
	return c.applySingle(GateHadamard, reg, pos)
}

// PauliX applies an X gate to reg[pos].
func (c *Circuit) PauliX(reg QuantumRegister, pos int) error {
	return c.applySingle(GatePauliX, reg, pos)
}

// PauliY applies a Y gate to reg[pos].
func (c *Circuit) PauliY(reg QuantumRegister, pos int) error {
	return c.applySingle(GatePauliY, reg, pos)
}

// PauliZ applies a Z gate to reg[pos].
func (c *Circuit) PauliZ(reg QuantumRegister, pos int) error {
	return c.applySingle(GatePauliZ, reg, pos)
}

// Identity applies an identity gate to reg[pos].
func (c *Circuit) Identity(reg QuantumRegister, pos int) error {
	return c.applySingle(GateIdentity, reg, pos)
}

// S applies an S gate (sqrt of Z) to reg[pos].
func (c *Circuit) S(reg QuantumRegister, pos int) error {
	return c.applySingle(GateS, reg, pos)
}

// SDagger applies the S-dagger gate to reg[pos].
func (c *Circuit) SDagger(reg QuantumRegister, pos int) error {
	return c.applySingle(GateSDagger, reg, pos)
}

// T applies a T gate (sqrt of S) to reg[pos].
func (c *Circuit) T(reg QuantumRegister, pos int) error {
	return c.applySingle(GateT, reg, pos)
}

// TDagger applies the T-dagger gate to reg[pos].
func (c *Circuit) TDagger(reg QuantumRegister, pos int) error {
	return c.applySingle(GateTDagger, reg, pos)
}

// CX applies a controlled-X (CNOT) with control[cpos] controlling target[tpos].
func (c *Circuit) CX(control QuantumRegister, cpos int, target QuantumRegister, tpos int) error {
	return c.applyControlled(GateCX, control, cpos, target, tpos)
}

// CY applies a controlled-Y gate.
func (c *Circuit) CY(control QuantumRegister, cpos int, target QuantumRegister, tpos int) error {
	return c.applyControlled(GateCY, control, cpos, target, tpos)
}

// CZ applies a controlled-Z gate.
func (c *Circuit) CZ(control QuantumRegister, cpos int, target QuantumRegister, tpos int) error {
	return c.applyControlled(GateCZ, control, cpos, target, tpos)
}

// CH applies a controlled-Hadamard gate.
func (c *Circuit) CH(control QuantumRegister, cpos int, target QuantumRegister, tpos int) error {
	return c.applyControlled(GateCH, control, cpos, target, tpos)
}

// CCX applies a doubly-controlled X (Toffoli). The two controls are
// validated first, in order, then the target. Operand separators render
// uniformly as ", ".
func (c *Circuit) CCX(control0 QuantumRegister, p0 int, control1 QuantumRegister, p1 int, target QuantumRegister, tpos int) error {
	if err := c.checkQuantum(control0, p0); err != nil {
		return err
	}
	if err := c.checkQuantum(control1, p1); err != nil {
		return err
	}
	if err := c.checkQuantum(target, tpos); err != nil {
		return err
	}
	rendered := fmt.Sprintf("ccx %s[%d], %s[%d], %s[%d];\n", control0.Name, p0, control1.Name, p1, target.Name, tpos)
	c.gates = append(c.gates, newGateRecord(GateCCX, rendered,
		Operand{Register: control0.Name, Index: p0},
		Operand{Register: control1.Name, Index: p1},
		Operand{Register: target.Name, Index: tpos},
	))
	return nil
}

// Measure records a measurement of qreg[qpos] into creg[cpos]. The
// quantum operand is validated first.
func (c *Circuit) Measure(qreg QuantumRegister, qpos int, creg ClassicalRegister, cpos int) error {
	if err := c.checkQuantum(qreg, qpos); err != nil {
		return err
	}
	if err := c.checkClassical(creg, cpos); err != nil {
		return err
	}
	rendered := fmt.Sprintf("measure %s[%d] -> %s[%d];\n", qreg.Name, qpos, creg.Name, cpos)
	c.gates = append(c.gates, newGateRecord(GateMeasure, rendered,
		Operand{Register: qreg.Name, Index: qpos},
		Operand{Register: creg.Name, Index: cpos, Classical: true},
	))
	return nil
}

// Barrier records a barrier across every quantum register the circuit
// owns, in storage order. It fails with ErrRegisterSetEmpty when the
// circuit has no quantum registers.
func (c *Circuit) Barrier() error {
	if len(c.qregs) == 0 {
		return fmt.Errorf("%w: circuit has no quantum registers", ErrRegisterSetEmpty)
	}
	names := make([]string, len(c.qregs))
	for i, r := range c.qregs {
		names[i] = r.Name
	}
	rendered := "barrier " + strings.Join(names, ",") + ";\n"
	c.gates = append(c.gates, newGateRecord(GateBarrier, rendered))
	return nil
}
