// Package descriptor reads YAML circuit descriptions and builds circuits
// from them. The format is qasmgen's own; it is not an OpenQASM parser.
package descriptor

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quantumforge/qasmgen/ir"
)

// Description is the top-level YAML document: register declarations plus
// an ordered gate list.
type Description struct {
	Name               string     `yaml:"name"`
	QuantumRegisters   []Register `yaml:"qregs"`
	ClassicalRegisters []Register `yaml:"cregs"`
	Gates              []Gate     `yaml:"gates"`
}

// Register declares a named register of the given size.
type Register struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// Ref points at one position of a declared register.
type Ref struct {
	Register string `yaml:"register"`
	Index    int    `yaml:"index"`
}

// Gate is one entry of the gate list. Which operand fields are required
// depends on the op: single-qubit ops take target; controlled ops take
// control and target; ccx takes controls (exactly two) and target;
// measure takes qubit and bit; barrier takes no operand.
type Gate struct {
	Op       string `yaml:"op"`
	Target   *Ref   `yaml:"target,omitempty"`
	Control  *Ref   `yaml:"control,omitempty"`
	Controls []Ref  `yaml:"controls,omitempty"`
	Qubit    *Ref   `yaml:"qubit,omitempty"`
	Bit      *Ref   `yaml:"bit,omitempty"`
}

// Load decodes a description from r. Unknown fields are rejected.
func Load(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Description
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode circuit description: %w", err)
	}
	return &d, nil
}

// LoadFile decodes a description from the file at path.
func LoadFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

type singleOp func(*ir.Circuit, ir.QuantumRegister, int) error
type controlledOp func(*ir.Circuit, ir.QuantumRegister, int, ir.QuantumRegister, int) error

var singleOps = map[string]singleOp{
	"h":   (*ir.Circuit).Hadamard,
	"x":   (*ir.Circuit).PauliX,
	"y":   (*ir.Circuit).PauliY,
	"z":   (*ir.Circuit).PauliZ,
	"i":   (*ir.Circuit).Identity,
	"s":   (*ir.Circuit).S,
	"sdg": (*ir.Circuit).SDagger,
	"t":   (*ir.Circuit).T,
	"tdg": (*ir.Circuit).TDagger,
}

var controlledOps = map[string]controlledOp{
	"cx": (*ir.Circuit).CX,
	"cy": (*ir.Circuit).CY,
	"cz": (*ir.Circuit).CZ,
	"ch": (*ir.Circuit).CH,
}

// Build constructs the circuit and applies every gate of the list in
// order. The first invalid gate aborts the build.
func (d *Description) Build() (*ir.Circuit, error) {
	qregs := make([]ir.QuantumRegister, len(d.QuantumRegisters))
	for i, r := range d.QuantumRegisters {
		qregs[i] = ir.NewQuantumRegister(r.Name, r.Size)
	}
	cregs := make([]ir.ClassicalRegister, len(d.ClassicalRegisters))
	for i, r := range d.ClassicalRegisters {
		cregs[i] = ir.NewClassicalRegister(r.Name, r.Size)
	}
	c := ir.New(qregs, cregs)

	for i, g := range d.Gates {
		if err := d.apply(c, g); err != nil {
			return nil, fmt.Errorf("gate %d (%s): %w", i, g.Op, err)
		}
	}
	return c, nil
}

func (d *Description) apply(c *ir.Circuit, g Gate) error {
	if op, ok := singleOps[g.Op]; ok {
		reg, pos, err := d.quantumRef(g.Target, "target")
		if err != nil {
			return err
		}
		return op(c, reg, pos)
	}
	if op, ok := controlledOps[g.Op]; ok {
		control, cpos, err := d.quantumRef(g.Control, "control")
		if err != nil {
			return err
		}
		target, tpos, err := d.quantumRef(g.Target, "target")
		if err != nil {
			return err
		}
		return op(c, control, cpos, target, tpos)
	}
	switch g.Op {
	case "ccx":
		if len(g.Controls) != 2 {
			return fmt.Errorf("ccx needs exactly 2 controls, got %d", len(g.Controls))
		}
		c0, p0, err := d.quantumRef(&g.Controls[0], "controls[0]")
		if err != nil {
			return err
		}
		c1, p1, err := d.quantumRef(&g.Controls[1], "controls[1]")
		if err != nil {
			return err
		}
		target, tpos, err := d.quantumRef(g.Target, "target")
		if err != nil {
			return err
		}
		return c.CCX(c0, p0, c1, p1, target, tpos)
	case "measure":
		qreg, qpos, err := d.quantumRef(g.Qubit, "qubit")
		if err != nil {
			return err
		}
		creg, cpos, err := d.classicalRef(g.Bit, "bit")
		if err != nil {
			return err
		}
		return c.Measure(qreg, qpos, creg, cpos)
	case "barrier":
		return c.Barrier()
	case "":
		return fmt.Errorf("missing op")
	}
	return fmt.Errorf("unsupported op %q", g.Op)
}

func (d *Description) quantumRef(ref *Ref, field string) (ir.QuantumRegister, int, error) {
	if ref == nil {
		return ir.QuantumRegister{}, 0, fmt.Errorf("missing %s operand", field)
	}
	for _, r := range d.QuantumRegisters {
		if r.Name == ref.Register {
			return ir.NewQuantumRegister(r.Name, r.Size), ref.Index, nil
		}
	}
	return ir.QuantumRegister{}, 0, fmt.Errorf("%s: undeclared quantum register %q", field, ref.Register)
}

func (d *Description) classicalRef(ref *Ref, field string) (ir.ClassicalRegister, int, error) {
	if ref == nil {
		return ir.ClassicalRegister{}, 0, fmt.Errorf("missing %s operand", field)
	}
	for _, r := range d.ClassicalRegisters {
		if r.Name == ref.Register {
			return ir.NewClassicalRegister(r.Name, r.Size), ref.Index, nil
		}
	}
	return ir.ClassicalRegister{}, 0, fmt.Errorf("%s: undeclared classical register %q", field, ref.Register)
}
