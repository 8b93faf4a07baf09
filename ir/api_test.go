package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumforge/qasmgen/ir"
)

func TestSingleQubitGates(t *testing.T) {
	q := ir.NewQuantumRegister("q", 3)

	tests := []struct {
		name  string
		apply func(*ir.Circuit) error
		kind  ir.GateKind
		label string
		want  string
	}{
		{"hadamard", func(c *ir.Circuit) error { return c.Hadamard(q, 0) }, ir.GateHadamard, "Hadamard", "h q[0];\n"},
		{"pauli_x", func(c *ir.Circuit) error { return c.PauliX(q, 1) }, ir.GatePauliX, "Pauli-X", "x q[1];\n"},
		{"pauli_y", func(c *ir.Circuit) error { return c.PauliY(q, 2) }, ir.GatePauliY, "Pauli-Y", "y q[2];\n"},
		{"pauli_z", func(c *ir.Circuit) error { return c.PauliZ(q, 0) }, ir.GatePauliZ, "Pauli-Z", "z q[0];\n"},
		{"identity", func(c *ir.Circuit) error { return c.Identity(q, 1) }, ir.GateIdentity, "Identity", "i q[1];\n"},
		{"s", func(c *ir.Circuit) error { return c.S(q, 0) }, ir.GateS, "S", "s q[0];\n"},
		{"sdg", func(c *ir.Circuit) error { return c.SDagger(q, 0) }, ir.GateSDagger, "S-dagger", "sdg q[0];\n"},
		{"t", func(c *ir.Circuit) error { return c.T(q, 2) }, ir.GateT, "T", "t q[2];\n"},
		{"tdg", func(c *ir.Circuit) error { return c.TDagger(q, 2) }, ir.GateTDagger, "T-dagger", "tdg q[2];\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circ := ir.New([]ir.QuantumRegister{q}, nil)
			require.NoError(t, tt.apply(circ))
			gates := circ.Gates()
			require.Len(t, gates, 1)
			assert.Equal(t, tt.kind, gates[0].Kind())
			assert.Equal(t, tt.label, gates[0].Label())
			assert.Equal(t, tt.want, gates[0].Rendered())
		})
	}
}

func TestControlledGates(t *testing.T) {
	q := ir.NewQuantumRegister("q", 2)
	anc := ir.NewQuantumRegister("anc", 2)

	tests := []struct {
		name  string
		apply func(*ir.Circuit) error
		want  string
	}{
		{"cx", func(c *ir.Circuit) error { return c.CX(q, 0, q, 1) }, "cx q[0], q[1];\n"},
		{"cy", func(c *ir.Circuit) error { return c.CY(q, 1, anc, 0) }, "cy q[1], anc[0];\n"},
		{"cz", func(c *ir.Circuit) error { return c.CZ(anc, 0, q, 0) }, "cz anc[0], q[0];\n"},
		{"ch", func(c *ir.Circuit) error { return c.CH(q, 0, anc, 1) }, "ch q[0], anc[1];\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			circ := ir.New([]ir.QuantumRegister{q, anc}, nil)
			require.NoError(t, tt.apply(circ))
			gates := circ.Gates()
			require.Len(t, gates, 1)
			assert.Equal(t, tt.want, gates[0].Rendered())
		})
	}
}

func TestControlValidatedBeforeTarget(t *testing.T) {
	q := ir.NewQuantumRegister("q", 2)
	circ := ir.New([]ir.QuantumRegister{q}, nil)

	// both operands invalid: the control's failure wins
	err := circ.CX(q, 7, ir.NewQuantumRegister("ghost", 2), 0)
	require.ErrorIs(t, err, ir.ErrIndexOutOfRange)

	// valid control, invalid target
	err = circ.CX(q, 0, ir.NewQuantumRegister("ghost", 2), 0)
	require.ErrorIs(t, err, ir.ErrUnknownRegister)
	assert.Equal(t, 0, circ.NbGates())
}

func TestCCX(t *testing.T) {
	q := ir.NewQuantumRegister("q", 3)
	circ := ir.New([]ir.QuantumRegister{q}, nil)

	require.NoError(t, circ.CCX(q, 0, q, 1, q, 2))
	gates := circ.Gates()
	require.Len(t, gates, 1)
	assert.Equal(t, ir.GateCCX, gates[0].Kind())
	assert.Equal(t, "Toffoli", gates[0].Label())
	assert.Equal(t, "ccx q[0], q[1], q[2];\n", gates[0].Rendered())

	// controls validate in order, then the target
	require.ErrorIs(t, circ.CCX(q, 5, q, 6, q, 7), ir.ErrIndexOutOfRange)
	require.ErrorIs(t, circ.CCX(q, 0, q, 6, q, 1), ir.ErrIndexOutOfRange)
	require.ErrorIs(t, circ.CCX(q, 0, q, 1, ir.NewQuantumRegister("ghost", 3), 0), ir.ErrUnknownRegister)
	assert.Equal(t, 1, circ.NbGates())
}

func TestMeasure(t *testing.T) {
	q := ir.NewQuantumRegister("q", 2)
	c := ir.NewClassicalRegister("c", 2)
	circ := ir.New([]ir.QuantumRegister{q}, []ir.ClassicalRegister{c})

	require.NoError(t, circ.Measure(q, 0, c, 1))
	gates := circ.Gates()
	require.Len(t, gates, 1)
	assert.Equal(t, "measure q[0] -> c[1];\n", gates[0].Rendered())

	ops := gates[0].Operands()
	require.Len(t, ops, 2)
	assert.Equal(t, ir.Operand{Register: "q", Index: 0}, ops[0])
	assert.Equal(t, ir.Operand{Register: "c", Index: 1, Classical: true}, ops[1])

	// quantum operand validates first
	require.ErrorIs(t, circ.Measure(q, 9, c, 9), ir.ErrIndexOutOfRange)
	require.ErrorIs(t, circ.Measure(q, 0, c, 9), ir.ErrIndexOutOfRange)
	require.ErrorIs(t, circ.Measure(q, 0, ir.NewClassicalRegister("ghost", 2), 0), ir.ErrUnknownRegister)
}

func TestBarrier(t *testing.T) {
	q := ir.NewQuantumRegister("q", 2)
	anc := ir.NewQuantumRegister("anc", 1)

	t.Run("spans_all_quantum_registers", func(t *testing.T) {
		circ := ir.New([]ir.QuantumRegister{q, anc}, nil)
		require.NoError(t, circ.Barrier())
		gates := circ.Gates()
		require.Len(t, gates, 1)
		assert.Equal(t, "barrier q,anc;\n", gates[0].Rendered())
		assert.Empty(t, gates[0].Operands())
	})

	t.Run("single_register", func(t *testing.T) {
		circ := ir.New([]ir.QuantumRegister{q}, nil)
		require.NoError(t, circ.Barrier())
		assert.Equal(t, "barrier q;\n", circ.Gates()[0].Rendered())
	})

	t.Run("no_quantum_registers", func(t *testing.T) {
		circ := ir.New(nil, []ir.ClassicalRegister{ir.NewClassicalRegister("c", 1)})
		require.ErrorIs(t, circ.Barrier(), ir.ErrRegisterSetEmpty)
	})
}

func TestProgramOrder(t *testing.T) {
	q := ir.NewQuantumRegister("q", 2)
	c := ir.NewClassicalRegister("c", 2)
	circ := ir.New([]ir.QuantumRegister{q}, []ir.ClassicalRegister{c})

	require.NoError(t, circ.Hadamard(q, 0))
	require.NoError(t, circ.CX(q, 0, q, 1))
	require.NoError(t, circ.Barrier())
	require.NoError(t, circ.Measure(q, 1, c, 1))

	want := []ir.GateKind{ir.GateHadamard, ir.GateCX, ir.GateBarrier, ir.GateMeasure}
	gates := circ.Gates()
	require.Len(t, gates, len(want))
	for i, k := range want {
		assert.Equal(t, k, gates[i].Kind())
	}
}
