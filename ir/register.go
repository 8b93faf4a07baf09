package ir

// QuantumRegister is a named, fixed-size block of addressable qubits.
// Registers are plain values; two registers are the same register iff
// both name and size match.
type QuantumRegister struct {
	Name string
	Size int
}

// ClassicalRegister is a named, fixed-size block of classical bits,
// used as measurement targets. Same identity rule as QuantumRegister,
// but the two kinds are never compared against each other.
type ClassicalRegister struct {
	Name string
	Size int
}

// NewQuantumRegister returns a quantum register of the given size.
func NewQuantumRegister(name string, size int) QuantumRegister {
	return QuantumRegister{Name: name, Size: size}
}

// NewClassicalRegister returns a classical register of the given size.
func NewClassicalRegister(name string, size int) ClassicalRegister {
	return ClassicalRegister{Name: name, Size: size}
}
