package ir

import "errors"

// Gate constructors fail with exactly one of these sentinels, wrapped
// with the offending operand. Callers branch with errors.Is.
var (
	// ErrIndexOutOfRange reports an operand position outside [0, size)
	// of its register.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownRegister reports an operand register that is not a
	// member of the circuit's register set of the matching kind.
	ErrUnknownRegister = errors.New("unknown register")
	// ErrRegisterSetEmpty reports that the circuit owns no registers of
	// the required kind.
	ErrRegisterSetEmpty = errors.New("register set is empty")
)
