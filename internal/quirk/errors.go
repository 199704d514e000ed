package quirk

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeUnsupportedGate indicates a gate variant with no classification rule.
	ErrCodeUnsupportedGate ErrorCode = "UNSUPPORTED_GATE"

	// ErrCodeArityMismatch indicates the token count differs from the placement length.
	ErrCodeArityMismatch ErrorCode = "ARITY_MISMATCH"

	// ErrCodeInvalidPlacement indicates a negative or repeated qubit position.
	ErrCodeInvalidPlacement ErrorCode = "INVALID_PLACEMENT"

	// ErrCodeNotCircuit indicates the conversion input is not a circuit.
	ErrCodeNotCircuit ErrorCode = "NOT_CIRCUIT"
)

// Error is a conversion failure. Op is the index of the failing operation
// in program order, or -1 when the failure is not tied to one operation.
type Error struct {
	Code    ErrorCode
	Message string
	Op      int
	Gate    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op >= 0 && e.Gate != "" {
		return fmt.Sprintf("%s: %s (op=%d, gate=%s)", e.Code, e.Message, e.Op, e.Gate)
	}
	if e.Op >= 0 {
		return fmt.Sprintf("%s: %s (op=%d)", e.Code, e.Message, e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the code of err, or "" when err is not an *Error.
func CodeOf(err error) ErrorCode {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}

// IsUnsupportedGate reports whether err is an unsupported-gate error.
func IsUnsupportedGate(err error) bool { return CodeOf(err) == ErrCodeUnsupportedGate }

// IsArityMismatch reports whether err is an arity-mismatch error.
func IsArityMismatch(err error) bool { return CodeOf(err) == ErrCodeArityMismatch }

// IsNotCircuit reports whether err is a non-circuit-input error.
func IsNotCircuit(err error) bool { return CodeOf(err) == ErrCodeNotCircuit }

func newUnsupportedGateError(gate, reason string) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedGate,
		Message: reason,
		Op:      -1,
		Gate:    gate,
	}
}

func newArityError(tokens, qubits int) *Error {
	return &Error{
		Code:    ErrCodeArityMismatch,
		Message: fmt.Sprintf("gate produced %d token(s) for %d qubit(s)", tokens, qubits),
		Op:      -1,
	}
}

func newPlacementError(format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidPlacement,
		Message: fmt.Sprintf(format, args...),
		Op:      -1,
	}
}

func newNotCircuitError(v any) *Error {
	return &Error{
		Code:    ErrCodeNotCircuit,
		Message: fmt.Sprintf("cannot convert value of type %T", v),
		Op:      -1,
	}
}

// atOp stamps the operation index and gate name onto a conversion error.
func atOp(err error, op int, gate string) error {
	var qe *Error
	if errors.As(err, &qe) {
		stamped := *qe
		stamped.Op = op
		if stamped.Gate == "" {
			stamped.Gate = gate
		}
		return &stamped
	}
	return fmt.Errorf("op %d (%s): %w", op, gate, err)
}
