package compiler

import (
	"errors"
	"fmt"

	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// CompileError is a front-end failure. Pos is set for CUE sources, Line for
// YAML and QASM sources.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
	Line    int
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldNoCircuit is the CompileError field used when a source holds no
// circuit at all.
const FieldNoCircuit = "circuit"

// IsNoCircuit reports whether err says the source described no circuit.
func IsNoCircuit(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce) && ce.Field == FieldNoCircuit
}

func noCircuitError(format string, args ...any) *CompileError {
	return &CompileError{Field: FieldNoCircuit, Message: fmt.Sprintf(format, args...)}
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	// Return first error with position info
	firstErr := errs[0]
	positions := cueerrors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
