package quirk

import (
	"fmt"
	"strings"

	"github.com/roach88/quirkurl/internal/circuit"
)

// Classify maps a gate to its display tokens, one per qubit in the gate's
// placement order. Variants without a rule fail with ErrCodeUnsupportedGate.
func Classify(g circuit.Gate) ([]Token, error) {
	switch v := g.(type) {
	case circuit.Fixed:
		if !circuit.FixedGates[v.Symbol] {
			return nil, newUnsupportedGateError(v.Symbol, "no symbol for fixed gate")
		}
		return []Token{Symbol(strings.ToUpper(v.Symbol))}, nil

	case circuit.Rotation:
		if !circuit.RotationGates[v.Axis] {
			return nil, newUnsupportedGateError(v.Axis, "no symbol for rotation gate")
		}
		return []Token{Param(rotationLabel(v.Axis), v.Angle.String())}, nil

	case circuit.Controlled:
		if v.Controls < 1 {
			return nil, newUnsupportedGateError(v.Name(), fmt.Sprintf("controlled gate needs at least one control, got %d", v.Controls))
		}
		if v.Controls >= MaxRows {
			return nil, newUnsupportedGateError(v.Name(), fmt.Sprintf("%d controls do not fit in %d rows", v.Controls, MaxRows))
		}
		if v.Base == nil {
			return nil, newUnsupportedGateError(v.Name(), "controlled gate has no base gate")
		}
		base, err := Classify(v.Base)
		if err != nil {
			return nil, err
		}
		tokens := make([]Token, 0, v.Controls+len(base))
		for range v.Controls {
			tokens = append(tokens, Control)
		}
		return append(tokens, base...), nil

	case circuit.Opaque:
		return nil, newUnsupportedGateError(v.Label, "gate has no Quirk equivalent")

	case nil:
		return nil, newUnsupportedGateError("", "missing gate")

	default:
		return nil, newUnsupportedGateError(g.Name(), fmt.Sprintf("unknown gate variant %T", g))
	}
}

// rotationLabel gives the Quirk formula-rotation id for a rotation axis:
// "rz" becomes "Rzft".
func rotationLabel(axis string) string {
	return strings.ToUpper(axis[:1]) + axis[1:] + "ft"
}
