package circuit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Gate is one of Fixed, Rotation, Controlled or Opaque.
type Gate interface {
	// Name returns the lower-case mnemonic of the gate (e.g. "x", "rz", "ccx").
	Name() string
	gate()
}

// Fixed is a parameterless single-qubit gate.
type Fixed struct {
	Symbol string // "h", "x", "y", "z"
}

// Rotation is a single-qubit rotation carrying one real parameter.
type Rotation struct {
	Axis  string // "rx", "ry", "rz"
	Angle Angle
}

// Controlled wraps a base gate with Controls control qubits.
type Controlled struct {
	Base     Gate
	Controls int
}

// Opaque is a gate the source named but that has no known meaning here.
// It is kept so classification can report it instead of silently dropping it.
type Opaque struct {
	Label  string
	Params []Angle
	Qubits int
}

func (Fixed) gate()      {}
func (Rotation) gate()   {}
func (Controlled) gate() {}
func (Opaque) gate()     {}

func (g Fixed) Name() string    { return g.Symbol }
func (g Rotation) Name() string { return g.Axis }
func (g Opaque) Name() string   { return g.Label }

// Name spells out up to maxSpelledControls controls ("ccx"); larger or
// negative counts are written as "c(N)x".
func (g Controlled) Name() string {
	base := "?"
	if g.Base != nil {
		base = g.Base.Name()
	}
	if g.Controls < 0 || g.Controls > maxSpelledControls {
		return fmt.Sprintf("c(%d)%s", g.Controls, base)
	}
	return strings.Repeat("c", g.Controls) + base
}

const maxSpelledControls = 8

// FixedGates are the parameterless gates with a visualizer symbol.
var FixedGates = map[string]bool{
	"h": true,
	"x": true,
	"y": true,
	"z": true,
}

// RotationGates are the single-parameter rotations with a visualizer symbol.
var RotationGates = map[string]bool{
	"rx": true,
	"ry": true,
	"rz": true,
}

// Arity returns the number of qubits g spans.
func Arity(g Gate) int {
	switch v := g.(type) {
	case Fixed, Rotation:
		return 1
	case Controlled:
		if v.Base == nil {
			return v.Controls
		}
		return v.Controls + Arity(v.Base)
	case Opaque:
		return v.Qubits
	default:
		return 0
	}
}

// Angle is a rotation parameter. Text holds the literal decimal text from
// the source when one was available, so the value can be re-emitted without
// a binary floating point round trip.
type Angle struct {
	Value float64
	Text  string
}

// NewAngle builds an Angle from a float using the shortest text that
// round-trips to the same value.
func NewAngle(v float64) Angle {
	return Angle{Value: v, Text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// decimalRegex is the literal form kept verbatim: digits with an optional
// fraction and exponent. Go-only spellings such as 1_000 or 0x1p-2 are not
// readable by the visualizer.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseAngle parses a plain decimal literal, keeping its text verbatim.
func ParseAngle(text string) (Angle, error) {
	text = strings.TrimSpace(text)
	if !decimalRegex.MatchString(text) {
		return Angle{}, fmt.Errorf("invalid angle %q: not a decimal number", text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Angle{}, fmt.Errorf("invalid angle %q: %w", text, err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Angle{}, fmt.Errorf("invalid angle %q: not finite", text)
	}
	return Angle{Value: v, Text: text}, nil
}

// String returns the exact text of the angle.
func (a Angle) String() string {
	if a.Text != "" {
		return a.Text
	}
	return strconv.FormatFloat(a.Value, 'g', -1, 64)
}

// ParseGate resolves a gate name to its variant.
//
// A run of leading 'c' characters in front of a known base name produces a
// Controlled gate with that many controls ("cx", "ccx", "crz"). A positive
// controls argument wraps the resolved gate in one more Controlled layer.
// Unknown names resolve to Opaque with the given number of qubits; the
// caller decides whether that is an error.
func ParseGate(name string, params []Angle, controls int, qubits int) (Gate, error) {
	if controls < 0 {
		return nil, fmt.Errorf("gate %q: negative control count %d", name, controls)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("gate name is empty")
	}

	base, err := parseBase(name, params, qubits-controls)
	if err != nil {
		return nil, err
	}
	if controls > 0 {
		return Controlled{Base: base, Controls: controls}, nil
	}
	return base, nil
}

func parseBase(name string, params []Angle, qubits int) (Gate, error) {
	if g, ok, err := parseKnown(name, params); ok || err != nil {
		return g, err
	}

	// Strip leading controls as long as what remains is known.
	n := 0
	for n < len(name) && name[n] == 'c' {
		n++
		g, ok, err := parseKnown(name[n:], params)
		if err != nil {
			return nil, err
		}
		if ok {
			return Controlled{Base: g, Controls: n}, nil
		}
	}

	return Opaque{Label: name, Params: params, Qubits: qubits}, nil
}

func parseKnown(name string, params []Angle) (Gate, bool, error) {
	switch {
	case FixedGates[name]:
		if len(params) != 0 {
			return nil, true, fmt.Errorf("gate %q takes no parameters, got %d", name, len(params))
		}
		return Fixed{Symbol: name}, true, nil
	case RotationGates[name]:
		if len(params) != 1 {
			return nil, true, fmt.Errorf("gate %q takes exactly one parameter, got %d", name, len(params))
		}
		return Rotation{Axis: name, Angle: params[0]}, true, nil
	}
	return nil, false, nil
}
