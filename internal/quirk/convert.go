package quirk

import (
	"io"
	"log/slog"

	"github.com/roach88/quirkurl/internal/circuit"
)

// Converter runs the classify → layout → encode pipeline.
// The zero value is ready to use and logs nothing.
type Converter struct {
	Logger *slog.Logger
}

// NewConverter returns a Converter logging to logger. A nil logger
// discards everything.
func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{Logger: logger}
}

func (c *Converter) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// Unparse converts v, which must be a non-nil circuit.Source, into a
// Quirk URL using a Converter that does not log.
func Unparse(v any) (string, error) {
	return (&Converter{}).Unparse(v)
}

// Unparse converts v into a Quirk URL. The first failing operation aborts
// the conversion and no URL is returned.
func (c *Converter) Unparse(v any) (string, error) {
	g, err := c.Layout(v)
	if err != nil {
		return "", err
	}
	return URL(g)
}

// Layout classifies and places every operation of v in program order and
// returns the finished grid.
func (c *Converter) Layout(v any) (*Grid, error) {
	src, err := asSource(v)
	if err != nil {
		return nil, err
	}
	log := c.logger()

	g := NewGrid()
	for i, op := range src.Operations() {
		name := gateName(op.Gate)

		col, err := PlaceOp(op)
		if err != nil {
			log.Debug("operation rejected", "op", i, "gate", name, "error", err)
			return nil, atOp(err, i, name)
		}

		if g.push(col) {
			log.Debug("merged into column", "op", i, "gate", name, "column", g.Len()-1)
		} else {
			log.Debug("opened column", "op", i, "gate", name, "column", g.Len()-1)
		}
	}

	log.Info("layout complete", "ops", len(src.Operations()), "columns", g.Len())
	return g, nil
}

// asSource rejects anything that is not a usable circuit, including typed
// nil pointers hidden in the interface.
func asSource(v any) (circuit.Source, error) {
	src, ok := v.(circuit.Source)
	if !ok || src == nil {
		return nil, newNotCircuitError(v)
	}
	if c, ok := src.(*circuit.Circuit); ok && c == nil {
		return nil, newNotCircuitError(v)
	}
	return src, nil
}

// PlaceOp classifies the gate of op and places its tokens on op's qubits.
// A controlled gate is sized against its placement before any control
// tokens are built, so an oversized control count fails as an arity
// mismatch instead of being expanded.
func PlaceOp(op circuit.Operation) (Column, error) {
	if cg, ok := op.Gate.(circuit.Controlled); ok && cg.Controls >= 1 && cg.Base != nil {
		if n := circuit.Arity(cg); n != len(op.Qubits) {
			return nil, newArityError(n, len(op.Qubits))
		}
	}
	tokens, err := Classify(op.Gate)
	if err != nil {
		return nil, err
	}
	return Place(tokens, op.Qubits)
}

func gateName(g circuit.Gate) string {
	if g == nil {
		return ""
	}
	return g.Name()
}
