package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/quirkurl/internal/circuit"
)

// LoadCUE loads a .cue file, or every .cue file of a directory as one
// instance, and compiles each field under `circuit:` in declaration order.
//
//	circuit: bell: {
//		qubits: 2
//		ops: [
//			{gate: "h", qubits: [0]},
//			{gate: "cx", qubits: [0, 1]},
//		]
//	}
func LoadCUE(path string) ([]*circuit.Circuit, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loading CUE: %w", err)
	}

	ctx := cuecontext.New()
	var value cue.Value
	if info.IsDir() {
		instances := load.Instances([]string{"."}, &load.Config{Dir: path})
		if len(instances) == 0 {
			return nil, noCircuitError("no CUE instances in %s", path)
		}
		if inst := instances[0]; inst.Err != nil {
			return nil, formatCUEError(inst.Err)
		}
		value = ctx.BuildInstance(instances[0])
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading CUE: %w", err)
		}
		value = ctx.CompileBytes(data, cue.Filename(filepath.Base(path)))
	}
	if err := value.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	return CompileCircuits(value)
}

// CompileCircuits compiles every field of the `circuit` struct in v.
func CompileCircuits(v cue.Value) ([]*circuit.Circuit, error) {
	circuitsVal := v.LookupPath(cue.ParsePath("circuit"))
	if !circuitsVal.Exists() {
		return nil, noCircuitError("no circuit definitions found")
	}

	iter, err := circuitsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var out []*circuit.Circuit
	for iter.Next() {
		c, err := CompileCircuit(iter.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, noCircuitError("circuit struct is empty")
	}
	return out, nil
}

// CompileCircuit parses one CUE circuit struct. The circuit name is the
// struct label unless a `name` field overrides it.
func CompileCircuit(v cue.Value) (*circuit.Circuit, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	c := &circuit.Circuit{}

	labels := v.Path().Selectors()
	if len(labels) > 0 {
		c.Name = labels[len(labels)-1].String()
	}
	if nameVal := v.LookupPath(cue.ParsePath("name")); nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		c.Name = name
	}

	if qubitsVal := v.LookupPath(cue.ParsePath("qubits")); qubitsVal.Exists() {
		n, err := qubitsVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		if n < 0 {
			return nil, &CompileError{Field: "qubits", Message: "qubits must not be negative", Pos: qubitsVal.Pos()}
		}
		c.Qubits = int(n)
	}

	opsVal := v.LookupPath(cue.ParsePath("ops"))
	if !opsVal.Exists() {
		return nil, &CompileError{
			Field:   FieldNoCircuit,
			Message: "ops list is required",
			Pos:     v.Pos(),
		}
	}
	iter, err := opsVal.List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		op, err := compileOp(iter.Value())
		if err != nil {
			return nil, err
		}
		c.Ops = append(c.Ops, op)
	}

	return c, nil
}

func compileOp(v cue.Value) (circuit.Operation, error) {
	gateVal := v.LookupPath(cue.ParsePath("gate"))
	if !gateVal.Exists() {
		return circuit.Operation{}, &CompileError{Field: "ops.gate", Message: "gate is required", Pos: v.Pos()}
	}
	name, err := gateVal.String()
	if err != nil {
		return circuit.Operation{}, formatCUEError(err)
	}

	qubitsVal := v.LookupPath(cue.ParsePath("qubits"))
	if !qubitsVal.Exists() {
		return circuit.Operation{}, &CompileError{Field: "ops.qubits", Message: "qubits is required", Pos: v.Pos()}
	}
	var qubits []int
	if err := qubitsVal.Decode(&qubits); err != nil {
		return circuit.Operation{}, formatCUEError(err)
	}

	var params []circuit.Angle
	if paramsVal := v.LookupPath(cue.ParsePath("params")); paramsVal.Exists() {
		piter, err := paramsVal.List()
		if err != nil {
			return circuit.Operation{}, formatCUEError(err)
		}
		for piter.Next() {
			a, err := cueAngle(piter.Value())
			if err != nil {
				return circuit.Operation{}, err
			}
			params = append(params, a)
		}
	}

	controls := 0
	if ctrlVal := v.LookupPath(cue.ParsePath("controls")); ctrlVal.Exists() {
		n, err := ctrlVal.Int64()
		if err != nil {
			return circuit.Operation{}, formatCUEError(err)
		}
		controls = int(n)
	}

	g, err := circuit.ParseGate(name, params, controls, len(qubits))
	if err != nil {
		return circuit.Operation{}, &CompileError{Field: "ops.gate", Message: err.Error(), Pos: gateVal.Pos()}
	}
	return circuit.Operation{Gate: g, Qubits: qubits}, nil
}

// cueAngle reads a parameter. Numbers keep the exact decimal text of the
// CUE literal; strings may hold a pi expression.
func cueAngle(v cue.Value) (circuit.Angle, error) {
	var text string
	switch v.Kind() {
	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return circuit.Angle{}, formatCUEError(err)
		}
		text = s
	case cue.IntKind, cue.FloatKind, cue.NumberKind:
		b, err := v.MarshalJSON()
		if err != nil {
			return circuit.Angle{}, formatCUEError(err)
		}
		text = string(b)
	default:
		return circuit.Angle{}, &CompileError{Field: "ops.params", Message: fmt.Sprintf("parameter must be a number or string, got %v", v.Kind()), Pos: v.Pos()}
	}

	a, err := parseAngle(text)
	if err != nil {
		return circuit.Angle{}, &CompileError{Field: "ops.params", Message: err.Error(), Pos: v.Pos()}
	}
	return a, nil
}
