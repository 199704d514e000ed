package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/quirkurl/internal/circuit"
)

// yamlCircuit is the YAML (and JSON) circuit document:
//
//	name: bell
//	qubits: 2
//	ops:
//	  - gate: h
//	    qubits: [0]
//	  - gate: crz
//	    params: [0.5]
//	    qubits: [0, 1]
type yamlCircuit struct {
	Name   string    `yaml:"name"`
	Qubits int       `yaml:"qubits"`
	Ops    *[]yamlOp `yaml:"ops"`
}

type yamlOp struct {
	Gate     string      `yaml:"gate"`
	Params   []yaml.Node `yaml:"params,omitempty"`
	Controls int         `yaml:"controls,omitempty"`
	Qubits   []int       `yaml:"qubits"`
}

// ParseYAML parses one or more YAML documents, one circuit each. Unknown
// fields are rejected so typos surface as errors.
func ParseYAML(data []byte) ([]*circuit.Circuit, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var out []*circuit.Circuit
	for {
		var doc yamlCircuit
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &CompileError{Field: "yaml", Message: err.Error()}
		}

		c, err := compileYAML(&doc)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	if len(out) == 0 {
		return nil, noCircuitError("document is empty")
	}
	return out, nil
}

func compileYAML(doc *yamlCircuit) (*circuit.Circuit, error) {
	if doc.Ops == nil {
		return nil, noCircuitError("ops list is required")
	}
	if doc.Qubits < 0 {
		return nil, &CompileError{Field: "qubits", Message: "qubits must not be negative"}
	}

	c := &circuit.Circuit{Name: doc.Name, Qubits: doc.Qubits}
	for i, op := range *doc.Ops {
		params := make([]circuit.Angle, 0, len(op.Params))
		for _, node := range op.Params {
			if node.Kind != yaml.ScalarNode {
				return nil, &CompileError{Field: "ops.params", Message: fmt.Sprintf("op %d: parameter must be a scalar", i), Line: node.Line}
			}
			a, err := parseAngle(node.Value)
			if err != nil {
				return nil, &CompileError{Field: "ops.params", Message: fmt.Sprintf("op %d: %v", i, err), Line: node.Line}
			}
			params = append(params, a)
		}

		if len(op.Qubits) == 0 {
			return nil, &CompileError{Field: "ops.qubits", Message: fmt.Sprintf("op %d (%s): qubits is required", i, op.Gate)}
		}

		g, err := circuit.ParseGate(op.Gate, params, op.Controls, len(op.Qubits))
		if err != nil {
			return nil, &CompileError{Field: "ops.gate", Message: fmt.Sprintf("op %d: %v", i, err)}
		}
		c.Ops = append(c.Ops, circuit.Operation{Gate: g, Qubits: op.Qubits})
	}
	return c, nil
}
