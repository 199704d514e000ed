package circuit

import (
	"errors"
	"fmt"
)

// Source is anything that yields gate operations in program order.
type Source interface {
	Operations() []Operation
}

// Operation is one instruction: a gate and the ordered qubits it acts on.
type Operation struct {
	Gate   Gate
	Qubits []int
}

// Circuit is the in-memory circuit produced by the front ends.
type Circuit struct {
	Name   string
	Qubits int // register width; 0 means unknown
	Ops    []Operation
}

// Operations implements Source.
func (c *Circuit) Operations() []Operation {
	if c == nil {
		return nil
	}
	return c.Ops
}

// Append adds an operation to the end of the circuit.
func (c *Circuit) Append(g Gate, qubits ...int) {
	c.Ops = append(c.Ops, Operation{Gate: g, Qubits: qubits})
}

// Width returns the declared register width, or one more than the highest
// qubit position used when no width was declared.
func (c *Circuit) Width() int {
	if c.Qubits > 0 {
		return c.Qubits
	}
	w := 0
	for _, op := range c.Ops {
		for _, q := range op.Qubits {
			if q+1 > w {
				w = q + 1
			}
		}
	}
	return w
}

// Validate checks structural facts that do not depend on the visualizer
// vocabulary. All violations are reported, joined.
func (c *Circuit) Validate() error {
	var errs []error
	for i, op := range c.Ops {
		if op.Gate == nil {
			errs = append(errs, fmt.Errorf("op %d: missing gate", i))
			continue
		}
		if len(op.Qubits) == 0 {
			errs = append(errs, fmt.Errorf("op %d (%s): no qubits", i, op.Gate.Name()))
			continue
		}
		seen := make(map[int]bool, len(op.Qubits))
		for _, q := range op.Qubits {
			switch {
			case q < 0:
				errs = append(errs, fmt.Errorf("op %d (%s): negative qubit %d", i, op.Gate.Name(), q))
			case c.Qubits > 0 && q >= c.Qubits:
				errs = append(errs, fmt.Errorf("op %d (%s): qubit %d out of range [0,%d)", i, op.Gate.Name(), q, c.Qubits))
			}
			if seen[q] {
				errs = append(errs, fmt.Errorf("op %d (%s): qubit %d used twice", i, op.Gate.Name(), q))
			}
			seen[q] = true
		}
	}
	return errors.Join(errs...)
}
