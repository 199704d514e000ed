package compiler

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/roach88/quirkurl/internal/circuit"
)

var (
	qregRegex  = regexp.MustCompile(`^qreg\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]$`)
	applyRegex = regexp.MustCompile(`^([A-Za-z_]\w*)\s*(?:\((.*)\))?\s+(.+)$`)
	qubitRegex = regexp.MustCompile(`^([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]$`)
)

// ParseQASM parses the OpenQASM 2.0 subset made of register declarations
// and gate applications. Quantum registers are laid out one after another
// in declaration order, so q[0] of the second register follows the last
// qubit of the first. Barriers are skipped; gates with no known meaning
// (measure, reset, swap, ...) become Opaque operations and are reported by
// the converter rather than here.
func ParseQASM(src string) (*circuit.Circuit, error) {
	c := &circuit.Circuit{}
	offsets := map[string]int{}
	sizes := map[string]int{}

	for _, stmt := range splitStatements(src) {
		text, line := stmt.text, stmt.line
		keyword := strings.Fields(text)[0]

		switch {
		case strings.HasPrefix(text, "OPENQASM"), strings.HasPrefix(text, "include"):
			continue
		case keyword == "creg", keyword == "barrier":
			continue
		case keyword == "qreg":
			m := qregRegex.FindStringSubmatch(text)
			if m == nil {
				return nil, &CompileError{Field: "qreg", Message: fmt.Sprintf("malformed register %q", text), Line: line}
			}
			if _, dup := offsets[m[1]]; dup {
				return nil, &CompileError{Field: "qreg", Message: fmt.Sprintf("register %q declared twice", m[1]), Line: line}
			}
			n, err := strconv.Atoi(m[2])
			if err != nil || n > math.MaxInt-c.Qubits {
				return nil, &CompileError{Field: "qreg", Message: fmt.Sprintf("register %q size %s is too large", m[1], m[2]), Line: line}
			}
			offsets[m[1]] = c.Qubits
			sizes[m[1]] = n
			c.Qubits += n
			continue
		case keyword == "gate", keyword == "opaque", keyword == "if", strings.HasPrefix(keyword, "if("):
			return nil, &CompileError{Field: "qasm", Message: fmt.Sprintf("%q statements are not supported", keyword), Line: line}
		}

		op, err := parseApplication(text, offsets, sizes)
		if err != nil {
			return nil, &CompileError{Field: "qasm", Message: err.Error(), Line: line}
		}
		c.Ops = append(c.Ops, op)
	}

	if len(offsets) == 0 {
		return nil, noCircuitError("no qreg declaration found")
	}
	return c, nil
}

func parseApplication(text string, offsets, sizes map[string]int) (circuit.Operation, error) {
	// measure q[0] -> c[0]; only the quantum side matters here
	text, _, _ = strings.Cut(text, "->")
	text = strings.TrimSpace(text)

	m := applyRegex.FindStringSubmatch(text)
	if m == nil {
		return circuit.Operation{}, fmt.Errorf("malformed statement %q", text)
	}
	name, rawParams, rawArgs := m[1], m[2], m[3]

	var params []circuit.Angle
	if strings.TrimSpace(rawParams) != "" {
		for _, p := range strings.Split(rawParams, ",") {
			a, err := parseAngle(p)
			if err != nil {
				return circuit.Operation{}, err
			}
			params = append(params, a)
		}
	}

	var qubits []int
	for _, arg := range strings.Split(rawArgs, ",") {
		arg = strings.TrimSpace(arg)
		qm := qubitRegex.FindStringSubmatch(arg)
		if qm == nil {
			return circuit.Operation{}, fmt.Errorf("%s: argument %q must be an indexed qubit", name, arg)
		}
		offset, ok := offsets[qm[1]]
		if !ok {
			return circuit.Operation{}, fmt.Errorf("%s: unknown register %q", name, qm[1])
		}
		idx, err := strconv.Atoi(qm[2])
		if err != nil || idx >= sizes[qm[1]] {
			return circuit.Operation{}, fmt.Errorf("%s: %s[%s] out of range (size %d)", name, qm[1], qm[2], sizes[qm[1]])
		}
		qubits = append(qubits, offset+idx)
	}

	g, err := circuit.ParseGate(name, params, 0, len(qubits))
	if err != nil {
		return circuit.Operation{}, err
	}
	return circuit.Operation{Gate: g, Qubits: qubits}, nil
}

type statement struct {
	text string
	line int
}

// splitStatements strips // comments and splits src on semicolons,
// remembering the line each statement starts on.
func splitStatements(src string) []statement {
	var out []statement
	var cur strings.Builder
	start := 0

	for i, line := range strings.Split(src, "\n") {
		line, _, _ = strings.Cut(line, "//")
		for _, r := range line {
			if r == ';' {
				if s := strings.TrimSpace(cur.String()); s != "" {
					out = append(out, statement{text: s, line: start})
				}
				cur.Reset()
				continue
			}
			if cur.Len() == 0 && (r == ' ' || r == '\t' || r == '\r') {
				continue
			}
			if cur.Len() == 0 {
				start = i + 1
			}
			cur.WriteRune(r)
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, statement{text: s, line: start})
	}
	return out
}
