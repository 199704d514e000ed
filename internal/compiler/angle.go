package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/roach88/quirkurl/internal/circuit"
)

// parseAngle accepts a decimal literal, kept verbatim, or an arithmetic
// expression over numbers and pi ("pi/2", "-3*pi/4"), which is evaluated
// and formatted with the shortest round-trip text.
func parseAngle(text string) (circuit.Angle, error) {
	if a, err := circuit.ParseAngle(text); err == nil {
		return a, nil
	}

	p := &exprParser{src: strings.TrimSpace(text)}
	v, err := p.parseSum()
	if err != nil {
		return circuit.Angle{}, fmt.Errorf("angle %q: %w", text, err)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return circuit.Angle{}, fmt.Errorf("angle %q: unexpected %q", text, p.src[p.pos:])
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return circuit.Angle{}, fmt.Errorf("angle %q is not finite", text)
	}
	return circuit.NewAngle(v), nil
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *exprParser) parseSum() (float64, error) {
	v, err := p.parseProduct()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			r, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			v += r
		case '-':
			p.pos++
			r, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseProduct() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= r
		case '/':
			p.pos++
			r, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= r
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	case '+':
		p.pos++
		return p.parseUnary()
	case '(':
		p.pos++
		v, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing )")
		}
		p.pos++
		return v, nil
	}
	return p.parseAtom()
}

func (p *exprParser) parseAtom() (float64, error) {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], "pi") {
		p.pos += 2
		return math.Pi, nil
	}
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
			((c == '-' || c == '+') && p.pos > start && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E')) {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected number or pi at offset %d", start)
	}
	return strconv.ParseFloat(p.src[start:p.pos], 64)
}
