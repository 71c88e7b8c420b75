package calc

import (
	"errors"
	"math"
	"strconv"
)

// ErrNotEvaluable is the single failure signal of Evaluate. Empty input,
// malformed syntax and non-finite results all collapse into it; callers only
// learn success or failure.
var ErrNotEvaluable = errors.New("expression not evaluable")

// Evaluate parses expr as infix arithmetic and returns the finite result.
// Multiplication and division bind tighter than addition and subtraction,
// parentheses group, and a leading + or - before a factor is unary. The
// input is sanitized first, so raw user strings are safe to pass; anything
// outside plain arithmetic cannot reach the parser.
//
// Evaluate is deterministic and side-effect free.
func Evaluate(expr string) (float64, error) {
	src := Sanitize(expr)
	if src == "" {
		return 0, ErrNotEvaluable
	}
	p := &parser{input: src}
	val, ok := p.parseAddSub()
	if !ok || p.pos < len(p.input) {
		return 0, ErrNotEvaluable
	}
	// Division by zero and overflow surface here as Inf, 0/0 as NaN.
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, ErrNotEvaluable
	}
	return val, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) parseAddSub() (float64, bool) {
	val, ok := p.parseMulDiv()
	if !ok {
		return 0, false
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			break
		}
		p.pos++
		right, ok := p.parseMulDiv()
		if !ok {
			return 0, false
		}
		if op == '+' {
			val += right
		} else {
			val -= right
		}
	}
	return val, true
}

func (p *parser) parseMulDiv() (float64, bool) {
	val, ok := p.parseFactor()
	if !ok {
		return 0, false
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			break
		}
		p.pos++
		right, ok := p.parseFactor()
		if !ok {
			return 0, false
		}
		if op == '*' {
			val *= right
		} else {
			val /= right
		}
	}
	return val, true
}

func (p *parser) parseFactor() (float64, bool) {
	switch p.peek() {
	case '+':
		p.pos++
		return p.parseFactor()
	case '-':
		p.pos++
		v, ok := p.parseFactor()
		return -v, ok
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, bool) {
	c := p.peek()
	if c == '(' {
		p.pos++
		v, ok := p.parseAddSub()
		if !ok || p.peek() != ')' {
			return 0, false
		}
		p.pos++
		return v, true
	}
	if (c < '0' || c > '9') && c != '.' {
		return 0, false
	}
	start := p.pos
	dot := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !dot {
			dot = true
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
