package calc

import (
	"strconv"
	"strings"

	"github.com/codefionn/rechenschnell/internal/history"
)

// ResultError is the committed-result sentinel shown after a failed commit.
const ResultError = "Error"

// Mode tells whether the expression is a live edit buffer or holds a freshly
// committed result.
type Mode int

const (
	// ModeEditing means the expression is being typed.
	ModeEditing Mode = iota
	// ModeEvaluated means the expression holds the last committed result;
	// the next digit or decimal point starts a fresh calculation.
	ModeEvaluated
)

// Editor is the expression-editing state machine. One instance owns the
// expression buffer, the committed result and the history ledger of a single
// session. Events are processed one at a time; the editor is not safe for
// concurrent use.
type Editor struct {
	expr   string
	result string
	mode   Mode
	ledger *history.Ledger
}

// NewEditor returns an editor in its initial state: empty expression,
// committed result "0", editing mode. The ledger may be nil when commits
// should not be recorded.
func NewEditor(ledger *history.Ledger) *Editor {
	return &Editor{result: "0", ledger: ledger}
}

func (e *Editor) Expression() string      { return e.expr }
func (e *Editor) Result() string          { return e.result }
func (e *Editor) Mode() Mode              { return e.mode }
func (e *Editor) Ledger() *history.Ledger { return e.ledger }

// Apply dispatches a keypad action to the matching transition.
func (e *Editor) Apply(a Action) {
	if a.Kind == ActionInput {
		if a.Value == "" {
			return
		}
		switch c := a.Value[0]; {
		case c >= '0' && c <= '9':
			e.InputDigit(c)
		case c == '.':
			e.InputDecimal()
		default:
			e.InputOperator(c)
		}
		return
	}
	switch a.Value {
	case CmdClear:
		e.Clear()
	case CmdDelete:
		e.Delete()
	case CmdEquals:
		e.Equals()
	case CmdNegate:
		e.Negate()
	case CmdPercent:
		e.Percent()
	}
}

// InputDigit appends a digit, starting a fresh expression right after a
// commit. A zero typed onto a bare leading zero (or "-0") is discarded.
func (e *Editor) InputDigit(d byte) {
	if d < '0' || d > '9' {
		return
	}
	if e.mode == ModeEvaluated {
		e.expr = ""
		e.mode = ModeEditing
	}
	if t := TrailingOperand(e.expr); d == '0' && (t == "0" || t == "-0") {
		return
	}
	e.expr += string(d)
}

// InputDecimal appends a decimal point. A second point in the same operand
// is ignored; on an empty operand or a bare minus a leading zero is
// synthesized, so "." becomes "0." and "-" + "." becomes "-0.".
func (e *Editor) InputDecimal() {
	if e.mode == ModeEvaluated {
		e.expr = ""
		e.mode = ModeEditing
	}
	t := TrailingOperand(e.expr)
	if strings.Contains(t, ".") {
		return
	}
	if t == "" || t == "-" {
		e.expr += "0."
		return
	}
	e.expr += "."
}

// InputOperator appends a binary operator. On an empty expression only a
// minus is accepted, as the seed of a negative number. Two operators in a
// row collapse to the most recent one. After a commit the operator chains
// from the canonical result.
func (e *Editor) InputOperator(op byte) {
	if !IsOperator(op) {
		return
	}
	e.mode = ModeEditing
	if e.expr == "" {
		if op == '-' {
			e.expr = "-"
		}
		return
	}
	if IsOperator(e.expr[len(e.expr)-1]) {
		e.expr = e.expr[:len(e.expr)-1] + string(op)
		return
	}
	e.expr += string(op)
}

// Clear resets the session to its initial state. History is untouched.
func (e *Editor) Clear() {
	e.expr = ""
	e.result = "0"
	e.mode = ModeEditing
}

// Delete drops the last character of the expression; deleting the last
// remaining character also resets the committed result. A delete on an empty
// expression is a no-op.
func (e *Editor) Delete() {
	if e.expr == "" {
		return
	}
	e.expr = e.expr[:len(e.expr)-1]
	if e.expr == "" {
		e.result = "0"
	}
	e.mode = ModeEditing
}

// Negate replaces the trailing operand with its canonical negation. With no
// operand to negate (empty or a bare minus) nothing happens.
func (e *Editor) Negate() {
	e.replaceTrailing(func(v float64) float64 { return -v })
}

// Percent replaces the trailing operand with one hundredth of its value.
func (e *Editor) Percent() {
	e.replaceTrailing(func(v float64) float64 { return v / 100 })
}

func (e *Editor) replaceTrailing(f func(float64) float64) {
	t := TrailingOperand(e.expr)
	if t == "" || t == "-" {
		return
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return
	}
	e.expr = e.expr[:len(e.expr)-len(t)] + FormatCanonical(f(v))
	e.mode = ModeEditing
}

// Equals commits the expression. On success the canonical result becomes
// both the expression and the committed result, a history entry is recorded,
// and the editor enters the evaluated mode. On failure only the committed
// result changes, to the Error sentinel; the expression stays editable.
func (e *Editor) Equals() {
	if e.expr == "" {
		return
	}
	v, err := Evaluate(e.expr)
	if err != nil {
		e.result = ResultError
		e.mode = ModeEvaluated
		return
	}
	canonical := FormatCanonical(v)
	if e.ledger != nil {
		e.ledger.Append(e.expr, DisplayExpression(e.expr), canonical)
	}
	e.expr = canonical
	e.result = canonical
	e.mode = ModeEvaluated
}

// Recall reinstates a committed history entry: the stored result becomes the
// expression and the committed result, in evaluated mode, ready for chaining.
func (e *Editor) Recall(entry history.Entry) {
	e.expr = entry.Result
	e.result = entry.Result
	e.mode = ModeEvaluated
}

var displayReplacer = strings.NewReplacer("*", "×", "/", "÷")

// DisplayExpression renders an expression with the multiplication and
// division signs users expect on a calculator face.
func DisplayExpression(expr string) string {
	return displayReplacer.Replace(expr)
}

// DisplayExpression renders the current expression for presentation.
func (e *Editor) DisplayExpression() string {
	return DisplayExpression(e.expr)
}

// Preview evaluates the in-progress expression for the non-committing live
// readout. It reports false while the expression is incomplete (trailing
// operator, decimal point or open parenthesis), right after a commit, and
// when evaluation fails. Preview failures are silent: an expression that is
// mid-edit is not an error.
func (e *Editor) Preview() (string, bool) {
	if e.mode == ModeEvaluated || e.expr == "" {
		return "", false
	}
	switch e.expr[len(e.expr)-1] {
	case '+', '-', '*', '/', '.', '(':
		return "", false
	}
	v, err := Evaluate(e.expr)
	if err != nil {
		return "", false
	}
	return FormatCanonical(v), true
}

// HighlightedValue selects the primary readout: the committed result right
// after a commit, else the live preview, else the operand being typed (or
// the whole translated expression when the operand is empty or a bare
// minus), else "0".
func (e *Editor) HighlightedValue() string {
	if e.mode == ModeEvaluated {
		return e.result
	}
	if p, ok := e.Preview(); ok {
		return p
	}
	if t := TrailingOperand(e.expr); t != "" && t != "-" {
		return t
	}
	if e.expr != "" {
		return e.DisplayExpression()
	}
	return "0"
}
