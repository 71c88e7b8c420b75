package calc

import "strings"

// Sanitize strips s down to the characters the evaluator understands.
// Everything outside [0-9+-*/().] is dropped, order preserved. An input with
// no valid characters reduces to the empty string, which the evaluator
// treats as not evaluable.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '(' || c == ')' || IsOperator(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsOperator reports whether c is one of the four binary operator characters.
func IsOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}
