package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateValid(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"7+3", 10},
		{"10-3", 7},
		{"2*3+4*5", 26},
		{"2+3*4", 14},
		{"(3+4)*2", 14},
		{"100/4", 25},
		{"1.5*2", 3},
		{".5+.5", 1},
		{"-5+2", -3},
		{"3*-5", -15},
		{"3--5", 8},
		{"-(2+3)", -5},
		{"2*(3+(4-1))", 12},
		{"0.1+0.2", 0.30000000000000004},
		{"alert(1)", 1}, // sanitizes to "(1)"
	}

	for _, tc := range cases {
		got, err := Evaluate(tc.expr)
		require.NoError(t, err, "Evaluate(%q)", tc.expr)
		assert.InDelta(t, tc.want, got, 1e-15, "Evaluate(%q)", tc.expr)
	}
}

func TestEvaluateFailure(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"abc",
		"7+",
		"+7+",
		"*3",
		"((",
		"(1",
		"1)",
		")(",
		"1..2",
		".",
		"5/0",  // Inf
		"-5/0", // -Inf
		"0/0",  // NaN
		"7+/3",
	}

	for _, expr := range cases {
		_, err := Evaluate(expr)
		assert.ErrorIs(t, err, ErrNotEvaluable, "Evaluate(%q)", expr)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	first, err := Evaluate("7/13+2*9")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Evaluate("7/13+2*9")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Canonicalization is idempotent: evaluating the canonical form of a result
// gives the result back. The large and tiny magnitudes matter most here;
// they are where a formatter that falls back to exponent notation would
// produce a string the evaluator cannot parse.
func TestEvaluateCanonicalRoundTrip(t *testing.T) {
	for _, expr := range []string{
		"10/3", "7+3", "1/7", "0.1+0.2", "2*3.14159", "-5/8",
		"999999*2", "123456789*9", "123456789*123456789",
		"5/100000/100", "-999999*999999",
	} {
		v, err := Evaluate(expr)
		require.NoError(t, err, "Evaluate(%q)", expr)

		again, err := Evaluate(FormatCanonical(v))
		require.NoError(t, err, "round trip of %q", expr)
		assert.Equal(t, FormatCanonical(v), FormatCanonical(again), "round trip of %q", expr)
	}
}
