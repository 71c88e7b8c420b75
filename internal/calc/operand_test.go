package calc

import "testing"

func TestTrailingOperand(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"", ""},
		{"123", "123"},
		{"12.5", "12.5"},
		{"7+", ""},
		{"7+3", "3"},
		{"3.5+2.7", "2.7"},
		{"7+3.", "3."},
		{"(", ""},
		{"(5", "5"},
		{"1+2)", ""},
		// a minus is part of the operand only where it is unary
		{"-", "-"},
		{"-5", "-5"},
		{"-0.5", "-0.5"},
		{"3-5", "5"},
		{"3*-5", "-5"},
		{"3+-", "-"},
		{"(-5", "-5"},
		{"3--5", "-5"},
	}

	for _, tc := range cases {
		if got := TrailingOperand(tc.expr); got != tc.want {
			t.Errorf("TrailingOperand(%q) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}
