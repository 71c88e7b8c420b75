package calc

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"7+3", "7+3"},
		{"1.5*(2-3)/4", "1.5*(2-3)/4"},
		{" 7 + 3 ", "7+3"},
		{"abc", ""},
		{"alert(1)", "(1)"},
		{"7;+3#", "7+3"},
		{"1e9", "19"},
		{"×÷", ""},
	}

	for _, tc := range cases {
		if got := Sanitize(tc.input); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIsOperator(t *testing.T) {
	for _, c := range []byte{'+', '-', '*', '/'} {
		if !IsOperator(c) {
			t.Errorf("IsOperator(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{'0', '.', '(', ')', ' '} {
		if IsOperator(c) {
			t.Errorf("IsOperator(%q) = true, want false", c)
		}
	}
}
