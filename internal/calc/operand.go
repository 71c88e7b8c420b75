package calc

// TrailingOperand returns the right-most numeric token of expr: the maximal
// suffix of digits with at most one decimal point, plus a leading minus when
// that minus is unary (at the start of the expression, or right after an
// operator or an opening parenthesis). The result is "" when expr ends in an
// operator, "(" or ")".
//
// Delete, negate, percent and the decimal-point rules all operate on this
// token.
func TrailingOperand(expr string) string {
	i := len(expr)
	dot := false
scan:
	for i > 0 {
		switch c := expr[i-1]; {
		case c >= '0' && c <= '9':
			i--
		case c == '.' && !dot:
			dot = true
			i--
		default:
			break scan
		}
	}
	if i > 0 && expr[i-1] == '-' && (i == 1 || IsOperator(expr[i-2]) || expr[i-2] == '(') {
		i--
	}
	return expr[i:]
}
