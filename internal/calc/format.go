package calc

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// canonicalDigits bounds the significant digits of a committed result,
	// suppressing floating-point noise like 0.1+0.2 = 0.30000000000000004.
	canonicalDigits = 12

	// readableFractionDigits bounds the fraction shown in the display form.
	readableFractionDigits = 10
)

// FormatCanonical renders v rounded to 12 significant digits as a plain
// decimal string. This is the form stored in history and spliced back into
// the expression for chained operations, so it stays inside the expression
// character set (never exponent notation) and survives a round trip through
// Evaluate. Non-finite values render as the empty string.
func FormatCanonical(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', canonicalDigits, 64), 64)
	if err != nil {
		return ""
	}
	if rounded == 0 {
		// never leak a negative zero into the display or the expression
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

var readablePrinter = message.NewPrinter(language.English)

// FormatReadable renders a canonical numeric string for presentation, with
// locale thousands grouping and at most ten fraction digits. Non-numeric
// sentinels such as "Error" pass through untouched; the empty string shows
// as "0".
func FormatReadable(s string) string {
	if s == "" {
		return "0"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return readablePrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(readableFractionDigits)))
}
