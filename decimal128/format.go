package decimal128

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-decimal128/decimal128/internal/imath"
)

// String renders v in its canonical textual form, per spec §4.4.2.
//
// Non-canonical Form-B zero encodings format like any other zero with the
// same exponent ("0" for exponent 0, "0E+3" for exponent 3) — their
// significand decodes to zero but the exponent is preserved.
func (v Value) String() string {
	if v.IsNaN() {
		return "NaN"
	}
	if v.IsInfinite() {
		if v.IsNegative() {
			return "-Infinity"
		}
		return "Infinity"
	}

	magnitude, _ := v.Unscaled()
	exp, _ := v.Exponent()

	d := magnitude.String() // "0" for zero, no leading zeros otherwise
	l := imath.CountDigits(magnitude)
	adj := exp + l - 1

	var sb strings.Builder
	if v.IsNegative() {
		sb.WriteByte('-')
	}

	switch {
	case exp <= 0 && adj >= -6:
		// Plain (non-scientific) form.
		switch {
		case exp == 0:
			sb.WriteString(d)
		default:
			if pad := -exp - l; pad >= 0 {
				sb.WriteString("0.")
				sb.WriteString(strings.Repeat("0", pad))
				sb.WriteString(d)
			} else {
				sb.WriteString(d[:l+exp])
				sb.WriteByte('.')
				sb.WriteString(d[l+exp:])
			}
		}
	default:
		// Scientific form.
		sb.WriteByte(d[0])
		if l > 1 {
			sb.WriteByte('.')
			sb.WriteString(d[1:])
		}
		sb.WriteByte('E')
		if adj > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(adj))
	}

	return sb.String()
}

// Debug returns a verbose, human-readable dump of v's classification and
// raw bits, in the spirit of the teacher package's Debug helpers.
func (v Value) Debug() string {
	var kind string
	switch {
	case v.IsNaN():
		kind = "NaN"
	case v.IsInfinite():
		kind = "Infinity"
	case v.isFormB():
		kind = "Finite (Form B, non-canonical)"
	default:
		kind = "Finite (Form A)"
	}

	line := fmt.Sprintf("Kind: %s\nNegative: %v\nRaw High: 0x%016X\nRaw Low:  0x%016X", kind, v.IsNegative(), v.high, v.low)
	if exp, ok := v.Exponent(); ok {
		mag, _ := v.Unscaled()
		line += fmt.Sprintf("\nExponent: %d\nUnscaled: %s", exp, mag.String())
	}
	return line
}
