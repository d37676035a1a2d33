// Package humanize renders decimal128.Value for people rather than wire
// formats: locale-aware thousands separators and decimal points, via
// golang.org/x/text, the same way the teacher's currency package formats
// FixedPoint. This is a display layer only — it is lossy for magnitudes
// or scales a float64 cannot carry exactly, and it is not used by
// Value.String, which stays exact and locale-independent per spec §4.4.2.
package humanize

import (
	"math"
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/go-decimal128/decimal128/decimal128"
	"github.com/go-decimal128/decimal128/internal/imath"
)

// Localize renders v under tag's locale conventions (decimal point,
// grouping separator), preserving the number of fractional digits implied
// by v's exponent. NaN and Infinity render via Value.String, since they
// have no locale-sensitive digits to format.
func Localize(v decimal128.Value, tag language.Tag) string {
	if !v.IsFinite() {
		return v.String()
	}

	bd, err := v.BigDecimal()
	if err != nil {
		// Negative zero: same digits and scale as positive zero, sign
		// handled below.
		exp, _ := v.Exponent()
		bd = decimal128.BigDecimal{Unscaled: big.NewInt(0), Scale: -exp}
	}

	scale := bd.Scale
	if scale < 0 {
		scale = 0
	}

	f := new(big.Float).SetPrec(256)
	f.SetInt(bd.Unscaled)
	if bd.Scale > 0 {
		denom := new(big.Float).SetInt(imath.Pow10(bd.Scale))
		f.Quo(f, denom)
	} else if bd.Scale < 0 {
		mult := new(big.Float).SetInt(imath.Pow10(-bd.Scale))
		f.Mul(f, mult)
	}
	scaled, _ := f.Float64()

	if v.IsNegative() && scaled == 0 {
		scaled = math.Copysign(0, -1)
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(scaled, number.Scale(scale)))
}
