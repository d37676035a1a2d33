package decimal128

import (
	"math/big"
	"strconv"
	"strings"
)

var (
	nanTokens         = map[string]bool{"nan": true}
	positiveInfTokens = map[string]bool{"inf": true, "+inf": true, "infinity": true, "+infinity": true}
	negativeInfTokens = map[string]bool{"-inf": true, "-infinity": true}
)

// Parse parses a canonical or liberal decimal string into a Value, per
// spec §4.4.1. Case is folded for the special tokens (NaN, Inf/Infinity
// with an optional sign); everything else is parsed as a signed decimal
// with an optional fraction and an optional E-exponent.
//
// A leading '-' is the only way to request a negative zero: the sign is
// read from the literal first character of s, not from the numeric value,
// so Parse("-0") is NegativeZero even though its magnitude is zero.
func Parse(s string) (Value, error) {
	if s == "" {
		return Value{}, parseErrorf(s)
	}

	switch folded := strings.ToLower(s); {
	case nanTokens[folded]:
		return NaN, nil
	case positiveInfTokens[folded]:
		return PositiveInfinity, nil
	case negativeInfTokens[folded]:
		return NegativeInfinity, nil
	}

	isNegative := s[0] == '-'
	rest := s
	if rest[0] == '-' || rest[0] == '+' {
		rest = rest[1:]
	}

	basePart, expPart, hasExp := rest, "", false
	if i := strings.IndexAny(rest, "eE"); i != -1 {
		basePart, expPart, hasExp = rest[:i], rest[i+1:], true
	}

	expVal := 0
	if hasExp {
		if expPart == "" {
			return Value{}, parseErrorf(s)
		}
		v, err := strconv.Atoi(expPart)
		if err != nil {
			return Value{}, parseErrorf(s)
		}
		expVal = v
	}

	decDigits := 0
	if i := strings.IndexByte(basePart, '.'); i != -1 {
		if strings.IndexByte(basePart[i+1:], '.') != -1 {
			return Value{}, parseErrorf(s)
		}
		decDigits = len(basePart) - i - 1
		basePart = basePart[:i] + basePart[i+1:]
	}

	if basePart == "" {
		return Value{}, parseErrorf(s)
	}
	for _, c := range basePart {
		if c < '0' || c > '9' {
			return Value{}, parseErrorf(s)
		}
	}

	trimmed := strings.TrimLeft(basePart, "0")
	if trimmed == "" {
		// The value is zero; the exponent is still significant (two
		// encodings of zero with different exponents are distinct
		// Values per invariant 2), but it must still be in range.
		return Encode(BigDecimal{Unscaled: big.NewInt(0), Scale: -(expVal - decDigits)}, isNegative)
	}

	coefficient := new(big.Int)
	if _, ok := coefficient.SetString(trimmed, 10); !ok {
		return Value{}, parseErrorf(s)
	}

	totalExp := expVal - decDigits
	return Encode(BigDecimal{Unscaled: coefficient, Scale: -totalExp}, isNegative)
}
