package decimal128

import (
	"math/big"
	"strconv"

	"github.com/go-decimal128/decimal128/internal/imath"
)

// BigDecimal is the arbitrary-precision bridge named throughout the spec:
// an unscaled integer and a decimal scale, so that the represented number
// is Unscaled * 10^-Scale. It cannot express the sign of zero — Encode
// takes an explicit isNegative flag for that reason, and the bridge
// decoder (Value.BigDecimal) refuses to produce a BigDecimal for -0.
type BigDecimal struct {
	Unscaled *big.Int
	Scale    int
}

// Encode produces the 128-bit Form-A encoding of d, with sign taken from
// sign(d.Unscaled) OR isNegative (the flag is the only signal for zero,
// which the unscaled integer cannot sign on its own). The two are not
// checked against each other: a positive d.Unscaled with isNegative set
// encodes a negative Value, which is how Parse passes its sign.
//
// Encode never emits a Form-B encoding.
func Encode(d BigDecimal, isNegative bool) (Value, error) {
	exponent := -d.Scale
	if exponent < minExponent || exponent > maxExponent {
		return Value{}, outOfRangef(d.String())
	}

	magnitude := new(big.Int).Abs(d.Unscaled)
	if imath.BitLen(magnitude) > maxBitLength {
		return Value{}, outOfRangef(d.String())
	}

	var v Value
	lowBig := new(big.Int).And(magnitude, maxUint64Big)
	hiBig := new(big.Int).Rsh(magnitude, 64)

	v.low = lowBig.Uint64()
	v.high = hiBig.Uint64() & coefficientHiMask

	biased := uint64(exponent + exponentOffset)
	v.high |= biased << 49

	if d.Unscaled.Sign() < 0 || isNegative {
		v.high |= signBitMask
	}

	return v, nil
}

var maxUint64Big = new(big.Int).SetUint64(^uint64(0))

// String renders a BigDecimal as "unscaled E-scale" for error messages;
// not the canonical decimal128 string (that's Value.String).
func (d BigDecimal) String() string {
	if d.Unscaled == nil {
		return "<nil>E0"
	}
	return d.Unscaled.String() + "E" + strconv.FormatInt(int64(-d.Scale), 10)
}
