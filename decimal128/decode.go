package decimal128

import "math/big"

// Unscaled returns the non-negative significand magnitude of a finite
// Value. Form-A encodings reconstruct the full 113-bit magnitude; Form-B
// encodings (non-canonical, never produced by Encode) decode to zero per
// spec — "implementations treat the significand as zero when decoding
// these encodings."
func (v Value) Unscaled() (*big.Int, bool) {
	if !v.IsFinite() {
		return nil, false
	}
	if v.isFormB() {
		return big.NewInt(0), true
	}

	hi := new(big.Int).SetUint64(v.high & coefficientHiMask)
	hi.Lsh(hi, 64)
	lo := new(big.Int).SetUint64(v.low)
	return hi.Or(hi, lo), true
}

// BigDecimal projects a finite Value onto the arbitrary-precision bridge:
// unscaled = sign * magnitude, scale = -exponent.
//
// It fails with ErrNotFinite for NaN and Infinity, and with
// ErrNegativeZero for a signed zero (since BigDecimal's sign lives only in
// Unscaled.Sign(), which cannot distinguish -0 from +0). Callers who want
// to tolerate negative zero must inspect the Value directly — IsNegative
// — rather than going through this bridge.
func (v Value) BigDecimal() (BigDecimal, error) {
	if !v.IsFinite() {
		return BigDecimal{}, ErrNotFinite
	}

	magnitude, _ := v.Unscaled()
	exp, _ := v.Exponent()

	unscaled := new(big.Int).Set(magnitude)
	if v.IsNegative() {
		unscaled.Neg(unscaled)
	}

	if unscaled.Sign() == 0 && v.IsNegative() {
		return BigDecimal{}, ErrNegativeZero
	}

	return BigDecimal{Unscaled: unscaled, Scale: -exp}, nil
}
