// Package decimal128 implements the IEEE 754-2008 decimal128 floating-point
// type (Binary Integer Decimal encoding) used by the BSON binary document
// format. See https://speleotrove.com/decimal/decbits.html for the bit
// layout this package follows.
package decimal128

import (
	"hash/fnv"
	"math/bits"
)

// Value is an immutable 128-bit decimal128 value: a pair of unsigned
// 64-bit halves conforming to the IEEE 754 decimal128 BID encoding.
// The zero Value (both halves zero) is a valid finite +0 with exponent
// -6176, formatting as "0E-6176"; it is not PositiveZero (+0E+0).
type Value struct {
	high uint64
	low  uint64
}

// Bit-mask constants from the decimal128 BID layout. Kept as package
// constants, not derived, so they can be compared directly against
// reference vectors in tests.
const (
	signBitMask  = uint64(1) << 63
	infinityMask = uint64(0x78) << 56
	nanMask      = uint64(0x7c) << 56

	exponentOffset = 6176
	minExponent    = -6176
	maxExponent    = 6111

	// maxBitLength is the widest a finite significand's magnitude may be:
	// 113 bits (10^34 - 1 needs at most 113 bits).
	maxBitLength = 113

	exponentMask14    = uint64(0x3FFF)
	coefficientHiBits = 49
	coefficientHiMask = (uint64(1) << coefficientHiBits) - 1 // 0x0001FFFFFFFFFFFF
)

// New constructs a Value from its raw halves with no validation. Callers
// that hold a pre-validated (sign, unscaled, exponent) triple should use
// Encode instead.
func New(high, low uint64) Value {
	return Value{high: high, low: low}
}

// High returns the upper 64 bits (bits 127..64) of the raw encoding.
func (v Value) High() uint64 { return v.high }

// Low returns the lower 64 bits (bits 63..0) of the raw encoding.
func (v Value) Low() uint64 { return v.low }

var (
	// PositiveZero is +0E+0.
	PositiveZero = Value{high: uint64(exponentOffset) << 49}
	// NegativeZero is -0E+0, distinct from PositiveZero per invariant 2.
	NegativeZero = Value{high: signBitMask | uint64(exponentOffset)<<49}
	// PositiveInfinity is +Infinity.
	PositiveInfinity = Value{high: infinityMask}
	// NegativeInfinity is -Infinity.
	NegativeInfinity = Value{high: signBitMask | infinityMask}
	// NaN is the canonical quiet NaN this package produces; isNaN is true
	// for any encoding whose combination field is 11111, quiet or signaling.
	NaN = Value{high: nanMask}
)

// combinationTop5 returns bits 126..122 (the 5-bit class selector).
func (v Value) combinationTop5() uint64 {
	return (v.high >> 58) & 0x1F
}

// IsNaN reports whether v's combination field identifies it as NaN
// (quiet or signaling — this package does not expose the distinction).
func (v Value) IsNaN() bool {
	return v.combinationTop5() == 0b11111
}

// IsInfinite reports whether v is +Infinity or -Infinity.
//
// This check excludes NaN explicitly. The raw bit masks overlap (NaN_MASK
// is a superset of INFINITY_MASK), so classification must always test NaN
// first; IsInfinite does that internally so every other predicate built on
// it sees a clean partition of {NaN, Infinite, Finite}.
func (v Value) IsInfinite() bool {
	return !v.IsNaN() && v.combinationTop5() == 0b11110
}

// IsFinite reports whether v is neither infinite nor NaN.
func (v Value) IsFinite() bool {
	return !v.IsNaN() && !v.IsInfinite()
}

// IsNegative reports whether the sign bit (bit 127) is set. True for
// -0, -Infinity, and any negative finite value; meaningless but
// well-defined for NaN (NaN has no sign in IEEE 754, but the bit still
// reads back whatever was encoded).
func (v Value) IsNegative() bool {
	return v.high&signBitMask != 0
}

// isFormB reports whether v uses the non-canonical Form B combination
// field (bits 126..125 both set, and not the NaN/Inf pattern). Never
// produced by Encode; only ever seen decoding foreign input.
func (v Value) isFormB() bool {
	return !v.IsNaN() && !v.IsInfinite() && (v.high>>61)&0x3 == 0x3
}

// exponent returns the decoded (unbiased) exponent of a finite Value.
// Behavior is undefined (but total — it will not panic) for NaN/Inf;
// callers must gate on IsFinite first, per spec.
func (v Value) exponent() int {
	if v.isFormB() {
		return int((v.high>>47)&exponentMask14) - exponentOffset
	}
	return int((v.high>>49)&exponentMask14) - exponentOffset
}

// Exponent returns the decoded exponent of a finite Value. ok is false
// for NaN and Infinity, for which the exponent is undefined.
func (v Value) Exponent() (exp int, ok bool) {
	if !v.IsFinite() {
		return 0, false
	}
	return v.exponent(), true
}

// Equal reports bitwise equality of the two halves. Per invariant 2, +0
// and -0 are distinct Values, and two encodings of the same mathematical
// value with different exponents are distinct.
func (v Value) Equal(o Value) bool {
	return v.high == o.high && v.low == o.low
}

// Hash returns a deterministic hash of v's raw bits. The combining
// function is h(low) XOR rotateLeft(h(high), 32), where h is FNV-1a over
// the 8 raw bytes of each half (little-endian, matching the wire byte
// order of §6). This choice is frozen: any change would break callers who
// persist the hash.
func (v Value) Hash() uint64 {
	return fnvHash64(v.low) ^ bits.RotateLeft64(fnvHash64(v.high), 32)
}

func fnvHash64(x uint64) uint64 {
	h := fnv.New64a()
	var b [8]byte
	for i := range b {
		b[i] = byte(x >> (8 * i))
	}
	_, _ = h.Write(b[:])
	return h.Sum64()
}
