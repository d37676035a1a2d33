// Package imath provides the arbitrary-precision integer helpers used by
// package decimal128. It is the big.Int analogue of the teacher's
// machine-word imath package: digit counting and power-of-ten lookups,
// generalized to the 34-digit range decimal128 requires.
package imath

import "math/big"

var ten = big.NewInt(10)

// powersOfTen caches 10^n for n in 0..40, covering the 34-digit range of a
// decimal128 significand; larger powers fall back to big.Int.Exp.
var powersOfTen = buildPowersOfTen(40)

func buildPowersOfTen(n int) []*big.Int {
	out := make([]*big.Int, n+1)
	p := big.NewInt(1)
	for i := 0; i <= n; i++ {
		out[i] = new(big.Int).Set(p)
		p = new(big.Int).Mul(p, ten)
	}
	return out
}

// Pow10 returns 10^n as a freshly allocated *big.Int.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic("imath: negative exponent")
	}
	if n < len(powersOfTen) {
		return new(big.Int).Set(powersOfTen[n])
	}
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// CountDigits returns the number of base-10 digits in |n|. Zero has one
// digit, matching decimal128's canonical "0" rendering.
func CountDigits(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}
	abs := n
	if n.Sign() < 0 {
		abs = new(big.Int).Abs(n)
	}
	// big.Int has no direct digit-count API; bit length gives a tight
	// enough starting estimate and we correct it by comparison.
	digits := (abs.BitLen()*30103)/100000 + 1 // log10(2) ~= 0.30103
	for digits > 1 && Pow10(digits-1).Cmp(abs) > 0 {
		digits--
	}
	for Pow10(digits).Cmp(abs) <= 0 {
		digits++
	}
	return digits
}

// BitLen wraps (*big.Int).BitLen, named for symmetry with CountDigits so
// callers reach for one package for both notions of "how big is this".
func BitLen(n *big.Int) int {
	return n.BitLen()
}
