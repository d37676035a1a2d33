package decimal128

import (
	"errors"
	"math/big"
	"testing"
)

func TestEncodeOutOfRangeExponent(t *testing.T) {
	_, err := Encode(BigDecimal{Unscaled: big.NewInt(1), Scale: -(maxExponent + 1)}, false)
	if !errors.Is(err, OutOfRange) {
		t.Fatalf("Encode exponent overflow: got %v, want OutOfRange", err)
	}

	_, err = Encode(BigDecimal{Unscaled: big.NewInt(1), Scale: -(minExponent - 1)}, false)
	if !errors.Is(err, OutOfRange) {
		t.Fatalf("Encode exponent underflow: got %v, want OutOfRange", err)
	}
}

func TestEncodeOutOfRangeMagnitude(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), maxBitLength) // 2^113, one past the limit
	_, err := Encode(BigDecimal{Unscaled: tooBig, Scale: 0}, false)
	if !errors.Is(err, OutOfRange) {
		t.Fatalf("Encode magnitude overflow: got %v, want OutOfRange", err)
	}

	atLimit := new(big.Int).Sub(tooBig, big.NewInt(1)) // 2^113 - 1, exactly 113 bits
	if _, err := Encode(BigDecimal{Unscaled: atLimit, Scale: 0}, false); err != nil {
		t.Fatalf("Encode at the 113-bit limit should succeed: %v", err)
	}
}

func TestEncodeNeverProducesFormB(t *testing.T) {
	v, err := Encode(BigDecimal{Unscaled: big.NewInt(0), Scale: 0}, false)
	if err != nil {
		t.Fatal(err)
	}
	if v.isFormB() {
		t.Fatal("Encode must never emit Form B")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		unscaled  string
		scale     int
		isNeg     bool
	}{
		{"small positive", "12345", 2, false},
		{"small negative", "12345", 2, true},
		{"zero with scale", "0", -3, false},
		{"negative zero", "0", 0, true},
		{"max significand", "9999999999999999999999999999999999", -6111, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := new(big.Int).SetString(tt.unscaled, 10)
			if !ok {
				t.Fatal("bad test fixture")
			}
			v, err := Encode(BigDecimal{Unscaled: u, Scale: tt.scale}, tt.isNeg)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}

			gotExp, ok := v.Exponent()
			if !ok {
				t.Fatal("Exponent() not ok for finite value")
			}
			if wantExp := -tt.scale; gotExp != wantExp {
				t.Errorf("exponent = %d, want %d", gotExp, wantExp)
			}

			gotMag, ok := v.Unscaled()
			if !ok {
				t.Fatal("Unscaled() not ok for finite value")
			}
			wantMag := new(big.Int).Abs(u)
			if gotMag.Cmp(wantMag) != 0 {
				t.Errorf("unscaled magnitude = %s, want %s", gotMag, wantMag)
			}

			if v.IsNegative() != (u.Sign() < 0 || tt.isNeg) {
				t.Errorf("IsNegative() = %v, want %v", v.IsNegative(), u.Sign() < 0 || tt.isNeg)
			}
		})
	}
}
