package decimal128

import (
	"errors"
	"testing"
)

func TestBigDecimalBridgeRejectsNonFinite(t *testing.T) {
	if _, err := NaN.BigDecimal(); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("NaN.BigDecimal() = %v, want ErrNotFinite", err)
	}
	if _, err := PositiveInfinity.BigDecimal(); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("PositiveInfinity.BigDecimal() = %v, want ErrNotFinite", err)
	}
	if _, err := NegativeInfinity.BigDecimal(); !errors.Is(err, ErrNotFinite) {
		t.Fatalf("NegativeInfinity.BigDecimal() = %v, want ErrNotFinite", err)
	}
}

func TestBigDecimalBridgeRejectsNegativeZero(t *testing.T) {
	neg, err := Parse("-0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := neg.BigDecimal(); !errors.Is(err, ErrNegativeZero) {
		t.Fatalf("(-0).BigDecimal() = %v, want ErrNegativeZero", err)
	}

	pos, err := Parse("0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pos.BigDecimal(); err != nil {
		t.Fatalf("(+0).BigDecimal() unexpected error: %v", err)
	}
}

func TestBigDecimalBridgeRoundTrip(t *testing.T) {
	v, err := Parse("-123.45")
	if err != nil {
		t.Fatal(err)
	}
	bd, err := v.BigDecimal()
	if err != nil {
		t.Fatal(err)
	}
	if bd.Unscaled.String() != "-12345" {
		t.Errorf("Unscaled = %s, want -12345", bd.Unscaled)
	}
	if bd.Scale != 2 {
		t.Errorf("Scale = %d, want 2", bd.Scale)
	}

	back, err := Encode(bd, false)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Errorf("Encode(BigDecimal(v)) = %+v, want %+v", back, v)
	}
}

func TestFormBDecodesSignificandAsZero(t *testing.T) {
	v := New(0x6C10000000000000, 0x0)
	mag, ok := v.Unscaled()
	if !ok {
		t.Fatal("Unscaled() not ok")
	}
	if mag.Sign() != 0 {
		t.Fatalf("Form B significand = %s, want 0", mag)
	}
}
