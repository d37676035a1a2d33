package bsoncodec

import (
	"bytes"
	"testing"

	"github.com/go-decimal128/decimal128/decimal128"
)

func TestByteOrderMatchesSpec(t *testing.T) {
	v, err := decimal128.Parse("0")
	if err != nil {
		t.Fatal(err)
	}
	b := EncodeElement(v)
	// Parse("0") is PositiveZero: high = 0x3040000000000000, low = 0.
	want := [16]byte{
		0, 0, 0, 0, 0, 0, 0, 0, // low, little-endian
		0, 0, 0, 0, 0, 0, 0x40, 0x30, // high, little-endian
	}
	if b != want {
		t.Fatalf("EncodeElement(0) = %x, want %x", b, want)
	}
}

func TestElementRoundTrip(t *testing.T) {
	literals := []string{"0", "-0", "123.456", "1E6", "NaN", "Infinity", "-Infinity", "9.999999999999999999999999999999999E+6144"}
	for _, lit := range literals {
		t.Run(lit, func(t *testing.T) {
			v, err := decimal128.Parse(lit)
			if err != nil {
				t.Fatal(err)
			}
			b := EncodeElement(v)
			got := DecodeElement(b)
			if !got.Equal(v) {
				t.Errorf("round trip of %q: got %+v, want %+v", lit, got, v)
			}
		})
	}
}

func TestStreamRoundTrip(t *testing.T) {
	v, err := decimal128.Parse("-123.45")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteElement(&buf, v); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != ElementSize {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), ElementSize)
	}

	got, err := ReadElement(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(v) {
		t.Errorf("ReadElement(WriteElement(v)) = %+v, want %+v", got, v)
	}
}

func TestReadElementShortRead(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2, 3})
	if _, err := ReadElement(r); err == nil {
		t.Fatal("expected an error reading a short element")
	}
}
