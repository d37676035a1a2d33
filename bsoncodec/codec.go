// Package bsoncodec implements the collaborator contract spec.md §6
// describes for the BSON document codec: reading and writing the 16-byte
// little-endian decimal128 element payload. It is a small, concrete stand-in
// for the full BSON document encoder/decoder, which this module does not
// implement — the same relationship the teacher's currency package has to
// fixedpoint, a consumer built atop the core value type rather than part of
// it.
package bsoncodec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-decimal128/decimal128/decimal128"
)

// ElementSize is the fixed wire size of a decimal128 BSON element payload.
const ElementSize = 16

// EncodeElement produces the 16-byte little-endian wire payload for v:
// bytes 0..7 hold Low (byte 0 = bits 7..0 of Low), bytes 8..15 hold High
// (byte 15 = bits 63..56 of High).
func EncodeElement(v decimal128.Value) [ElementSize]byte {
	var b [ElementSize]byte
	binary.LittleEndian.PutUint64(b[0:8], v.Low())
	binary.LittleEndian.PutUint64(b[8:16], v.High())
	return b
}

// DecodeElement reads the inverse of EncodeElement.
func DecodeElement(b [ElementSize]byte) decimal128.Value {
	low := binary.LittleEndian.Uint64(b[0:8])
	high := binary.LittleEndian.Uint64(b[8:16])
	return decimal128.New(high, low)
}

// WriteElement writes v's wire payload to w, for a document codec walking
// a byte stream element-by-element.
func WriteElement(w io.Writer, v decimal128.Value) error {
	b := EncodeElement(v)
	_, err := w.Write(b[:])
	return err
}

// ReadElement reads a 16-byte wire payload from r and decodes it.
func ReadElement(r io.Reader) (decimal128.Value, error) {
	var b [ElementSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return decimal128.Value{}, fmt.Errorf("bsoncodec: short read for decimal128 element: %w", err)
		}
		return decimal128.Value{}, err
	}
	return DecodeElement(b), nil
}
