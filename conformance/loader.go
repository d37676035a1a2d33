// Package conformance implements the collaborator contract spec.md §6
// calls the "test-harness loader": it reads the JSON fixture format used by
// the mongo driver's decimal128 BSON conformance corpus (see
// original_source) and drives package decimal128 through it. This package
// is deliberately thin — per spec, "the core's only obligation is to
// expose parse and format entry points that the harness can drive
// directly" — everything here is glue, not core logic.
//
// For this module's scope, "canonical_bson" in a fixture is the raw
// 16-byte little-endian decimal128 element payload (§6), not a full BSON
// document: the document encoder/decoder itself is an external
// collaborator this module does not implement.
package conformance

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-decimal128/decimal128/bsoncodec"
	"github.com/go-decimal128/decimal128/decimal128"
)

// ValidCase is one entry of a fixture's "valid" array.
type ValidCase struct {
	Description     string  `json:"description"`
	CanonicalBSON   string  `json:"canonical_bson"`
	CanonicalString string  `json:"canonical_string"`
	MatchString     *string `json:"match_string,omitempty"`
	Lossy           bool    `json:"lossy,omitempty"`
}

// ParseErrorCase is one entry of a fixture's "parseErrors" array: a
// subject string that must fail to parse.
type ParseErrorCase struct {
	Description string `json:"description"`
	String      string `json:"string"`
}

// File is a decoded conformance fixture.
type File struct {
	Description string           `json:"description"`
	Valid       []ValidCase      `json:"valid"`
	ParseErrors []ParseErrorCase `json:"parseErrors"`
}

// LoadFile decodes a JSON conformance fixture from r.
func LoadFile(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("conformance: decoding fixture: %w", err)
	}
	return &f, nil
}

// TestingT is the minimal subset of *testing.T that Run needs, so this
// package can drive any harness — not just "testing" — exactly as spec.md
// §6 describes the loader's relationship to the core.
type TestingT interface {
	Errorf(format string, args ...any)
}

// Run feeds every case in f through package decimal128 and bsoncodec,
// reporting any mismatch to t.
func (f *File) Run(t TestingT) {
	for _, vc := range f.Valid {
		runValidCase(t, vc)
	}
	for _, pe := range f.ParseErrors {
		if _, err := decimal128.Parse(pe.String); err == nil {
			t.Errorf("%s: Parse(%q) succeeded, want an error", pe.Description, pe.String)
		}
	}
}

func runValidCase(t TestingT, vc ValidCase) {
	wantBytes, err := hex.DecodeString(vc.CanonicalBSON)
	if err != nil || len(wantBytes) != bsoncodec.ElementSize {
		t.Errorf("%s: bad canonical_bson fixture %q: %v", vc.Description, vc.CanonicalBSON, err)
		return
	}
	var wantArr [bsoncodec.ElementSize]byte
	copy(wantArr[:], wantBytes)

	v := bsoncodec.DecodeElement(wantArr)
	if got := v.String(); got != vc.CanonicalString {
		t.Errorf("%s: decode(canonical_bson).String() = %q, want %q", vc.Description, got, vc.CanonicalString)
	}

	reparsed, err := decimal128.Parse(vc.CanonicalString)
	if err != nil {
		t.Errorf("%s: Parse(canonical_string) failed: %v", vc.Description, err)
		return
	}
	if got := bsoncodec.EncodeElement(reparsed); got != wantArr {
		t.Errorf("%s: Parse(canonical_string) did not re-encode to canonical_bson", vc.Description)
	}

	if vc.MatchString != nil {
		liberal, err := decimal128.Parse(*vc.MatchString)
		if err != nil {
			t.Errorf("%s: Parse(match_string=%q) failed: %v", vc.Description, *vc.MatchString, err)
			return
		}
		if !vc.Lossy {
			if got := bsoncodec.EncodeElement(liberal); got != wantArr {
				t.Errorf("%s: Parse(match_string) did not re-encode to canonical_bson", vc.Description)
			}
		}
	}
}
