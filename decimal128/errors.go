package decimal128

import "fmt"

// The four error kinds this package reports, per spec: ParseError and
// OutOfRange are raised at parse/encode time and are interchangeable from
// a caller's point of view; NotFinite and NegativeZero are raised only
// when projecting a Value onto the arbitrary-precision bridge (BigDecimal).
var (
	// ParseError marks malformed textual input. Use errors.Is(err, ParseError).
	ParseError = fmt.Errorf("decimal128: parse error")

	// OutOfRange marks an exponent outside [-6176, 6111] or a significand
	// magnitude wider than 113 bits. Use errors.Is(err, OutOfRange).
	OutOfRange = fmt.Errorf("decimal128: out of range")

	// ErrNotFinite marks an attempt to project NaN or Infinity onto the
	// arbitrary-precision bridge.
	ErrNotFinite = fmt.Errorf("decimal128: value is not finite")

	// ErrNegativeZero marks an attempt to project a signed-zero Value onto
	// the arbitrary-precision bridge, which cannot express the sign of
	// zero. Callers that need to tolerate -0 should inspect the Value
	// directly (IsNegative) rather than going through the bridge.
	ErrNegativeZero = fmt.Errorf("decimal128: negative zero has no big.Int representation")
)

// codecError wraps one of the sentinel kinds above with the offending
// input, so errors.Is keeps working while the message stays useful.
type codecError struct {
	kind  error
	input string
}

func (e *codecError) Error() string {
	if e.input == "" {
		return e.kind.Error()
	}
	return fmt.Sprintf("%s: %q", e.kind.Error(), e.input)
}

func (e *codecError) Unwrap() error { return e.kind }

func parseErrorf(input string) error {
	return &codecError{kind: ParseError, input: input}
}

func outOfRangef(input string) error {
	return &codecError{kind: OutOfRange, input: input}
}
