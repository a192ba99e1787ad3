package eccp

import "errors"

// Errors reported by the library. All failures are terminal for the
// operation that raised them; no state is left partially updated.
var (
	// ErrInvalidHex is returned when a hex string is empty or contains a
	// character outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("invalid hex encoding")

	// ErrValueOutOfField is returned when a parsed value is not below the
	// field prime.
	ErrValueOutOfField = errors.New("value out of field range")

	// ErrNegativeSmallInt is returned when a small-integer constructor
	// receives a negative value.
	ErrNegativeSmallInt = errors.New("negative small integer")

	// ErrDivisionByZero is returned when dividing by the zero element.
	ErrDivisionByZero = errors.New("division by zero field element")

	// ErrInvalidCurve is returned when 4a^3 + 27b^2 = 0 (mod p).
	ErrInvalidCurve = errors.New("invalid curve: discriminant is zero")

	// ErrPointNotOnCurve is returned when affine coordinates fail the
	// curve equation.
	ErrPointNotOnCurve = errors.New("point is not on the curve")

	// ErrInvalidNAFWidth is returned when a NAF window width is outside
	// the supported range [2, 6].
	ErrInvalidNAFWidth = errors.New("NAF width must be between 2 and 6")

	// ErrPointAtInfinity is returned when affine coordinates are requested
	// from the point at infinity.
	ErrPointAtInfinity = errors.New("point at infinity has no affine coordinates")
)
