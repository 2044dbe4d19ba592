package bls12381

import "errors"

// Error kinds surfaced by decoding and field/curve operations. Decode
// failures from the signature layer are typed failures, never silently
// turned into a boolean false; a clean pairing-check mismatch is a plain
// false return instead (see package bls).
var (
	// ErrInvalidLength means a byte input was not the required fixed width.
	ErrInvalidLength = errors.New("bls12381: invalid encoded length")
	// ErrInvalidEncoding means flag bits were inconsistent, or a field
	// coordinate was >= p.
	ErrInvalidEncoding = errors.New("bls12381: invalid point encoding")
	// ErrNotOnCurve means a decoded point fails the curve equation.
	ErrNotOnCurve = errors.New("bls12381: point not on curve")
	// ErrNotInSubgroup means a point is on the curve but not of order q.
	ErrNotInSubgroup = errors.New("bls12381: point not in subgroup")
	// ErrFieldArithmetic means inverse of zero or division by a
	// non-invertible element was attempted.
	ErrFieldArithmetic = errors.New("bls12381: field arithmetic error")
)
