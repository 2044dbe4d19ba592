// Package bls implements the BLS signature scheme over BLS12-381:
// getPublicKey, sign, verify, and aggregation of public keys and
// signatures, composed entirely from pkg/bls12381's field/curve/pairing
// primitives. Operations are pure functions of their inputs; failure
// surfaces as a typed decode error or a plain boolean false, never both
// conflated.
package bls

import (
	"github.com/pkg/errors"

	"github.com/qingche123/noble-bls12-381/pkg/bls12381"
)

// Re-exported decode/arithmetic error kinds from pkg/bls12381, so callers
// need only import pkg/bls to discriminate failures with errors.Is.
var (
	ErrInvalidLength    = bls12381.ErrInvalidLength
	ErrInvalidEncoding  = bls12381.ErrInvalidEncoding
	ErrNotOnCurve       = bls12381.ErrNotOnCurve
	ErrNotInSubgroup    = bls12381.ErrNotInSubgroup
	ErrFieldArithmetic  = bls12381.ErrFieldArithmetic
	// ErrLengthMismatch means two input slices that must be the same
	// length (e.g. messages and public keys in VerifyMultiple) were not.
	ErrLengthMismatch = errors.New("bls: input length mismatch")
	// ErrDuplicateMessage means VerifyMultiple was called with two equal
	// messages: allowing that would let a rogue signer cancel another's
	// contribution inside the aggregate signature.
	ErrDuplicateMessage = errors.New("bls: duplicate message in verifyMultiple")
	// ErrEmptyInput means an aggregation call was given zero elements.
	ErrEmptyInput = errors.New("bls: empty input")
)

// ValidatePubkey checks that pk decodes to a valid, non-infinity G1 point
// in the correct subgroup, returning the typed decode error otherwise.
func ValidatePubkey(pk [48]byte) error {
	p, err := bls12381.DecodeG1(pk[:])
	if err != nil {
		return errors.WithMessage(err, "bls: invalid public key")
	}
	if p.IsZero() {
		return errors.WithMessage(ErrInvalidEncoding, "bls: public key is point at infinity")
	}
	return nil
}

// ValidateSignature checks that sig decodes to a valid, non-infinity G2
// point in the correct subgroup, returning the typed decode error
// otherwise.
func ValidateSignature(sig [96]byte) error {
	p, err := bls12381.DecodeG2(sig[:])
	if err != nil {
		return errors.WithMessage(err, "bls: invalid signature")
	}
	if p.IsZero() {
		return errors.WithMessage(ErrInvalidEncoding, "bls: signature is point at infinity")
	}
	return nil
}
