package bls12381

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// HashScheme selects the expansion backend hashToField uses to turn
// (message, domain) into field elements before mapping to the curve.
type HashScheme int

const (
	// HashSchemeXMDSHA256 expands via an expand_message_xmd-shaped
	// construction over crypto/sha256, matching the historical
	// noble-bls12-381 construction this module descends from.
	HashSchemeXMDSHA256 HashScheme = iota
	// HashSchemeXOFShake256 expands via SHAKE256, an actual
	// extendable-output function, matching §4.4's "XOF-style
	// derivation" wording directly.
	HashSchemeXOFShake256
)

// domainBytes serializes a domain tag as 8 bytes big-endian.
func domainBytes(domain uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, domain)
	return b
}

// expandXMD implements an expand_message_xmd-shaped expansion over
// crypto/sha256: repeated hashing of (seed || counter) until lenBytes
// pseudorandom bytes have been produced.
func expandXMD(msg []byte, lenBytes int) []byte {
	out := make([]byte, 0, lenBytes+sha256.Size)
	var counter byte
	for len(out) < lenBytes {
		h := sha256.New()
		h.Write(msg)
		h.Write([]byte{counter})
		out = append(out, h.Sum(nil)...)
		counter++
	}
	return out[:lenBytes]
}

// expandXOF implements an expand_message_xof-shaped expansion using
// SHAKE256, reading lenBytes directly from the sponge.
func expandXOF(msg []byte, lenBytes int) []byte {
	h := sha3.NewShake256()
	h.Write(msg)
	out := make([]byte, lenBytes)
	h.Read(out)
	return out
}

// hashToField expands (msg, domain) into count Fp2 elements, each built
// from two 64-byte pseudorandom chunks reduced mod p.
func hashToField(msg []byte, domain uint64, count int, scheme HashScheme) []*Fp2 {
	seed := append(append([]byte{}, domainBytes(domain)...), msg...)
	const chunkLen = 64
	needed := count * 2 * chunkLen

	var expanded []byte
	switch scheme {
	case HashSchemeXOFShake256:
		expanded = expandXOF(seed, needed)
	default:
		expanded = expandXMD(seed, needed)
	}

	out := make([]*Fp2, count)
	for i := 0; i < count; i++ {
		off := i * 2 * chunkLen
		c0 := new(big.Int).Mod(new(big.Int).SetBytes(expanded[off:off+chunkLen]), P)
		c1 := new(big.Int).Mod(new(big.Int).SetBytes(expanded[off+chunkLen:off+2*chunkLen]), P)
		out[i] = &Fp2{C0: c0, C1: c1}
	}
	return out
}

// mapFp2ToG2 maps an Fp2 element to a point on the twist curve via
// try-and-increment: search x = u, u+1, u+2, ... for the first value
// making x^3 + g2B a square, choosing the y root whose sign matches u's.
// Not constant-time; the input is always public (a hash output), so this
// is not a side-channel concern for this module's intended usage.
func mapFp2ToG2(u *Fp2) *PointG2 {
	x := NewFp2(u.C0, u.C1)

	for i := 0; i < 256; i++ {
		rhs := fp2Add(fp2Mul(fp2Sqr(x), x), g2B)
		y := fp2Sqrt(rhs)
		if y != nil {
			if fp2Sgn0(u) != fp2Sgn0(y) {
				y = fp2Neg(y)
			}
			return g2FromAffine(x, y)
		}
		x = fp2Add(x, fp2One())
	}

	return G2Infinity()
}

// HashToG2 deterministically maps (msg, domain) to a point in the G2
// subgroup: expand to two Fp2 elements, map each to the curve, sum, and
// clear the cofactor.
func HashToG2(msg []byte, domain uint64, scheme HashScheme) *PointG2 {
	ts := hashToField(msg, domain, 2, scheme)
	p0 := mapFp2ToG2(ts[0])
	p1 := mapFp2ToG2(ts[1])
	sum := p0.Add(p1)
	return sum.ClearCofactor()
}
