package bls12381

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Scalar is a private-key-sized integer, reduced mod q, and is the single
// normalization front door for scalar inputs: bytes, hex strings, and
// arbitrary-width integers all funnel through one of the constructors
// below rather than through overloaded call sites. Backed by
// github.com/holiman/uint256, a fixed four-limb integer already used
// elsewhere in this lineage for EVM-sized values.
type Scalar struct {
	v uint256.Int
}

// ScalarFromBytes interprets b as a big-endian integer and reduces it mod q.
func ScalarFromBytes(b []byte) Scalar {
	bi := new(big.Int).SetBytes(b)
	return ScalarFromBigInt(bi)
}

// ScalarFromHex interprets s (with or without a "0x" prefix) as a
// big-endian hex integer and reduces it mod q.
func ScalarFromHex(s string) (Scalar, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Scalar{}, ErrInvalidEncoding
	}
	return ScalarFromBytes(b), nil
}

// ScalarFromBigInt reduces n mod q.
func ScalarFromBigInt(n *big.Int) Scalar {
	r := new(big.Int).Mod(n, Q)
	u, _ := uint256.FromBig(r)
	return Scalar{v: *u}
}

// BigInt returns s as a *big.Int in [0, q).
func (s Scalar) BigInt() *big.Int {
	return s.v.ToBig()
}

// IsZero reports whether s is the zero scalar.
func (s Scalar) IsZero() bool {
	return s.v.IsZero()
}

// Bytes32 returns s as 32 big-endian bytes.
func (s Scalar) Bytes32() [32]byte {
	return s.v.Bytes32()
}
