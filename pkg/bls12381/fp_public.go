package bls12381

import "math/big"

// Fp is an element of the base field, the canonical representative in
// [0, p). Values are immutable; every method returns a new Fp.
type Fp struct {
	v *big.Int
}

// NewFp reduces v mod p into a canonical Fp.
func NewFp(v *big.Int) Fp {
	return Fp{v: fpCanonical(v)}
}

// FpZero is the additive identity.
func FpZero() Fp { return Fp{v: new(big.Int)} }

// FpOne is the multiplicative identity.
func FpOne() Fp { return Fp{v: big.NewInt(1)} }

// BigInt returns the canonical representative as a *big.Int copy.
func (a Fp) BigInt() *big.Int { return new(big.Int).Set(a.v) }

// IsZero reports whether a is the additive identity.
func (a Fp) IsZero() bool { return a.v.Sign() == 0 }

// Equal reports whether a and b are the same field element.
func (a Fp) Equal(b Fp) bool { return a.v.Cmp(b.v) == 0 }

// Add returns a + b.
func (a Fp) Add(b Fp) Fp { return Fp{v: fpAdd(a.v, b.v)} }

// Sub returns a - b.
func (a Fp) Sub(b Fp) Fp { return Fp{v: fpSub(a.v, b.v)} }

// Neg returns -a.
func (a Fp) Neg() Fp { return Fp{v: fpNeg(a.v)} }

// Mul returns a * b.
func (a Fp) Mul(b Fp) Fp { return Fp{v: fpMul(a.v, b.v)} }

// Square returns a^2.
func (a Fp) Square() Fp { return Fp{v: fpSqr(a.v)} }

// Inverse returns a^-1, or an error if a is zero.
func (a Fp) Inverse() (Fp, error) {
	inv := fpInv(a.v)
	if inv == nil {
		return Fp{}, ErrFieldArithmetic
	}
	return Fp{v: inv}, nil
}

// Pow returns a^e for e >= 0, computed with math/big's modular
// exponentiation.
func (a Fp) Pow(e *big.Int) Fp { return Fp{v: fpExp(a.v, e)} }

// Sqrt returns a square root of a, or false if a is not a quadratic
// residue mod p.
func (a Fp) Sqrt() (Fp, bool) {
	r := fpSqrt(a.v)
	if r == nil {
		return Fp{}, false
	}
	return Fp{v: r}, true
}
