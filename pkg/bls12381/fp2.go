package bls12381

import "math/big"

// Fp2 represents c0 + c1*u, u^2 = -1, an element of F_p^2 = F_p[u]/(u^2+1).
// It is used for G2 coordinates on the twist curve and for Fp6/Fp12
// construction. Coefficients are canonical representatives in [0, p).
type Fp2 struct {
	C0, C1 *big.Int
}

// NewFp2 builds a canonical Fp2 from two big.Int coefficients.
func NewFp2(c0, c1 *big.Int) *Fp2 {
	return &Fp2{C0: fpCanonical(c0), C1: fpCanonical(c1)}
}

func fp2Zero() *Fp2 { return &Fp2{C0: new(big.Int), C1: new(big.Int)} }
func fp2One() *Fp2  { return &Fp2{C0: big.NewInt(1), C1: new(big.Int)} }

// IsZero reports whether e is the additive identity.
func (e *Fp2) IsZero() bool { return e.C0.Sign() == 0 && e.C1.Sign() == 0 }

// Equal reports whether e and f are the same Fp2 element.
func (e *Fp2) Equal(f *Fp2) bool {
	return fpCanonical(e.C0).Cmp(fpCanonical(f.C0)) == 0 &&
		fpCanonical(e.C1).Cmp(fpCanonical(f.C1)) == 0
}

// fp2Add returns e + f.
func fp2Add(e, f *Fp2) *Fp2 {
	return &Fp2{C0: fpAdd(e.C0, f.C0), C1: fpAdd(e.C1, f.C1)}
}

// fp2Sub returns e - f.
func fp2Sub(e, f *Fp2) *Fp2 {
	return &Fp2{C0: fpSub(e.C0, f.C0), C1: fpSub(e.C1, f.C1)}
}

// fp2Mul returns e * f: (a0+a1u)(b0+b1u) = (a0b0 - a1b1) + (a0b1+a1b0)u,
// computed with one Karatsuba cross-term to save a multiplication.
func fp2Mul(e, f *Fp2) *Fp2 {
	v0 := fpMul(e.C0, f.C0)
	v1 := fpMul(e.C1, f.C1)
	return &Fp2{
		C0: fpSub(v0, v1),
		C1: fpSub(fpMul(fpAdd(e.C0, e.C1), fpAdd(f.C0, f.C1)), fpAdd(v0, v1)),
	}
}

// fp2Sqr returns e^2.
func fp2Sqr(e *Fp2) *Fp2 {
	ab := fpMul(e.C0, e.C1)
	return &Fp2{
		C0: fpMul(fpAdd(e.C0, e.C1), fpSub(e.C0, e.C1)),
		C1: fpAdd(ab, ab),
	}
}

// fp2Neg returns -e.
func fp2Neg(e *Fp2) *Fp2 {
	return &Fp2{C0: fpNeg(e.C0), C1: fpNeg(e.C1)}
}

// fp2Conj returns the Frobenius conjugate of e: c0 - c1*u (raising to p,
// since p ≡ 3 mod 4 makes u^p = -u).
func fp2Conj(e *Fp2) *Fp2 {
	return &Fp2{C0: new(big.Int).Set(e.C0), C1: fpNeg(e.C1)}
}

// fp2Inv returns e^-1 = (a - bu)/(a^2+b^2), or nil if e is zero.
func fp2Inv(e *Fp2) *Fp2 {
	norm := fpAdd(fpSqr(e.C0), fpSqr(e.C1))
	inv := fpInv(norm)
	if inv == nil {
		return nil
	}
	return &Fp2{C0: fpMul(e.C0, inv), C1: fpMul(fpNeg(e.C1), inv)}
}

// fp2MulScalar returns e * s for s in F_p.
func fp2MulScalar(e *Fp2, s *big.Int) *Fp2 {
	return &Fp2{C0: fpMul(e.C0, s), C1: fpMul(e.C1, s)}
}

// fp2MulByNonResidue returns (1+u) * e, the Fp6 non-residue multiplication:
// (1+u)(a+bu) = (a-b) + (a+b)u.
func fp2MulByNonResidue(e *Fp2) *Fp2 {
	return &Fp2{C0: fpSub(e.C0, e.C1), C1: fpAdd(e.C0, e.C1)}
}

// fp2Sgn0 is sign_0 for Fp2 per the hash-to-curve draft:
// sgn0(c0) || (c0 == 0 && sgn0(c1)).
func fp2Sgn0(e *Fp2) int {
	sign0 := fpSgn0(e.C0)
	zero0 := 0
	if fpCanonical(e.C0).Sign() == 0 {
		zero0 = 1
	}
	return sign0 | (zero0 & fpSgn0(e.C1))
}

// fp2IsSquare reports whether e is a quadratic residue in Fp2. Since
// p ≡ 3 mod 4, e is a QR iff its norm c0^2+c1^2 is a QR in Fp.
func fp2IsSquare(e *Fp2) bool {
	if e.IsZero() {
		return true
	}
	return fpIsSquare(fpAdd(fpSqr(e.C0), fpSqr(e.C1)))
}

// fp2Sqrt returns a square root of e in Fp2, or nil if none exists. Finds
// the real part by searching both candidates for norm(e)'s square root and
// verifying the result.
func fp2Sqrt(e *Fp2) *Fp2 {
	if e.IsZero() {
		return fp2Zero()
	}
	norm := fpAdd(fpSqr(e.C0), fpSqr(e.C1))
	if !fpIsSquare(norm) {
		return nil
	}
	sqrtNorm := fpSqrt(norm)
	if sqrtNorm == nil {
		return nil
	}
	twoInv := fpInv(big.NewInt(2))

	tryReal := func(x0 *big.Int) *Fp2 {
		if !fpIsSquare(x0) {
			return nil
		}
		sqrtX0 := fpSqrt(x0)
		if sqrtX0 == nil || sqrtX0.Sign() == 0 {
			return nil
		}
		x1 := fpMul(e.C1, fpInv(fpAdd(sqrtX0, sqrtX0)))
		cand := &Fp2{C0: sqrtX0, C1: x1}
		if fp2Sqr(cand).Equal(e) {
			return cand
		}
		return nil
	}

	if r := tryReal(fpMul(fpAdd(e.C0, sqrtNorm), twoInv)); r != nil {
		return r
	}
	if r := tryReal(fpMul(fpSub(e.C0, sqrtNorm), twoInv)); r != nil {
		return r
	}
	return nil
}

// fp2MulByU returns u * e = -c1 + c0*u (u^2 = -1).
func fp2MulByU(e *Fp2) *Fp2 {
	return &Fp2{C0: fpNeg(e.C1), C1: new(big.Int).Set(e.C0)}
}

// Add returns e + f (public ring interface).
func (e *Fp2) Add(f *Fp2) *Fp2 { return fp2Add(e, f) }

// Sub returns e - f.
func (e *Fp2) Sub(f *Fp2) *Fp2 { return fp2Sub(e, f) }

// Mul returns e * f.
func (e *Fp2) Mul(f *Fp2) *Fp2 { return fp2Mul(e, f) }

// Square returns e^2.
func (e *Fp2) Square() *Fp2 { return fp2Sqr(e) }

// Neg returns -e.
func (e *Fp2) Neg() *Fp2 { return fp2Neg(e) }

// Conjugate returns the Fp-Frobenius conjugate of e.
func (e *Fp2) Conjugate() *Fp2 { return fp2Conj(e) }

// Inverse returns e^-1, or an error if e is zero.
func (e *Fp2) Inverse() (*Fp2, error) {
	r := fp2Inv(e)
	if r == nil {
		return nil, ErrFieldArithmetic
	}
	return r, nil
}
