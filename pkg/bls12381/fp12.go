package bls12381

import "math/big"

// Fp12 represents c0 + c1*w, w^2 = v, an element of
// F_p^12 = F_p^6[w]/(w^2 - v). This is the target-group field: GT is the
// order-q multiplicative subgroup of Fp12*.
type Fp12 struct {
	C0, C1 *Fp6
}

func fp12Zero() *Fp12 { return &Fp12{C0: fp6Zero(), C1: fp6Zero()} }
func fp12One() *Fp12  { return &Fp12{C0: fp6One(), C1: fp6Zero()} }

// One returns the Fp12 multiplicative identity.
func Fp12One() *Fp12 { return fp12One() }

// IsOne reports whether f is the multiplicative identity.
func (f *Fp12) IsOne() bool {
	return f.C0.C0.Equal(fp2One()) && f.C0.C1.IsZero() && f.C0.C2.IsZero() &&
		f.C1.C0.IsZero() && f.C1.C1.IsZero() && f.C1.C2.IsZero()
}

// Equal reports whether f and g are the same Fp12 element.
func (f *Fp12) Equal(g *Fp12) bool {
	return f.C0.C0.Equal(g.C0.C0) && f.C0.C1.Equal(g.C0.C1) && f.C0.C2.Equal(g.C0.C2) &&
		f.C1.C0.Equal(g.C1.C0) && f.C1.C1.Equal(g.C1.C1) && f.C1.C2.Equal(g.C1.C2)
}

// Mul returns f * g.
func (f *Fp12) Mul(g *Fp12) *Fp12 {
	t0 := fp6Mul(f.C0, g.C0)
	t1 := fp6Mul(f.C1, g.C1)
	c0 := fp6Add(t0, fp6MulByV(t1))
	c1 := fp6Sub(fp6Sub(fp6Mul(fp6Add(f.C0, f.C1), fp6Add(g.C0, g.C1)), t0), t1)
	return &Fp12{C0: c0, C1: c1}
}

// Square returns f^2, using the complex-squaring formula over the
// quadratic Fp6 extension.
func (f *Fp12) Square() *Fp12 {
	ab := fp6Mul(f.C0, f.C1)
	c0 := fp6Add(fp6Mul(fp6Add(f.C0, f.C1), fp6Add(f.C0, fp6MulByV(f.C1))),
		fp6Neg(fp6Add(ab, fp6MulByV(ab))))
	c1 := fp6Add(ab, ab)
	return &Fp12{C0: c0, C1: c1}
}

// CyclotomicSquare squares an element already known to lie in the
// cyclotomic subgroup encountered during final exponentiation. This
// module backs it with the general, verified Square rather than the
// Granger-Scott compressed formula (see DESIGN.md's Open Question on
// Frobenius/cyclotomic arithmetic): correctness over an unverifiable
// optimization.
func (f *Fp12) CyclotomicSquare() *Fp12 { return f.Square() }

// Inverse returns f^-1, or an error if f is zero.
func (f *Fp12) Inverse() (*Fp12, error) {
	t := fp6Sub(fp6Sqr(f.C0), fp6MulByV(fp6Sqr(f.C1)))
	tInv := fp6Inv(t)
	if tInv == nil {
		return nil, ErrFieldArithmetic
	}
	return &Fp12{C0: fp6Mul(f.C0, tInv), C1: fp6Neg(fp6Mul(f.C1, tInv))}, nil
}

// Conjugate returns the conjugate of f under the p^6-power Frobenius:
// (c0 + c1*w) -> c0 - c1*w. Fp12 elements reached during the pairing are
// unitary (norm 1), which is exactly what makes this conjugation equal
// f^(p^6-1) * f composed appropriately in the easy part of final
// exponentiation.
func (f *Fp12) Conjugate() *Fp12 {
	return &Fp12{
		C0: &Fp6{C0: NewFp2(f.C0.C0.C0, f.C0.C0.C1), C1: NewFp2(f.C0.C1.C0, f.C0.C1.C1), C2: NewFp2(f.C0.C2.C0, f.C0.C2.C1)},
		C1: fp6Neg(f.C1),
	}
}

// Exp returns f^e for e >= 0, by left-to-right square-and-multiply.
func (f *Fp12) Exp(e *big.Int) *Fp12 {
	if e.Sign() == 0 {
		return fp12One()
	}
	result := fp12One()
	base := f
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Square()
		if e.Bit(i) == 1 {
			result = result.Mul(base)
		}
	}
	return result
}

// Frobenius returns f^(p^power), the power-th iterate of the Frobenius
// endomorphism. Computed directly by exponentiation rather than
// precomputed per-coefficient constants (see DESIGN.md's Open Question):
// raising to p^power is the Frobenius map by definition, so this is
// always correct, just not the fast path a production deployment would
// want for power=1 in the inner loop of final exponentiation.
func (f *Fp12) Frobenius(power int) *Fp12 {
	if power == 0 {
		return f
	}
	e := new(big.Int).Set(P)
	for i := 1; i < power; i++ {
		e = new(big.Int).Mul(e, P)
	}
	return f.Exp(e)
}
