package bls12381

import "math/big"

// Pair computes the optimal ate pairing e(p, q) in GT.
func Pair(p *PointG1, q *PointG2) *Fp12 {
	f := millerLoop(p, q)
	return finalExponentiation(f)
}

// PairProduct checks whether the product of pairings over the given
// (G1, G2) pairs equals the GT identity, sharing a single accumulated
// Miller loop and a single final exponentiation across all pairs. This
// is the primitive the signature layer's Verify/VerifyMultiple build on:
// e(-g1, sig) * e(pk, H(m)) == 1 needs exactly one final exponentiation,
// not two pairings compared for equality.
func PairProduct(g1s []*PointG1, g2s []*PointG2) bool {
	f := fp12One()
	for i := range g1s {
		if g1s[i].IsZero() || g2s[i].IsZero() {
			continue
		}
		f = f.Mul(millerLoop(g1s[i], g2s[i]))
	}
	return finalExponentiation(f).IsOne()
}

// lineFunctionAdd evaluates the line through R and Q at P (affine G1
// coordinates), returning the sparse Fp12 value and the new R = R + Q.
func lineFunctionAdd(r *PointG2, qx, qy *Fp2, px, py *big.Int) (*Fp12, *PointG2) {
	if r.IsZero() {
		return fp12One(), g2FromAffine(qx, qy)
	}

	rx, ry := r.ToAffine()
	if rx.Equal(qx) && ry.Equal(qy) {
		return lineFunctionDouble(r, px, py)
	}

	num := fp2Sub(qy, ry)
	den := fp2Sub(qx, rx)
	if den.IsZero() {
		return fp12One(), G2Infinity()
	}
	lambda := fp2Mul(num, fp2Inv(den))

	ell0 := fp2Sub(fp2Mul(lambda, rx), ry)
	ell1 := fp2Neg(fp2MulScalar(lambda, px))

	f := &Fp12{
		C0: &Fp6{C0: ell0, C1: ell1, C2: fp2Zero()},
		C1: &Fp6{C0: fp2Zero(), C1: NewFp2(py, new(big.Int)), C2: fp2Zero()},
	}

	return f, r.Add(g2FromAffine(qx, qy))
}

// lineFunctionDouble evaluates the tangent line at R at P, returning the
// sparse Fp12 value and the new R = 2R.
func lineFunctionDouble(r *PointG2, px, py *big.Int) (*Fp12, *PointG2) {
	if r.IsZero() {
		return fp12One(), G2Infinity()
	}

	rx, ry := r.ToAffine()
	if ry.IsZero() {
		return fp12One(), G2Infinity()
	}

	rxSq := fp2Sqr(rx)
	three := &Fp2{C0: big.NewInt(3), C1: new(big.Int)}
	two := &Fp2{C0: big.NewInt(2), C1: new(big.Int)}
	lambda := fp2Mul(fp2Mul(three, rxSq), fp2Inv(fp2Mul(two, ry)))

	ell0 := fp2Sub(fp2Mul(lambda, rx), ry)
	ell1 := fp2Neg(fp2MulScalar(lambda, px))

	f := &Fp12{
		C0: &Fp6{C0: ell0, C1: ell1, C2: fp2Zero()},
		C1: &Fp6{C0: fp2Zero(), C1: NewFp2(py, new(big.Int)), C2: fp2Zero()},
	}

	return f, r.Double()
}

// millerLoop runs the Miller loop over the bits of |z|, accumulating the
// sparse line evaluations. z is negative for BLS12-381, so the
// accumulated value is conjugated at the end rather than negating R.
func millerLoop(p *PointG1, q *PointG2) *Fp12 {
	if p.IsZero() || q.IsZero() {
		return fp12One()
	}

	px, py := p.ToAffine()
	qx, qy := q.ToAffine()

	f := fp12One()
	r := g2FromAffine(qx, qy)

	for i := absZ.BitLen() - 2; i >= 0; i-- {
		var line *Fp12
		line, r = lineFunctionDouble(r, px, py)
		f = f.Square()
		f = f.Mul(line)

		if absZ.Bit(i) == 1 {
			line, r = lineFunctionAdd(r, qx, qy, px, py)
			f = f.Mul(line)
		}
	}

	return f.Conjugate()
}

// finalExponentiation raises f to (p^12-1)/q, split into an easy part
// (p^6-1)(p^2+1) computed via conjugation/inversion, and a hard part
// (p^4-p^2+1)/q computed by direct exponentiation (see DESIGN.md's Open
// Question on Frobenius/cyclotomic arithmetic: the fast addition-chain
// hard part is not attempted here since its correctness could not be
// checked without running the toolchain).
func finalExponentiation(f *Fp12) *Fp12 {
	fInv, err := f.Inverse()
	if err != nil {
		return fp12Zero()
	}
	f1 := f.Conjugate().Mul(fInv)

	p2 := new(big.Int).Mul(P, P)
	f1p2 := f1.Exp(p2)
	f2 := f1p2.Mul(f1)

	p4 := new(big.Int).Mul(p2, p2)
	hardExp := new(big.Int).Sub(p4, p2)
	hardExp.Add(hardExp, big.NewInt(1))
	hardExp.Div(hardExp, Q)

	return f2.Exp(hardExp)
}
