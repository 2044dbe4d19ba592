package bls12381

// Fp6 represents c0 + c1*v + c2*v^2, v^3 = 1+u, an element of
// F_p^6 = F_p^2[v]/(v^3 - (1+u)).
type Fp6 struct {
	C0, C1, C2 *Fp2
}

func fp6Zero() *Fp6 { return &Fp6{C0: fp2Zero(), C1: fp2Zero(), C2: fp2Zero()} }
func fp6One() *Fp6  { return &Fp6{C0: fp2One(), C1: fp2Zero(), C2: fp2Zero()} }

// fp6Add returns a + b.
func fp6Add(a, b *Fp6) *Fp6 {
	return &Fp6{C0: fp2Add(a.C0, b.C0), C1: fp2Add(a.C1, b.C1), C2: fp2Add(a.C2, b.C2)}
}

// fp6Sub returns a - b.
func fp6Sub(a, b *Fp6) *Fp6 {
	return &Fp6{C0: fp2Sub(a.C0, b.C0), C1: fp2Sub(a.C1, b.C1), C2: fp2Sub(a.C2, b.C2)}
}

// fp6Neg returns -a.
func fp6Neg(a *Fp6) *Fp6 {
	return &Fp6{C0: fp2Neg(a.C0), C1: fp2Neg(a.C1), C2: fp2Neg(a.C2)}
}

// fp6Mul returns a * b via Karatsuba over Fp2 with non-residue ξ = 1+u.
func fp6Mul(a, b *Fp6) *Fp6 {
	t0 := fp2Mul(a.C0, b.C0)
	t1 := fp2Mul(a.C1, b.C1)
	t2 := fp2Mul(a.C2, b.C2)

	c0 := fp2Add(t0, fp2MulByNonResidue(
		fp2Sub(fp2Mul(fp2Add(a.C1, a.C2), fp2Add(b.C1, b.C2)), fp2Add(t1, t2))))
	c1 := fp2Add(fp2Sub(fp2Mul(fp2Add(a.C0, a.C1), fp2Add(b.C0, b.C1)), fp2Add(t0, t1)),
		fp2MulByNonResidue(t2))
	c2 := fp2Add(fp2Sub(fp2Mul(fp2Add(a.C0, a.C2), fp2Add(b.C0, b.C2)), fp2Add(t0, t2)), t1)

	return &Fp6{C0: c0, C1: c1, C2: c2}
}

// fp6Sqr returns a^2.
func fp6Sqr(a *Fp6) *Fp6 {
	s0 := fp2Sqr(a.C0)
	ab := fp2Mul(a.C0, a.C1)
	s1 := fp2Add(ab, ab)
	s2 := fp2Sqr(fp2Sub(fp2Add(a.C0, a.C2), a.C1))
	bc := fp2Mul(a.C1, a.C2)
	s3 := fp2Add(bc, bc)
	s4 := fp2Sqr(a.C2)

	c0 := fp2Add(s0, fp2MulByNonResidue(s3))
	c1 := fp2Add(s1, fp2MulByNonResidue(s4))
	c2 := fp2Add(fp2Add(fp2Add(s1, s2), s3), fp2Sub(fp2Neg(s0), s4))

	return &Fp6{C0: c0, C1: c1, C2: c2}
}

// fp6MulByV multiplies a by v (shifts coefficients and reduces
// the top one through the non-residue): v*(c0+c1v+c2v^2) = c2*(1+u) + c0*v + c1*v^2.
func fp6MulByV(a *Fp6) *Fp6 {
	return &Fp6{
		C0: fp2MulByNonResidue(a.C2),
		C1: NewFp2(a.C0.C0, a.C0.C1),
		C2: NewFp2(a.C1.C0, a.C1.C1),
	}
}

// fp6Inv returns a^-1, or nil if a is zero.
func fp6Inv(a *Fp6) *Fp6 {
	t0 := fp2Sqr(a.C0)
	t1 := fp2Sqr(a.C1)
	t2 := fp2Sqr(a.C2)
	t3 := fp2Mul(a.C0, a.C1)
	t4 := fp2Mul(a.C0, a.C2)
	t5 := fp2Mul(a.C1, a.C2)

	c0 := fp2Sub(t0, fp2MulByNonResidue(t5))
	c1 := fp2Sub(fp2MulByNonResidue(t2), t3)
	c2 := fp2Sub(t1, t4)

	t6 := fp2Mul(a.C0, c0)
	t6 = fp2Add(t6, fp2MulByNonResidue(fp2Add(fp2Mul(a.C2, c1), fp2Mul(a.C1, c2))))
	t6inv, err := t6.Inverse()
	if err != nil {
		return nil
	}

	return &Fp6{C0: fp2Mul(c0, t6inv), C1: fp2Mul(c1, t6inv), C2: fp2Mul(c2, t6inv)}
}
