package bls12381

import "math/big"

// PointG2 is a point on y^2 = x^3 + 4(u+1) over Fp2 (the twist curve),
// stored in Jacobian coordinates. Z = 0 denotes the point at infinity.
type PointG2 struct {
	x, y, z *Fp2
}

// G2Generator returns the fixed generator of G2.
func G2Generator() *PointG2 {
	return &PointG2{
		x: &Fp2{C0: new(big.Int).Set(g2GenXc0), C1: new(big.Int).Set(g2GenXc1)},
		y: &Fp2{C0: new(big.Int).Set(g2GenYc0), C1: new(big.Int).Set(g2GenYc1)},
		z: fp2One(),
	}
}

// G2Infinity returns the point at infinity.
func G2Infinity() *PointG2 {
	return &PointG2{x: fp2One(), y: fp2One(), z: fp2Zero()}
}

// IsZero reports whether p is the point at infinity.
func (p *PointG2) IsZero() bool { return p.z.IsZero() }

// g2FromAffine builds a Jacobian point from affine coordinates.
func g2FromAffine(x, y *Fp2) *PointG2 {
	if x.IsZero() && y.IsZero() {
		return G2Infinity()
	}
	return &PointG2{x: NewFp2(x.C0, x.C1), y: NewFp2(y.C0, y.C1), z: fp2One()}
}

// ToAffine converts p to affine (x, y), returning (0,0) for infinity.
func (p *PointG2) ToAffine() (x, y *Fp2) {
	if p.IsZero() {
		return fp2Zero(), fp2Zero()
	}
	zInv := fp2Inv(p.z)
	zInv2 := fp2Sqr(zInv)
	zInv3 := fp2Mul(zInv2, zInv)
	return fp2Mul(p.x, zInv2), fp2Mul(p.y, zInv3)
}

// g2IsOnCurveAffine reports whether affine (x, y) satisfies y^2 = x^3 + 4(u+1).
func g2IsOnCurveAffine(x, y *Fp2) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	if !fpInRange(x.C0) || !fpInRange(x.C1) || !fpInRange(y.C0) || !fpInRange(y.C1) {
		return false
	}
	lhs := fp2Sqr(y)
	rhs := fp2Add(fp2Mul(fp2Sqr(x), x), g2B)
	return lhs.Equal(rhs)
}

// IsOnCurve reports whether p satisfies the twist curve equation.
func (p *PointG2) IsOnCurve() bool {
	if p.IsZero() {
		return true
	}
	x, y := p.ToAffine()
	return g2IsOnCurveAffine(x, y)
}

// Equal reports whether p and q represent the same affine point.
func (p *PointG2) Equal(q *PointG2) bool {
	if p.IsZero() || q.IsZero() {
		return p.IsZero() == q.IsZero()
	}
	px, py := p.ToAffine()
	qx, qy := q.ToAffine()
	return px.Equal(qx) && py.Equal(qy)
}

// Add returns p + q using the Jacobian "add-2007-bl" formula over Fp2.
func (p *PointG2) Add(q *PointG2) *PointG2 {
	if p.IsZero() {
		return &PointG2{NewFp2(q.x.C0, q.x.C1), NewFp2(q.y.C0, q.y.C1), NewFp2(q.z.C0, q.z.C1)}
	}
	if q.IsZero() {
		return &PointG2{NewFp2(p.x.C0, p.x.C1), NewFp2(p.y.C0, p.y.C1), NewFp2(p.z.C0, p.z.C1)}
	}

	z1sq := fp2Sqr(p.z)
	z2sq := fp2Sqr(q.z)
	u1 := fp2Mul(p.x, z2sq)
	u2 := fp2Mul(q.x, z1sq)
	s1 := fp2Mul(p.y, fp2Mul(q.z, z2sq))
	s2 := fp2Mul(q.y, fp2Mul(p.z, z1sq))

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return p.Double()
		}
		return G2Infinity()
	}

	h := fp2Sub(u2, u1)
	i := fp2Sqr(fp2Add(h, h))
	j := fp2Mul(h, i)
	rDiff := fp2Sub(s2, s1)
	r := fp2Add(rDiff, rDiff)
	v := fp2Mul(u1, i)

	x3 := fp2Sub(fp2Sub(fp2Sqr(r), j), fp2Add(v, v))
	y3 := fp2Sub(fp2Mul(r, fp2Sub(v, x3)), fp2Add(fp2Mul(s1, j), fp2Mul(s1, j)))
	z3 := fp2Mul(fp2Sub(fp2Sub(fp2Sqr(fp2Add(p.z, q.z)), z1sq), z2sq), h)

	return &PointG2{x: x3, y: y3, z: z3}
}

// Double returns 2p using the Jacobian "dbl-2009-l" formula over Fp2.
func (p *PointG2) Double() *PointG2 {
	if p.IsZero() {
		return G2Infinity()
	}

	a := fp2Sqr(p.x)
	b := fp2Sqr(p.y)
	c := fp2Sqr(b)

	dHalf := fp2Sub(fp2Sub(fp2Sqr(fp2Add(p.x, b)), a), c)
	d := fp2Add(dHalf, dHalf)
	e := fp2Add(fp2Add(a, a), a)

	x3 := fp2Sub(fp2Sqr(e), fp2Add(d, d))

	eightC := fp2Add(fp2Add(fp2Add(c, c), fp2Add(c, c)), fp2Add(fp2Add(c, c), fp2Add(c, c)))
	y3 := fp2Sub(fp2Mul(e, fp2Sub(d, x3)), eightC)

	z3 := fp2Mul(fp2Add(p.y, p.y), p.z)

	return &PointG2{x: x3, y: y3, z: z3}
}

// Neg returns -p.
func (p *PointG2) Neg() *PointG2 {
	if p.IsZero() {
		return G2Infinity()
	}
	return &PointG2{x: NewFp2(p.x.C0, p.x.C1), y: fp2Neg(p.y), z: NewFp2(p.z.C0, p.z.C1)}
}

// ScalarMul returns k*p by left-to-right double-and-add over bitlen(q).
// k is reduced mod q first, since p is assumed to already have order
// dividing q. It must never be used to test a multiple against q itself:
// scalarMulRaw exists for exactly that.
func (p *PointG2) ScalarMul(k *big.Int) *PointG2 {
	if p.IsZero() {
		return G2Infinity()
	}
	kMod := new(big.Int).Mod(k, Q)
	if kMod.Sign() == 0 {
		return G2Infinity()
	}
	r := G2Infinity()
	for i := Q.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// scalarMulRaw returns k*p by left-to-right double-and-add over bitlen(k),
// with no reduction of k mod q. Used by InSubgroup and ClearCofactor,
// where k is itself the exact value under test (q, or the cofactor) and
// reducing it mod q first would be wrong — reducing q mod q gives 0 and
// would make every point appear to be in the subgroup.
func (p *PointG2) scalarMulRaw(k *big.Int) *PointG2 {
	if p.IsZero() || k.Sign() == 0 {
		return G2Infinity()
	}

	r := G2Infinity()
	base := &PointG2{x: NewFp2(p.x.C0, p.x.C1), y: NewFp2(p.y.C0, p.y.C1), z: NewFp2(p.z.C0, p.z.C1)}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

// InSubgroup reports whether p has order dividing q, checked via [q]p == O.
func (p *PointG2) InSubgroup() bool {
	if p.IsZero() {
		return true
	}
	return p.scalarMulRaw(Q).IsZero()
}

// ClearCofactor maps an arbitrary point on the twist curve into the
// order-q subgroup by multiplying by the G2 cofactor h2.
func (p *PointG2) ClearCofactor() *PointG2 {
	return p.scalarMulRaw(g2Cofactor)
}
