package bls12381

import "math/big"

// PointG1 is a point on y^2 = x^3 + 4 over Fp, stored in Jacobian
// coordinates (X, Y, Z) where the affine point is (X/Z^2, Y/Z^3). Z = 0
// denotes the point at infinity.
type PointG1 struct {
	x, y, z *big.Int
}

// G1Generator returns the fixed generator of G1.
func G1Generator() *PointG1 {
	return &PointG1{x: new(big.Int).Set(g1GenX), y: new(big.Int).Set(g1GenY), z: big.NewInt(1)}
}

// G1Infinity returns the point at infinity.
func G1Infinity() *PointG1 {
	return &PointG1{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
}

// IsZero reports whether p is the point at infinity.
func (p *PointG1) IsZero() bool { return p.z.Sign() == 0 }

// g1FromAffine builds a Jacobian point from affine coordinates. (0,0)
// denotes infinity.
func g1FromAffine(x, y *big.Int) *PointG1 {
	if x.Sign() == 0 && y.Sign() == 0 {
		return G1Infinity()
	}
	return &PointG1{x: new(big.Int).Set(x), y: new(big.Int).Set(y), z: big.NewInt(1)}
}

// ToAffine converts p to affine (x, y), returning (0,0) for infinity.
func (p *PointG1) ToAffine() (x, y *big.Int) {
	if p.IsZero() {
		return new(big.Int), new(big.Int)
	}
	zInv := fpInv(p.z)
	zInv2 := fpSqr(zInv)
	zInv3 := fpMul(zInv2, zInv)
	return fpMul(p.x, zInv2), fpMul(p.y, zInv3)
}

// g1IsOnCurveAffine reports whether affine (x, y) satisfies y^2 = x^3 + 4.
// (0,0) (the identity's sentinel encoding) is accepted.
func g1IsOnCurveAffine(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if !fpInRange(x) || !fpInRange(y) {
		return false
	}
	lhs := fpSqr(y)
	rhs := fpAdd(fpMul(fpSqr(x), x), g1B)
	return lhs.Cmp(rhs) == 0
}

// IsOnCurve reports whether p satisfies the curve equation.
func (p *PointG1) IsOnCurve() bool {
	if p.IsZero() {
		return true
	}
	x, y := p.ToAffine()
	return g1IsOnCurveAffine(x, y)
}

// Equal reports whether p and q represent the same affine point.
func (p *PointG1) Equal(q *PointG1) bool {
	if p.IsZero() || q.IsZero() {
		return p.IsZero() == q.IsZero()
	}
	px, py := p.ToAffine()
	qx, qy := q.ToAffine()
	return px.Cmp(qx) == 0 && py.Cmp(qy) == 0
}

// Add returns p + q using the standard Jacobian "add-2007-bl" formula.
// Add(P, P) delegates to Double; Add(P, -P) returns infinity.
func (p *PointG1) Add(q *PointG1) *PointG1 {
	if p.IsZero() {
		return &PointG1{new(big.Int).Set(q.x), new(big.Int).Set(q.y), new(big.Int).Set(q.z)}
	}
	if q.IsZero() {
		return &PointG1{new(big.Int).Set(p.x), new(big.Int).Set(p.y), new(big.Int).Set(p.z)}
	}

	z1sq := fpSqr(p.z)
	z2sq := fpSqr(q.z)
	u1 := fpMul(p.x, z2sq)
	u2 := fpMul(q.x, z1sq)
	s1 := fpMul(p.y, fpMul(q.z, z2sq))
	s2 := fpMul(q.y, fpMul(p.z, z1sq))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return p.Double()
		}
		return G1Infinity()
	}

	h := fpSub(u2, u1)
	i := fpSqr(fpAdd(h, h))
	j := fpMul(h, i)
	r := fpAdd(fpSub(s2, s1), fpSub(s2, s1))
	v := fpMul(u1, i)

	x3 := fpSub(fpSub(fpSqr(r), j), fpAdd(v, v))
	y3 := fpSub(fpMul(r, fpSub(v, x3)), fpAdd(fpMul(s1, j), fpMul(s1, j)))
	z3 := fpMul(fpSub(fpSub(fpSqr(fpAdd(p.z, q.z)), z1sq), z2sq), h)

	return &PointG1{x: x3, y: y3, z: z3}
}

// Double returns 2p using the standard Jacobian "dbl-2009-l" formula
// (specialized for curve coefficient a = 0).
func (p *PointG1) Double() *PointG1 {
	if p.IsZero() {
		return G1Infinity()
	}

	a := fpSqr(p.x)
	b := fpSqr(p.y)
	c := fpSqr(b)

	dHalf := fpSub(fpSub(fpSqr(fpAdd(p.x, b)), a), c)
	d := fpAdd(dHalf, dHalf)
	e := fpAdd(fpAdd(a, a), a)

	x3 := fpSub(fpSqr(e), fpAdd(d, d))

	eightC := fpAdd(fpAdd(fpAdd(c, c), fpAdd(c, c)), fpAdd(fpAdd(c, c), fpAdd(c, c)))
	y3 := fpSub(fpMul(e, fpSub(d, x3)), eightC)

	z3 := fpMul(fpAdd(p.y, p.y), p.z)

	return &PointG1{x: x3, y: y3, z: z3}
}

// Neg returns -p.
func (p *PointG1) Neg() *PointG1 {
	if p.IsZero() {
		return G1Infinity()
	}
	return &PointG1{x: new(big.Int).Set(p.x), y: fpNeg(p.y), z: new(big.Int).Set(p.z)}
}

// ScalarMul returns k*p by left-to-right double-and-add over bitlen(q).
// k is reduced mod q first, since p is assumed to already have order
// dividing q (the only scalars this method is meant to take are private
// keys and the like). It must never be used to test a multiple against q
// itself: scalarMulRaw exists for exactly that.
func (p *PointG1) ScalarMul(k *big.Int) *PointG1 {
	if p.IsZero() {
		return G1Infinity()
	}
	kMod := new(big.Int).Mod(k, Q)
	if kMod.Sign() == 0 {
		return G1Infinity()
	}
	r := G1Infinity()
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
func (p *PointG1) scalarMulRaw(k *big.Int) *PointG1 {
	if p.IsZero() || k.Sign() == 0 {
		return G1Infinity()
	}

	r := G1Infinity()
	base := &PointG1{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y), z: new(big.Int).Set(p.z)}
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) == 1 {
			r = r.Add(base)
		}
	}
	return r
}

// InSubgroup reports whether p has order dividing q, checked via [q]p == O.
func (p *PointG1) InSubgroup() bool {
	if p.IsZero() {
		return true
	}
	return p.scalarMulRaw(Q).IsZero()
}

// ClearCofactor maps an arbitrary point on the curve into the order-q
// subgroup by multiplying by the G1 cofactor h1 = (z-1)^2/3.
func (p *PointG1) ClearCofactor() *PointG1 {
	return p.scalarMulRaw(g1Cofactor)
}
