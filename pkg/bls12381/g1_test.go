package bls12381

import (
	"math/big"
	"testing"
)

func TestG1GeneratorOnCurve(t *testing.T) {
	g := G1Generator()
	if !g.IsOnCurve() {
		t.Error("generator is not on curve")
	}
	if g.IsZero() {
		t.Error("generator should not be infinity")
	}
	if !g.InSubgroup() {
		t.Error("generator should be in the order-q subgroup")
	}
}

func TestG1Infinity(t *testing.T) {
	inf := G1Infinity()
	if !inf.IsZero() {
		t.Error("G1Infinity should be zero")
	}
	if !inf.IsOnCurve() {
		t.Error("infinity should be considered on curve")
	}
	if !inf.InSubgroup() {
		t.Error("infinity should be in subgroup")
	}
}

func TestG1AddDoubleConsistency(t *testing.T) {
	g := G1Generator()
	doubled := g.Double()
	added := g.Add(g)
	if !doubled.Equal(added) {
		t.Error("Double(g) != Add(g, g)")
	}
	if !doubled.IsOnCurve() {
		t.Error("2g is not on curve")
	}
}

func TestG1AddIdentity(t *testing.T) {
	g := G1Generator()
	inf := G1Infinity()
	if !g.Add(inf).Equal(g) {
		t.Error("g + O != g")
	}
	if !inf.Add(g).Equal(g) {
		t.Error("O + g != g")
	}
}

func TestG1AddNegation(t *testing.T) {
	g := G1Generator()
	neg := g.Neg()
	sum := g.Add(neg)
	if !sum.IsZero() {
		t.Error("g + (-g) should be infinity")
	}
}

func TestG1ScalarMul(t *testing.T) {
	g := G1Generator()
	two := g.ScalarMul(big.NewInt(2))
	if !two.Equal(g.Double()) {
		t.Error("2*g via ScalarMul != Double(g)")
	}

	zero := g.ScalarMul(big.NewInt(0))
	if !zero.IsZero() {
		t.Error("0*g should be infinity")
	}

	qTimes := g.ScalarMul(Q)
	if !qTimes.IsZero() {
		t.Error("q*g should be infinity")
	}

	five := g.ScalarMul(big.NewInt(5))
	manual := g.Add(g).Add(g).Add(g).Add(g)
	if !five.Equal(manual) {
		t.Error("5*g != g+g+g+g+g")
	}
}

func TestG1ScalarMulReducesModQ(t *testing.T) {
	g := G1Generator()
	k := new(big.Int).Add(Q, big.NewInt(7))
	if !g.ScalarMul(k).Equal(g.ScalarMul(big.NewInt(7))) {
		t.Error("ScalarMul should reduce the scalar mod Q")
	}
}

func TestG1ClearCofactor(t *testing.T) {
	g := G1Generator()
	cleared := g.ClearCofactor()
	if !cleared.InSubgroup() {
		t.Error("ClearCofactor result should be in the order-q subgroup")
	}
}

// findNonSubgroupG1Point searches small x coordinates for a point on the
// curve y^2 = x^3 + 4 that is not a multiple of the cofactor: since the G1
// cofactor h1 is ~128 bits, an arbitrary curve point lands in the order-q
// subgroup with probability ~1/h1, so the first hit is effectively certain
// to be outside it.
func findNonSubgroupG1Point(t *testing.T) *PointG1 {
	t.Helper()
	for i := int64(1); i < 1000; i++ {
		x := big.NewInt(i)
		rhs := fpAdd(fpMul(fpSqr(x), x), g1B)
		y := fpSqrt(rhs)
		if y == nil {
			continue
		}
		p := g1FromAffine(x, y)
		if !p.InSubgroup() {
			return p
		}
	}
	t.Fatal("could not find a non-subgroup G1 point for testing")
	return nil
}

func TestG1InSubgroupRejectsNonSubgroupPoint(t *testing.T) {
	p := findNonSubgroupG1Point(t)
	if !p.IsOnCurve() {
		t.Fatal("constructed point should be on curve")
	}
	if p.InSubgroup() {
		t.Error("InSubgroup should reject a point outside the order-q subgroup")
	}
}

func TestG1AffineRoundTrip(t *testing.T) {
	g := G1Generator().Double()
	x, y := g.ToAffine()
	back := g1FromAffine(x, y)
	if !back.Equal(g) {
		t.Error("affine round-trip changed the point")
	}
}
