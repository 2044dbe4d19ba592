package bls12381

import (
	"math/big"
	"testing"
)

func TestPairBilinearInG1(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	a := big.NewInt(3)
	b := big.NewInt(5)

	left := Pair(g1.ScalarMul(a), g2)
	right := Pair(g1, g2).Exp(a)
	if !left.Equal(right) {
		t.Error("e(aP, Q) != e(P, Q)^a")
	}

	left2 := Pair(g1.ScalarMul(a), g2.ScalarMul(b))
	right2 := Pair(g1, g2).Exp(new(big.Int).Mul(a, b))
	if !left2.Equal(right2) {
		t.Error("e(aP, bQ) != e(P, Q)^(ab)")
	}
}

func TestPairIdentity(t *testing.T) {
	f := Pair(G1Infinity(), G2Generator())
	if !f.IsOne() {
		t.Error("e(O, Q) should be 1")
	}
	g := Pair(G1Generator(), G2Infinity())
	if !g.IsOne() {
		t.Error("e(P, O) should be 1")
	}
}

func TestPairProductTrivial(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	sk := big.NewInt(7)

	// e(-g1, sk*g2) * e(sk*g1, g2) == 1
	g1s := []*PointG1{g1.Neg(), g1.ScalarMul(sk)}
	g2s := []*PointG2{g2.ScalarMul(sk), g2}
	if !PairProduct(g1s, g2s) {
		t.Error("PairProduct should accept a balanced pairing equation")
	}
}

func TestPairProductRejectsImbalance(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()

	g1s := []*PointG1{g1.Neg(), g1.ScalarMul(big.NewInt(7))}
	g2s := []*PointG2{g2.ScalarMul(big.NewInt(8)), g2}
	if PairProduct(g1s, g2s) {
		t.Error("PairProduct should reject a mismatched pairing equation")
	}
}

func TestPairProductSkipsInfinityPairs(t *testing.T) {
	ok := PairProduct([]*PointG1{G1Infinity()}, []*PointG2{G2Generator()})
	if !ok {
		t.Error("PairProduct over only infinity pairs should vacuously hold")
	}
}
