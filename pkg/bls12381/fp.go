package bls12381

import "math/big"

// fpAdd returns (a + b) mod p.
func fpAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, P)
}

// fpSub returns (a - b) mod p.
func fpSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, P)
}

// fpMul returns (a * b) mod p.
func fpMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, P)
}

// fpSqr returns a^2 mod p.
func fpSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, P)
}

// fpNeg returns (-a) mod p.
func fpNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(P, new(big.Int).Mod(a, P))
}

// fpInv returns a^-1 mod p via the extended Euclidean algorithm, or nil if
// a is not invertible (a ≡ 0).
func fpInv(a *big.Int) *big.Int {
	r := new(big.Int).Mod(a, P)
	if r.Sign() == 0 {
		return nil
	}
	return new(big.Int).ModInverse(r, P)
}

// fpExp returns a^e mod p for e >= 0.
func fpExp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, P)
}

// fpSqrt returns a square root of a mod p, or nil if a is not a quadratic
// residue. p ≡ 3 (mod 4) for BLS12-381, so sqrt(a) = a^((p+1)/4).
func fpSqrt(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Rsh(exp, 2)
	r := fpExp(a, exp)
	if fpSqr(r).Cmp(new(big.Int).Mod(a, P)) != 0 {
		return nil
	}
	return r
}

// fpIsSquare reports whether a is a quadratic residue mod p, via Euler's
// criterion: a^((p-1)/2) == 1.
func fpIsSquare(a *big.Int) bool {
	if a.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(P, big.NewInt(1))
	exp.Rsh(exp, 1)
	return fpExp(a, exp).Cmp(big.NewInt(1)) == 0
}

// fpSgn0 returns the hash-to-curve "sign" of a: a mod 2.
func fpSgn0(a *big.Int) int {
	t := new(big.Int).Mod(a, P)
	return int(t.Bit(0))
}

// fpCanonical returns a reduced into [0, p) as a new value; a is not
// modified.
func fpCanonical(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, P)
}

// fpInRange reports whether 0 <= a < p.
func fpInRange(a *big.Int) bool {
	return a.Sign() >= 0 && a.Cmp(P) < 0
}
