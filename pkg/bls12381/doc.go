// Package bls12381 implements the BLS12-381 pairing-friendly elliptic
// curve: the prime-field tower Fp -> Fp2 -> Fp6 -> Fp12, the two curve
// groups G1 and G2, hash-to-curve for G2, compressed and uncompressed
// point encodings, and the optimal ate pairing.
//
// The package has no I/O and no mutable process state beyond constants
// (generators, the base prime, the subgroup order) computed once at
// init and never written again. Every exported group element returned
// by this package satisfies its curve equation and lies in the
// order-q subgroup, except points from DecodeG1WithSubgroupCheck or
// DecodeG2WithSubgroupCheck called with the subgroup check turned off,
// which are only checked against the curve equation; every exported
// field element is the canonical representative in [0, p).
//
// Constant-time behavior is explicitly not a goal: scalar multiplication,
// field inversion, and final exponentiation all branch on secret data.
// Callers operating in an adversarial timing environment must harden
// these primitives themselves.
package bls12381
