package bls12381

import "math/big"

// P is the base field modulus:
//
//	p = 0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab
var P, _ = new(big.Int).SetString(
	"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

// Q is the order of the G1/G2 subgroup (also called r in the literature):
//
//	q = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001
var Q, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// QByteLen is the byte length of an encoded, reduced scalar.
const QByteLen = 32

// z is the BLS parameter: z = -0xd201000000010000. Only |z| is used by the
// Miller loop; its sign determines the final conjugation.
var absZ, _ = new(big.Int).SetString("d201000000010000", 16)

// g1B is the G1 curve coefficient: y^2 = x^3 + g1B.
var g1B = big.NewInt(4)

// g2B is the G2 (twist) curve coefficient: y^2 = x^3 + g2B, g2B = 4(u+1).
var g2B = &Fp2{C0: big.NewInt(4), C1: big.NewInt(4)}

// g1CofactorHex is the G1 cofactor h1 = (z-1)^2/3.
const g1CofactorHex = "396c8c005555e1568c00aaab0000aaab"

// g2CofactorHex is the G2 cofactor h2.
const g2CofactorHex = "5d543a95414e7f1091d50792876a202cd91de4547085abaa68a205b2e5a7ddf" +
	"a628f1cb4d9e82ef21537e293a6691ae1616ec6e786f0c70cf1c38e31c7238e5"

var g1Cofactor, _ = new(big.Int).SetString(g1CofactorHex, 16)
var g2Cofactor, _ = new(big.Int).SetString(g2CofactorHex, 16)

// G1 generator coordinates.
var (
	g1GenX, _ = new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	g1GenY, _ = new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)
)

// G2 generator coordinates (Fp2, c0 + c1*u).
var (
	g2GenXc0, _ = new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	g2GenXc1, _ = new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	g2GenYc0, _ = new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	g2GenYc1, _ = new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)
)
