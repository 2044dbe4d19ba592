package bls

import (
	"github.com/qingche123/noble-bls12-381/pkg/bls12381"
)

// GetPublicKey returns the 48-byte compressed G1 public key pk = sk * g1.
func GetPublicKey(sk bls12381.Scalar) [48]byte {
	pk := bls12381.G1Generator().ScalarMul(sk.BigInt())
	return bls12381.EncodeG1(pk)
}

// Sign returns the 96-byte compressed G2 signature sigma = sk * H(msg, domain).
func Sign(msg []byte, sk bls12381.Scalar, domain uint64) [96]byte {
	return SignWithConfig(msg, sk, domain, DefaultConfig())
}

// SignWithConfig is Sign with an explicit Config (selects the
// hash-to-curve expansion backend).
func SignWithConfig(msg []byte, sk bls12381.Scalar, domain uint64, cfg Config) [96]byte {
	hm := bls12381.HashToG2(msg, domain, cfg.HashScheme)
	sig := hm.ScalarMul(sk.BigInt())
	return bls12381.EncodeG2(sig)
}

// Verify reports whether sig is a valid signature over msg under domain
// by pk. It returns a typed decode error if pk or sig fail to decode (bad
// length, bad encoding, not on curve, not in subgroup); otherwise it
// returns a plain boolean, indistinguishable between "well-formed inputs,
// wrong signature" and any other mismatch.
func Verify(msg []byte, pk [48]byte, sig [96]byte, domain uint64) (bool, error) {
	return VerifyWithConfig(msg, pk, sig, domain, DefaultConfig())
}

// VerifyWithConfig is Verify with an explicit Config.
func VerifyWithConfig(msg []byte, pk [48]byte, sig [96]byte, domain uint64, cfg Config) (bool, error) {
	log := cfg.logger()

	pubkey, err := bls12381.DecodeG1WithSubgroupCheck(pk[:], cfg.SubgroupCheck)
	if err != nil {
		log.Debug("verify: public key decode failed", map[string]interface{}{"error": err.Error()})
		return false, err
	}
	signature, err := bls12381.DecodeG2WithSubgroupCheck(sig[:], cfg.SubgroupCheck)
	if err != nil {
		log.Debug("verify: signature decode failed", map[string]interface{}{"error": err.Error()})
		return false, err
	}
	if pubkey.IsZero() || signature.IsZero() {
		log.Debug("verify: point at infinity rejected", nil)
		return false, nil
	}

	hm := bls12381.HashToG2(msg, domain, cfg.HashScheme)
	negG1 := bls12381.G1Generator().Neg()

	ok := bls12381.PairProduct(
		[]*bls12381.PointG1{negG1, pubkey},
		[]*bls12381.PointG2{signature, hm},
	)
	return ok, nil
}
