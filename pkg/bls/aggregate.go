package bls

import (
	"github.com/qingche123/noble-bls12-381/pkg/bls12381"
)

// AggregatePublicKeys sums a non-empty list of 48-byte compressed public
// keys in G1, returning the 48-byte compressed aggregate.
func AggregatePublicKeys(pks [][48]byte) ([48]byte, error) {
	var zero [48]byte
	if len(pks) == 0 {
		return zero, ErrEmptyInput
	}

	agg := bls12381.G1Infinity()
	for _, pk := range pks {
		p, err := bls12381.DecodeG1(pk[:])
		if err != nil {
			return zero, err
		}
		agg = agg.Add(p)
	}
	return bls12381.EncodeG1(agg), nil
}

// AggregateSignatures sums a non-empty list of 96-byte compressed
// signatures in G2, returning the 96-byte compressed aggregate.
func AggregateSignatures(sigs [][96]byte) ([96]byte, error) {
	var zero [96]byte
	if len(sigs) == 0 {
		return zero, ErrEmptyInput
	}

	agg := bls12381.G2Infinity()
	for _, s := range sigs {
		p, err := bls12381.DecodeG2(s[:])
		if err != nil {
			return zero, err
		}
		agg = agg.Add(p)
	}
	return bls12381.EncodeG2(agg), nil
}

// VerifyMultiple verifies an aggregate signature over distinct messages,
// one per signer: accept iff
//
//	pairProduct([(-g1, sig)] ∪ [(pk_i, H(m_i, domain)) for i])  ==  1
//
// Messages must not repeat: a duplicate message would let one signer's
// contribution cancel another's inside the aggregate (the rogue-key
// cancellation this check exists to block), so duplicates are rejected
// with ErrDuplicateMessage before any pairing work happens. Use
// FastAggregateVerify (below) when every signer is known to have signed
// the same message.
func VerifyMultiple(msgs [][]byte, pks [][48]byte, sig [96]byte, domain uint64) (bool, error) {
	return VerifyMultipleWithConfig(msgs, pks, sig, domain, DefaultConfig())
}

// VerifyMultipleWithConfig is VerifyMultiple with an explicit Config.
func VerifyMultipleWithConfig(msgs [][]byte, pks [][48]byte, sig [96]byte, domain uint64, cfg Config) (bool, error) {
	if len(msgs) == 0 || len(pks) == 0 {
		return false, ErrEmptyInput
	}
	if len(msgs) != len(pks) {
		return false, ErrLengthMismatch
	}
	if hasDuplicateMessage(msgs) {
		return false, ErrDuplicateMessage
	}

	log := cfg.logger()

	signature, err := bls12381.DecodeG2WithSubgroupCheck(sig[:], cfg.SubgroupCheck)
	if err != nil {
		log.Debug("verifyMultiple: signature decode failed", map[string]interface{}{"error": err.Error()})
		return false, err
	}
	if signature.IsZero() {
		return false, nil
	}

	n := len(pks)
	g1s := make([]*bls12381.PointG1, n+1)
	g2s := make([]*bls12381.PointG2, n+1)

	for i := 0; i < n; i++ {
		pk, err := bls12381.DecodeG1WithSubgroupCheck(pks[i][:], cfg.SubgroupCheck)
		if err != nil {
			log.Debug("verifyMultiple: public key decode failed", map[string]interface{}{"index": i, "error": err.Error()})
			return false, err
		}
		if pk.IsZero() {
			return false, nil
		}
		g1s[i] = pk
		g2s[i] = bls12381.HashToG2(msgs[i], domain, cfg.HashScheme)
	}
	g1s[n] = bls12381.G1Generator().Neg()
	g2s[n] = signature

	return bls12381.PairProduct(g1s, g2s), nil
}

// FastAggregateVerify verifies an aggregate signature where every signer
// signed the same message: accept iff
//
//	pairProduct([(-g1, sig), (sum(pk_i), H(m, domain))])  ==  1
func FastAggregateVerify(msg []byte, pks [][48]byte, sig [96]byte, domain uint64) (bool, error) {
	return FastAggregateVerifyWithConfig(msg, pks, sig, domain, DefaultConfig())
}

// FastAggregateVerifyWithConfig is FastAggregateVerify with an explicit Config.
func FastAggregateVerifyWithConfig(msg []byte, pks [][48]byte, sig [96]byte, domain uint64, cfg Config) (bool, error) {
	if len(pks) == 0 {
		return false, ErrEmptyInput
	}

	aggPK, err := AggregatePublicKeys(pks)
	if err != nil {
		return false, err
	}
	return VerifyWithConfig(msg, aggPK, sig, domain, cfg)
}

func hasDuplicateMessage(msgs [][]byte) bool {
	seen := make(map[string]struct{}, len(msgs))
	for _, m := range msgs {
		key := string(m)
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}
