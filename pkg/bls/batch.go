package bls

import (
	"crypto/rand"
	"math/big"
	"sync"

	"github.com/qingche123/noble-bls12-381/pkg/bls12381"
)

// randomScalar returns a random 128-bit non-zero scalar, used to weight
// each job in a batch so that an adversary cannot craft per-job forgeries
// that cancel out in the combined pairing product. Matches this lineage's
// batch-aggregate signature verification, which applies the same per-entry
// random coefficient before combining pairings.
func randomScalar() *big.Int {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return big.NewInt(1)
	}
	r := new(big.Int).SetBytes(buf)
	if r.Sign() == 0 {
		return big.NewInt(1)
	}
	return r
}

// verifyJob is a single pending verification request submitted to a
// BatchVerifier.
type verifyJob struct {
	pk     [48]byte
	msg    []byte
	sig    [96]byte
	domain uint64
}

// BatchVerifier accumulates (pubkey, message, signature) jobs, possibly
// submitted from multiple goroutines, and verifies all of them as one
// pairing product when Finish is called. This is a throughput
// convenience: it introduces no new cryptographic primitive, only
// amortizes the final exponentiation across many jobs the way
// VerifyMultiple already does for a single aggregate signature.
type BatchVerifier struct {
	mu     sync.Mutex
	jobs   []verifyJob
	config Config
}

// NewBatchVerifier creates an empty BatchVerifier using cfg (DefaultConfig
// if the zero value is passed without calling Validate).
func NewBatchVerifier(cfg Config) *BatchVerifier {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return &BatchVerifier{config: cfg}
}

// Submit queues one (pubkey, message, signature) triple for verification.
func (b *BatchVerifier) Submit(pk [48]byte, msg []byte, sig [96]byte, domain uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jobs = append(b.jobs, verifyJob{pk: pk, msg: msg, sig: sig, domain: domain})
}

// Pending returns the number of jobs waiting for verification.
func (b *BatchVerifier) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.jobs)
}

// Finish verifies every queued job as a single randomized pairing product
// and drains the queue. Each job is weighted by an independent random
// scalar r_i before being folded in:
//
//	pairProduct([(r_i*pk_i, H(m_i, domain)) for i] ∪ [(-g1, sum(r_i*sig_i))])  ==  1
//
// Combining the jobs with no per-job coefficient would let an attacker
// submit individually-invalid signatures that cancel out in the combined
// product; the random weighting is what rules that out (the same
// technique this lineage's aggregate-signature-set verification uses).
// Finish returns true (and a nil per-job slice) when the batch as a whole
// is valid. Only on failure does it fall back to verifying each job
// individually, so the caller can see exactly which entries failed,
// returned in the same order as Submit.
func (b *BatchVerifier) Finish() (bool, []bool, error) {
	b.mu.Lock()
	jobs := make([]verifyJob, len(b.jobs))
	copy(jobs, b.jobs)
	b.jobs = b.jobs[:0]
	b.mu.Unlock()

	if len(jobs) == 0 {
		return false, nil, ErrEmptyInput
	}

	g1s := make([]*bls12381.PointG1, 0, len(jobs)+1)
	g2s := make([]*bls12381.PointG2, 0, len(jobs)+1)
	aggSig := bls12381.G2Infinity()
	for _, j := range jobs {
		pk, err := bls12381.DecodeG1WithSubgroupCheck(j.pk[:], b.config.SubgroupCheck)
		if err != nil {
			return false, nil, err
		}
		sig, err := bls12381.DecodeG2WithSubgroupCheck(j.sig[:], b.config.SubgroupCheck)
		if err != nil {
			return false, nil, err
		}
		if pk.IsZero() || sig.IsZero() {
			return b.fallback(jobs)
		}
		r := randomScalar()
		hm := bls12381.HashToG2(j.msg, j.domain, b.config.HashScheme)
		g1s = append(g1s, pk.ScalarMul(r))
		g2s = append(g2s, hm)
		aggSig = aggSig.Add(sig.ScalarMul(r))
	}
	g1s = append(g1s, bls12381.G1Generator().Neg())
	g2s = append(g2s, aggSig)

	if bls12381.PairProduct(g1s, g2s) {
		return true, nil, nil
	}
	return b.fallback(jobs)
}

// fallback verifies each job independently after a combined batch check
// failed, to diagnose which entries were the culprit.
func (b *BatchVerifier) fallback(jobs []verifyJob) (bool, []bool, error) {
	allOK := true
	perJob := make([]bool, len(jobs))
	for i, j := range jobs {
		ok, err := VerifyWithConfig(j.msg, j.pk, j.sig, j.domain, b.config)
		if err != nil {
			return false, nil, err
		}
		perJob[i] = ok
		if !ok {
			allOK = false
		}
	}
	return allOK, perJob, nil
}
