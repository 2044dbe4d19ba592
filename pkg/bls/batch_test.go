package bls

import (
	"testing"

	"github.com/qingche123/noble-bls12-381/pkg/bls12381"
)

func TestBatchVerifierAllValid(t *testing.T) {
	bv := NewBatchVerifier(DefaultConfig())

	for i, n := range []int64{101, 102, 103} {
		sk := testScalar(n)
		pk := GetPublicKey(sk)
		msg := []byte("batch message")
		sig := Sign(msg, sk, uint64(i))
		bv.Submit(pk, msg, sig, uint64(i))
	}

	if bv.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", bv.Pending())
	}

	ok, perJob, err := bv.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if !ok {
		t.Error("Finish should report true when every job is valid")
	}
	if perJob != nil {
		t.Error("Finish should not return a per-job slice on full success")
	}
	if bv.Pending() != 0 {
		t.Error("Finish should drain the queue")
	}
}

func TestBatchVerifierDetectsBadJob(t *testing.T) {
	bv := NewBatchVerifier(DefaultConfig())

	sk1 := testScalar(111)
	pk1 := GetPublicKey(sk1)
	msg1 := []byte("good")
	sig1 := Sign(msg1, sk1, 0)
	bv.Submit(pk1, msg1, sig1, 0)

	sk2 := testScalar(112)
	pk2 := GetPublicKey(sk2)
	msg2 := []byte("tampered")
	sig2 := Sign([]byte("original"), sk2, 0)
	bv.Submit(pk2, msg2, sig2, 0)

	ok, perJob, err := bv.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if ok {
		t.Error("Finish should report false when one job is invalid")
	}
	if len(perJob) != 2 {
		t.Fatalf("perJob length = %d, want 2", len(perJob))
	}
	if !perJob[0] {
		t.Error("first job should have verified individually")
	}
	if perJob[1] {
		t.Error("second (tampered) job should have failed individually")
	}
}

func TestBatchVerifierEmptyFinish(t *testing.T) {
	bv := NewBatchVerifier(DefaultConfig())
	if _, _, err := bv.Finish(); err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

// TestBatchVerifierRejectsCancellingForgery is the regression case for
// unweighted batch combination: two signatures, each individually wrong by
// the same additive offset in opposite directions, whose pairing
// contributions would cancel in a naive combined product with no per-job
// random scalar. With the random weighting in place the two offsets get
// scaled by independent coefficients and stop cancelling, so Finish must
// report the batch invalid.
func TestBatchVerifierRejectsCancellingForgery(t *testing.T) {
	bv := NewBatchVerifier(DefaultConfig())

	sk1 := testScalar(201)
	pk1 := GetPublicKey(sk1)
	msg1 := []byte("forge-1")

	sk2 := testScalar(202)
	pk2 := GetPublicKey(sk2)
	msg2 := []byte("forge-2")

	hm1 := bls12381.HashToG2(msg1, 0, bls12381.HashSchemeXMDSHA256)
	hm2 := bls12381.HashToG2(msg2, 0, bls12381.HashSchemeXMDSHA256)

	offset := hm1
	forgedSig1 := bls12381.EncodeG2(hm1.ScalarMul(sk1.BigInt()).Add(offset))
	forgedSig2 := bls12381.EncodeG2(hm2.ScalarMul(sk2.BigInt()).Add(offset.Neg()))

	bv.Submit(pk1, msg1, forgedSig1, 0)
	bv.Submit(pk2, msg2, forgedSig2, 0)

	ok, perJob, err := bv.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if ok {
		t.Error("Finish should not accept a batch of two individually-wrong, cancelling signatures")
	}
	if len(perJob) != 2 || perJob[0] || perJob[1] {
		t.Errorf("per-job fallback should mark both forged signatures invalid, got %v", perJob)
	}
}
