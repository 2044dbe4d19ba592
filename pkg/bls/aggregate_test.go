package bls

import "testing"

func TestAggregatePublicKeysHomomorphism(t *testing.T) {
	sk1 := testScalar(3)
	sk2 := testScalar(5)
	pk1 := GetPublicKey(sk1)
	pk2 := GetPublicKey(sk2)

	agg, err := AggregatePublicKeys([][48]byte{pk1, pk2})
	if err != nil {
		t.Fatalf("AggregatePublicKeys: %v", err)
	}

	sk3 := testScalar(8) // 3+5
	want := GetPublicKey(sk3)
	if agg != want {
		t.Error("aggregate(pk(3), pk(5)) should equal pk(8)")
	}
}

func TestAggregatePublicKeysRejectsEmpty(t *testing.T) {
	if _, err := AggregatePublicKeys(nil); err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAggregateSignaturesHomomorphism(t *testing.T) {
	sk1 := testScalar(11)
	sk2 := testScalar(13)
	msg := []byte("same message")

	sig1 := Sign(msg, sk1, 0)
	sig2 := Sign(msg, sk2, 0)

	aggSig, err := AggregateSignatures([][96]byte{sig1, sig2})
	if err != nil {
		t.Fatalf("AggregateSignatures: %v", err)
	}

	aggPk, err := AggregatePublicKeys([][48]byte{GetPublicKey(sk1), GetPublicKey(sk2)})
	if err != nil {
		t.Fatalf("AggregatePublicKeys: %v", err)
	}

	ok, err := Verify(msg, aggPk, aggSig, 0)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Error("aggregated signature should verify under the aggregated public key")
	}
}

func TestAggregateSignaturesRejectsEmpty(t *testing.T) {
	if _, err := AggregateSignatures(nil); err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestVerifyMultipleDistinctMessages(t *testing.T) {
	sk1 := testScalar(21)
	sk2 := testScalar(22)
	msg1 := []byte("message one")
	msg2 := []byte("message two")

	sig1 := Sign(msg1, sk1, 0)
	sig2 := Sign(msg2, sk2, 0)
	aggSig, err := AggregateSignatures([][96]byte{sig1, sig2})
	if err != nil {
		t.Fatalf("AggregateSignatures: %v", err)
	}

	pks := [][48]byte{GetPublicKey(sk1), GetPublicKey(sk2)}
	msgs := [][]byte{msg1, msg2}

	ok, err := VerifyMultiple(msgs, pks, aggSig, 0)
	if err != nil {
		t.Fatalf("VerifyMultiple: %v", err)
	}
	if !ok {
		t.Error("VerifyMultiple should accept a valid multi-message aggregate")
	}
}

func TestVerifyMultipleRejectsDuplicateMessages(t *testing.T) {
	sk1 := testScalar(31)
	sk2 := testScalar(32)
	msg := []byte("same for both")

	sig1 := Sign(msg, sk1, 0)
	sig2 := Sign(msg, sk2, 0)
	aggSig, err := AggregateSignatures([][96]byte{sig1, sig2})
	if err != nil {
		t.Fatalf("AggregateSignatures: %v", err)
	}

	pks := [][48]byte{GetPublicKey(sk1), GetPublicKey(sk2)}
	msgs := [][]byte{msg, msg}

	_, err = VerifyMultiple(msgs, pks, aggSig, 0)
	if err != ErrDuplicateMessage {
		t.Errorf("expected ErrDuplicateMessage, got %v", err)
	}
}

func TestVerifyMultipleRejectsLengthMismatch(t *testing.T) {
	sk := testScalar(41)
	pk := GetPublicKey(sk)
	sig := Sign([]byte("m"), sk, 0)

	_, err := VerifyMultiple([][]byte{[]byte("a"), []byte("b")}, [][48]byte{pk}, sig, 0)
	if err != ErrLengthMismatch {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestFastAggregateVerifyCommonMessage(t *testing.T) {
	sk1 := testScalar(51)
	sk2 := testScalar(52)
	msg := []byte("common message")

	sig1 := Sign(msg, sk1, 0)
	sig2 := Sign(msg, sk2, 0)
	aggSig, err := AggregateSignatures([][96]byte{sig1, sig2})
	if err != nil {
		t.Fatalf("AggregateSignatures: %v", err)
	}

	pks := [][48]byte{GetPublicKey(sk1), GetPublicKey(sk2)}
	ok, err := FastAggregateVerify(msg, pks, aggSig, 0)
	if err != nil {
		t.Fatalf("FastAggregateVerify: %v", err)
	}
	if !ok {
		t.Error("FastAggregateVerify should accept a valid common-message aggregate")
	}
}

func TestFastAggregateVerifyRejectsEmptyKeys(t *testing.T) {
	var sig [96]byte
	if _, err := FastAggregateVerify([]byte("m"), nil, sig, 0); err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
