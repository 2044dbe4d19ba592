package bls

import "testing"

func TestValidatePubkeyRejectsMissingCompressedFlag(t *testing.T) {
	var pk [48]byte
	if err := ValidatePubkey(pk); err == nil {
		t.Error("all-zero pubkey bytes have no compressed flag set and should fail to decode")
	}
}

func TestValidatePubkeyAcceptsRealKey(t *testing.T) {
	sk := testScalar(11)
	pk := GetPublicKey(sk)
	if err := ValidatePubkey(pk); err != nil {
		t.Errorf("ValidatePubkey on a real key: %v", err)
	}
}

func TestValidateSignatureAcceptsRealSignature(t *testing.T) {
	sk := testScalar(11)
	sig := Sign([]byte("msg"), sk, 0)
	if err := ValidateSignature(sig); err != nil {
		t.Errorf("ValidateSignature on a real signature: %v", err)
	}
}
