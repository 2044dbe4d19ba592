package bls12381

import (
	"math/big"
	"testing"
)

func TestG1CompressedRoundTrip(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 12345} {
		p := G1Generator().ScalarMul(big.NewInt(k))
		enc := EncodeG1(p)
		if len(enc) != g1CompressedLen {
			t.Fatalf("EncodeG1 length = %d, want %d", len(enc), g1CompressedLen)
		}
		if enc[0]&flagCompressed == 0 {
			t.Error("compressed flag not set")
		}
		dec, err := DecodeG1(enc[:])
		if err != nil {
			t.Fatalf("DecodeG1: %v", err)
		}
		if !dec.Equal(p) {
			t.Errorf("round trip changed point for k=%d", k)
		}
	}
}

func TestG1CompressedInfinity(t *testing.T) {
	enc := EncodeG1(G1Infinity())
	if enc[0] != (flagCompressed | flagInfinity) {
		t.Errorf("infinity flags = %x, want %x", enc[0], flagCompressed|flagInfinity)
	}
	dec, err := DecodeG1(enc[:])
	if err != nil {
		t.Fatalf("DecodeG1(infinity): %v", err)
	}
	if !dec.IsZero() {
		t.Error("decoded infinity encoding should be zero")
	}
}

func TestG1DecodeInvalidLength(t *testing.T) {
	if _, err := DecodeG1(make([]byte, 47)); err != ErrInvalidLength {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func TestG1DecodeMissingCompressedFlag(t *testing.T) {
	var buf [48]byte
	if _, err := DecodeG1(buf[:]); err != ErrInvalidEncoding {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestG1UncompressedRoundTrip(t *testing.T) {
	p := G1Generator().ScalarMul(big.NewInt(7))
	enc := EncodeG1Uncompressed(p)
	dec, err := DecodeG1Uncompressed(enc[:])
	if err != nil {
		t.Fatalf("DecodeG1Uncompressed: %v", err)
	}
	if !dec.Equal(p) {
		t.Error("uncompressed round trip changed point")
	}
}

func TestG2CompressedRoundTrip(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 54321} {
		p := G2Generator().ScalarMul(big.NewInt(k))
		enc := EncodeG2(p)
		if len(enc) != g2CompressedLen {
			t.Fatalf("EncodeG2 length = %d, want %d", len(enc), g2CompressedLen)
		}
		dec, err := DecodeG2(enc[:])
		if err != nil {
			t.Fatalf("DecodeG2: %v", err)
		}
		if !dec.Equal(p) {
			t.Errorf("round trip changed point for k=%d", k)
		}
	}
}

func TestG2CompressedInfinity(t *testing.T) {
	enc := EncodeG2(G2Infinity())
	dec, err := DecodeG2(enc[:])
	if err != nil {
		t.Fatalf("DecodeG2(infinity): %v", err)
	}
	if !dec.IsZero() {
		t.Error("decoded infinity encoding should be zero")
	}
}

func TestG2UncompressedRoundTrip(t *testing.T) {
	p := G2Generator().ScalarMul(big.NewInt(9))
	enc := EncodeG2Uncompressed(p)
	dec, err := DecodeG2Uncompressed(enc[:])
	if err != nil {
		t.Fatalf("DecodeG2Uncompressed: %v", err)
	}
	if !dec.Equal(p) {
		t.Error("uncompressed round trip changed point")
	}
}

func TestG2DecodeInvalidLength(t *testing.T) {
	if _, err := DecodeG2(make([]byte, 10)); err != ErrInvalidLength {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

func TestG1DecodeRejectsNonSubgroupPoint(t *testing.T) {
	p := findNonSubgroupG1Point(t)
	enc := EncodeG1(p)
	if _, err := DecodeG1(enc[:]); err != ErrNotInSubgroup {
		t.Errorf("DecodeG1 on a non-subgroup point = %v, want ErrNotInSubgroup", err)
	}
}

func TestG2DecodeRejectsNonSubgroupPoint(t *testing.T) {
	p := findNonSubgroupG2Point(t)
	enc := EncodeG2(p)
	if _, err := DecodeG2(enc[:]); err != ErrNotInSubgroup {
		t.Errorf("DecodeG2 on a non-subgroup point = %v, want ErrNotInSubgroup", err)
	}
}

func TestDecodeRejectsTamperedByte(t *testing.T) {
	p := G1Generator().ScalarMul(big.NewInt(42))
	enc := EncodeG1(p)
	enc[47] ^= 0xff
	if dec, err := DecodeG1(enc[:]); err == nil && dec.Equal(p) {
		t.Error("tampered encoding should not decode back to the original point")
	}
}
