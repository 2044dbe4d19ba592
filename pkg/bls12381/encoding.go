package bls12381

import "math/big"

// Compressed/uncompressed encoding per §4.3: the three high bits of the
// first byte are flags.
//   - C (bit 7): set for the compressed form.
//   - I (bit 6): set for the point at infinity; when set, every remaining
//     bit of the encoding must be zero.
//   - S (bit 5): for compressed non-infinity points, the sign of y: set
//     when y is the numerically greater of its two square roots (y >
//     p-y), matching this lineage's historical output convention.
const (
	flagCompressed = 0x80
	flagInfinity   = 0x40
	flagSign       = 0x20
	flagMask       = 0xe0
)

const (
	g1CompressedLen   = 48
	g1UncompressedLen = 96
	g2CompressedLen   = 96
	g2UncompressedLen = 192
)

func ySign(y *big.Int) bool {
	neg := new(big.Int).Sub(P, y)
	return y.Cmp(neg) > 0
}

func fp2YSign(y *Fp2) bool {
	if y.C1.Sign() != 0 {
		neg := new(big.Int).Sub(P, y.C1)
		return y.C1.Cmp(neg) > 0
	}
	neg := new(big.Int).Sub(P, y.C0)
	return y.C0.Cmp(neg) > 0
}

// EncodeG1 returns the 48-byte compressed encoding of p.
func EncodeG1(p *PointG1) [48]byte {
	var out [48]byte
	if p.IsZero() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y := p.ToAffine()
	b := x.Bytes()
	copy(out[48-len(b):], b)
	out[0] |= flagCompressed
	if ySign(y) {
		out[0] |= flagSign
	}
	return out
}

// DecodeG1 parses a 48-byte compressed G1 encoding, validating flag
// consistency, coordinate range, curve membership, and subgroup
// membership.
func DecodeG1(data []byte) (*PointG1, error) {
	return decodeG1(data, true)
}

// DecodeG1WithSubgroupCheck is DecodeG1 with subgroup validation made
// optional: callers who have already established subgroup membership
// elsewhere can pass false to skip the extra scalar multiplication this
// check costs. Passing true is equivalent to DecodeG1.
func DecodeG1WithSubgroupCheck(data []byte, subgroupCheck bool) (*PointG1, error) {
	return decodeG1(data, subgroupCheck)
}

func decodeG1(data []byte, subgroupCheck bool) (*PointG1, error) {
	if len(data) != g1CompressedLen {
		return nil, ErrInvalidLength
	}
	flags := data[0] & flagMask
	if flags&flagCompressed == 0 {
		return nil, ErrInvalidEncoding
	}
	infinity := flags&flagInfinity != 0
	sign := flags&flagSign != 0

	buf := make([]byte, g1CompressedLen)
	copy(buf, data)
	buf[0] &^= flagMask

	if infinity {
		if sign {
			return nil, ErrInvalidEncoding
		}
		for _, b := range buf {
			if b != 0 {
				return nil, ErrInvalidEncoding
			}
		}
		return G1Infinity(), nil
	}

	x := new(big.Int).SetBytes(buf)
	if !fpInRange(x) {
		return nil, ErrInvalidEncoding
	}

	rhs := fpAdd(fpMul(fpSqr(x), x), g1B)
	y := fpSqrt(rhs)
	if y == nil {
		return nil, ErrNotOnCurve
	}
	if ySign(y) != sign {
		y = fpNeg(y)
	}

	p := g1FromAffine(x, y)
	if subgroupCheck && !p.InSubgroup() {
		return nil, ErrNotInSubgroup
	}
	return p, nil
}

// EncodeG1Uncompressed returns the 96-byte uncompressed x‖y encoding of p.
func EncodeG1Uncompressed(p *PointG1) [96]byte {
	var out [96]byte
	if p.IsZero() {
		out[0] = flagInfinity
		return out
	}
	x, y := p.ToAffine()
	xb, yb := x.Bytes(), y.Bytes()
	copy(out[48-len(xb):48], xb)
	copy(out[96-len(yb):], yb)
	return out
}

// DecodeG1Uncompressed parses a 96-byte uncompressed encoding.
func DecodeG1Uncompressed(data []byte) (*PointG1, error) {
	if len(data) != g1UncompressedLen {
		return nil, ErrInvalidLength
	}
	flags := data[0] & flagMask
	if flags&flagCompressed != 0 {
		return nil, ErrInvalidEncoding
	}
	infinity := flags&flagInfinity != 0

	buf := make([]byte, g1UncompressedLen)
	copy(buf, data)
	buf[0] &^= flagMask

	if infinity {
		for _, b := range buf {
			if b != 0 {
				return nil, ErrInvalidEncoding
			}
		}
		return G1Infinity(), nil
	}

	x := new(big.Int).SetBytes(buf[:48])
	y := new(big.Int).SetBytes(buf[48:])
	if !fpInRange(x) || !fpInRange(y) {
		return nil, ErrInvalidEncoding
	}
	if !g1IsOnCurveAffine(x, y) {
		return nil, ErrNotOnCurve
	}
	p := g1FromAffine(x, y)
	if !p.InSubgroup() {
		return nil, ErrNotInSubgroup
	}
	return p, nil
}

// EncodeG2 returns the 96-byte compressed encoding of p (x.c1‖x.c0, flags
// on the first byte of x.c1).
func EncodeG2(p *PointG2) [96]byte {
	var out [96]byte
	if p.IsZero() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y := p.ToAffine()
	c1b, c0b := x.C1.Bytes(), x.C0.Bytes()
	copy(out[48-len(c1b):48], c1b)
	copy(out[96-len(c0b):], c0b)
	out[0] |= flagCompressed
	if fp2YSign(y) {
		out[0] |= flagSign
	}
	return out
}

// DecodeG2 parses a 96-byte compressed G2 encoding.
func DecodeG2(data []byte) (*PointG2, error) {
	return decodeG2(data, true)
}

// DecodeG2WithSubgroupCheck is DecodeG2 with subgroup validation made
// optional. Passing true is equivalent to DecodeG2.
func DecodeG2WithSubgroupCheck(data []byte, subgroupCheck bool) (*PointG2, error) {
	return decodeG2(data, subgroupCheck)
}

func decodeG2(data []byte, subgroupCheck bool) (*PointG2, error) {
	if len(data) != g2CompressedLen {
		return nil, ErrInvalidLength
	}
	flags := data[0] & flagMask
	if flags&flagCompressed == 0 {
		return nil, ErrInvalidEncoding
	}
	infinity := flags&flagInfinity != 0
	sign := flags&flagSign != 0

	buf := make([]byte, g2CompressedLen)
	copy(buf, data)
	buf[0] &^= flagMask

	if infinity {
		if sign {
			return nil, ErrInvalidEncoding
		}
		for _, b := range buf {
			if b != 0 {
				return nil, ErrInvalidEncoding
			}
		}
		return G2Infinity(), nil
	}

	c1 := new(big.Int).SetBytes(buf[:48])
	c0 := new(big.Int).SetBytes(buf[48:])
	if !fpInRange(c0) || !fpInRange(c1) {
		return nil, ErrInvalidEncoding
	}
	x := &Fp2{C0: c0, C1: c1}

	rhs := fp2Add(fp2Mul(fp2Sqr(x), x), g2B)
	y := fp2Sqrt(rhs)
	if y == nil {
		return nil, ErrNotOnCurve
	}
	if fp2YSign(y) != sign {
		y = fp2Neg(y)
	}

	p := g2FromAffine(x, y)
	if subgroupCheck && !p.InSubgroup() {
		return nil, ErrNotInSubgroup
	}
	return p, nil
}

// EncodeG2Uncompressed returns the 192-byte uncompressed encoding of p
// (x.c1‖x.c0‖y.c1‖y.c0).
func EncodeG2Uncompressed(p *PointG2) [192]byte {
	var out [192]byte
	if p.IsZero() {
		out[0] = flagInfinity
		return out
	}
	x, y := p.ToAffine()
	xc1, xc0 := x.C1.Bytes(), x.C0.Bytes()
	yc1, yc0 := y.C1.Bytes(), y.C0.Bytes()
	copy(out[48-len(xc1):48], xc1)
	copy(out[96-len(xc0):96], xc0)
	copy(out[144-len(yc1):144], yc1)
	copy(out[192-len(yc0):], yc0)
	return out
}

// DecodeG2Uncompressed parses a 192-byte uncompressed encoding.
func DecodeG2Uncompressed(data []byte) (*PointG2, error) {
	if len(data) != g2UncompressedLen {
		return nil, ErrInvalidLength
	}
	flags := data[0] & flagMask
	if flags&flagCompressed != 0 {
		return nil, ErrInvalidEncoding
	}
	infinity := flags&flagInfinity != 0

	buf := make([]byte, g2UncompressedLen)
	copy(buf, data)
	buf[0] &^= flagMask

	if infinity {
		for _, b := range buf {
			if b != 0 {
				return nil, ErrInvalidEncoding
			}
		}
		return G2Infinity(), nil
	}

	xc1 := new(big.Int).SetBytes(buf[:48])
	xc0 := new(big.Int).SetBytes(buf[48:96])
	yc1 := new(big.Int).SetBytes(buf[96:144])
	yc0 := new(big.Int).SetBytes(buf[144:])
	if !fpInRange(xc0) || !fpInRange(xc1) || !fpInRange(yc0) || !fpInRange(yc1) {
		return nil, ErrInvalidEncoding
	}
	x := &Fp2{C0: xc0, C1: xc1}
	y := &Fp2{C0: yc0, C1: yc1}
	if !g2IsOnCurveAffine(x, y) {
		return nil, ErrNotOnCurve
	}
	p := g2FromAffine(x, y)
	if !p.InSubgroup() {
		return nil, ErrNotInSubgroup
	}
	return p, nil
}
