package bls

import "sync"

// Backend abstracts BLS12-381 signature verification so the pure-Go
// implementation in this package can be swapped for a different one at
// runtime, mirroring the teacher's BLSBackend/PureGoBLSBackend split.
type Backend interface {
	// Verify checks a single signature.
	Verify(pubkey, msg, sig []byte) bool
	// AggregateVerify checks an aggregate signature where each signer
	// signed a distinct message, rejecting duplicate messages.
	AggregateVerify(pubkeys [][]byte, msgs [][]byte, sig []byte) bool
	// FastAggregateVerify checks an aggregate signature where every
	// signer signed the same message.
	FastAggregateVerify(pubkeys [][]byte, msg, sig []byte) bool
	// Name identifies the backend.
	Name() string
}

var (
	activeBackendMu sync.RWMutex
	activeBackend   Backend = &PureGoBackend{}
)

// DefaultBackend returns the currently active Backend.
func DefaultBackend() Backend {
	activeBackendMu.RLock()
	defer activeBackendMu.RUnlock()
	return activeBackend
}

// SetBackend sets the active Backend. Passing nil resets to PureGoBackend.
func SetBackend(b Backend) {
	activeBackendMu.Lock()
	defer activeBackendMu.Unlock()
	if b == nil {
		b = &PureGoBackend{}
	}
	activeBackend = b
}

// PureGoBackend implements Backend using this package's own
// Verify/VerifyMultiple/FastAggregateVerify, all pure Go.
type PureGoBackend struct {
	// Domain is the domain tag used for every operation routed through
	// this backend, since the Backend interface (matching the teacher's
	// shape) doesn't carry one per call.
	Domain uint64
}

// Name returns "pure-go".
func (b *PureGoBackend) Name() string { return "pure-go" }

// Verify implements Backend.
func (b *PureGoBackend) Verify(pubkey, msg, sig []byte) bool {
	pk, sg, ok := asFixed(pubkey, sig)
	if !ok {
		return false
	}
	ok2, err := Verify(msg, pk, sg, b.Domain)
	return err == nil && ok2
}

// AggregateVerify implements Backend.
func (b *PureGoBackend) AggregateVerify(pubkeys [][]byte, msgs [][]byte, sig []byte) bool {
	if len(sig) != 96 {
		return false
	}
	var s [96]byte
	copy(s[:], sig)

	pks := make([][48]byte, len(pubkeys))
	for i, pk := range pubkeys {
		if len(pk) != 48 {
			return false
		}
		copy(pks[i][:], pk)
	}
	ok, err := VerifyMultiple(msgs, pks, s, b.Domain)
	return err == nil && ok
}

// FastAggregateVerify implements Backend.
func (b *PureGoBackend) FastAggregateVerify(pubkeys [][]byte, msg, sig []byte) bool {
	if len(sig) != 96 {
		return false
	}
	var s [96]byte
	copy(s[:], sig)

	pks := make([][48]byte, len(pubkeys))
	for i, pk := range pubkeys {
		if len(pk) != 48 {
			return false
		}
		copy(pks[i][:], pk)
	}
	ok, err := FastAggregateVerify(msg, pks, s, b.Domain)
	return err == nil && ok
}

func asFixed(pubkey, sig []byte) (pk [48]byte, sg [96]byte, ok bool) {
	if len(pubkey) != 48 || len(sig) != 96 {
		return pk, sg, false
	}
	copy(pk[:], pubkey)
	copy(sg[:], sig)
	return pk, sg, true
}

// BlstBackend documents the adapter a production deployment would wire
// to github.com/supranational/blst's CGO bindings (P1Affine/P2Affine
// Uncompress + Verify/AggregateVerify/FastAggregateVerify), matching the
// teacher's own documented-but-unimported BlstBLSBackend. It is not
// imported here: see DESIGN.md's "Dropped/unwired teacher dependencies".
type BlstBackend struct{}

// Name returns "blst".
func (b *BlstBackend) Name() string { return "blst" }

// Verify always returns false: this is a placeholder, not a real adapter.
func (b *BlstBackend) Verify(pubkey, msg, sig []byte) bool { return false }

// AggregateVerify always returns false: this is a placeholder.
func (b *BlstBackend) AggregateVerify(pubkeys [][]byte, msgs [][]byte, sig []byte) bool {
	return false
}

// FastAggregateVerify always returns false: this is a placeholder.
func (b *BlstBackend) FastAggregateVerify(pubkeys [][]byte, msg, sig []byte) bool { return false }
