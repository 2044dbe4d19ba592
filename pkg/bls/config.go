package bls

import (
	"github.com/pkg/errors"

	"github.com/qingche123/noble-bls12-381/internal/bslog"
	"github.com/qingche123/noble-bls12-381/pkg/bls12381"
)

// Config holds the knobs that affect signing/verification behavior
// without changing the public function signatures in §6. Values are
// immutable after construction: build one with DefaultConfig, mutate the
// copy, call Validate, then pass it to the *WithConfig variants.
type Config struct {
	// HashScheme selects the hash-to-field expansion backend used by
	// hash-to-curve.
	HashScheme bls12381.HashScheme
	// SubgroupCheck, when true (the default), makes the *WithConfig
	// verifiers and BatchVerifier validate subgroup membership of decoded
	// points. Turning it off skips that check entirely; it is an explicit
	// opt-out for callers who pre-validate elsewhere.
	SubgroupCheck bool
	// Logger receives DEBUG-level diagnostics on decode/subgroup
	// failures and rejected points at infinity. Defaults to a no-op
	// logger: this module never logs on the successful verification hot
	// path.
	Logger *bslog.Logger
}

// DefaultConfig returns the default configuration: XMD-SHA256 hashing,
// subgroup checks on, no-op logging.
func DefaultConfig() Config {
	return Config{
		HashScheme:    bls12381.HashSchemeXMDSHA256,
		SubgroupCheck: true,
		Logger:        bslog.NoOp(),
	}
}

// Validate reports whether c is well-formed.
func (c Config) Validate() error {
	switch c.HashScheme {
	case bls12381.HashSchemeXMDSHA256, bls12381.HashSchemeXOFShake256:
	default:
		return errors.New("bls: unknown hash scheme")
	}
	return nil
}

func (c Config) logger() *bslog.Logger {
	if c.Logger == nil {
		return bslog.NoOp()
	}
	return c.Logger
}
