// Package params holds the protocol-wide configuration shared by
// enrollment and retrieval (§2's ProtocolParams), grounded in the
// original wallet/wallet_client.py's ProtocolParams dataclass.
package params

import "fmt"

// Params fixes the biometric dimensionality, the fuzzy-match threshold,
// and the tag truncation length for one deployment of the protocol.
type Params struct {
	// D is the number of biometric features (d in the math).
	D int
	// TBio is the minimum number of matching features required to
	// recover k (t_bio in the math); also the Shamir sketch degree+1.
	TBio int
	// LambdaBytes truncates Htag's output; 32 means no truncation.
	LambdaBytes int
}

// Validate checks the parameters are internally consistent.
func (p Params) Validate() error {
	if p.D <= 0 {
		return fmt.Errorf("params: d must be positive, got %d", p.D)
	}
	if p.TBio <= 0 || p.TBio > p.D {
		return fmt.Errorf("params: tbio must be in [1, d], got %d (d=%d)", p.TBio, p.D)
	}
	if p.LambdaBytes <= 0 || p.LambdaBytes > 32 {
		return fmt.Errorf("params: lambda_bytes must be in [1, 32], got %d", p.LambdaBytes)
	}
	return nil
}

// Default returns the parameters used by the offchain benchmark and the
// example scenarios in spec §8: d=128, tbio=4, lambda_bytes=32.
func Default() Params {
	return Params{D: 128, TBio: 4, LambdaBytes: 32}
}
