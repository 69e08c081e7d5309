// Package token defines the BEKD Token type (§3) and its JSON wire
// format (§6), grounded in the teacher's base64-JSON shadow-struct
// marshaling pattern (protocols/lss/config/marshal.go) adapted to the
// spec's own field types: hex for fixed-width byte strings, decimal
// strings for arbitrary-precision numeric fields (the spec is explicit
// that these "must not truncate to 64 bits").
package token

import (
	"github.com/luxfi/bekd/internal/curve"
)

// TU is the user-held part of a token: the per-enrollment salt and the
// envelope's public identifier.
type TU struct {
	C   [32]byte
	Rho [32]byte
}

// TCA is the CA-relayable part of a token: the envelope's public points,
// the sketch, and the consortium's signature over them.
type TCA struct {
	R0, R1 *curve.Point
	HA     *curve.Scalar
	Sigma  []byte // DER-encoded ECDSA signature

	// A and Tags are parallel arrays of length d, ascending by feature
	// index i (1-indexed in the math, 0-indexed here).
	A    []*curve.Scalar
	Tags [][]byte
}

// Token is the full enrollment artifact (§3). biometric is deliberately
// absent from this type: per spec, storing the clear biometric
// alongside the token is a test-harness-only convenience, never part of
// the production protocol. Tests that need it carry it out of band.
type Token struct {
	TU  TU
	TCA TCA
}
