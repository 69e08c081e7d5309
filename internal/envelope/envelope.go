// Package envelope implements the ElGamal-style encapsulation of a
// signing key k under the CA consortium's public key (C5), grounded in
// the original wallet/bekd_crypto.py::build_envelope.
package envelope

import (
	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/domainhash"
)

// Envelope is (R0, R1, M, ρ) as defined in spec §3. R0 = r·G,
// M = r·pk_CA, R1 = M + k·G, ρ = keccak256(ser(R0)).
//
// Crucially, M = sk_CA·R0 too (since pk_CA = sk_CA·G), which is what
// lets any quorum of CA shares reconstruct M (C7) without ever
// reconstructing sk_CA.
type Envelope struct {
	R0, R1 *curve.Point
	M      *curve.Point
	Rho    [32]byte
}

// Build constructs the envelope for a fresh (k, r) pair under pkCA.
func Build(pkCA *curve.Point, k, r *curve.Scalar) *Envelope {
	r0 := r.ActOnBase()
	m := r.Act(pkCA)
	r1 := m.Add(k.ActOnBase())
	return &Envelope{
		R0:  r0,
		R1:  r1,
		M:   m,
		Rho: domainhash.TokenID(r0),
	}
}
