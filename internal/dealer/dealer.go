// Package dealer implements the simulated trusted-dealer DKG (C4).
//
// A real deployment would replace this with a distributed key generation
// protocol between the CA nodes (spec §1 Non-goals: "No real distributed
// key generation (a trusted dealer simulates DKG)"); this mirrors the
// teacher's BootstrapDealer shape (protocols/lss/dealer/dealer.go) and
// the original ca_consortium/threshold_crypto.py::run_simulated_dkg,
// collapsed into a single one-shot function since there is no multi-round
// handshake to simulate.
package dealer

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/shamir"
)

// CAShare is one CA node's share of the master secret sk_CA, encoding a
// point on a degree-t polynomial with constant term sk_CA (§3).
type CAShare struct {
	Index int
	Share *curve.Scalar
}

// Result is the output of a simulated DKG run: the master secret (held
// only transiently by the dealer, never by a CA node), the consortium's
// public key, and one share per node.
type Result struct {
	MasterSecret *curve.Scalar
	PublicKey    *curve.Point
	Shares       []CAShare
}

// Run simulates an (t+1)-of-n DKG: a trusted dealer samples sk_CA and a
// degree-t polynomial with sk_CA as its constant term, then evaluates it
// at 1..n to produce each node's share. n must be >= t+1.
func Run(n, t int, rnd io.Reader) (*Result, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	if n < 1 {
		return nil, fmt.Errorf("dealer: n must be positive, got %d", n)
	}
	if t < 0 || t+1 > n {
		return nil, fmt.Errorf("dealer: threshold t=%d exceeds %d parties", t, n)
	}

	masterSecret, err := curve.RandomScalar(rnd)
	if err != nil {
		return nil, fmt.Errorf("dealer: sampling master secret: %w", err)
	}

	poly, err := shamir.NewPolynomial(t, masterSecret, rnd)
	if err != nil {
		return nil, fmt.Errorf("dealer: sampling polynomial: %w", err)
	}

	shares := make([]CAShare, n)
	for i := 1; i <= n; i++ {
		shares[i-1] = CAShare{
			Index: i,
			Share: poly.Evaluate(curve.ScalarFromUint64(uint64(i))),
		}
	}

	return &Result{
		MasterSecret: masterSecret,
		PublicKey:    masterSecret.ActOnBase(),
		Shares:       shares,
	}, nil
}
