// Package retrieve implements the retrieval engine (C8): recovering the
// signing key k from a token and a noisy biometric reading, given a
// quorum of CA shares. Grounded in the original
// wallet/wallet_client.py::BEKDWallet.retrieve.
package retrieve

import (
	"errors"
	"fmt"

	"github.com/luxfi/bekd/internal/casig"
	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/dealer"
	"github.com/luxfi/bekd/internal/domainhash"
	"github.com/luxfi/bekd/internal/params"
	"github.com/luxfi/bekd/internal/quorum"
	"github.com/luxfi/bekd/internal/shamir"
	"github.com/luxfi/bekd/internal/spentset"
	"github.com/luxfi/bekd/internal/token"
)

// Errors returned by Retrieve. Callers should treat all of them as plain
// "retrieval failed" outcomes; none of them are meant to be recovered
// from within the protocol.
var (
	ErrBadSignature        = errors.New("retrieve: token signature does not verify under the consortium public key")
	ErrReplay              = errors.New("retrieve: envelope has already been retrieved")
	ErrInsufficientMatches = errors.New("retrieve: fewer than tbio biometric features matched")
	ErrRecoveryCheck       = errors.New("retrieve: recovered key does not decapsulate the envelope")
)

// Retrieve attempts to recover k given tok, a noisy biometric reading,
// a quorum of CA shares (at least len(dkgShares) >= need), and the
// per-CA-node replay guard local. The consortium's public key pkCA is
// required to verify tok's signature before any other work is done.
//
// Per spec §9's documented tie-break for the anti-probing property: ρ is
// marked as spent in local immediately after the signature check
// succeeds, before the final recovery check — so a single retrieval
// attempt consumes the token's single use even if the supplied
// biometric ultimately fails to recover k. This is intentional: it
// prevents an attacker from probing the same envelope repeatedly with
// different biometric guesses.
func Retrieve(p params.Params, pkCA *curve.Point, tok *token.Token, noisyBiometric []float64, dkgShares []dealer.CAShare, need int, local spentset.Set) (*curve.Scalar, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(noisyBiometric) != p.D {
		return nil, fmt.Errorf("retrieve: biometric has %d features, want %d", len(noisyBiometric), p.D)
	}

	m := domainhash.H2(tok.TCA.R0, tok.TCA.R1, tok.TCA.HA)
	if !casig.Verify(pkCA, m, tok.TCA.Sigma) {
		return nil, ErrBadSignature
	}

	if !local.TryMark(tok.TU.Rho) {
		return nil, ErrReplay
	}

	mPoint, err := quorum.Combine(tok.TCA.R0, dkgShares, need)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}
	kDec := tok.TCA.R1.Add(mPoint.Negate())

	type match struct {
		index int
		zi    *curve.Scalar
	}
	matches := make([]match, 0, p.TBio)
	for idx := 0; idx < p.D; idx++ {
		i := idx + 1
		wp := domainhash.H0(noisyBiometric[idx], tok.TU.C[:])
		mwp := wp.Act(mPoint)
		zi := domainhash.H1(mPoint, mwp)
		if string(domainhash.Htag(i, tok.TU.Rho, zi, p.LambdaBytes)) == string(tok.TCA.Tags[idx]) {
			matches = append(matches, match{index: i, zi: zi})
		}
	}
	if len(matches) < p.TBio {
		return nil, ErrInsufficientMatches
	}

	selected := matches[:p.TBio]
	points := make([]shamir.Point, len(selected))
	for i, mt := range selected {
		value := tok.TCA.A[mt.index-1].Clone().Sub(mt.zi)
		points[i] = shamir.Point{Index: mt.index, Value: value}
	}
	k := shamir.InterpolateZero(points)

	if !k.ActOnBase().Equal(kDec) {
		return nil, ErrRecoveryCheck
	}
	return k, nil
}
