// Package enroll implements the enrollment engine (C6): binding a fresh
// signing key k to a biometric template W under the CA consortium's
// public key, producing the public Token artifact (§4.6). It is
// grounded in the original wallet/wallet_client.py::BEKDWallet.enroll.
package enroll

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/luxfi/bekd/internal/casig"
	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/domainhash"
	"github.com/luxfi/bekd/internal/envelope"
	"github.com/luxfi/bekd/internal/params"
	"github.com/luxfi/bekd/internal/shamir"
	"github.com/luxfi/bekd/internal/token"
)

// ErrSelfVerifyFailed is returned if the freshly produced signature does
// not verify under the consortium's own public key — a protocol
// invariant violation that must never happen and is never expected to
// be handled by a caller; it guards against a broken signing path
// silently shipping an unusable token.
var ErrSelfVerifyFailed = fmt.Errorf("enroll: consortium signature failed self-verification")

// Result bundles the generated token together with the signing key it
// encapsulates, since real callers need k immediately after enrollment
// (e.g. to fund the wallet the token secures) even though the token
// itself never carries k in the clear.
type Result struct {
	Token *token.Token
	K     *curve.Scalar
}

// Enroll binds a fresh signing key to biometric under the consortium
// public key pkCA, producing a Token. rnd is the randomness source for
// k, r, c, and the Shamir sketch polynomial; a nil rnd uses crypto/rand.
//
// masterSecret is the CA consortium's combined signing key. In this
// single-process simulation the dealer already holds it; a real
// deployment would replace this single Sign call with a threshold
// signing round across CA nodes (C4/C7), which enroll does not model.
func Enroll(p params.Params, pkCA *curve.Point, masterSecret *curve.Scalar, biometric []float64, rnd io.Reader) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(biometric) != p.D {
		return nil, fmt.Errorf("enroll: biometric has %d features, want %d", len(biometric), p.D)
	}
	if rnd == nil {
		rnd = rand.Reader
	}

	k, err := curve.RandomScalar(rnd)
	if err != nil {
		return nil, fmt.Errorf("enroll: drawing k: %w", err)
	}
	r, err := curve.RandomScalar(rnd)
	if err != nil {
		return nil, fmt.Errorf("enroll: drawing r: %w", err)
	}
	var c [32]byte
	if _, err := io.ReadFull(rnd, c[:]); err != nil {
		return nil, fmt.Errorf("enroll: drawing c: %w", err)
	}

	env := envelope.Build(pkCA, k, r)

	poly, err := shamir.NewPolynomial(p.TBio-1, k, rnd)
	if err != nil {
		return nil, fmt.Errorf("enroll: sampling sketch polynomial: %w", err)
	}

	a := make([]*curve.Scalar, p.D)
	tags := make([][]byte, p.D)
	for idx := 0; idx < p.D; idx++ {
		i := idx + 1
		wi := domainhash.H0(biometric[idx], c[:])
		mwi := wi.Act(env.M)
		zi := domainhash.H1(env.M, mwi)

		ai := poly.Evaluate(curve.ScalarFromUint64(uint64(i))).Add(zi)
		a[idx] = ai
		tags[idx] = domainhash.Htag(i, env.Rho, zi, p.LambdaBytes)
	}

	hA := domainhash.H3(sketchBlob(a, tags))
	m := domainhash.H2(env.R0, env.R1, hA)
	sigma := casig.Sign(masterSecret, m)
	if !casig.Verify(pkCA, m, sigma) {
		return nil, ErrSelfVerifyFailed
	}

	tok := &token.Token{
		TU: token.TU{C: c, Rho: env.Rho},
		TCA: token.TCA{
			R0:    env.R0,
			R1:    env.R1,
			HA:    hA,
			Sigma: sigma,
			A:     a,
			Tags:  tags,
		},
	}
	return &Result{Token: tok, K: k}, nil
}

// sketchBlob reproduces the original's concatenation order: all of A's
// 32-byte encodings, then all of tags' raw bytes, in ascending feature
// index.
func sketchBlob(a []*curve.Scalar, tags [][]byte) []byte {
	out := make([]byte, 0, len(a)*32+len(tags)*32)
	for _, ai := range a {
		b := ai.Bytes()
		out = append(out, b[:]...)
	}
	for _, tg := range tags {
		out = append(out, tg...)
	}
	return out
}
