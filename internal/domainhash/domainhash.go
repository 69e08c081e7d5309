// Package domainhash implements the domain-separated hashes H0..H3 and
// Htag (C2). All hashes are keccak-256 with a one-byte domain tag
// prefixed to the preimage, grounded in the original implementation's
// use of Crypto.Hash.keccak (Python) — here via the real Keccak-256
// (not NIST SHA3) construction in golang.org/x/crypto/sha3.
package domainhash

import (
	"golang.org/x/crypto/sha3"

	"github.com/luxfi/bekd/internal/curve"
)

const (
	domainH0   byte = 0x00
	domainH1   byte = 0x01
	domainH2   byte = 0x02
	domainH3   byte = 0x03
	domainHtag byte = 0x04
)

func keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

func serialize32(x uint64) []byte {
	b := curve.ScalarFromUint64(x).Bytes()
	return b[:]
}

// H0 hashes one biometric feature's canonical decimal encoding together
// with the per-enrollment salt c, producing the feature-hash w_i.
//
// encode(W_i) is the feature's textual decimal representation, per
// spec §4.2: "%.8f" fixed-point formatting, matching the original
// Python's repr(float(Wi)) closely enough to round-trip equality for
// values drawn from the biometric simulator, while being a single
// explicit, documented format rather than language-native repr (spec
// §9 flags this encoding as brittle and recommends a canonical one).
func H0(wi float64, c []byte) *curve.Scalar {
	digest := keccak256([]byte{domainH0}, []byte(EncodeFeature(wi)), c)
	return curve.ScalarFromBytes(digest)
}

// EncodeFeature renders a biometric feature as its canonical decimal
// text, used both by H0 and by anything that needs to reproduce the
// exact preimage H0 hashes over.
func EncodeFeature(w float64) string {
	return formatFloat(w)
}

// H1 hashes the pair (M, w_i·M) used to derive the per-feature masking
// term Z_i.
func H1(m, mwi *curve.Point) *curve.Scalar {
	mSer := m.Serialize()
	mwiSer := mwi.Serialize()
	digest := keccak256([]byte{domainH1}, mSer[:], mwiSer[:])
	return curve.ScalarFromBytes(digest)
}

// H2 hashes (R0, R1, hA) to derive the message m that the CA
// consortium's threshold signature authenticates.
func H2(r0, r1 *curve.Point, hA *curve.Scalar) *curve.Scalar {
	r0Ser := r0.Serialize()
	r1Ser := r1.Serialize()
	hABytes := hA.Bytes()
	digest := keccak256([]byte{domainH2}, r0Ser[:], r1Ser[:], hABytes[:])
	return curve.ScalarFromBytes(digest)
}

// H3 hashes an arbitrary byte blob; used to bind the sketch (A, tags)
// into hA.
func H3(blob []byte) *curve.Scalar {
	digest := keccak256([]byte{domainH3}, blob)
	return curve.ScalarFromBytes(digest)
}

// Htag computes the tag for feature index i, truncated to lambdaBytes
// (default 32, at which point no truncation actually occurs — spec §9).
func Htag(i int, rho [32]byte, zi *curve.Scalar, lambdaBytes int) []byte {
	ziBytes := zi.Bytes()
	digest := keccak256([]byte{domainHtag}, serialize32(uint64(i)), rho[:], ziBytes[:])
	if lambdaBytes >= len(digest) {
		return digest
	}
	return digest[:lambdaBytes]
}

// TokenID computes ρ = keccak256(ser(R0)), the envelope's unique,
// deterministic token identifier.
func TokenID(r0 *curve.Point) [32]byte {
	r0Ser := r0.Serialize()
	digest := keccak256(r0Ser[:])
	var out [32]byte
	copy(out[:], digest)
	return out
}
