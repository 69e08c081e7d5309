// Package auth implements the authentication ceremony (C9): proving
// possession of a recovered signing key k by producing a recoverable
// signature over a typed digest, and spending the envelope's ρ exactly
// once. Grounded in the original wallet/wallet_client.py::authenticate
// and wallet/eth_signer.py's sign_hash/recover_signer.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/spentset"
	"github.com/luxfi/bekd/internal/typedhash"
)

// Authenticate proves possession of k over the typed digest derived
// from rho, userOpHash, chainID, and walletAddress, then spends rho in
// spent exactly once. It returns (true, nil) only when the recovered
// signer matches the address derived from k and the spend succeeds;
// any other outcome is (false, nil) — a failed authentication is not an
// error, matching the original's boolean return.
func Authenticate(k *curve.Scalar, rho [32]byte, userOpHash [32]byte, chainID uint64, walletAddress []byte, spent spentset.Set) (bool, error) {
	ownerAddr, err := addressFromScalar(k)
	if err != nil {
		return false, fmt.Errorf("auth: deriving owner address: %w", err)
	}

	digest := typedhash.Digest(rho, userOpHash, chainID, walletAddress)

	priv := secp256k1.PrivKeyFromBytes(scalarBytes(k))
	compactSig := ecdsa.SignCompact(priv, digest[:], false)

	recoveredPub, _, err := ecdsa.RecoverCompact(compactSig, digest[:])
	if err != nil {
		return false, nil
	}
	recoveredAddr := addressFromPubKey(recoveredPub)

	if subtle.ConstantTimeCompare(recoveredAddr[:], ownerAddr[:]) != 1 {
		return false, nil
	}
	return spent.TryMark(rho), nil
}

func scalarBytes(s *curve.Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

func addressFromScalar(k *curve.Scalar) ([20]byte, error) {
	pub := k.ActOnBase()
	if pub.IsIdentity() {
		return [20]byte{}, fmt.Errorf("auth: scalar maps to the identity point")
	}
	x, y := pub.Coords()
	var xb, yb [32]byte
	xBytes := x.Bytes()
	yBytes := y.Bytes()
	copy(xb[32-len(xBytes):], xBytes)
	copy(yb[32-len(yBytes):], yBytes)

	h := sha3.NewLegacyKeccak256()
	h.Write(xb[:])
	h.Write(yb[:])
	digest := h.Sum(nil)

	var addr [20]byte
	copy(addr[:], digest[12:])
	return addr, nil
}

func addressFromPubKey(pub *secp256k1.PublicKey) [20]byte {
	uncompressed := pub.SerializeUncompressed() // 0x04 || X || Y
	h := sha3.NewLegacyKeccak256()
	h.Write(uncompressed[1:])
	digest := h.Sum(nil)

	var addr [20]byte
	copy(addr[:], digest[12:])
	return addr
}
