// Package casig implements the consortium's signature over the
// envelope commitment m = H2(R0, R1, hA) (§4.6/§4.8), grounded in the
// original ca_consortium/threshold_crypto.py's sign_message_with_master
// and verify_signature, which sign the 32-byte message scalar directly
// with secp256k1 ECDSA. It uses the ecdsa companion package to the
// secp256k1 library C1 already depends on.
package casig

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/luxfi/bekd/internal/curve"
)

// Sign produces a DER-encoded ECDSA signature of m under sk, matching
// the §3 TCA.sigma field.
func Sign(sk *curve.Scalar, m *curve.Scalar) []byte {
	priv := toPrivateKey(sk)
	digest := m.Bytes()
	sig := ecdsa.Sign(priv, digest[:])
	return sig.Serialize()
}

// Verify checks sigma against the consortium public key pk and message m.
func Verify(pk *curve.Point, m *curve.Scalar, sigma []byte) bool {
	pub, err := toPublicKey(pk)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(sigma)
	if err != nil {
		return false
	}
	digest := m.Bytes()
	return sig.Verify(digest[:], pub)
}

func toPrivateKey(sk *curve.Scalar) *secp256k1.PrivateKey {
	b := sk.Bytes()
	return secp256k1.PrivKeyFromBytes(b[:])
}

func toPublicKey(pk *curve.Point) (*secp256k1.PublicKey, error) {
	if pk.IsIdentity() {
		return nil, fmt.Errorf("casig: public key is the identity point")
	}
	ser := pk.Serialize()
	var sec [33]byte
	// Build a compressed SEC1 encoding from the raw X||Y form so we can
	// reuse secp256k1.ParsePubKey rather than hand-roll field parity math.
	_, y := pk.Coords()
	if y.Bit(0) == 0 {
		sec[0] = 0x02
	} else {
		sec[0] = 0x03
	}
	copy(sec[1:], ser[:32])
	return secp256k1.ParsePubKey(sec[:])
}
