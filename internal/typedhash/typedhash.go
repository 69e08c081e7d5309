// Package typedhash implements the EIP-712-style domain-separated
// digest signed during authentication (C9), grounded in the original
// wallet/eth_signer.py::eip712_typed_hash.
package typedhash

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

const domainName = "BiometricWallet"
const domainVersion = "1"

func keccak256(chunks ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

// Digest computes the EIP-712-style typed hash binding an envelope's ρ
// and a user operation hash to a chain ID and wallet address, so a
// recovered signature cannot be replayed against a different chain or
// wallet.
func Digest(rho [32]byte, userOpHash [32]byte, chainID uint64, walletAddress []byte) [32]byte {
	var chainIDBytes [32]byte
	big.NewInt(0).SetUint64(chainID).FillBytes(chainIDBytes[:])

	domain := keccak256([]byte(domainName), []byte(domainVersion), chainIDBytes[:], walletAddress)
	structHash := keccak256(rho[:], userOpHash[:])
	digest := keccak256([]byte{0x19, 0x01}, domain, structHash)

	var out [32]byte
	copy(out[:], digest)
	return out
}
