package main

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/luxfi/bekd/internal/auth"
	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/spentset"
	"github.com/luxfi/bekd/internal/tokenstore"
)

// authSpentSet is the protocol-level authoritative spend record (C9),
// distinct from each CA node's own local_used replay guard.
var authSpentSet = spentset.New()

func runAuthenticate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("authenticate requires the recovered signing key k as its argument")
	}
	kBig, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return fmt.Errorf("k must be a decimal integer")
	}
	k := curve.ScalarFromBigInt(kBig)

	tok, err := tokenstore.Load(tokenFile)
	if err != nil {
		return err
	}

	userOpHashHex, _ := cmd.Flags().GetString("user-op-hash")
	var opHash [32]byte
	if userOpHashHex != "" {
		b, err := hex.DecodeString(userOpHashHex)
		if err != nil {
			return fmt.Errorf("decoding user-op-hash: %w", err)
		}
		copy(opHash[:], b)
	}
	chainID, _ := cmd.Flags().GetUint64("chain-id")
	walletAddress, _ := cmd.Flags().GetString("wallet-address")

	ok2, err := auth.Authenticate(k, tok.TU.Rho, opHash, chainID, []byte(walletAddress), authSpentSet)
	if err != nil {
		return err
	}
	fmt.Println("authenticate:", ok2)
	return nil
}
