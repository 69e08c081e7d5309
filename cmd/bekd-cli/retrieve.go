package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/bekd/internal/biosim"
	"github.com/luxfi/bekd/internal/params"
	"github.com/luxfi/bekd/internal/retrieve"
	"github.com/luxfi/bekd/internal/spentset"
	"github.com/luxfi/bekd/internal/tokenstore"
)

// caLocalUsed lives for the process lifetime, mirroring a single CA
// node's local_used set (ca_consortium/ca_node.py); a real deployment
// would hold this per node, not per CLI invocation.
var caLocalUsed = spentset.New()

func runRetrieve(cmd *cobra.Command, args []string) error {
	noiseStd, _ := cmd.Flags().GetFloat64("noise-std")
	matchRatio, _ := cmd.Flags().GetFloat64("match-ratio")
	retrieveSeed, _ := cmd.Flags().GetInt64("retrieve-seed")

	p := params.Params{D: d, TBio: tbio, LambdaBytes: lambdaBytes}
	if err := p.Validate(); err != nil {
		return err
	}

	dkg, err := loadDKG()
	if err != nil {
		return err
	}
	tok, err := tokenstore.Load(tokenFile)
	if err != nil {
		return err
	}
	bio, err := loadBiometric()
	if err != nil {
		return err
	}

	noisy := biosim.GenerateNoisyBiometric(bio, noiseStd, matchRatio, retrieveSeed)

	k, err := retrieve.Retrieve(p, dkg.PublicKey, tok, noisy, dkg.Shares[:t+1], t+1, caLocalUsed)
	if err != nil {
		fmt.Println("retrieve: failed:", err)
		return nil
	}

	fmt.Println("retrieve: ok")
	fmt.Printf("k=%s\n", k.String())
	return nil
}
