package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/bekd/internal/biosim"
	"github.com/luxfi/bekd/internal/dealer"
	"github.com/luxfi/bekd/internal/enroll"
	"github.com/luxfi/bekd/internal/params"
	"github.com/luxfi/bekd/internal/tokenstore"
)

func runEnroll(cmd *cobra.Command, args []string) error {
	p := params.Params{D: d, TBio: tbio, LambdaBytes: lambdaBytes}
	if err := p.Validate(); err != nil {
		return err
	}

	dkg, err := dealer.Run(n, t, nil)
	if err != nil {
		return fmt.Errorf("simulating CA consortium DKG: %w", err)
	}
	if err := saveDKG(dkg); err != nil {
		return err
	}

	bio := biosim.GenerateBiometric(p.D, dealerSeed)
	if err := saveBiometric(bio); err != nil {
		return err
	}

	res, err := enroll.Enroll(p, dkg.PublicKey, dkg.MasterSecret, bio, nil)
	if err != nil {
		return fmt.Errorf("enrolling: %w", err)
	}
	if err := tokenstore.Save(tokenFile, res.Token); err != nil {
		return err
	}

	fmt.Printf("enrolled: rho=%x\n", res.Token.TU.Rho)
	if verbose {
		fmt.Printf("k=%s\n", res.K.String())
	}
	return nil
}
