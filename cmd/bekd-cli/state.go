package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/dealer"
)

// dkgState persists a simulated dealer.Result to disk so that separate
// bekd-cli invocations (enroll, then retrieve, then authenticate) can
// share one CA consortium across process boundaries. A real deployment
// never serializes the master secret; this file exists purely so this
// CLI can demonstrate the full protocol without a long-running process.
type dkgState struct {
	MasterSecret string        `json:"master_secret"`
	PublicKey    [2]string     `json:"public_key"`
	Shares       []shareRecord `json:"shares"`
}

type shareRecord struct {
	Index int    `json:"index"`
	Value string `json:"value"`
}

func dkgStatePath() string {
	return tokenFile + ".dkg.json"
}

func saveDKG(res *dealer.Result) error {
	x, y := res.PublicKey.Coords()
	st := dkgState{
		MasterSecret: res.MasterSecret.String(),
		PublicKey:    [2]string{x.String(), y.String()},
		Shares:       make([]shareRecord, len(res.Shares)),
	}
	for i, s := range res.Shares {
		st.Shares[i] = shareRecord{Index: s.Index, Value: s.Share.String()}
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling dkg state: %w", err)
	}
	return os.WriteFile(dkgStatePath(), data, 0o600)
}

func loadDKG() (*dealer.Result, error) {
	data, err := os.ReadFile(dkgStatePath())
	if err != nil {
		return nil, fmt.Errorf("reading dkg state: %w", err)
	}
	var st dkgState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing dkg state: %w", err)
	}

	master, ok := new(big.Int).SetString(st.MasterSecret, 10)
	if !ok {
		return nil, fmt.Errorf("invalid master_secret in dkg state")
	}

	shares := make([]dealer.CAShare, len(st.Shares))
	for i, s := range st.Shares {
		v, ok := new(big.Int).SetString(s.Value, 10)
		if !ok {
			return nil, fmt.Errorf("invalid share value at index %d", s.Index)
		}
		shares[i] = dealer.CAShare{Index: s.Index, Share: curve.ScalarFromBigInt(v)}
	}

	masterScalar := curve.ScalarFromBigInt(master)
	return &dealer.Result{
		MasterSecret: masterScalar,
		PublicKey:    masterScalar.ActOnBase(),
		Shares:       shares,
	}, nil
}

// biometricSidecar holds the clear biometric template next to the token
// file, purely as a test-harness convenience (§3 notes the biometric is
// never part of the production token itself).
type biometricSidecar struct {
	Features []float64 `json:"features"`
}

func biometricSidecarPath() string {
	return tokenFile + ".biometric.json"
}

func saveBiometric(features []float64) error {
	data, err := json.Marshal(biometricSidecar{Features: features})
	if err != nil {
		return err
	}
	return os.WriteFile(biometricSidecarPath(), data, 0o600)
}

func loadBiometric() ([]float64, error) {
	data, err := os.ReadFile(biometricSidecarPath())
	if err != nil {
		return nil, fmt.Errorf("reading biometric sidecar: %w", err)
	}
	var side biometricSidecar
	if err := json.Unmarshal(data, &side); err != nil {
		return nil, err
	}
	return side.Features, nil
}
