// Package quorum implements the threshold helper combiner (C7): given a
// set of CA shares and an envelope's R0, reconstruct M = sk_CA·R0
// without ever reconstructing sk_CA. Grounded in the original
// ca_consortium/threshold_crypto.py::aggregate_helpers and
// wallet/wallet_client.py::retrieve's quorum-combine step.
package quorum

import (
	"fmt"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/dealer"
	"github.com/luxfi/bekd/internal/shamir"
)

// ErrQuorum is returned when fewer than the required number of distinct,
// well-formed shares remain after filtering.
var ErrQuorum = fmt.Errorf("quorum: insufficient valid shares to reconstruct M")

// Combine computes M = sk_CA·R0 from a quorum of CA shares over R0.
// Malformed contributions (nil share, non-positive or duplicate index)
// are dropped rather than aborting the whole combine, matching the
// partial-failure policy spec §9 assigns to a consortium that should
// tolerate a minority of unresponsive or misbehaving nodes. If fewer
// than need distinct valid shares survive filtering, ErrQuorum is
// returned.
func Combine(r0 *curve.Point, shares []dealer.CAShare, need int) (*curve.Point, error) {
	seen := make(map[int]bool, len(shares))
	partials := make(map[int]*curve.Point, len(shares))

	for _, s := range shares {
		if s.Share == nil || s.Index <= 0 || seen[s.Index] {
			continue
		}
		seen[s.Index] = true
		partials[s.Index] = s.Share.Act(r0)
	}
	if len(partials) < need {
		return nil, ErrQuorum
	}

	indices := make([]int, 0, len(partials))
	for idx := range partials {
		indices = append(indices, idx)
	}
	lagrange := shamir.LagrangeAtZero(indices)

	m := curve.NewPoint()
	for _, idx := range indices {
		m = m.Add(lagrange[idx].Act(partials[idx]))
	}
	return m, nil
}
