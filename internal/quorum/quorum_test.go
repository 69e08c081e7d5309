package quorum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/dealer"
	"github.com/luxfi/bekd/internal/quorum"
)

func TestCombineReconstructsMFromAnyQuorum(t *testing.T) {
	dkg, err := dealer.Run(5, 2, nil)
	require.NoError(t, err)

	r, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	r0 := r.ActOnBase()
	want := dkg.MasterSecret.Act(r0)

	m, err := quorum.Combine(r0, dkg.Shares[:3], 3)
	require.NoError(t, err)
	assert.True(t, m.Equal(want))

	m2, err := quorum.Combine(r0, dkg.Shares[1:4], 3)
	require.NoError(t, err)
	assert.True(t, m2.Equal(want))
}

func TestCombineDropsMalformedShares(t *testing.T) {
	dkg, err := dealer.Run(5, 2, nil)
	require.NoError(t, err)

	r, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	r0 := r.ActOnBase()
	want := dkg.MasterSecret.Act(r0)

	shares := append([]dealer.CAShare{}, dkg.Shares[:3]...)
	shares = append(shares, dealer.CAShare{Index: 0, Share: nil})
	shares = append(shares, shares[0])

	m, err := quorum.Combine(r0, shares, 3)
	require.NoError(t, err)
	assert.True(t, m.Equal(want))
}

func TestCombineFailsBelowThreshold(t *testing.T) {
	dkg, err := dealer.Run(5, 2, nil)
	require.NoError(t, err)

	r, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	r0 := r.ActOnBase()

	_, err = quorum.Combine(r0, dkg.Shares[:2], 3)
	assert.ErrorIs(t, err, quorum.ErrQuorum)
}
