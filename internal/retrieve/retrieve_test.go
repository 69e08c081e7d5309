package retrieve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/bekd/internal/biosim"
	"github.com/luxfi/bekd/internal/dealer"
	"github.com/luxfi/bekd/internal/enroll"
	"github.com/luxfi/bekd/internal/params"
	"github.com/luxfi/bekd/internal/retrieve"
	"github.com/luxfi/bekd/internal/spentset"
)

func setup(t *testing.T, p params.Params) (*dealer.Result, []float64) {
	t.Helper()
	dkg, err := dealer.Run(3, 1, nil)
	require.NoError(t, err)
	bio := biosim.GenerateBiometric(p.D, 7)
	return dkg, bio
}

// TestRetrieveSucceedsWithEnoughMatches mirrors S1: enroll, then retrieve
// with a noisy biometric whose match ratio comfortably exceeds tbio/d.
func TestRetrieveSucceedsWithEnoughMatches(t *testing.T) {
	p := params.Params{D: 32, TBio: 4, LambdaBytes: 32}
	dkg, bio := setup(t, p)

	res, err := enroll.Enroll(p, dkg.PublicKey, dkg.MasterSecret, bio, nil)
	require.NoError(t, err)

	noisy := biosim.GenerateNoisyBiometric(bio, 0.1, 0.9, 11)

	k, err := retrieve.Retrieve(p, dkg.PublicKey, res.Token, noisy, dkg.Shares[:2], 2, spentset.New())
	require.NoError(t, err)
	assert.True(t, k.Equal(res.K))
}

// TestRetrieveFailsWithTooFewMatches mirrors S2: a biometric reading too
// far from the enrolled template recovers nothing.
func TestRetrieveFailsWithTooFewMatches(t *testing.T) {
	p := params.Params{D: 32, TBio: 8, LambdaBytes: 32}
	dkg, bio := setup(t, p)

	res, err := enroll.Enroll(p, dkg.PublicKey, dkg.MasterSecret, bio, nil)
	require.NoError(t, err)

	noisy := biosim.GenerateNoisyBiometric(bio, 0.1, 0.01, 17)

	_, err = retrieve.Retrieve(p, dkg.PublicKey, res.Token, noisy, dkg.Shares[:2], 2, spentset.New())
	assert.ErrorIs(t, err, retrieve.ErrInsufficientMatches)
}

// TestRetrieveRejectsReplay mirrors the replay-attack scenario: a second
// retrieval against the same local spent-set fails even with the exact
// matching biometric.
func TestRetrieveRejectsReplay(t *testing.T) {
	p := params.Params{D: 32, TBio: 4, LambdaBytes: 32}
	dkg, bio := setup(t, p)

	res, err := enroll.Enroll(p, dkg.PublicKey, dkg.MasterSecret, bio, nil)
	require.NoError(t, err)

	local := spentset.New()
	_, err = retrieve.Retrieve(p, dkg.PublicKey, res.Token, bio, dkg.Shares[:2], 2, local)
	require.NoError(t, err)

	_, err = retrieve.Retrieve(p, dkg.PublicKey, res.Token, bio, dkg.Shares[:2], 2, local)
	assert.ErrorIs(t, err, retrieve.ErrReplay)
}

// TestRetrieveRejectsBadSignature covers a tampered token: flipping a
// byte of sigma must fail signature verification before any quorum or
// matching logic runs.
func TestRetrieveRejectsBadSignature(t *testing.T) {
	p := params.Params{D: 16, TBio: 4, LambdaBytes: 32}
	dkg, bio := setup(t, p)

	res, err := enroll.Enroll(p, dkg.PublicKey, dkg.MasterSecret, bio, nil)
	require.NoError(t, err)

	tampered := *res.Token
	tampered.TCA.Sigma = append([]byte{}, res.Token.TCA.Sigma...)
	tampered.TCA.Sigma[0] ^= 0xFF

	_, err = retrieve.Retrieve(p, dkg.PublicKey, &tampered, bio, dkg.Shares[:2], 2, spentset.New())
	assert.ErrorIs(t, err, retrieve.ErrBadSignature)
}

// TestRetrieveWorksWithAnyQuorum exercises threshold aggregation: two
// different sets of t+1 shares must both recover the same k.
func TestRetrieveWorksWithAnyQuorum(t *testing.T) {
	p := params.Params{D: 16, TBio: 4, LambdaBytes: 32}
	dkg, err := dealer.Run(5, 2, nil)
	require.NoError(t, err)
	bio := biosim.GenerateBiometric(p.D, 7)

	res, err := enroll.Enroll(p, dkg.PublicKey, dkg.MasterSecret, bio, nil)
	require.NoError(t, err)

	k1, err := retrieve.Retrieve(p, dkg.PublicKey, res.Token, bio, dkg.Shares[:3], 3, spentset.New())
	require.NoError(t, err)

	k2, err := retrieve.Retrieve(p, dkg.PublicKey, res.Token, bio, dkg.Shares[2:5], 3, spentset.New())
	require.NoError(t, err)

	assert.True(t, k1.Equal(k2))
	assert.True(t, k1.Equal(res.K))
}
