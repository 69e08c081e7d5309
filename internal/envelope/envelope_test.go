package envelope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/envelope"
)

// TestEnvelopeIdentity checks spec invariant 2 (§8): R1 - M == k·G and
// M == sk_CA·R0.
func TestEnvelopeIdentity(t *testing.T) {
	skCA, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	pkCA := skCA.ActOnBase()

	k, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	r, err := curve.RandomScalar(nil)
	require.NoError(t, err)

	env := envelope.Build(pkCA, k, r)

	kg := k.ActOnBase()
	decapsulated := env.R1.Add(env.M.Negate())
	assert.True(t, decapsulated.Equal(kg))

	mFromMaster := skCA.Act(env.R0)
	assert.True(t, mFromMaster.Equal(env.M))
}

func TestEnvelopeRhoIsDeterministic(t *testing.T) {
	skCA, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	pkCA := skCA.ActOnBase()

	k := curve.ScalarFromUint64(1)
	r := curve.ScalarFromUint64(2)

	a := envelope.Build(pkCA, k, r)
	b := envelope.Build(pkCA, k, r)
	assert.Equal(t, a.Rho, b.Rho)
}
