package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/bekd/internal/curve"
)

func TestScalarArithmetic(t *testing.T) {
	a, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	b, err := curve.RandomScalar(nil)
	require.NoError(t, err)

	sum := a.Clone().Add(b)
	back := sum.Clone().Sub(b)
	assert.True(t, back.Equal(a))

	inv := b.Clone().Inverse()
	one := b.Clone().Mul(inv)
	assert.True(t, one.Equal(curve.ScalarFromUint64(1)))
}

func TestPointRoundTrip(t *testing.T) {
	s, err := curve.RandomScalar(nil)
	require.NoError(t, err)

	p := curve.ScalarBaseMult(s)
	ser := p.Serialize()

	back, err := curve.Deserialize(ser[:])
	require.NoError(t, err)
	assert.True(t, p.Equal(back))
}

func TestIdentitySerializesToZero(t *testing.T) {
	id := curve.NewPoint()
	ser := id.Serialize()
	for _, b := range ser {
		assert.Equal(t, byte(0), b)
	}

	back, err := curve.Deserialize(ser[:])
	require.NoError(t, err)
	assert.True(t, back.IsIdentity())
}

func TestPointAddAndNegateCancel(t *testing.T) {
	s, err := curve.RandomScalar(nil)
	require.NoError(t, err)

	p := curve.ScalarBaseMult(s)
	sum := p.Add(p.Negate())
	assert.True(t, sum.IsIdentity())
}

func TestScalarMultDistributesOverAdd(t *testing.T) {
	a, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	b, err := curve.RandomScalar(nil)
	require.NoError(t, err)

	G := curve.ScalarBaseMult(curve.ScalarFromUint64(1))
	lhs := a.Clone().Add(b).Act(G)
	rhs := a.Act(G).Add(b.Act(G))
	assert.True(t, lhs.Equal(rhs))
}

func TestDeserializeRejectsOffCurvePoint(t *testing.T) {
	var bad [64]byte
	bad[31] = 1 // x = 1
	bad[63] = 2 // y = 2, almost certainly not on curve
	_, err := curve.Deserialize(bad[:])
	assert.ErrorIs(t, err, curve.ErrNotOnCurve)
}
