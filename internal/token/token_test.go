package token_test

import (
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/token"
)

func buildSampleToken(t *testing.T, d int) *token.Token {
	t.Helper()

	r0, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	r1, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)
	hA, err := curve.RandomScalar(rand.Reader)
	require.NoError(t, err)

	a := make([]*curve.Scalar, d)
	tags := make([][]byte, d)
	for i := 0; i < d; i++ {
		s, err := curve.RandomScalar(rand.Reader)
		require.NoError(t, err)
		a[i] = s
		tags[i] = []byte{byte(i), byte(i + 1), byte(i + 2)}
	}

	var c, rho [32]byte
	_, err = rand.Read(c[:])
	require.NoError(t, err)
	_, err = rand.Read(rho[:])
	require.NoError(t, err)

	return &token.Token{
		TU: token.TU{C: c, Rho: rho},
		TCA: token.TCA{
			R0:    r0.ActOnBase(),
			R1:    r1.ActOnBase(),
			HA:    hA,
			Sigma: []byte{0x30, 0x44, 0x02, 0x20},
			A:     a,
			Tags:  tags,
		},
	}
}

func TestTokenMarshalUnmarshalRoundTrip(t *testing.T) {
	want := buildSampleToken(t, 4)

	raw, err := json.Marshal(want)
	require.NoError(t, err)

	var got token.Token
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, want.TU, got.TU)
	assert.True(t, want.TCA.R0.Equal(got.TCA.R0))
	assert.True(t, want.TCA.R1.Equal(got.TCA.R1))
	assert.True(t, want.TCA.HA.Equal(got.TCA.HA))
	assert.Equal(t, want.TCA.Sigma, got.TCA.Sigma)
	require.Len(t, got.TCA.A, len(want.TCA.A))
	for i := range want.TCA.A {
		assert.True(t, want.TCA.A[i].Equal(got.TCA.A[i]))
	}
	assert.Equal(t, want.TCA.Tags, got.TCA.Tags)
}

// TestTokenJSONUsesDecimalStringsForScalars guards against the
// arbitrary-precision numbers in §6 silently truncating to float64 if a
// future edit swaps the string encoding for a bare JSON number.
func TestTokenJSONUsesDecimalStringsForScalars(t *testing.T) {
	want := buildSampleToken(t, 1)
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &generic))

	tca := generic["TCA"].(map[string]interface{})
	hA, ok := tca["hA"].(string)
	require.True(t, ok, "hA must be encoded as a JSON string, not a number")
	assert.NotEmpty(t, hA)
}

func TestTokenMarshalRejectsIdentityPoints(t *testing.T) {
	bad := buildSampleToken(t, 1)
	bad.TCA.R0 = curve.NewPoint()

	_, err := json.Marshal(bad)
	assert.Error(t, err)
}
