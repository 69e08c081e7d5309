package canode_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/bekd/internal/canode"
	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/dealer"
)

func TestRetrieveReturnsHelperPoint(t *testing.T) {
	dkg, err := dealer.Run(3, 1, nil)
	require.NoError(t, err)
	node := canode.NewNode(dkg.Shares[0])
	srv := httptest.NewServer(node.Router())
	defer srv.Close()

	r, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	r0 := r.ActOnBase()
	x, y := r0.Coords()

	var rho [32]byte
	rho[0] = 0x01
	body, _ := json.Marshal(map[string]interface{}{
		"rho": hex.EncodeToString(rho[:]),
		"R0":  [2]string{x.String(), y.String()},
	})

	resp, err := http.Post(srv.URL+"/retrieve", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out["helper"])
}

func TestRetrieveRejectsReplay(t *testing.T) {
	dkg, err := dealer.Run(3, 1, nil)
	require.NoError(t, err)
	node := canode.NewNode(dkg.Shares[0])
	srv := httptest.NewServer(node.Router())
	defer srv.Close()

	r, err := curve.RandomScalar(nil)
	require.NoError(t, err)
	r0 := r.ActOnBase()
	x, y := r0.Coords()

	var rho [32]byte
	rho[0] = 0x02
	body, _ := json.Marshal(map[string]interface{}{
		"rho": hex.EncodeToString(rho[:]),
		"R0":  [2]string{x.String(), y.String()},
	})

	resp1, err := http.Post(srv.URL+"/retrieve", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp1.Body.Close()
	assert.Equal(t, http.StatusOK, resp1.StatusCode)

	resp2, err := http.Post(srv.URL+"/retrieve", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}
