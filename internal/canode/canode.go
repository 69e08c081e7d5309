// Package canode implements a CA consortium node's HTTP facade,
// grounded in the original ca_consortium/ca_node.py's Flask /enroll and
// /retrieve routes. It is explicitly an external-collaborator stand-in
// for a real CA node: /enroll's partial-signature response is the same
// toy placeholder the original returns (real threshold signing is out
// of scope, per spec §1 Non-goals), and its output must never be
// trusted without the consortium's combined signature check that
// internal/retrieve performs independently.
package canode

import (
	"encoding/json"
	"math/big"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luxfi/bekd/internal/curve"
	"github.com/luxfi/bekd/internal/dealer"
	"github.com/luxfi/bekd/internal/spentset"
)

// Node is one CA consortium member's HTTP-facing state: its index, its
// share of the master secret, and its own local replay guard.
type Node struct {
	Index     int
	Share     dealer.CAShare
	LocalUsed spentset.Set
}

// NewNode constructs a Node around a dealer-issued share.
func NewNode(share dealer.CAShare) *Node {
	return &Node{Index: share.Index, Share: share, LocalUsed: spentset.New()}
}

// Router builds the node's chi route table.
func (n *Node) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/enroll", n.handleEnroll)
	r.Post("/retrieve", n.handleRetrieve)
	return r
}

type enrollRequest struct {
	HA string `json:"hA"`
}

type enrollResponse struct {
	Node       int    `json:"node"`
	PartialSig string `json:"partial_sig"`
}

// handleEnroll simulates a partial signature share response, matching
// the original's (node_share + hA) mod 2^256 placeholder. A real
// deployment would replace this with an actual threshold ECDSA signing
// round.
func (n *Node) handleEnroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	hA, ok := new(big.Int).SetString(req.HA, 10)
	if !ok {
		http.Error(w, "invalid hA", http.StatusBadRequest)
		return
	}

	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	partial := new(big.Int).Add(n.Share.Share.BigInt(), hA)
	partial.Mod(partial, mod)

	writeJSON(w, http.StatusOK, enrollResponse{Node: n.Index, PartialSig: "0x" + partial.Text(16)})
}

type retrieveRequest struct {
	Rho string    `json:"rho"`
	R0  [2]string `json:"R0"`
}

type retrieveResponse struct {
	Node   int    `json:"node"`
	Helper string `json:"helper"`
}

// handleRetrieve checks this node's own replay guard and returns this
// node's contribution H_i = share_i·R0 as a hex-encoded point.
func (n *Node) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	var req retrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var rho [32]byte
	if err := decodeHex32(req.Rho, &rho); err != nil {
		http.Error(w, "invalid rho", http.StatusBadRequest)
		return
	}
	if !n.LocalUsed.TryMark(rho) {
		http.Error(w, "token-used", http.StatusBadRequest)
		return
	}

	x, ok := new(big.Int).SetString(req.R0[0], 10)
	if !ok {
		http.Error(w, "invalid R0.x", http.StatusBadRequest)
		return
	}
	y, ok := new(big.Int).SetString(req.R0[1], 10)
	if !ok {
		http.Error(w, "invalid R0.y", http.StatusBadRequest)
		return
	}
	var ser [64]byte
	xb, yb := x.Bytes(), y.Bytes()
	copy(ser[32-len(xb):32], xb)
	copy(ser[64-len(yb):64], yb)

	r0, err := curve.Deserialize(ser[:])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	helper := n.Share.Share.Act(r0).Serialize()
	writeJSON(w, http.StatusOK, retrieveResponse{Node: n.Index, Helper: hexEncode(helper[:])})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
