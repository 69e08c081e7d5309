// Package spentset implements a thread-safe single-use set of spent
// envelope identifiers ρ, used both as a CA node's local replay guard
// (C8 step 2, grounded in ca_consortium/ca_node.py's local_used set)
// and as the protocol-level authoritative spend record consulted during
// authentication (C9, grounded in wallet/wallet_client.py::MockSpentSet).
// The locking pattern follows
// pkg/txpool/encrypted/threshold_decrypt.go's sync.RWMutex-guarded map.
package spentset

import "sync"

// Set is a capability object exposing only atomic check-then-insert,
// matching spec §9's requirement that SpentSet be pluggable behind a
// try_mark(ρ) -> bool interface rather than a concrete map type.
type Set interface {
	// TryMark reports whether rho was not previously marked, marking it
	// as a side effect. A false return means rho was already spent.
	TryMark(rho [32]byte) bool
	// IsMarked reports whether rho has been marked, without marking it.
	IsMarked(rho [32]byte) bool
}

// memSet is an in-process Set backed by a guarded map. It is the only
// implementation this repository ships; a production deployment would
// back Set with durable, cross-node storage instead.
type memSet struct {
	mu     sync.RWMutex
	marked map[[32]byte]struct{}
}

// New returns an empty, ready-to-use in-memory Set.
func New() Set {
	return &memSet{marked: make(map[[32]byte]struct{})}
}

func (s *memSet) TryMark(rho [32]byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, already := s.marked[rho]; already {
		return false
	}
	s.marked[rho] = struct{}{}
	return true
}

func (s *memSet) IsMarked(rho [32]byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.marked[rho]
	return ok
}
