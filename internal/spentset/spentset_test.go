package spentset_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/bekd/internal/spentset"
)

func TestTryMarkFirstSpendSucceeds(t *testing.T) {
	s := spentset.New()
	var rho [32]byte
	rho[0] = 0xAB

	assert.True(t, s.TryMark(rho))
	assert.True(t, s.IsMarked(rho))
}

func TestTryMarkRejectsReplay(t *testing.T) {
	s := spentset.New()
	var rho [32]byte
	rho[0] = 0xCD

	require := assert.New(t)
	require.True(s.TryMark(rho))
	require.False(s.TryMark(rho))
}

func TestTryMarkIsConcurrencySafe(t *testing.T) {
	s := spentset.New()
	var rho [32]byte
	rho[0] = 0xEF

	const n = 50
	results := make([]bool, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = s.TryMark(rho)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, ok := range results {
		if ok {
			successes++
		}
	}
	assert.Equal(t, 1, successes)
}
