// Package biosim is the biometric noise simulator (test harness /
// external collaborator per spec §1 and §3: "biometric is test harness
// only; not part of the protocol"). It is grounded in the original
// wallet/biometric_sim.py, which drives every enrollment/retrieval test
// scenario in spec §8 (S1, S2, S6).
package biosim

import "math/rand"

// GenerateBiometric produces a deterministic d-dimensional standard-normal
// feature vector from a math/rand source seeded with seed; the same seed
// always yields the same vector (it does not reproduce numpy's streams).
func GenerateBiometric(d int, seed int64) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	out := make([]float64, d)
	for i := range out {
		out[i] = rnd.NormFloat64()
	}
	return out
}

// GenerateNoisyBiometric produces a variant of original where a
// matchRatio fraction of features are reproduced exactly (a "match")
// and the rest are resampled from a fresh standard normal plus
// noiseStd (a "mismatch"), mirroring generate_noisy_biometric's
// semantics in the original Python.
func GenerateNoisyBiometric(original []float64, noiseStd, matchRatio float64, seed int64) []float64 {
	rnd := rand.New(rand.NewSource(seed))
	n := len(original)
	nMatch := int(matchRatio * float64(n))

	matchIndex := make(map[int]bool, nMatch)
	// The first nMatch entries of a random permutation of 0..n-1 are the
	// nMatch distinct indices that stay unchanged.
	perm := rnd.Perm(n)
	for _, idx := range perm[:nMatch] {
		matchIndex[idx] = true
	}

	noisy := make([]float64, n)
	for i := range noisy {
		if matchIndex[i] {
			noisy[i] = original[i]
		} else {
			noisy[i] = rnd.NormFloat64() + noiseStd
		}
	}
	return noisy
}
