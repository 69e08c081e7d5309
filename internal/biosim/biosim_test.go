package biosim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxfi/bekd/internal/biosim"
)

func TestGenerateBiometricIsDeterministic(t *testing.T) {
	a := biosim.GenerateBiometric(128, 7)
	b := biosim.GenerateBiometric(128, 7)
	assert.Equal(t, a, b)
}

func TestGenerateNoisyBiometricMatchRatio(t *testing.T) {
	base := biosim.GenerateBiometric(128, 7)
	noisy := biosim.GenerateNoisyBiometric(base, 0.1, 0.95, 11)

	matches := 0
	for i := range base {
		if base[i] == noisy[i] {
			matches++
		}
	}
	// matchRatio=0.95 over d=128 reproduces int(0.95*128) = 121 features
	// exactly, comfortably above the floor of 100 checked here.
	assert.GreaterOrEqual(t, matches, 100)
}

func TestGenerateNoisyBiometricLowMatchRatio(t *testing.T) {
	base := biosim.GenerateBiometric(128, 7)
	noisy := biosim.GenerateNoisyBiometric(base, 0.1, 0.01, 17)

	matches := 0
	for i := range base {
		if base[i] == noisy[i] {
			matches++
		}
	}
	assert.Less(t, matches, 4)
}
