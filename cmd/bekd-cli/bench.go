package main

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/luxfi/bekd/internal/biosim"
	"github.com/luxfi/bekd/internal/dealer"
	"github.com/luxfi/bekd/internal/enroll"
	"github.com/luxfi/bekd/internal/params"
	"github.com/luxfi/bekd/internal/retrieve"
	"github.com/luxfi/bekd/internal/spentset"
)

// runBench times enrollment and retrieval over a batch of trials,
// adapted from scripts/benchmark_offchain.py's latency-table approach:
// median/mean/stddev per operation, rather than that script's
// hand-inlined crypto primitives (this CLI calls the real engine
// packages directly).
func runBench(cmd *cobra.Command, args []string) error {
	runs, _ := cmd.Flags().GetInt("runs")
	matchRatio, _ := cmd.Flags().GetFloat64("match-ratio")

	p := params.Params{D: d, TBio: tbio, LambdaBytes: lambdaBytes}
	if err := p.Validate(); err != nil {
		return err
	}

	dkg, err := dealer.Run(n, t, nil)
	if err != nil {
		return err
	}

	enrollTimes := make([]float64, 0, runs)
	retrieveTimes := make([]float64, 0, runs)
	successes := 0

	for i := 0; i < runs; i++ {
		bio := biosim.GenerateBiometric(p.D, dealerSeed+int64(i))

		st := time.Now()
		res, err := enroll.Enroll(p, dkg.PublicKey, dkg.MasterSecret, bio, nil)
		enrollTimes = append(enrollTimes, millisSince(st))
		if err != nil {
			return fmt.Errorf("trial %d: enroll: %w", i, err)
		}

		noisy := biosim.GenerateNoisyBiometric(bio, 0.1, matchRatio, dealerSeed+int64(i)+1)
		local := spentset.New()

		st = time.Now()
		k, err := retrieve.Retrieve(p, dkg.PublicKey, res.Token, noisy, dkg.Shares[:t+1], t+1, local)
		retrieveTimes = append(retrieveTimes, millisSince(st))
		if err == nil && k.Equal(res.K) {
			successes++
		}
	}

	fmt.Printf("BEKD off-chain benchmark: d=%d tbio=%d runs=%d match_ratio=%.2f\n", p.D, p.TBio, runs, matchRatio)
	fmt.Printf("%-20s %12s %12s %10s\n", "Operation", "Median(ms)", "Mean(ms)", "Std(ms)")
	printRow("Enrollment", enrollTimes)
	printRow("Retrieval", retrieveTimes)
	fmt.Printf("Retrieval success rate: %d/%d\n", successes, runs)
	return nil
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func printRow(label string, samples []float64) {
	median, mean, std := summarize(samples)
	fmt.Printf("%-20s %12.3f %12.3f %10.3f\n", label, median, mean, std)
}

func summarize(samples []float64) (median, mean, std float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	sorted := append([]float64{}, samples...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean = sum / float64(len(samples))

	var variance float64
	for _, v := range samples {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(samples))
	std = math.Sqrt(variance)
	return median, mean, std
}
