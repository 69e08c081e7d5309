// Command bekd-cli drives the BEKD protocol end to end: enrolling a
// fresh key against a biometric template, retrieving it back from a
// noisy reading, and authenticating with the recovered key. Its command
// layout is adapted from cmd/threshold-cli's cobra wiring, trading that
// tool's multi-protocol/multi-party flags for BEKD's own parameters.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent flags shared by every subcommand.
	tokenFile   string
	d           int
	tbio        int
	lambdaBytes int
	n           int
	t           int
	dealerSeed  int64
	verbose     bool

	rootCmd = &cobra.Command{
		Use:   "bekd-cli",
		Short: "CLI for the biometrically-encapsulated key distribution protocol",
		Long: `bekd-cli simulates the BEKD protocol: a consortium of CA nodes, a
biometric sketch binding a signing key to a noisy biometric template, and
threshold-assisted retrieval and authentication.`,
	}

	enrollCmd = &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a fresh signing key against a biometric template",
		RunE:  runEnroll,
	}

	retrieveCmd = &cobra.Command{
		Use:   "retrieve",
		Short: "Recover the signing key from a noisy biometric reading",
		RunE:  runRetrieve,
	}

	authenticateCmd = &cobra.Command{
		Use:   "authenticate",
		Short: "Sign a user operation hash with a recovered key and spend the token",
		RunE:  runAuthenticate,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark enroll/retrieve latency and success rate at one match ratio",
		RunE:  runBench,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&tokenFile, "token-file", "f", "bekd-token.json", "Token file path")
	rootCmd.PersistentFlags().IntVar(&d, "d", 128, "Number of biometric features")
	rootCmd.PersistentFlags().IntVar(&tbio, "tbio", 4, "Minimum matching features required to recover k")
	rootCmd.PersistentFlags().IntVar(&lambdaBytes, "lambda-bytes", 32, "Tag truncation length in bytes")
	rootCmd.PersistentFlags().IntVar(&n, "n", 3, "Number of CA consortium nodes")
	rootCmd.PersistentFlags().IntVar(&t, "t", 1, "CA threshold (quorum is t+1)")
	rootCmd.PersistentFlags().Int64Var(&dealerSeed, "seed", 7, "Seed for the biometric simulator")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	retrieveCmd.Flags().Float64("noise-std", 0.1, "Offset added to the fresh standard-normal value of each mismatched feature")
	retrieveCmd.Flags().Float64("match-ratio", 0.9, "Fraction of features reproduced exactly in the noisy reading")
	retrieveCmd.Flags().Int64("retrieve-seed", 11, "Seed for the noisy biometric reading")

	authenticateCmd.Flags().String("user-op-hash", "", "Hex-encoded 32-byte user operation hash (defaults to all zero)")
	authenticateCmd.Flags().Uint64("chain-id", 31337, "Chain ID bound into the typed digest")
	authenticateCmd.Flags().String("wallet-address", "wallet-address-123456", "Wallet address bound into the typed digest")

	benchCmd.Flags().Int("runs", 50, "Number of enroll/retrieve trials")
	benchCmd.Flags().Float64("match-ratio", 0.96, "Fraction of features reproduced exactly")

	rootCmd.AddCommand(enrollCmd, retrieveCmd, authenticateCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
