// Package main provides ftrlbench, a command that times the vector FTRL
// kernel against the scalar one on a random feature table.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/evilmucedin/SIMDNumber/hwy"
	"github.com/evilmucedin/SIMDNumber/hwy/contrib/ftrl"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("[ftrlbench] ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ftrlbench",
		Short: "Benchmark the 8-lane FTRL-proximal update",
		Long: `ftrlbench fills a feature table with random (g, z, n, weight) values,
applies the same gradients repeatedly with the vector kernel and with the
scalar kernel, and reports timings, weight sums and the largest weight
difference between the two.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ftrlbench v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print SIMD dispatch information",
		Run: func(cmd *cobra.Command, args []string) {
			printInfo(cmd)
		},
	})

	defaults := ftrl.DefaultConfig()
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the vector and scalar passes and compare them",
		RunE:  runBench,
	}
	runCmd.Flags().Int("features", getEnvInt("FTRL_FEATURES", 1<<20), "Number of features in the table")
	runCmd.Flags().Int("iterations", getEnvInt("FTRL_ITERATIONS", 100), "Number of passes over the table")
	runCmd.Flags().Uint64("seed", uint64(getEnvInt("FTRL_SEED", 1)), "Random seed for the table contents")
	runCmd.Flags().String("config", getEnvStr("FTRL_CONFIG", ""), "YAML file with alpha, beta, lambda1, lambda2")
	runCmd.Flags().Float32("alpha", defaults.Alpha, "Learning-rate scale (env FTRL_ALPHA)")
	runCmd.Flags().Float32("beta", defaults.Beta, "Smoothing term (env FTRL_BETA)")
	runCmd.Flags().Float32("lambda1", defaults.Lambda1, "L1 strength (env FTRL_LAMBDA1)")
	runCmd.Flags().Float32("lambda2", defaults.Lambda2, "L2 strength (env FTRL_LAMBDA2)")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func printInfo(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dispatch:    %s (%d bytes)\n", hwy.CurrentName(), hwy.CurrentWidth())
	fmt.Fprintf(out, "cpu avx2:    %v\n", hwy.CPUHasAVX2())
	fmt.Fprintf(out, "no-simd env: %v\n", hwy.NoSimdEnv())

	info := vek32.Info()
	fmt.Fprintf(out, "vek32:       accelerated=%v features=%v\n", info.Acceleration, info.CPUFeatures)
	fmt.Fprintf(out, "lanes:       %v\n", hwy.New8(0, 1, 2, 3, 4, 5, 6, 7))
}

func runBench(cmd *cobra.Command, args []string) error {
	features, _ := cmd.Flags().GetInt("features")
	iterations, _ := cmd.Flags().GetInt("iterations")
	seed, _ := cmd.Flags().GetUint64("seed")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log.Printf("features=%d iterations=%d alpha=%v beta=%v lambda1=%v lambda2=%v dispatch=%s",
		features, iterations, cfg.Alpha, cfg.Beta, cfg.Lambda1, cfg.Lambda2, hwy.CurrentName())

	res, err := bench(benchOptions{
		Features:   features,
		Iterations: iterations,
		Seed:       seed,
		Config:     cfg,
	})
	if err != nil {
		return err
	}

	log.Printf("fill: %v", res.FillTime)
	log.Printf("vector: %v sum=%v rejected=%d", res.VectorTime, res.VectorSum, res.VectorRejected)
	log.Printf("scalar: %v sum=%v rejected=%d", res.ScalarTime, res.ScalarSum, res.ScalarRejected)
	log.Printf("max weight diff: %v", res.MaxWeightDiff)
	return nil
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
