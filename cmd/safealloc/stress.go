package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/safealloc/registry"
)

// errAborted is returned when the registry's exit hook returned instead of
// terminating the process.
var errAborted = errors.New("allocation failed, registry torn down")

var (
	stressCount        int
	stressMaxSize      int
	stressReleaseRatio float64
	stressSeed         uint64
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVarP(&stressCount, "count", "n", 1000, "Number of operations")
	cmd.Flags().IntVar(&stressMaxSize, "size", 256, "Maximum block size in bytes")
	cmd.Flags().
		Float64Var(&stressReleaseRatio, "release-ratio", 0.4, "Probability that an operation releases a block")
	cmd.Flags().Uint64Var(&stressSeed, "seed", 1, "Random seed")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Run a random acquire/release workload",
		Long: `The stress command runs a random mix of acquisitions and releases
against the registry, prints the registry statistics, and releases
everything that is still outstanding before exiting with status 0.

With --limit, running out of budget triggers the fail-fast path: every
tracked block is released and the process exits with status 255.

Example:
  safealloc stress --count 10000 --size 4096
  safealloc stress --limit 65536 --release-ratio 0.1
  safealloc stress --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

func runStress() error {
	if stressCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", stressCount)
	}
	if stressMaxSize < 1 {
		return fmt.Errorf("size must be at least 1, got %d", stressMaxSize)
	}
	if stressReleaseRatio < 0 || stressReleaseRatio > 1 {
		return fmt.Errorf("release-ratio must be within [0, 1], got %g", stressReleaseRatio)
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(stressSeed, stressSeed^0x9e3779b97f4a7c15))
	var live []registry.Address

	for i := range stressCount {
		if len(live) > 0 && rng.Float64() < stressReleaseRatio {
			j := rng.IntN(len(live))
			reg.Release(live[j])
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
			continue
		}

		b := reg.Acquire(rng.IntN(stressMaxSize) + 1)
		if b == nil {
			return fmt.Errorf("operation %d: %w", i, errAborted)
		}
		for k := range b {
			b[k] = byte(i)
		}
		live = append(live, registry.AddressOf(b))
	}

	stats := reg.Stats()
	if jsonOut {
		if err := printJSON(stats); err != nil {
			return err
		}
	} else {
		printInfo("operations: %d\n", stressCount)
		printInfo("acquired: %d, released: %d, live: %d\n", stats.Acquired, stats.Released, stats.Live)
		printInfo("live bytes: %d, peak bytes: %d\n", stats.LiveBytes, stats.PeakBytes)
	}
	if verbose && !quiet {
		if err := reg.Report(os.Stdout); err != nil {
			return err
		}
	}

	reg.ReleaseAll(0)
	return nil
}
