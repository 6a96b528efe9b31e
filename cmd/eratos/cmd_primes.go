package main

import (
	"fmt"
	"strconv"

	"eratos/internal/sieve"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// primesCmd lists all primes up to a bound
var primesCmd = &cobra.Command{
	Use:   "primes [bound]",
	Short: "List all primes up to and including a bound",
	Long: `Runs the Sieve of Eratosthenes up to the given bound and prints every
prime found, in ascending order.

Example:
  eratos primes 120
  eratos primes 10000000 --parallel --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runPrimes,
}

// countCmd reports the prime-counting function
var countCmd = &cobra.Command{
	Use:   "count [bound]",
	Short: "Count the primes up to a bound (the prime-counting function)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCount,
}

// rangeCmd sieves a window of candidates
var rangeCmd = &cobra.Command{
	Use:   "range [low] [high]",
	Short: "List the primes inside an inclusive window",
	Long: `Sieves only the window [low, high] using base primes up to sqrt(high),
so wide bounds with narrow windows stay cheap.

Example:
  eratos range 1000000 1000100`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

func runPrimes(cmd *cobra.Command, args []string) error {
	n, err := parseBound(args[0])
	if err != nil {
		return err
	}

	logger.Debug("sieving", zap.Int("bound", n), zap.Bool("parallel", parallel))
	var primes []int
	if parallel {
		primes, err = sieve.ComputeParallel(cmd.Context(), n, cfg.Sieve.Workers)
	} else {
		primes, err = sieve.Compute(n)
	}
	if err != nil {
		return fmt.Errorf("sieve: %w", err)
	}

	logger.Debug("sieve complete", zap.Int("bound", n), zap.Int("primes", len(primes)))
	return renderPrimes(cmd.OutOrStdout(), primes)
}

func runCount(cmd *cobra.Command, args []string) error {
	n, err := parseBound(args[0])
	if err != nil {
		return err
	}

	count, err := sieve.Count(n)
	if err != nil {
		return fmt.Errorf("sieve: %w", err)
	}
	return renderCount(cmd.OutOrStdout(), n, count)
}

func runRange(cmd *cobra.Command, args []string) error {
	lo, err := parseBound(args[0])
	if err != nil {
		return err
	}
	hi, err := parseBound(args[1])
	if err != nil {
		return err
	}

	logger.Debug("sieving window", zap.Int("low", lo), zap.Int("high", hi))
	primes, err := sieve.Range(lo, hi)
	if err != nil {
		return fmt.Errorf("sieve: %w", err)
	}
	return renderPrimes(cmd.OutOrStdout(), primes)
}

// parseBound parses a CLI bound argument and enforces the configured cap.
func parseBound(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bound %q is not an integer", arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("bound %d is negative", n)
	}
	if n > cfg.Sieve.MaxBound {
		return 0, fmt.Errorf("bound %d exceeds the configured max_bound %d", n, cfg.Sieve.MaxBound)
	}
	return n, nil
}
