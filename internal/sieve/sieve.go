// Package sieve computes prime numbers with the Sieve of Eratosthenes.
//
// The core entry point is Compute, a pure function from an inclusive bound
// to the ascending list of primes not exceeding it. Range and
// ComputeParallel cover segmented and concurrent sieving over large bounds,
// and Cache gives callers an explicit, caller-owned memo of prior results.
package sieve

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBound is returned when a bound is not a non-negative integer
// range the sieve can operate on.
var ErrInvalidBound = errors.New("sieve: invalid bound")

// Compute returns all primes p with 2 <= p <= n in ascending order.
//
// Bounds below 2 yield an empty list; negative bounds fail with
// ErrInvalidBound. The composite-marks bitset is local to the call, so
// repeated calls with the same bound return identical results.
func Compute(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidBound, n)
	}
	if n < 2 {
		return []int{}, nil
	}

	marks := newBitset(n + 1) // set bit = known composite
	primes := make([]int, 0, primeCapacityHint(n))
	for i := 2; i <= n; i++ {
		if marks.get(i) {
			continue
		}
		primes = append(primes, i)
		// Multiples below i*i were already marked by a smaller prime
		// factor. The i <= n/i form avoids overflowing i*i.
		if i <= n/i {
			for j := i * i; j <= n; j += i {
				marks.set(j)
			}
		}
	}
	return primes, nil
}

// Count returns the prime-counting function pi(n) without materializing the
// prime list.
func Count(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidBound, n)
	}
	if n < 2 {
		return 0, nil
	}

	marks := newBitset(n + 1)
	count := 0
	for i := 2; i <= n; i++ {
		if marks.get(i) {
			continue
		}
		count++
		if i <= n/i {
			for j := i * i; j <= n; j += i {
				marks.set(j)
			}
		}
	}
	return count, nil
}

// primeCapacityHint estimates pi(n) from the prime-counting asymptotic
// n/ln(n) so the output slice rarely reallocates.
func primeCapacityHint(n int) int {
	if n < 10 {
		return 4
	}
	return int(float64(n) / math.Log(float64(n)))
}
