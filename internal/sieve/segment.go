package sieve

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// windowSize is the span of one segmented-sieve window. Windows this size
// keep the marks bitset cache-resident while amortizing the base-prime scan.
const windowSize = 1 << 16

// Range returns all primes p with lo <= p <= hi in ascending order.
//
// Only base primes up to sqrt(hi) are sieved in full; the window itself uses
// a marks bitset of hi-lo+1 bits, so wide bounds with narrow windows stay
// cheap. Negative bounds and inverted ranges fail with ErrInvalidBound.
func Range(lo, hi int) ([]int, error) {
	if lo < 0 || hi < 0 {
		return nil, fmt.Errorf("%w: range [%d, %d] has a negative bound", ErrInvalidBound, lo, hi)
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: range [%d, %d] is inverted", ErrInvalidBound, lo, hi)
	}
	if hi < 2 {
		return []int{}, nil
	}
	if lo < 2 {
		lo = 2
	}

	base, err := Compute(isqrt(hi))
	if err != nil {
		return nil, err
	}
	return sieveWindow(lo, hi, base), nil
}

// ComputeParallel returns the same result as Compute(n), sieving disjoint
// windows above sqrt(n) on an errgroup worker pool. Windows are merged in
// ascending order, so the output is deterministic. workers <= 0 uses
// GOMAXPROCS.
func ComputeParallel(ctx context.Context, n, workers int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidBound, n)
	}
	if n <= windowSize {
		return Compute(n)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	root := isqrt(n)
	base, err := Compute(root)
	if err != nil {
		return nil, err
	}

	numWindows := (n - root + windowSize - 1) / windowSize
	windows := make([][]int, numWindows)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for wi := 0; wi < numWindows; wi++ {
		wi := wi
		lo := root + 1 + wi*windowSize
		hi := lo + windowSize - 1
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			windows[wi] = sieveWindow(lo, hi, base)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	primes := make([]int, 0, primeCapacityHint(n))
	primes = append(primes, base...)
	for _, w := range windows {
		primes = append(primes, w...)
	}
	return primes, nil
}

// sieveWindow marks composites in [lo, hi] using the supplied base primes
// and collects the survivors. Callers guarantee lo >= 2 and that base holds
// every prime up to sqrt(hi).
func sieveWindow(lo, hi int, base []int) []int {
	marks := newBitset(hi - lo + 1)
	for _, p := range base {
		if p > hi/p {
			break
		}
		// First multiple of p inside the window, never below p*p.
		first := ((lo + p - 1) / p) * p
		if first < p*p {
			first = p * p
		}
		for j := first; j <= hi; j += p {
			marks.set(j - lo)
		}
	}

	primes := []int{}
	for i := lo; i <= hi; i++ {
		if !marks.get(i - lo) {
			primes = append(primes, i)
		}
	}
	return primes
}

// isqrt returns the integer square root of n.
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
