package sieve

import (
	"fmt"
	"sort"
	"sync"
)

// Cache memoizes sieve results across calls without any process-wide state:
// the caller owns the cache and its lifecycle. It retains the prime list for
// the largest bound seen so far and answers smaller bounds from a prefix.
//
// Safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	bound  int   // largest bound the list covers
	primes []int // primes <= bound, ascending
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{bound: 1}
}

// Primes returns all primes <= n, extending the cached sieve if n exceeds
// the largest bound computed so far. The returned slice is a copy; mutating
// it does not affect the cache.
func (c *Cache) Primes(n int) ([]int, error) {
	prefix, err := c.prefix(n)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(prefix))
	copy(out, prefix)
	return out, nil
}

// Count returns pi(n), extending the cached sieve if needed.
func (c *Cache) Count(n int) (int, error) {
	prefix, err := c.prefix(n)
	if err != nil {
		return 0, err
	}
	return len(prefix), nil
}

// prefix returns the internal slice of primes <= n. Callers must not retain
// it past copying.
func (c *Cache) prefix(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidBound, n)
	}

	c.mu.RLock()
	if n <= c.bound {
		defer c.mu.RUnlock()
		return c.primes[:c.cut(n)], nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if n > c.bound {
		// Doubling growth amortizes a run of increasing bounds.
		target := n
		if 2*c.bound > target {
			target = 2 * c.bound
		}
		primes, err := Compute(target)
		if err != nil {
			return nil, err
		}
		c.bound = target
		c.primes = primes
	}
	return c.primes[:c.cut(n)], nil
}

// cut returns the number of cached primes <= n. Callers hold c.mu.
func (c *Cache) cut(n int) int {
	return sort.SearchInts(c.primes, n+1)
}
