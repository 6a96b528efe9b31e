package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitset_SetGet(t *testing.T) {
	b := newBitset(200)

	for i := 0; i < 200; i++ {
		assert.False(t, b.get(i), "fresh bitset has bit %d set", i)
	}

	// Word-boundary indices are the interesting ones.
	for _, i := range []int{0, 1, 63, 64, 65, 127, 128, 199} {
		b.set(i)
	}
	for _, i := range []int{0, 1, 63, 64, 65, 127, 128, 199} {
		assert.True(t, b.get(i), "bit %d", i)
	}
	for _, i := range []int{2, 62, 66, 126, 129, 198} {
		assert.False(t, b.get(i), "bit %d", i)
	}
}

func TestBitset_SetIsIdempotent(t *testing.T) {
	b := newBitset(64)
	b.set(40)
	b.set(40)
	assert.True(t, b.get(40))
	assert.False(t, b.get(41))
}
