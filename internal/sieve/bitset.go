package sieve

// bitset is a word-packed composite-marks array. A set bit means "known
// composite"; unset bits are candidates still presumed prime. One invocation
// owns one bitset, so there is no locking.
type bitset struct {
	words []uint64
}

// newBitset returns a bitset covering indices 0..size-1, all unset.
func newBitset(size int) *bitset {
	return &bitset{words: make([]uint64, (size+63)/64)}
}

func (b *bitset) set(i int) {
	b.words[i>>6] |= 1 << (uint(i) & 63)
}

func (b *bitset) get(i int) bool {
	return b.words[i>>6]&(1<<(uint(i)&63)) != 0
}
