package hwio

import (
	"fmt"
	"math/bits"
)

const (
	NumBits  = busSize
	wordSize = 64
	numWords = NumBits / wordSize
)

// Bitset holds one bit per bus address, used for breakpoints and
// watchpoints. The zero value is empty.
type Bitset struct {
	words [numWords]uint64
}

func (b *Bitset) Set(i uint16) {
	b.words[i/wordSize] |= 1 << (i % wordSize)
}

func (b *Bitset) Clear(i uint16) {
	b.words[i/wordSize] &^= 1 << (i % wordSize)
}

func (b *Bitset) Test(i uint16) bool {
	return b.words[i/wordSize]&(1<<(i%wordSize)) != 0
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Each calls fn for every set bit, in increasing order.
func (b *Bitset) Each(fn func(addr uint16)) {
	for wi, w := range b.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			fn(uint16(wi*wordSize + bit))
			w &= w - 1
		}
	}
}

// SetRange sets the bits in [start, end).
func (b *Bitset) SetRange(start, end uint) {
	b.applyRange(start, end, true)
}

// ClearRange clears the bits in [start, end).
func (b *Bitset) ClearRange(start, end uint) {
	b.applyRange(start, end, false)
}

func (b *Bitset) applyRange(start, end uint, set bool) {
	if start >= end || end > NumBits {
		panic(fmt.Sprintf("hwio: invalid bitset range [%d, %d)", start, end))
	}
	op := func(i uint, mask uint64) {
		if set {
			b.words[i] |= mask
		} else {
			b.words[i] &^= mask
		}
	}

	first, last := start/wordSize, (end-1)/wordSize
	lo, hi := start%wordSize, (end-1)%wordSize
	if first == last {
		op(first, (^uint64(0)>>(wordSize-1-hi+lo))<<lo)
		return
	}
	op(first, ^uint64(0)<<lo)
	for i := first + 1; i < last; i++ {
		op(i, ^uint64(0))
	}
	op(last, ^uint64(0)>>(wordSize-1-hi))
}

func (b *Bitset) Reset() {
	clear(b.words[:])
}

func (b *Bitset) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
}
