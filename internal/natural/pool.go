// This file provides scratch pooling for kernel multiplication and division
// so that repeated operations do not churn the garbage collector.

package natural

import (
	"math/big"
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Word Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// wordSlicePools pools []big.Word scratch buffers by size class. Classes are
// powers of four from 64 to 1M words; Karatsuba needs about four times the
// operand length, so this covers operands up to roughly 256K words.
var wordSlicePools = [...]sync.Pool{
	{New: func() any { return make([]big.Word, 64) }},
	{New: func() any { return make([]big.Word, 256) }},
	{New: func() any { return make([]big.Word, 1024) }},
	{New: func() any { return make([]big.Word, 4096) }},
	{New: func() any { return make([]big.Word, 16384) }},
	{New: func() any { return make([]big.Word, 65536) }},
	{New: func() any { return make([]big.Word, 262144) }},
	{New: func() any { return make([]big.Word, 1048576) }}, // 1M words = 8MB on 64-bit
}

// wordSliceSizes defines the size classes for word slice pools.
var wordSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// poolIndex returns the pool index for a given size, or -1 if the size is
// too large for pooling.
//
// Index i holds slices of 4^(i+3) words, so bits.Len(size-1) maps directly
// to the index.
func poolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordSliceSizes[len(wordSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireWordSlice gets a zeroed word slice of exactly size words. Sizes
// beyond the largest class are allocated directly.
//
//	scratch := acquireWordSlice(size)
//	defer releaseWordSlice(scratch)
func acquireWordSlice(size int) []big.Word {
	s := acquireWordSliceUnsafe(size)
	clear(s)
	return s
}

// acquireWordSliceUnsafe returns a pooled slice without clearing it. Kernel
// scratch is always written before it is read, so most callers use this.
func acquireWordSliceUnsafe(size int) []big.Word {
	idx := poolIndex(size)
	if idx < 0 {
		return make([]big.Word, size)
	}
	slice := wordSlicePools[idx].Get().([]big.Word)
	return slice[:size]
}

// releaseWordSlice returns a slice obtained from acquireWordSlice to its
// pool. Slices whose capacity does not match a class were allocated
// directly and are left to the GC. Safe to call with nil.
func releaseWordSlice(slice []big.Word) {
	if slice == nil {
		return
	}
	c := cap(slice)
	idx := poolIndex(c)
	if idx >= 0 && wordSliceSizes[idx] == c {
		wordSlicePools[idx].Put(slice[:c])
	}
}
