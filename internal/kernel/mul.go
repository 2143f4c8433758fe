package kernel

import "sync/atomic"

// DefaultKaratsubaThreshold is the operand size in words below which
// schoolbook multiplication beats Karatsuba. It is a performance cutover, not
// a correctness boundary: both algorithms are exact at every size.
const DefaultKaratsubaThreshold = 32

// minKaratsubaThreshold is the smallest size at which an operand can still be
// split into two non-empty halves.
const minKaratsubaThreshold = 2

// karatsubaThreshold holds the tuned cutover; zero means the default.
var karatsubaThreshold atomic.Int64

// KaratsubaThreshold returns the current Karatsuba cutover in words.
func KaratsubaThreshold() int {
	if t := karatsubaThreshold.Load(); t > 0 {
		return int(t)
	}
	return DefaultKaratsubaThreshold
}

// SetKaratsubaThreshold changes the Karatsuba cutover. Values below 2 are
// raised to 2; zero restores the default.
//
// The cutover is process-wide and meant to be set once at startup. Changing
// it while other goroutines multiply switches their algorithm mid-run; the
// products stay bit-identical. Code that needs its own cutover, such as a
// benchmark sweep, should call KaratsubaMultiplyWithThreshold instead.
func SetKaratsubaThreshold(threshold int) {
	if threshold == 0 {
		karatsubaThreshold.Store(0)
		return
	}
	if threshold < minKaratsubaThreshold {
		threshold = minKaratsubaThreshold
	}
	karatsubaThreshold.Store(int64(threshold))
}

// ScratchLen returns the number of scratch words MultiplyInto and SquareInto
// need for operands of m and n words. The bound holds for every threshold.
func ScratchLen(m, n int) int {
	l := max(m, n)
	total := 0
	for l >= minKaratsubaThreshold {
		h := l - l/2
		total += 4*h + 2
		l = h
	}
	return total
}

// MultiplyInto sets dst to a*b + increment. len(dst) must equal
// len(a)+len(b) and dst must not overlap a or b. Operands whose shorter side
// reaches the Karatsuba threshold use Karatsuba and need
// ScratchLen(len(a), len(b)) words of scratch; smaller ones ignore it.
func MultiplyInto[T Element](dst, a, b []T, increment T, scratch []T) {
	assert(len(dst) == len(a)+len(b), "product length %d != %d+%d", len(dst), len(a), len(b))
	multiply(dst, a, b, scratch, KaratsubaThreshold())
	IncrementWord(dst, increment)
}

// SquareInto sets dst to a*a + increment. len(dst) must equal 2*len(a).
func SquareInto[T Element](dst, a []T, increment T, scratch []T) {
	assert(len(dst) == 2*len(a), "square length %d != 2*%d", len(dst), len(a))
	square(dst, a, scratch, KaratsubaThreshold())
	IncrementWord(dst, increment)
}

// multiply dispatches on the shorter operand's size.
func multiply[T Element](dst, a, b, scratch []T, threshold int) {
	if min(len(a), len(b)) < threshold {
		schoolbook(dst, a, b, 0)
		return
	}
	karatsuba(dst, a, b, scratch, threshold)
}

func square[T Element](dst, a, scratch []T, threshold int) {
	if len(a) < threshold {
		schoolbookSquare(dst, a, 0)
		return
	}
	karatsubaSquare(dst, a, scratch, threshold)
}

// ─────────────────────────────────────────────────────────────────────────────
// Schoolbook
// ─────────────────────────────────────────────────────────────────────────────

// SchoolbookMultiplyInto sets dst to a*b + increment with the O(m·n) long
// multiplication. len(dst) must equal len(a)+len(b).
func SchoolbookMultiplyInto[T Element](dst, a, b []T, increment T) {
	assert(len(dst) == len(a)+len(b), "product length %d != %d+%d", len(dst), len(a), len(b))
	schoolbook(dst, a, b, increment)
}

// schoolbook multiplies the whole of a by one word of b per pass and
// accumulates each pass at that word's offset.
func schoolbook[T Element](dst, a, b []T, increment T) {
	m := len(a)
	if len(b) == 0 {
		clear(dst)
		IncrementWord(dst, increment)
		return
	}
	dst[m] = MultiplyByWord(dst[:m], a, b[0], increment)
	for j := 1; j < len(b); j++ {
		dst[j+m] = addMul(dst[j:j+m], a, b[j], 0)
	}
}

// SchoolbookSquareInto sets dst to a*a + increment. Each off-diagonal product
// a[i]*a[j] with i < j is computed once and doubled; each diagonal product
// a[i]*a[i] is added once.
func SchoolbookSquareInto[T Element](dst, a []T, increment T) {
	assert(len(dst) == 2*len(a), "square length %d != 2*%d", len(dst), len(a))
	schoolbookSquare(dst, a, increment)
}

func schoolbookSquare[T Element](dst, a []T, increment T) {
	n := len(a)
	clear(dst)
	for i := 0; i+1 < n; i++ {
		dst[i+n] = addMul(dst[2*i+1:i+n], a[i+1:], a[i], 0)
	}
	Upshift(dst, 0, 1, 0)

	var c bool
	for i, v := range a {
		lo, hi := Times(v, v)
		dst[2*i], c = plusBit(dst[2*i], lo, c)
		dst[2*i+1], c = plusBit(dst[2*i+1], hi, c)
	}
	assert(!c, "square overflowed its destination")
	IncrementWord(dst, increment)
}
