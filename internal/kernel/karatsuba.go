package kernel

// KaratsubaMultiplyInto sets dst to a*b + increment, splitting the operands
// at the top level regardless of the threshold. Recursive products below the
// threshold fall back to schoolbook. scratch must hold at least
// ScratchLen(len(a), len(b)) words.
func KaratsubaMultiplyInto[T Element](dst, a, b []T, increment T, scratch []T) {
	KaratsubaMultiplyWithThreshold(dst, a, b, increment, scratch, KaratsubaThreshold())
}

// KaratsubaMultiplyWithThreshold is KaratsubaMultiplyInto with an explicit
// cutover for the recursive products instead of the global one. Values
// below 2 are raised to 2.
func KaratsubaMultiplyWithThreshold[T Element](dst, a, b []T, increment T, scratch []T, threshold int) {
	assert(len(dst) == len(a)+len(b), "product length %d != %d+%d", len(dst), len(a), len(b))
	if min(len(a), len(b)) < minKaratsubaThreshold {
		schoolbook(dst, a, b, increment)
		return
	}
	assert(len(scratch) >= ScratchLen(len(a), len(b)), "scratch %d < %d", len(scratch), ScratchLen(len(a), len(b)))
	karatsuba(dst, a, b, scratch, max(threshold, minKaratsubaThreshold))
	IncrementWord(dst, increment)
}

// KaratsubaSquareInto sets dst to a*a + increment, recursing on squares.
func KaratsubaSquareInto[T Element](dst, a []T, increment T, scratch []T) {
	assert(len(dst) == 2*len(a), "square length %d != 2*%d", len(dst), len(a))
	if len(a) < minKaratsubaThreshold {
		schoolbookSquare(dst, a, increment)
		return
	}
	assert(len(scratch) >= ScratchLen(len(a), len(a)), "scratch %d < %d", len(scratch), ScratchLen(len(a), len(a)))
	karatsubaSquare(dst, a, scratch, KaratsubaThreshold())
	IncrementWord(dst, increment)
}

// karatsuba computes dst = a*b for operands of at least two words each.
//
// With a = a1·B^k + a0 and b = b1·B^k + b0:
//
//	a*b = z2·B^2k + (z0 + z2 - (a1-a0)(b1-b0))·B^k + z0
//
// where z0 = a0*b0 and z2 = a1*b1. The differences are kept as magnitudes
// and the sign of their product decides whether it is added or subtracted.
func karatsuba[T Element](dst, a, b, scratch []T, threshold int) {
	if len(a) < len(b) {
		a, b = b, a
	}
	m, n := len(a), len(b)
	if m >= 2*n {
		karatsubaUnbalanced(dst, a, b, scratch, threshold)
		return
	}

	k := m / 2
	h := m - k
	a0, a1 := a[:k], a[k:]
	b0, b1 := b[:k], b[k:]

	multiply(dst[:2*k], a0, b0, scratch, threshold)
	multiply(dst[2*k:], a1, b1, scratch, threshold)

	dbLen := max(n-k, k)
	da := scratch[:h]
	db := scratch[h : h+dbLen]
	negA := difference(da, a1, a0)
	negB := difference(db, b1, b0)

	mid := scratch[2*h : 4*h+1]
	d := mid[:h+dbLen]
	multiply(d, da, db, scratch[4*h+1:], threshold)
	clear(mid[h+dbLen:])

	// mid = z0 + z2 - (a1-a0)(b1-b0), evaluated modulo len(mid) words.
	if negA == negB {
		Negate(mid)
	}
	Increment(mid, dst[:2*k], false)
	Increment(mid, dst[2*k:], false)
	combine(dst, mid, k)
}

// karatsubaUnbalanced multiplies a long operand by a much shorter one by
// cutting the long one into chunks the size of the short one.
func karatsubaUnbalanced[T Element](dst, a, b, scratch []T, threshold int) {
	n := len(b)
	multiply(dst[:2*n], a[:n], b, scratch, threshold)
	clear(dst[2*n:])

	part := scratch[:2*n]
	rest := scratch[2*n:]
	for i := n; i < len(a); i += n {
		chunk := a[i:min(i+n, len(a))]
		p := part[:len(chunk)+n]
		multiply(p, chunk, b, rest, threshold)
		overflow := Increment(dst[i:], p, false)
		assert(!overflow, "unbalanced product overflowed")
	}
}

// karatsubaSquare computes dst = a*a; the middle term is always
// z0 + z2 - (a1-a0)².
func karatsubaSquare[T Element](dst, a, scratch []T, threshold int) {
	m := len(a)
	k := m / 2
	h := m - k
	a0, a1 := a[:k], a[k:]

	square(dst[:2*k], a0, scratch, threshold)
	square(dst[2*k:], a1, scratch, threshold)

	da := scratch[:h]
	difference(da, a1, a0)

	mid := scratch[h : 3*h+1]
	square(mid[:2*h], da, scratch[3*h+1:], threshold)
	mid[2*h] = 0

	Negate(mid)
	Increment(mid, dst[:2*k], false)
	Increment(mid, dst[2*k:], false)
	combine(dst, mid, k)
}

// combine adds the middle term at word offset k. Any words of mid beyond
// the end of dst are zero because the full product fits dst.
func combine[T Element](dst, mid []T, k int) {
	top := min(len(mid), len(dst)-k)
	if debugAssertions {
		assert(IsZero(mid[top:]), "middle term exceeds product width")
	}
	overflow := Increment(dst[k:], mid[:top], false)
	assert(!overflow, "middle term overflowed product")
}

// difference sets dst to |x - y| and reports whether x < y. Both operands
// are zero-extended to len(dst).
func difference[T Element](dst, x, y []T) bool {
	copy(dst, x)
	clear(dst[len(x):])
	if !Decrement(dst, y, false) {
		return false
	}
	copy(dst, y)
	clear(dst[len(y):])
	Decrement(dst, x, false)
	return true
}
