package kernel

// ─────────────────────────────────────────────────────────────────────────────
// Increment
// ─────────────────────────────────────────────────────────────────────────────

// IncrementBit adds a single bit to x in place and reports whether the carry
// escaped the most-significant word.
func IncrementBit[T Element](x []T, bit bool) bool {
	if !bit {
		return false
	}
	for i := range x {
		x[i]++
		if x[i] != 0 {
			return false
		}
	}
	return true
}

// IncrementWord adds w to x in place and reports whether the carry escaped.
// An empty x overflows for any non-zero w.
func IncrementWord[T Element](x []T, w T) bool {
	if len(x) == 0 {
		return w != 0
	}
	var c bool
	x[0], c = Plus(x[0], w)
	return IncrementBit(x[1:], c)
}

// IncrementSameSize adds y plus bit to x word by word without propagating
// past len(y), and returns the final carry. x and y must have equal lengths.
func IncrementSameSize[T Element](x, y []T, bit bool) bool {
	assert(len(x) == len(y), "increment length mismatch: %d != %d", len(x), len(y))
	c := bit
	for i, v := range y {
		x[i], c = plusBit(x[i], v, c)
	}
	return c
}

// Increment adds y plus bit to x in place, propagating the carry through the
// words of x above len(y). It reports whether the carry escaped x.
func Increment[T Element](x, y []T, bit bool) bool {
	assert(len(y) <= len(x), "addend longer than destination: %d > %d", len(y), len(x))
	c := IncrementSameSize(x[:len(y)], y, bit)
	return IncrementBit(x[len(y):], c)
}

// addMul computes x += y*m + c over len(y) words and returns the carry word.
func addMul[T Element](x, y []T, m, c T) T {
	for i, v := range y {
		lo, hi := Times(v, m)
		var o bool
		if lo, o = Plus(lo, c); o {
			hi++
		}
		if x[i], o = Plus(x[i], lo); o {
			hi++
		}
		c = hi
	}
	return c
}

// IncrementScaled adds y*multiplier + plus to x in place. Each source word is
// multiplied, its low half accumulated into x and its high half carried to
// the next word; the last carry is propagated through the rest of x. It
// reports whether the carry escaped x.
func IncrementScaled[T Element](x, y []T, multiplier, plus T) bool {
	assert(len(y) <= len(x), "addend longer than destination: %d > %d", len(y), len(x))
	c := addMul(x[:len(y)], y, multiplier, plus)
	return IncrementWord(x[len(y):], c)
}

// MultiplyByWord sets dst to a*multiplier + increment over len(a) words and
// returns the high word that did not fit. dst and a may be the same slice.
func MultiplyByWord[T Element](dst, a []T, multiplier, increment T) T {
	assert(len(dst) == len(a), "scale length mismatch: %d != %d", len(dst), len(a))
	c := increment
	for i, v := range a {
		lo, hi := Times(v, multiplier)
		var o bool
		if dst[i], o = Plus(lo, c); o {
			hi++
		}
		c = hi
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Decrement
// ─────────────────────────────────────────────────────────────────────────────

// DecrementBit subtracts a single bit from x in place and reports whether the
// borrow escaped the most-significant word.
func DecrementBit[T Element](x []T, bit bool) bool {
	if !bit {
		return false
	}
	for i := range x {
		x[i]--
		if x[i] != ^T(0) {
			return false
		}
	}
	return true
}

// DecrementWord subtracts w from x in place and reports whether the borrow
// escaped.
func DecrementWord[T Element](x []T, w T) bool {
	if len(x) == 0 {
		return w != 0
	}
	var b bool
	x[0], b = Minus(x[0], w)
	return DecrementBit(x[1:], b)
}

// DecrementSameSize subtracts y plus bit from x word by word without
// propagating past len(y), and returns the final borrow.
func DecrementSameSize[T Element](x, y []T, bit bool) bool {
	assert(len(x) == len(y), "decrement length mismatch: %d != %d", len(x), len(y))
	b := bit
	for i, v := range y {
		x[i], b = minusBit(x[i], v, b)
	}
	return b
}

// Decrement subtracts y plus bit from x in place, propagating the borrow
// through the words of x above len(y). It reports whether the borrow escaped.
func Decrement[T Element](x, y []T, bit bool) bool {
	assert(len(y) <= len(x), "subtrahend longer than destination: %d > %d", len(y), len(x))
	b := DecrementSameSize(x[:len(y)], y, bit)
	return DecrementBit(x[len(y):], b)
}

// subMul computes x -= y*m + c over len(y) words and returns the borrow word.
func subMul[T Element](x, y []T, m, c T) T {
	for i, v := range y {
		lo, hi := Times(v, m)
		var o bool
		if lo, o = Plus(lo, c); o {
			hi++
		}
		if x[i], o = Minus(x[i], lo); o {
			hi++
		}
		c = hi
	}
	return c
}

// DecrementScaled subtracts y*multiplier + plus from x in place, mirroring
// IncrementScaled. It reports whether the borrow escaped x.
func DecrementScaled[T Element](x, y []T, multiplier, plus T) bool {
	assert(len(y) <= len(x), "subtrahend longer than destination: %d > %d", len(y), len(x))
	b := subMul(x[:len(y)], y, multiplier, plus)
	return DecrementWord(x[len(y):], b)
}

// Negate replaces x with its two's-complement negation modulo 2^(len(x)*W)
// and reports whether x was non-zero.
func Negate[T Element](x []T) bool {
	for i := range x {
		x[i] = ^x[i]
	}
	return !IncrementBit(x, true)
}
