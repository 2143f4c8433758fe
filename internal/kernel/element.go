package kernel

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Element is a fixed-width unsigned machine word, the unit of storage and of
// carry propagation.
type Element interface {
	constraints.Unsigned
}

// Width returns the number of bits in T.
func Width[T Element]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// Max returns the all-ones value of T.
func Max[T Element]() T {
	return ^T(0)
}

// Plus returns a+b and whether the sum wrapped.
func Plus[T Element](a, b T) (T, bool) {
	s := a + b
	return s, s < a
}

// Minus returns a-b and whether the difference wrapped.
func Minus[T Element](a, b T) (T, bool) {
	return a - b, a < b
}

// plusBit returns a+b+c and the carry out.
func plusBit[T Element](a, b T, c bool) (T, bool) {
	s, o := Plus(a, b)
	if c {
		s++
		o = o || s == 0
	}
	return s, o
}

// minusBit returns a-b-c and the borrow out.
func minusBit[T Element](a, b T, c bool) (T, bool) {
	d, o := Minus(a, b)
	if c {
		o = o || d == 0
		d--
	}
	return d, o
}

// Times returns the double-width product a*b as its low and high halves.
func Times[T Element](a, b T) (lo, hi T) {
	w := Width[T]()
	if w == 64 {
		h, l := bits.Mul64(uint64(a), uint64(b))
		return T(l), T(h)
	}
	p := uint64(a) * uint64(b)
	return T(p), T(p >> w)
}

// DivideWide divides the double-width value hi:lo by d and returns the
// single-word quotient and remainder. The quotient must fit: hi < d.
func DivideWide[T Element](hi, lo T, d Nonzero[T]) (q, r T) {
	return divWide(hi, lo, d.value)
}

func divWide[T Element](hi, lo, d T) (q, r T) {
	assert(d != 0, "division by zero")
	assert(hi < d, "quotient overflow: %d >= %d", hi, d)
	w := Width[T]()
	if w == 64 {
		qq, rr := bits.Div64(uint64(hi), uint64(lo), uint64(d))
		return T(qq), T(rr)
	}
	n := uint64(hi)<<w | uint64(lo)
	return T(n / uint64(d)), T(n % uint64(d))
}

// LeadingZeros returns the number of leading zero bits in x.
func LeadingZeros[T Element](x T) uint {
	return uint(bits.LeadingZeros64(uint64(x))) - (64 - Width[T]())
}

// TrailingZeros returns the number of trailing zero bits in x, or the width
// of T when x is zero.
func TrailingZeros[T Element](x T) uint {
	if x == 0 {
		return Width[T]()
	}
	return uint(bits.TrailingZeros64(uint64(x)))
}

// OnesCount returns the number of set bits in x.
func OnesCount[T Element](x T) uint {
	return uint(bits.OnesCount64(uint64(x)))
}

// Nonzero holds a value proven to be non-zero at construction, so division
// code downstream can rely on it.
type Nonzero[T Element] struct {
	value T
}

// NewNonzero wraps v, reporting false when v is zero.
func NewNonzero[T Element](v T) (Nonzero[T], bool) {
	return Nonzero[T]{value: v}, v != 0
}

// MustNonzero wraps v and panics when v is zero.
func MustNonzero[T Element](v T) Nonzero[T] {
	if v == 0 {
		panic("kernel: zero divisor")
	}
	return Nonzero[T]{value: v}
}

// Value returns the wrapped divisor.
func (n Nonzero[T]) Value() T {
	return n.value
}
