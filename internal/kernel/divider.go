package kernel

// Divider replaces division by a fixed divisor with a multiply, an add and a
// shift: for every dividend a of type T,
//
//	a / Divisor == hi(a*Multiplier + Increment) >> Shift
//
// where hi takes the upper word of the double-width result. A Divider is
// immutable after construction and safe to share.
type Divider[T Element] struct {
	Divisor    T
	Multiplier T
	Increment  T
	Shift      uint
}

// NewDivider precomputes the constants for divisor.
//
// With s = floor(log2 divisor), a power of two uses an all-ones multiplier
// and increment, which makes hi(a*Multiplier + Increment) equal to a.
// Otherwise q = floor(2^(W+s) / divisor) is rounded up with a zero increment
// when the rounding error fits within 2^s, and left truncated with an
// increment of q when it does not.
func NewDivider[T Element](divisor Nonzero[T]) Divider[T] {
	d := divisor.value
	w := Width[T]()
	s := w - 1 - LeadingZeros(d)

	if d&(d-1) == 0 {
		return Divider[T]{Divisor: d, Multiplier: Max[T](), Increment: Max[T](), Shift: s}
	}

	q, r := divWide(T(1)<<s, 0, d)
	if d-r <= T(1)<<s {
		return Divider[T]{Divisor: d, Multiplier: q + 1, Increment: 0, Shift: s}
	}
	return Divider[T]{Divisor: d, Multiplier: q, Increment: q, Shift: s}
}

// Quotient returns a / Divisor.
func (v Divider[T]) Quotient(a T) T {
	lo, hi := Times(a, v.Multiplier)
	if _, c := Plus(lo, v.Increment); c {
		hi++
	}
	return hi >> v.Shift
}

// QuotientAndRemainder returns a / Divisor and a % Divisor.
func (v Divider[T]) QuotientAndRemainder(a T) (q, r T) {
	q = v.Quotient(a)
	return q, a - q*v.Divisor
}

// DivideWords divides a multi-word dividend by the Divider's divisor,
// writing the quotient into quotient and returning the remainder. Each step
// reduces a two-word partial remainder with the precomputed constants instead
// of a hardware division, so it is only worthwhile when the same divisor is
// reused across many words.
func (v Divider[T]) DivideWords(quotient, dividend []T) T {
	assert(len(quotient) == len(dividend), "quotient length %d != %d", len(quotient), len(dividend))
	var r T
	for i := len(dividend) - 1; i >= 0; i-- {
		quotient[i], r = v.divideWide(r, dividend[i])
	}
	return r
}

// divideWide divides hi:lo by the divisor given hi < Divisor. The high word
// contributes hi*floor(B/d) plus hi*(B mod d) which is folded back through
// the single-word Quotient until the partial remainder fits a word.
func (v Divider[T]) divideWide(hi, lo T) (q, r T) {
	if hi == 0 {
		return v.QuotientAndRemainder(lo)
	}
	// B = bq*d + br with B the word base.
	bq, br := v.QuotientAndRemainder(Max[T]())
	br++
	if br == v.Divisor {
		bq, br = bq+1, 0
	}
	// hi:lo = hi*bq*d + hi*br + lo
	q = hi * bq
	plo, phi := Times(hi, br)
	plo, c := Plus(plo, lo)
	if c {
		phi++
	}
	for phi != 0 {
		// phi:plo = phi*B + plo = phi*bq*d + phi*br + plo
		q += phi * bq
		nlo, nhi := Times(phi, br)
		var c bool
		if plo, c = Plus(plo, nlo); c {
			nhi++
		}
		phi = nhi
	}
	pq, pr := v.QuotientAndRemainder(plo)
	return q + pq, pr
}
