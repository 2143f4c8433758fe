package kernel

// ─────────────────────────────────────────────────────────────────────────────
// Single-word divisor
// ─────────────────────────────────────────────────────────────────────────────

// DivideByWord divides dividend by a single word, writing the quotient into
// quotient and returning the remainder. The words are visited from the most
// significant down, so quotient may be the same slice as dividend.
func DivideByWord[T Element](quotient, dividend []T, divisor Nonzero[T]) T {
	assert(len(quotient) == len(dividend), "quotient length %d != %d", len(quotient), len(dividend))
	d := divisor.value
	var r T
	for i := len(dividend) - 1; i >= 0; i-- {
		quotient[i], r = divWide(r, dividend[i], d)
	}
	return r
}

// RemainderByWord returns dividend mod divisor without producing a quotient.
func RemainderByWord[T Element](dividend []T, divisor Nonzero[T]) T {
	d := divisor.value
	var r T
	for i := len(dividend) - 1; i >= 0; i-- {
		_, r = divWide(r, dividend[i], d)
	}
	return r
}

// ─────────────────────────────────────────────────────────────────────────────
// Multi-word divisor
// ─────────────────────────────────────────────────────────────────────────────

// IsNormalizedDivisor reports whether divisor is non-empty with the top bit
// of its most-significant word set.
func IsNormalizedDivisor[T Element](divisor []T) bool {
	return len(divisor) > 0 && divisor[len(divisor)-1]>>(Width[T]()-1) == 1
}

// DivideLong performs normalized long division in place.
//
// divisor must be normalized and len(dividend) must equal
// len(quotient)+len(divisor), with the top len(divisor) words of dividend
// less than divisor. On return quotient holds the quotient and the low
// len(divisor) words of dividend hold the remainder; the words above are
// zero.
//
// Each quotient word is estimated from the top two words of the current
// window and the top word of the divisor. The estimate is never low and
// exceeds the true digit by at most two, so the window is repaired by adding
// the divisor back at most twice.
func DivideLong[T Element](quotient, dividend, divisor []T) {
	n := len(divisor)
	assert(IsNormalizedDivisor(divisor), "divisor is not normalized")
	assert(len(dividend) == len(quotient)+n, "dividend length %d != %d+%d", len(dividend), len(quotient), n)
	if debugAssertions {
		assert(Compare(dividend[len(quotient):], divisor) < 0, "quotient does not fit")
	}

	top := divisor[n-1]
	for j := len(quotient) - 1; j >= 0; j-- {
		window := dividend[j : j+n+1]

		var estimate T
		if window[n] >= top {
			estimate = Max[T]()
		} else {
			estimate, _ = divWide(window[n], window[n-1], top)
		}

		borrow := subMul(window[:n], divisor, estimate, 0)
		var negative bool
		window[n], negative = Minus(window[n], borrow)

		corrections := 0
		for negative {
			estimate--
			negative = !Increment(window, divisor, false)
			corrections++
		}
		assert(corrections <= 2, "quotient estimate off by %d", corrections)
		quotient[j] = estimate
	}
}

// DivideScratchLen returns the scratch DivideInto needs for a dividend of m
// words and a divisor of n words.
func DivideScratchLen(m, n int) int {
	return m + n + 1
}

// DivideInto sets quotient and remainder such that
// dividend = quotient*divisor + remainder with remainder < divisor.
//
// len(quotient) must equal len(dividend) and len(remainder) must equal
// len(divisor). Zero high words of divisor are ignored, but at least one word
// must be non-zero. scratch must hold DivideScratchLen(len(dividend),
// len(divisor)) words. Operands are shifted so the divisor is normalized,
// divided with DivideLong, and the remainder is shifted back.
func DivideInto[T Element](quotient, remainder, dividend, divisor, scratch []T) {
	assert(len(quotient) == len(dividend), "quotient length %d != %d", len(quotient), len(dividend))
	assert(len(remainder) == len(divisor), "remainder length %d != %d", len(remainder), len(divisor))

	d := Normalize(divisor, false)
	assert(len(d) > 0, "division by zero")
	m, n := len(dividend), len(d)

	if m < n {
		copy(remainder, dividend)
		clear(remainder[m:])
		clear(quotient)
		return
	}
	if n == 1 {
		r := DivideByWord(quotient, dividend, MustNonzero(d[0]))
		clear(remainder)
		remainder[0] = r
		return
	}

	assert(len(scratch) >= DivideScratchLen(m, n), "scratch %d < %d", len(scratch), DivideScratchLen(m, n))
	s := LeadingZeros(d[n-1])
	nd := scratch[:n]
	copy(nd, d)
	Upshift(nd, 0, s, 0)

	nu := scratch[n : n+m+1]
	copy(nu, dividend)
	nu[m] = 0
	Upshift(nu, 0, s, 0)

	q := m - n + 1
	DivideLong(quotient[:q], nu, nd)
	clear(quotient[q:])

	Downshift(nu[:n], 0, s, 0)
	copy(remainder, nu[:n])
	clear(remainder[n:])
}
