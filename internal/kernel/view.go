package kernel

// Environment returns the word a virtual appendix bit extends into: all
// zeros for a 0 appendix and all ones for a 1 appendix.
func Environment[T Element](appendix bool) T {
	if appendix {
		return ^T(0)
	}
	return 0
}

// Normalize trims most-significant words equal to the appendix pattern and
// returns the shortest prefix of x that represents the same value.
func Normalize[T Element](x []T, appendix bool) []T {
	env := Environment[T](appendix)
	n := len(x)
	for n > 0 && x[n-1] == env {
		n--
	}
	return x[:n]
}

// IsNormalized reports whether x has no redundant most-significant words.
func IsNormalized[T Element](x []T, appendix bool) bool {
	return len(x) == 0 || x[len(x)-1] != Environment[T](appendix)
}

// IsZero reports whether every word of x is zero.
func IsZero[T Element](x []T) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// Compare compares the finite unsigned values of a and b and returns -1, 0
// or +1. Missing high words of the shorter slice count as zero.
func Compare[T Element](a, b []T) int {
	a, b = Normalize(a, false), Normalize(b, false)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// BitLen returns the number of bits needed to represent x without its
// appendix: the position just above the highest bit that differs from the
// appendix.
func BitLen[T Element](x []T, appendix bool) uint {
	x = Normalize(x, appendix)
	if len(x) == 0 {
		return 0
	}
	top := x[len(x)-1]
	if appendix {
		top = ^top
	}
	w := Width[T]()
	return uint(len(x))*w - LeadingZeros(top)
}

// OnesCountWords returns the number of set bits across all words of x.
func OnesCountWords[T Element](x []T) uint {
	var n uint
	for _, w := range x {
		n += OnesCount(w)
	}
	return n
}

// TrailingZerosWords returns the number of trailing zero bits of x, or
// len(x) times the word width when x is zero.
func TrailingZerosWords[T Element](x []T) uint {
	w := Width[T]()
	for i, v := range x {
		if v != 0 {
			return uint(i)*w + TrailingZeros(v)
		}
	}
	return uint(len(x)) * w
}

// Fill sets every word of x to v.
func Fill[T Element](x []T, v T) {
	for i := range x {
		x[i] = v
	}
}
