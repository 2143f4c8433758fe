package kernel

import "golang.org/x/exp/constraints"

// Bezout returns gcd(lhs, rhs) together with coefficients x and y such that
// lhs*x + rhs*y == gcd in two's-complement arithmetic on T. Reading x and y
// as signed values of the same width gives the textbook coefficients; the
// last recurrence step may wrap for adversarial operands near the top of the
// range, which affects only the coefficients and never the gcd.
//
// Bezout(a, 0) returns (a, 1, 0), including Bezout(0, 0).
func Bezout[T Element](lhs, rhs T) (divisor, lhsCoefficient, rhsCoefficient T) {
	x0, x1 := T(1), T(0)
	y0, y1 := T(0), T(1)
	for rhs != 0 {
		q, r := divWide(0, lhs, rhs)
		lhs, rhs = rhs, r
		x0, x1 = x1, x0-x1*q
		y0, y1 = y1, y0-y1*q
	}
	return lhs, x0, y0
}

// BezoutSigned computes the gcd of two signed values and their coefficients.
// The magnitudes are run through Bezout and each coefficient is negated
// when its operand is negative. The gcd is returned unsigned so that
// gcd(MinInt, 0) remains representable.
func BezoutSigned[S constraints.Signed](lhs, rhs S) (divisor uint64, lhsCoefficient, rhsCoefficient S) {
	g, x, y := Bezout(magnitude(lhs), magnitude(rhs))
	lhsCoefficient, rhsCoefficient = S(x), S(y)
	if lhs < 0 {
		lhsCoefficient = -lhsCoefficient
	}
	if rhs < 0 {
		rhsCoefficient = -rhsCoefficient
	}
	return g, lhsCoefficient, rhsCoefficient
}

// GCD returns the greatest common divisor of lhs and rhs.
func GCD[T Element](lhs, rhs T) T {
	for rhs != 0 {
		lhs, rhs = rhs, lhs%rhs
	}
	return lhs
}

func magnitude[S constraints.Signed](v S) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}
