package natural

import "math/big"

// Int is a signed integer stored as a sign and a Nat magnitude. Zero is
// never negative.
type Int struct {
	neg bool
	abs Nat
}

// NewInt returns v as an Int.
func NewInt(v int64) Int {
	if v < 0 {
		return Int{neg: true, abs: FromUint64(-uint64(v))}
	}
	return Int{abs: FromUint64(uint64(v))}
}

// IntFromNat returns the non-negative Int with magnitude x.
func IntFromNat(x Nat) Int {
	return Int{abs: x}
}

func makeInt(neg bool, abs Nat) Int {
	abs = abs.norm()
	return Int{neg: neg && len(abs) > 0, abs: abs}
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// Abs returns the magnitude of x.
func (x Int) Abs() Nat {
	return x.abs
}

// Neg returns -x.
func (x Int) Neg() Int {
	return makeInt(!x.neg, x.abs)
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, Add(x.abs, y.abs))
	}
	if Cmp(x.abs, y.abs) >= 0 {
		d, _ := Sub(x.abs, y.abs)
		return makeInt(x.neg, d)
	}
	d, _ := Sub(y.abs, x.abs)
	return makeInt(y.neg, d)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, Mul(x.abs, y.abs))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return -Cmp(x.abs, y.abs)
	}
	return Cmp(x.abs, y.abs)
}

// Big returns x as a big.Int.
func (x Int) Big() *big.Int {
	b := x.abs.Big()
	if x.neg {
		b.Neg(b)
	}
	return b
}

// Text returns x in the given base with a leading minus sign when negative.
func (x Int) Text(base int) string {
	return x.Big().Text(base)
}

// String returns x in base 10.
func (x Int) String() string {
	return x.Text(10)
}
