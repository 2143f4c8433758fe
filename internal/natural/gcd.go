package natural

import (
	"math/big"

	"github.com/agbru/mpkernel/internal/kernel"
)

// GCD returns the greatest common divisor of x and y. GCD(0, 0) is 0.
func GCD(x, y Nat) Nat {
	countOp(opGCD)
	x, y = x.norm(), y.norm()
	if len(x) <= 1 && len(y) <= 1 {
		return FromWord(kernel.GCD(wordOf(x), wordOf(y)))
	}
	a, b := x.clone(), y.clone()
	for len(b) > 0 {
		_, r, _ := QuoRem(a, b)
		a, b = b, r
	}
	return a
}

// Bezout returns g = gcd(a, b) together with coefficients x and y such that
// a*x + b*y == g. Bezout(a, 0) is (a, 1, 0).
//
// Single-word operands below half the word range use the kernel's wrapping
// algorithm, whose coefficients then provably fit a signed word. Everything
// else runs the same recurrence with exact signed arithmetic.
func Bezout(a, b Nat) (g Nat, x, y Int) {
	countOp(opGCD)
	a, b = a.norm(), b.norm()
	if len(a) <= 1 && len(b) <= 1 {
		wa, wb := wordOf(a), wordOf(b)
		if wa>>(bitsPerWord-1) == 0 && wb>>(bitsPerWord-1) == 0 {
			d, cx, cy := kernel.Bezout(wa, wb)
			return FromWord(d), NewInt(int64(int(cx))), NewInt(int64(int(cy)))
		}
	}

	x0, x1 := NewInt(1), Int{}
	y0, y1 := Int{}, NewInt(1)
	for len(b) > 0 {
		q, r, _ := QuoRem(a, b)
		a, b = b, r
		qi := IntFromNat(q)
		x0, x1 = x1, x0.Sub(x1.Mul(qi))
		y0, y1 = y1, y0.Sub(y1.Mul(qi))
	}
	return a.clone(), x0, y0
}

// FromWord returns w as a Nat.
func FromWord(w big.Word) Nat {
	if w == 0 {
		return nil
	}
	return Nat{w}
}

func wordOf(x Nat) big.Word {
	if len(x) == 0 {
		return 0
	}
	return x[0]
}

// WordDivider divides naturals by one fixed single-word divisor using the
// kernel's precomputed multiply-add-shift constants. It is immutable and safe
// for concurrent use.
type WordDivider struct {
	d kernel.Divider[big.Word]
}

// NewWordDivider precomputes a divider for d.
func NewWordDivider(d big.Word) (*WordDivider, error) {
	nz, ok := kernel.NewNonzero(d)
	if !ok {
		return nil, ErrDivisionByZero
	}
	return &WordDivider{d: kernel.NewDivider(nz)}, nil
}

// Divisor returns the fixed divisor.
func (v *WordDivider) Divisor() big.Word {
	return v.d.Divisor
}

// QuoRem returns x / d and x mod d.
func (v *WordDivider) QuoRem(x Nat) (Nat, big.Word) {
	x = x.norm()
	if len(x) == 0 {
		return nil, 0
	}
	q := make(Nat, len(x))
	r := v.d.DivideWords([]big.Word(q), []big.Word(x))
	countOp(opQuoRem)
	return q.norm(), r
}

// QuoRemWord returns x / d and x mod d for a single divisor word.
func QuoRemWord(x Nat, d big.Word) (Nat, big.Word, error) {
	nz, ok := kernel.NewNonzero(d)
	if !ok {
		return nil, 0, ErrDivisionByZero
	}
	x = x.norm()
	if len(x) == 0 {
		return nil, 0, nil
	}
	q := make(Nat, len(x))
	r := kernel.DivideByWord([]big.Word(q), []big.Word(x), nz)
	countOp(opQuoRem)
	return q.norm(), r, nil
}
