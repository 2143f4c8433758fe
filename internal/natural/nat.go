package natural

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/agbru/mpkernel/internal/kernel"
)

var (
	// ErrDivisionByZero is returned by QuoRem and the word division helpers
	// for a zero divisor.
	ErrDivisionByZero = errors.New("natural: division by zero")
	// ErrUnderflow is returned by Sub when the result would be negative.
	ErrUnderflow = errors.New("natural: subtraction underflow")
	// ErrSyntax is returned when text cannot be parsed as a number.
	ErrSyntax = errors.New("natural: invalid number syntax")
)

// Nat is a non-negative integer stored as normalized little-endian words.
type Nat []big.Word

// norm drops zero high words.
func (z Nat) norm() Nat {
	return Nat(kernel.Normalize([]big.Word(z), false))
}

func (x Nat) clone() Nat {
	if len(x) == 0 {
		return nil
	}
	return append(Nat(nil), x...)
}

// FromUint64 returns v as a Nat.
func FromUint64(v uint64) Nat {
	if v == 0 {
		return nil
	}
	if bitsPerWord == 64 {
		return Nat{big.Word(v)}
	}
	return Nat{big.Word(v), big.Word(v >> 32)}.norm()
}

// FromBig converts a non-negative big.Int.
func FromBig(x *big.Int) (Nat, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrUnderflow, x)
	}
	return Nat(x.Bits()).clone().norm(), nil
}

// Big returns x as a big.Int that does not share memory with x.
func (x Nat) Big() *big.Int {
	return new(big.Int).SetBits(append([]big.Word(nil), x...))
}

// ParseNat parses s in the given base (2 to 62, or 0 for prefix detection).
func ParseNat(s string, base int) (Nat, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return FromBig(v)
}

// Text returns x in the given base.
func (x Nat) Text(base int) string {
	return x.Big().Text(base)
}

// String returns x in base 10.
func (x Nat) String() string {
	return x.Text(10)
}

// IsZero reports whether x is zero.
func (x Nat) IsZero() bool {
	return len(x) == 0
}

// BitLen returns the number of significant bits in x.
func (x Nat) BitLen() int {
	return int(kernel.BitLen([]big.Word(x), false))
}

// TrailingZeros returns the number of trailing zero bits, or 0 for zero.
func (x Nat) TrailingZeros() int {
	if len(x) == 0 {
		return 0
	}
	return int(kernel.TrailingZerosWords([]big.Word(x)))
}

// Uint64 returns the low 64 bits of x.
func (x Nat) Uint64() uint64 {
	var v uint64
	for i := 0; i < len(x) && i*bitsPerWord < 64; i++ {
		v |= uint64(x[i]) << (uint(i) * bitsPerWord)
	}
	return v
}

// Cmp compares x and y and returns -1, 0 or +1.
func Cmp(x, y Nat) int {
	return kernel.Compare([]big.Word(x), []big.Word(y))
}

// Add returns x + y.
func Add(x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(Nat, len(x)+1)
	copy(z, x)
	kernel.Increment([]big.Word(z), []big.Word(y), false)
	countOp(opAdd)
	return z.norm()
}

// Sub returns x - y, or ErrUnderflow when y > x.
func Sub(x, y Nat) (Nat, error) {
	if Cmp(x, y) < 0 {
		return nil, ErrUnderflow
	}
	z := x.clone()
	kernel.Decrement([]big.Word(z), []big.Word(y), false)
	countOp(opSub)
	return z.norm(), nil
}

// Mul returns x * y. Identical operands are squared.
func Mul(x, y Nat) Nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) == len(y) && &x[0] == &y[0] {
		return Sqr(x)
	}
	z := make(Nat, len(x)+len(y))
	scratch := acquireWordSliceUnsafe(kernel.ScratchLen(len(x), len(y)))
	defer releaseWordSlice(scratch)
	kernel.MultiplyInto([]big.Word(z), []big.Word(x), []big.Word(y), 0, scratch)
	countOp(opMul)
	return z.norm()
}

// Sqr returns x * x.
func Sqr(x Nat) Nat {
	if len(x) == 0 {
		return nil
	}
	z := make(Nat, 2*len(x))
	scratch := acquireWordSliceUnsafe(kernel.ScratchLen(len(x), len(x)))
	defer releaseWordSlice(scratch)
	kernel.SquareInto([]big.Word(z), []big.Word(x), 0, scratch)
	countOp(opSqr)
	return z.norm()
}

// QuoRem returns the quotient and remainder of x / y. Operands need not be
// normalized; a y with no non-zero word is ErrDivisionByZero.
func QuoRem(x, y Nat) (q, r Nat, err error) {
	x, y = x.norm(), y.norm()
	if len(y) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	if len(y) == 1 {
		q, rw, err := QuoRemWord(x, y[0])
		return q, FromWord(rw), err
	}
	countOp(opQuoRem)
	if Cmp(x, y) < 0 {
		return nil, x.clone(), nil
	}
	q = make(Nat, len(x))
	r = make(Nat, len(y))
	scratch := acquireWordSliceUnsafe(kernel.DivideScratchLen(len(x), len(y)))
	defer releaseWordSlice(scratch)
	kernel.DivideInto([]big.Word(q), []big.Word(r), []big.Word(x), []big.Word(y), scratch)
	return q.norm(), r.norm(), nil
}

// Lsh returns x << n.
func Lsh(x Nat, n uint) Nat {
	if len(x) == 0 {
		return nil
	}
	z := make(Nat, len(x)+int(n/bitsPerWord)+1)
	copy(z, x)
	kernel.UpshiftBits([]big.Word(z), n, 0)
	countOp(opShift)
	return z.norm()
}

// Rsh returns x >> n.
func Rsh(x Nat, n uint) Nat {
	if uint(x.BitLen()) <= n {
		return nil
	}
	z := x.clone()
	kernel.DownshiftBits([]big.Word(z), n, 0)
	countOp(opShift)
	return z.norm()
}

// bitsPerWord is the width of big.Word.
const bitsPerWord = 32 << (^big.Word(0) >> 63)
