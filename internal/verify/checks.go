package verify

import (
	"math/big"
	"slices"

	"github.com/agbru/mpkernel/internal/kernel"
	"github.com/agbru/mpkernel/internal/natural"
)

func init() {
	RegisterCheck(Check{Name: "add-sub-inverse", Run: checkAddSubInverse})
	RegisterCheck(Check{Name: "multiply-equivalence", Run: checkMultiplyEquivalence})
	RegisterCheck(Check{Name: "karatsuba-all-ones", Run: checkKaratsubaAllOnes})
	RegisterCheck(Check{Name: "division-identity", Run: checkDivisionIdentity})
	RegisterCheck(Check{Name: "division-scenario", Run: checkDivisionScenario})
	RegisterCheck(Check{Name: "divider-exhaustive-8bit", Run: checkDividerExhaustive8})
	RegisterCheck(Check{Name: "divider-random-64bit", Run: checkDividerRandom64})
	RegisterCheck(Check{Name: "shift-inverse", Run: checkShiftInverse})
	RegisterCheck(Check{Name: "bezout-identity", Run: checkBezoutIdentity})
	RegisterCheck(Check{Name: "bezout-scenario", Run: checkBezoutScenario})
	RegisterCheck(Check{Name: "natural-oracle", Run: checkNaturalOracle})
}

// multiplySizes straddle the default Karatsuba cutover.
var multiplySizes = []int{30, 31, 32, 33, 64}

func checkAddSubInverse(c *Case) error {
	for c.Next() {
		n := 1 + c.Rand.IntN(8)
		a := randomWords[uint64](c.Rand, n)
		b := randomWords[uint64](c.Rand, 1+c.Rand.IntN(n))
		bits := uint(n) * 64

		x := slices.Clone(a)
		carry := kernel.Increment(x, b, false)
		want := new(big.Int).Add(toBig(a), toBig(b))
		if carry != (want.BitLen() > int(bits)) || toBig(x).Cmp(truncate(want, bits)) != 0 {
			return c.Mismatch("%#x + %#x = %#x carry=%v", a, b, x, carry)
		}
		borrow := kernel.Decrement(x, b, false)
		if !slices.Equal(x, a) || borrow != carry {
			return c.Mismatch("(%#x + %#x) - %#x = %#x carry=%v borrow=%v", a, b, b, x, carry, borrow)
		}

		w := c.Rand.Uint64()
		carry = kernel.IncrementWord(x, w)
		borrow = kernel.DecrementWord(x, w)
		if !slices.Equal(x, a) || borrow != carry {
			return c.Mismatch("(%#x + %#x) - %#x = %#x", a, w, w, x)
		}
	}
	return c.Err()
}

func multiplyCase(c *Case, a, b []uint64) error {
	m, n := len(a), len(b)
	inc := c.Rand.Uint64()
	scratch := make([]uint64, kernel.ScratchLen(m, n))

	school := make([]uint64, m+n)
	kernel.SchoolbookMultiplyInto(school, a, b, inc)
	kara := make([]uint64, m+n)
	kernel.KaratsubaMultiplyInto(kara, a, b, inc, scratch)
	if !slices.Equal(school, kara) {
		return c.Mismatch("karatsuba %dx%d words differs from schoolbook", m, n)
	}
	want := new(big.Int).Mul(toBig(a), toBig(b))
	want.Add(want, new(big.Int).SetUint64(inc))
	if toBig(school).Cmp(want) != 0 {
		return c.Mismatch("schoolbook %dx%d words differs from math/big", m, n)
	}

	sq := make([]uint64, 2*m)
	kernel.KaratsubaSquareInto(sq, a, 0, make([]uint64, kernel.ScratchLen(m, m)))
	ref := make([]uint64, 2*m)
	kernel.SchoolbookMultiplyInto(ref, a, a, 0)
	if !slices.Equal(sq, ref) {
		return c.Mismatch("karatsuba square of %d words differs from schoolbook product", m)
	}
	return nil
}

func checkMultiplyEquivalence(c *Case) error {
	for _, size := range multiplySizes {
		if !c.Next() {
			return c.Err()
		}
		if err := multiplyCase(c, randomWords[uint64](c.Rand, size), randomWords[uint64](c.Rand, size)); err != nil {
			return err
		}
	}
	for c.Next() {
		a := randomWords[uint64](c.Rand, 1+c.Rand.IntN(80))
		b := randomWords[uint64](c.Rand, 1+c.Rand.IntN(80))
		if err := multiplyCase(c, a, b); err != nil {
			return err
		}
	}
	return c.Err()
}

func checkKaratsubaAllOnes(c *Case) error {
	const n = 64
	a := make([]uint64, n)
	kernel.Fill(a, ^uint64(0))

	school := make([]uint64, 2*n)
	kernel.SchoolbookMultiplyInto(school, a, a, 0)
	kara := make([]uint64, 2*n)
	kernel.KaratsubaMultiplyInto(kara, a, a, 0, make([]uint64, kernel.ScratchLen(n, n)))
	for i := range school {
		if school[i] != kara[i] {
			return c.Mismatch("word %d: karatsuba %#x, schoolbook %#x", i, kara[i], school[i])
		}
	}
	// (2^4096 - 1)^2 = 2^8192 - 2^4097 + 1
	want := new(big.Int).Lsh(big.NewInt(1), 2*n*64)
	want.Sub(want, new(big.Int).Lsh(big.NewInt(1), n*64+1))
	want.Add(want, big.NewInt(1))
	if toBig(kara).Cmp(want) != 0 {
		return c.Mismatch("all-ones square differs from 2^8192 - 2^4097 + 1")
	}
	return c.Count(1)
}

func checkDivisionIdentity(c *Case) error {
	for c.Next() {
		m := 1 + c.Rand.IntN(12)
		n := 1 + c.Rand.IntN(m+2)
		dividend := randomWords[uint32](c.Rand, m)
		divisor := randomWords[uint32](c.Rand, n)
		if kernel.IsZero(divisor) {
			divisor[0] = 1
		}
		quotient := make([]uint32, m)
		remainder := make([]uint32, n)
		kernel.DivideInto(quotient, remainder, dividend, divisor, make([]uint32, kernel.DivideScratchLen(m, n)))

		a, d := toBig(dividend), toBig(divisor)
		q, r := toBig(quotient), toBig(remainder)
		if r.Cmp(d) >= 0 {
			return c.Mismatch("%#x / %#x: remainder %#x not below divisor", dividend, divisor, remainder)
		}
		if back := new(big.Int).Add(new(big.Int).Mul(q, d), r); back.Cmp(a) != 0 {
			return c.Mismatch("%#x / %#x: q=%#x r=%#x do not recombine", dividend, divisor, quotient, remainder)
		}
	}
	return c.Err()
}

func checkDivisionScenario(c *Case) error {
	dividend := []uint32{0xFFFFFFFF, 0x1}

	quotient := make([]uint32, 2)
	if r := kernel.DivideByWord(quotient, dividend, kernel.MustNonzero(uint32(3))); r != 0 || quotient[0] != 0xAAAAAAAB || quotient[1] != 0 {
		return c.Mismatch("single-word path: q=%#x r=%d", quotient, r)
	}

	remainder := make([]uint32, 2)
	kernel.DivideInto(quotient, remainder, dividend, []uint32{3, 0}, make([]uint32, kernel.DivideScratchLen(2, 2)))
	if quotient[0] != 0xAAAAAAAB || quotient[1] != 0 || !kernel.IsZero(remainder) {
		return c.Mismatch("normalizing path: q=%#x r=%#x", quotient, remainder)
	}

	// Long division proper, with both operands shifted until the divisor's
	// top word has its high bit set.
	window := []uint32{0xFFFFFFFF, 0x1, 0, 0}
	divisor := []uint32{3, 0}
	kernel.UpshiftBits(window, 62, 0)
	kernel.UpshiftBits(divisor, 62, 0)
	kernel.DivideLong(quotient, window, divisor)
	if quotient[0] != 0xAAAAAAAB || quotient[1] != 0 || !kernel.IsZero(window) {
		return c.Mismatch("long-division path: q=%#x r=%#x", quotient, window)
	}
	return c.Count(3)
}

func checkDividerExhaustive8(c *Case) error {
	for d := 1; d < 256; d++ {
		dv := kernel.NewDivider(kernel.MustNonzero(uint8(d)))
		for a := 0; a < 256; a++ {
			q, r := dv.QuotientAndRemainder(uint8(a))
			if int(q) != a/d || int(r) != a%d {
				return c.Mismatch("%d / %d = %d rem %d, want %d rem %d", a, d, q, r, a/d, a%d)
			}
		}
		if err := c.Count(256); err != nil {
			return err
		}
	}
	return nil
}

func checkDividerRandom64(c *Case) error {
	for c.Next() {
		d := randomDivisor(c.Rand)
		dv := kernel.NewDivider(kernel.MustNonzero(d))
		for range 16 {
			a := c.Rand.Uint64()
			if q := dv.Quotient(a); q != a/d {
				return c.Mismatch("%d / %d = %d, want %d", a, d, q, a/d)
			}
		}
		words := randomWords[uint64](c.Rand, 1+c.Rand.IntN(6))
		quotient := make([]uint64, len(words))
		r := dv.DivideWords(quotient, words)
		want := make([]uint64, len(words))
		wantR := kernel.DivideByWord(want, words, kernel.MustNonzero(d))
		if r != wantR || !slices.Equal(quotient, want) {
			return c.Mismatch("DivideWords(%#x, %d) disagrees with DivideByWord", words, d)
		}
	}
	return c.Err()
}

func checkShiftInverse(c *Case) error {
	for c.Next() {
		n := 1 + c.Rand.IntN(8)
		x := randomWords[uint64](c.Rand, n)
		bits := uint(n) * 64
		distance := c.Rand.UintN(bits)

		y := slices.Clone(x)
		kernel.UpshiftBits(y, distance, 0)
		kernel.DownshiftBits(y, distance, 0)
		if want := truncate(toBig(x), bits-distance); toBig(y).Cmp(want) != 0 {
			return c.Mismatch("shift %#x by %d: got %#x", x, distance, y)
		}
	}
	return c.Err()
}

func checkBezoutIdentity(c *Case) error {
	for c.Next() {
		lhs := c.Rand.Uint64() >> c.Rand.UintN(64)
		rhs := c.Rand.Uint64() >> c.Rand.UintN(64)
		if c.Rand.IntN(8) == 0 {
			rhs = 0
		}
		g, x, y := kernel.Bezout(lhs, rhs)
		want := new(big.Int).GCD(nil, nil, new(big.Int).SetUint64(lhs), new(big.Int).SetUint64(rhs))
		if new(big.Int).SetUint64(g).Cmp(want) != 0 {
			return c.Mismatch("gcd(%d, %d) = %d, want %s", lhs, rhs, g, want)
		}
		if lhs*x+rhs*y != g {
			return c.Mismatch("%d*%d + %d*%d != %d", lhs, int64(x), rhs, int64(y), g)
		}
		// Below 2^63 the coefficients fit int64 and the identity holds over
		// the integers, not just modulo 2^64.
		if lhs>>63 == 0 && rhs>>63 == 0 {
			exact := new(big.Int).Mul(new(big.Int).SetUint64(lhs), big.NewInt(int64(x)))
			exact.Add(exact, new(big.Int).Mul(new(big.Int).SetUint64(rhs), big.NewInt(int64(y))))
			if exact.Cmp(want) != 0 {
				return c.Mismatch("%d*%d + %d*%d = %s over the integers, want %d", lhs, int64(x), rhs, int64(y), exact, g)
			}
		}

		a, _ := natural.FromBig(randomBig(c.Rand, 6))
		b, _ := natural.FromBig(randomBig(c.Rand, 6))
		ng, nx, ny := natural.Bezout(a, b)
		combo := new(big.Int).Mul(a.Big(), nx.Big())
		combo.Add(combo, new(big.Int).Mul(b.Big(), ny.Big()))
		if combo.Cmp(ng.Big()) != 0 || natural.Cmp(ng, natural.GCD(a, b)) != 0 {
			return c.Mismatch("natural Bezout(%s, %s) = (%s, %s, %s)", a, b, ng, nx, ny)
		}
	}
	return c.Err()
}

func checkBezoutScenario(c *Case) error {
	g, x, y := kernel.BezoutSigned[int64](240, 46)
	if g != 2 || x != -9 || y != 47 {
		return c.Mismatch("BezoutSigned(240, 46) = (%d, %d, %d), want (2, -9, 47)", g, x, y)
	}
	if 240*x+46*y != 2 {
		return c.Mismatch("240*%d + 46*%d != 2", x, y)
	}
	ng, nx, ny := natural.Bezout(natural.FromUint64(240), natural.FromUint64(46))
	if ng.Uint64() != 2 || nx.String() != "-9" || ny.String() != "47" {
		return c.Mismatch("natural Bezout(240, 46) = (%s, %s, %s)", ng, nx, ny)
	}
	return c.Count(2)
}

func checkNaturalOracle(c *Case) error {
	d := big.Word(c.Rand.Uint64()) | 1
	divider, err := natural.NewWordDivider(d)
	if err != nil {
		return err
	}
	bd := new(big.Int).SetUint64(uint64(d))
	for c.Next() {
		ab, bb := randomBig(c.Rand, 40), randomBig(c.Rand, 40)
		a, _ := natural.FromBig(ab)
		b, _ := natural.FromBig(bb)

		if got := natural.Add(a, b).Big(); got.Cmp(new(big.Int).Add(ab, bb)) != 0 {
			return c.Mismatch("add: %s", got)
		}
		if got := natural.Mul(a, b).Big(); got.Cmp(new(big.Int).Mul(ab, bb)) != 0 {
			return c.Mismatch("mul of %d and %d bits", ab.BitLen(), bb.BitLen())
		}
		if got := natural.Sqr(a).Big(); got.Cmp(new(big.Int).Mul(ab, ab)) != 0 {
			return c.Mismatch("sqr of %d bits", ab.BitLen())
		}
		if ab.Cmp(bb) >= 0 {
			d, err := natural.Sub(a, b)
			if err != nil || d.Big().Cmp(new(big.Int).Sub(ab, bb)) != 0 {
				return c.Mismatch("sub: %v", err)
			}
		}
		if bb.Sign() != 0 {
			q, r, err := natural.QuoRem(a, b)
			wq, wr := new(big.Int).QuoRem(ab, bb, new(big.Int))
			if err != nil || q.Big().Cmp(wq) != 0 || r.Big().Cmp(wr) != 0 {
				return c.Mismatch("quorem of %d by %d bits: %v", ab.BitLen(), bb.BitLen(), err)
			}
		}
		q, r := divider.QuoRem(a)
		wq, wr := new(big.Int).QuoRem(ab, bd, new(big.Int))
		if q.Big().Cmp(wq) != 0 || uint64(r) != wr.Uint64() {
			return c.Mismatch("word divider %#x: quotient or remainder differs", d)
		}
		s := c.Rand.UintN(300)
		if got := natural.Lsh(a, s).Big(); got.Cmp(new(big.Int).Lsh(ab, s)) != 0 {
			return c.Mismatch("lsh by %d", s)
		}
		if got := natural.Rsh(a, s).Big(); got.Cmp(new(big.Int).Rsh(ab, s)) != 0 {
			return c.Mismatch("rsh by %d", s)
		}
		if got := natural.GCD(a, b).Big(); got.Cmp(new(big.Int).GCD(nil, nil, ab, bb)) != 0 {
			return c.Mismatch("gcd: %s", got)
		}
	}
	return c.Err()
}
