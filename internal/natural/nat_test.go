package natural

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/mpkernel/internal/kernel"
)

func mustParse(t *testing.T, s string) Nat {
	t.Helper()
	n, err := ParseNat(s, 0)
	require.NoError(t, err)
	return n
}

func randomNat(r *rand.Rand, words int) Nat {
	x := make(Nat, words)
	for i := range x {
		x[i] = big.Word(r.Uint64())
	}
	return x.norm()
}

func TestParseAndText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		base int
		dec  string
		hex  string
	}{
		{"0", 10, "0", "0"},
		{"255", 10, "255", "ff"},
		{"0x1FFFFFFFF", 0, "8589934591", "1ffffffff"},
		{"340282366920938463463374607431768211456", 10, "340282366920938463463374607431768211456", "100000000000000000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			n, err := ParseNat(tt.in, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.dec, n.String())
			assert.Equal(t, tt.hex, n.Text(16))
			assert.True(t, kernel.IsNormalized([]big.Word(n), false))
		})
	}
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "-5", "12z", "0x"} {
		_, err := ParseNat(in, 0)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", in)
	}
	_, err := FromBig(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestFromUint64(t *testing.T) {
	t.Parallel()

	assert.True(t, FromUint64(0).IsZero())
	for _, v := range []uint64{1, 1 << 32, 1<<64 - 1} {
		assert.Equal(t, v, FromUint64(v).Uint64())
		assert.Equal(t, new(big.Int).SetUint64(v).String(), FromUint64(v).String())
	}
}

func TestArithmeticMatchesBig(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 300; i++ {
		x := randomNat(r, r.IntN(80))
		y := randomNat(r, r.IntN(80))
		bx, by := x.Big(), y.Big()

		assert.Equal(t, new(big.Int).Add(bx, by).String(), Add(x, y).String())
		assert.Equal(t, new(big.Int).Mul(bx, by).String(), Mul(x, y).String())
		assert.Equal(t, new(big.Int).Mul(bx, bx).String(), Sqr(x).String())
		assert.Equal(t, bx.Cmp(by), Cmp(x, y))

		if d, err := Sub(x, y); bx.Cmp(by) >= 0 {
			require.NoError(t, err)
			assert.Equal(t, new(big.Int).Sub(bx, by).String(), d.String())
		} else {
			assert.ErrorIs(t, err, ErrUnderflow)
		}

		if len(y) > 0 {
			q, rem, err := QuoRem(x, y)
			require.NoError(t, err)
			wq, wr := new(big.Int).QuoRem(bx, by, new(big.Int))
			assert.Equal(t, wq.String(), q.String())
			assert.Equal(t, wr.String(), rem.String())
		}

		n := uint(r.IntN(300))
		assert.Equal(t, new(big.Int).Lsh(bx, n).String(), Lsh(x, n).String())
		assert.Equal(t, new(big.Int).Rsh(bx, n).String(), Rsh(x, n).String())
	}
}

func TestOperandsAreNotModified(t *testing.T) {
	t.Parallel()

	x := mustParse(t, "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	y := mustParse(t, "0x123456789ABCDEF0123")
	xs, ys := x.String(), y.String()

	Add(x, y)
	_, _ = Sub(x, y)
	Mul(x, y)
	_, _, _ = QuoRem(x, y)
	Lsh(x, 77)
	Rsh(x, 77)
	Bezout(x, y)

	assert.Equal(t, xs, x.String())
	assert.Equal(t, ys, y.String())
}

func TestQuoRemByZero(t *testing.T) {
	t.Parallel()

	_, _, err := QuoRem(FromUint64(5), nil)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, _, err = QuoRemWord(FromUint64(5), 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = NewWordDivider(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestQuoRemUnnormalizedOperands(t *testing.T) {
	t.Parallel()

	for _, zero := range []Nat{{0}, {0, 0, 0}} {
		_, _, err := QuoRem(FromUint64(5), zero)
		assert.ErrorIs(t, err, ErrDivisionByZero)
		_, _, err = QuoRem(Lsh(FromUint64(1), 130), zero)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	}

	// High zero words on either side are ignored.
	x := append(Lsh(FromUint64(7), 70), 0, 0)
	y := Nat{3, 0}
	q, r, err := QuoRem(x, y)
	require.NoError(t, err)
	wantQ, wantR, err := QuoRem(x.norm(), FromUint64(3))
	require.NoError(t, err)
	assert.Equal(t, wantQ.String(), q.String())
	assert.Equal(t, wantR.String(), r.String())

	q, rw, err := QuoRemWord(Nat{9, 0}, 4)
	require.NoError(t, err)
	assert.Equal(t, "2", q.String())
	assert.Equal(t, big.Word(1), rw)
}

func TestQuoRemSingleWordDivisor(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 100; i++ {
		x := randomNat(r, r.IntN(12))
		d := big.Word(r.Uint64()) | 1
		q, rem, err := QuoRem(x, Nat{d})
		require.NoError(t, err)
		wantQ, wantR := new(big.Int).QuoRem(x.Big(), new(big.Int).SetUint64(uint64(d)), new(big.Int))
		assert.Equal(t, wantQ.String(), q.String())
		assert.Equal(t, wantR.String(), rem.String())
	}
}

func TestQuoRemScenario(t *testing.T) {
	t.Parallel()

	x := mustParse(t, "0x1FFFFFFFF")
	q, r, err := QuoRemWord(x, 3)
	require.NoError(t, err)
	assert.Equal(t, "aaaaaaab", q.Text(16))
	assert.Zero(t, r)

	v, err := NewWordDivider(3)
	require.NoError(t, err)
	q, r = v.QuoRem(x)
	assert.Equal(t, "aaaaaaab", q.Text(16))
	assert.Zero(t, r)
	assert.Equal(t, big.Word(3), v.Divisor())
}

func TestWordDividerMatchesQuoRemWord(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		d := big.Word(r.Uint64()>>uint(r.IntN(64))) | 1
		v, err := NewWordDivider(d)
		require.NoError(t, err)
		x := randomNat(r, r.IntN(20))
		wantQ, wantR, err := QuoRemWord(x, d)
		require.NoError(t, err)
		gotQ, gotR := v.QuoRem(x)
		assert.Equal(t, wantQ.String(), gotQ.String())
		assert.Equal(t, wantR, gotR)
	}
}

func TestMulSameOperandSquares(t *testing.T) {
	t.Parallel()

	x := mustParse(t, "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	assert.Equal(t, Sqr(x).String(), Mul(x, x).String())
	assert.Nil(t, Mul(x, nil))
	assert.Nil(t, Sqr(nil))
}

func TestBitHelpers(t *testing.T) {
	t.Parallel()

	x := Lsh(FromUint64(3), 100)
	assert.Equal(t, 102, x.BitLen())
	assert.Equal(t, 100, x.TrailingZeros())
	assert.Equal(t, 0, Nat(nil).TrailingZeros())
	assert.Nil(t, Rsh(x, 102))
}
