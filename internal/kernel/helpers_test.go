package kernel

import (
	"math/big"
	"math/rand/v2"
)

// toBig interprets x as an unsigned little-endian word sequence.
func toBig[T Element](x []T) *big.Int {
	z := new(big.Int)
	w := Width[T]()
	for i := len(x) - 1; i >= 0; i-- {
		z.Lsh(z, w)
		z.Or(z, new(big.Int).SetUint64(uint64(x[i])))
	}
	return z
}

// fromBig returns the low n words of v.
func fromBig[T Element](v *big.Int, n int) []T {
	x := make([]T, n)
	w := Width[T]()
	mask := new(big.Int).SetUint64(uint64(Max[T]()))
	t := new(big.Int).Set(v)
	for i := range x {
		x[i] = T(new(big.Int).And(t, mask).Uint64())
		t.Rsh(t, w)
	}
	return x
}

// modulus returns 2^(n*W) for words of type T.
func modulus[T Element](n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n)*Width[T]())
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// randomWords returns n words biased towards carry-heavy patterns: roughly a
// third are all-ones or zero, the rest uniform.
func randomWords[T Element](r *rand.Rand, n int) []T {
	x := make([]T, n)
	for i := range x {
		switch r.IntN(6) {
		case 0:
			x[i] = Max[T]()
		case 1:
			x[i] = 0
		default:
			x[i] = T(r.Uint64())
		}
	}
	return x
}

func equalWords[T Element](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
