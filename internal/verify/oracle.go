package verify

import (
	"math/big"
	"math/rand/v2"

	"github.com/agbru/mpkernel/internal/kernel"
)

// toBig interprets x as an unsigned least-significant-first word sequence.
func toBig[T kernel.Element](x []T) *big.Int {
	z := new(big.Int)
	w := kernel.Width[T]()
	for i := len(x) - 1; i >= 0; i-- {
		z.Lsh(z, w)
		z.Or(z, new(big.Int).SetUint64(uint64(x[i])))
	}
	return z
}

// truncate reduces v modulo 2^bits in place.
func truncate(v *big.Int, bits uint) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), bits)
	mask.Sub(mask, big.NewInt(1))
	return v.And(v, mask)
}

// randomWords returns n words biased toward carry-heavy patterns: about a
// third are all ones or zero.
func randomWords[T kernel.Element](r *rand.Rand, n int) []T {
	x := make([]T, n)
	for i := range x {
		switch r.IntN(6) {
		case 0:
			x[i] = kernel.Max[T]()
		case 1:
			x[i] = 0
		default:
			x[i] = T(r.Uint64())
		}
	}
	return x
}

// randomDivisor returns a non-zero word, favouring small values and powers
// of two.
func randomDivisor(r *rand.Rand) uint64 {
	switch r.IntN(4) {
	case 0:
		return 1 + uint64(r.IntN(1000))
	case 1:
		return 1 << r.UintN(64)
	default:
		if d := r.Uint64(); d != 0 {
			return d
		}
		return 1
	}
}

// randomBig returns a value of up to maxWords 64-bit words, zero included.
func randomBig(r *rand.Rand, maxWords int) *big.Int {
	return toBig(randomWords[uint64](r, r.IntN(maxWords+1)))
}
