//go:build gmp

// The GMP oracle is opt-in because it needs libgmp at build time:
//
//	go build -tags=gmp ./...

package verify

import (
	"math/big"

	"github.com/ncw/gmp"

	"github.com/agbru/mpkernel/internal/natural"
)

func init() {
	RegisterCheck(Check{Name: "gmp-oracle", Run: checkGMPOracle})
}

func toGMP(x *big.Int) *gmp.Int {
	return new(gmp.Int).SetBytes(x.Bytes())
}

// gmpToStdBigInt converts a gmp.Int to a standard library big.Int.
func gmpToStdBigInt(g *gmp.Int) *big.Int {
	return new(big.Int).SetBytes(g.Bytes())
}

// checkGMPOracle compares natural multiplication, division and gcd with
// GNU MP on operands large enough to take the Karatsuba path.
func checkGMPOracle(c *Case) error {
	for c.Next() {
		ab, bb := randomBig(c.Rand, 96), randomBig(c.Rand, 96)
		a, _ := natural.FromBig(ab)
		b, _ := natural.FromBig(bb)
		ga, gb := toGMP(ab), toGMP(bb)

		if got, want := natural.Mul(a, b).Big(), gmpToStdBigInt(new(gmp.Int).Mul(ga, gb)); got.Cmp(want) != 0 {
			return c.Mismatch("mul of %d and %d bits disagrees with gmp", ab.BitLen(), bb.BitLen())
		}
		if bb.Sign() == 0 {
			continue
		}
		q, r, err := natural.QuoRem(a, b)
		if err != nil {
			return c.Mismatch("quorem: %v", err)
		}
		gq, gr := new(gmp.Int).QuoRem(ga, gb, new(gmp.Int))
		if q.Big().Cmp(gmpToStdBigInt(gq)) != 0 || r.Big().Cmp(gmpToStdBigInt(gr)) != 0 {
			return c.Mismatch("quorem of %d by %d bits disagrees with gmp", ab.BitLen(), bb.BitLen())
		}
		if ab.Sign() == 0 {
			continue
		}
		gg := new(gmp.Int).GCD(nil, nil, ga, gb)
		if natural.GCD(a, b).Big().Cmp(gmpToStdBigInt(gg)) != 0 {
			return c.Mismatch("gcd disagrees with gmp")
		}
	}
	return c.Err()
}
