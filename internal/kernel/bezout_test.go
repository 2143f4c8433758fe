package kernel

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBezoutScenario(t *testing.T) {
	t.Parallel()

	g, x, y := BezoutSigned(int64(240), int64(46))
	if g != 2 || x != -9 || y != 47 {
		t.Fatalf("BezoutSigned(240, 46) = (%d, %d, %d), want (2, -9, 47)", g, x, y)
	}
	if 240*x+46*y != 2 {
		t.Errorf("240*%d + 46*%d != 2", x, y)
	}

	ug, ux, uy := Bezout(uint32(240), uint32(46))
	if ug != 2 || int32(ux) != -9 || int32(uy) != 47 {
		t.Errorf("Bezout[uint32](240, 46) = (%d, %d, %d)", ug, int32(ux), int32(uy))
	}
}

func TestBezoutEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lhs, rhs uint16
		g, x, y  uint16
	}{
		{"both zero", 0, 0, 0, 1, 0},
		{"rhs zero", 12, 0, 12, 1, 0},
		{"lhs zero", 0, 12, 12, 0, 1},
		{"equal", 9, 9, 9, 0, 1},
		{"coprime", 17, 5, 1, 0xFFFE, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, x, y := Bezout(tt.lhs, tt.rhs)
			if g != tt.g || x != tt.x || y != tt.y {
				t.Errorf("Bezout(%d, %d) = (%d, %d, %d), want (%d, %d, %d)", tt.lhs, tt.rhs, g, x, y, tt.g, tt.x, tt.y)
			}
			if tt.lhs*x+tt.rhs*y != g {
				t.Errorf("identity fails for (%d, %d)", tt.lhs, tt.rhs)
			}
		})
	}
}

func TestBezoutSignedNegative(t *testing.T) {
	t.Parallel()

	tests := []struct{ lhs, rhs int32 }{
		{-240, 46}, {240, -46}, {-240, -46}, {-7, 0}, {0, -7}, {-1 << 31, 6},
	}
	for _, tt := range tests {
		g, x, y := BezoutSigned(tt.lhs, tt.rhs)
		if int32(uint32(g)) != tt.lhs*x+tt.rhs*y {
			t.Errorf("BezoutSigned(%d, %d) = (%d, %d, %d): identity fails", tt.lhs, tt.rhs, g, x, y)
		}
		if want := uint64(GCD(uint32(abs32(tt.lhs)), uint32(abs32(tt.rhs)))); g != want {
			t.Errorf("BezoutSigned(%d, %d) gcd = %d, want %d", tt.lhs, tt.rhs, g, want)
		}
	}
}

func abs32(v int32) uint32 {
	if v < 0 {
		return -uint32(v)
	}
	return uint32(v)
}

// TestBezoutExhaustive8 checks every pair of 8-bit operands.
func TestBezoutExhaustive8(t *testing.T) {
	t.Parallel()

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			g, x, y := Bezout(uint8(a), uint8(b))
			if g != GCD(uint8(a), uint8(b)) {
				t.Fatalf("Bezout(%d, %d) gcd = %d", a, b, g)
			}
			if uint8(a)*x+uint8(b)*y != g {
				t.Fatalf("Bezout(%d, %d) = (%d, %d, %d): identity fails", a, b, g, x, y)
			}
		}
	}
}

// TestBezout_PropertyBased verifies divisor == gcd(lhs, rhs) ==
// lhs*x + rhs*y for random 64-bit operands, including rhs == 0.
func TestBezout_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("Bezout identity", prop.ForAll(
		func(lhs, rhs uint64, zero bool) bool {
			if zero {
				rhs = 0
			}
			g, x, y := Bezout(lhs, rhs)
			if g != GCD(lhs, rhs) {
				return false
			}
			if g != 0 && (lhs%g != 0 || rhs%g != 0) {
				return false
			}
			return lhs*x+rhs*y == g
		},
		gen.UInt64(), gen.UInt64(), gen.Bool(),
	))

	properties.Property("exact integer identity below 2^63", prop.ForAll(
		func(lhs, rhs uint64, zero bool) bool {
			lhs >>= 1
			rhs >>= 1
			if zero {
				rhs = 0
			}
			g, x, y := Bezout(lhs, rhs)
			sum := new(big.Int).Mul(new(big.Int).SetUint64(lhs), big.NewInt(int64(x)))
			sum.Add(sum, new(big.Int).Mul(new(big.Int).SetUint64(rhs), big.NewInt(int64(y))))
			return sum.Cmp(new(big.Int).SetUint64(g)) == 0
		},
		gen.UInt64(), gen.UInt64(), gen.Bool(),
	))

	properties.Property("signed coefficients", prop.ForAll(
		func(lhs, rhs int32) bool {
			g, x, y := BezoutSigned(lhs, rhs)
			return int32(uint32(g)) == lhs*x+rhs*y
		},
		gen.Int32(), gen.Int32(),
	))

	properties.TestingRun(t)
}

// TestBezoutExactNearInt64Limit checks the identity over the integers, not
// modulo 2^64, for operands just below 2^63.
func TestBezoutExactNearInt64Limit(t *testing.T) {
	t.Parallel()

	const top = uint64(1)<<63 - 1
	tests := [][2]uint64{
		{top, top - 1},
		{top, 2},
		{top - 1, top},
		{top, 1<<62 + 1},
		{1<<62 + 3, 1<<61 + 7},
		{top, 0},
	}
	for _, tc := range tests {
		lhs, rhs := tc[0], tc[1]
		g, x, y := Bezout(lhs, rhs)
		sum := new(big.Int).Mul(new(big.Int).SetUint64(lhs), big.NewInt(int64(x)))
		sum.Add(sum, new(big.Int).Mul(new(big.Int).SetUint64(rhs), big.NewInt(int64(y))))
		if sum.Cmp(new(big.Int).SetUint64(g)) != 0 {
			t.Errorf("Bezout(%d, %d) = (%d, %d, %d): %d*x + %d*y = %s", lhs, rhs, g, int64(x), int64(y), lhs, rhs, sum)
		}
	}
}
