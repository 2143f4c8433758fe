package kernel

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewShift(t *testing.T) {
	t.Parallel()

	s := NewShift[uint32](70)
	if s.Major != 2 || s.Minor != 6 {
		t.Errorf("NewShift[uint32](70) = %+v, want {2 6}", s)
	}
	if got := s.Bits(32); got != 70 {
		t.Errorf("Bits = %d, want 70", got)
	}
}

func TestUpshiftTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        []uint8
		distance uint
		env      uint8
		want     []uint8
	}{
		{"by zero", []uint8{0x12, 0x34}, 0, 0, []uint8{0x12, 0x34}},
		{"by four", []uint8{0x12, 0x34}, 4, 0, []uint8{0x20, 0x41}},
		{"by one word", []uint8{0x12, 0x34, 0x56}, 8, 0, []uint8{0, 0x12, 0x34}},
		{"ones fill", []uint8{0x01, 0x00}, 3, 0xFF, []uint8{0x0F, 0x00}},
		{"past the end", []uint8{0x12, 0x34}, 16, 0xFF, []uint8{0xFF, 0xFF}},
		{"word and bits", []uint8{0x81, 0x00, 0x00}, 9, 0, []uint8{0, 0x02, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x := append([]uint8(nil), tt.x...)
			UpshiftBits(x, tt.distance, tt.env)
			if !equalWords(x, tt.want) {
				t.Errorf("UpshiftBits(%#x, %d) = %#x, want %#x", tt.x, tt.distance, x, tt.want)
			}
		})
	}
}

func TestDownshiftTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        []uint8
		distance uint
		env      uint8
		want     []uint8
	}{
		{"by four", []uint8{0x12, 0x34}, 4, 0, []uint8{0x41, 0x03}},
		{"arithmetic", []uint8{0x00, 0x80}, 4, 0xFF, []uint8{0x00, 0xF8}},
		{"by one word", []uint8{0x12, 0x34, 0x56}, 8, 0, []uint8{0x34, 0x56, 0}},
		{"word and bits", []uint8{0x00, 0x02, 0x01}, 9, 0, []uint8{0x81, 0, 0}},
		{"past the end", []uint8{0x12, 0x34}, 20, 0, []uint8{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x := append([]uint8(nil), tt.x...)
			DownshiftBits(x, tt.distance, tt.env)
			if !equalWords(x, tt.want) {
				t.Errorf("DownshiftBits(%#x, %d) = %#x, want %#x", tt.x, tt.distance, x, tt.want)
			}
		})
	}
}

// TestShift_PropertyBased compares both shift directions with big.Int and
// checks that a downshift undoes an upshift that lost no bits.
func TestShift_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("upshift matches Lsh modulo the width", prop.ForAll(
		func(seed int64, n int, distance uint) bool {
			x := randomWords[uint32](newRand(seed), n)
			want := new(big.Int).Lsh(toBig(x), distance)
			want.Mod(want, modulus[uint32](n))
			UpshiftBits(x, distance, 0)
			return toBig(x).Cmp(want) == 0
		},
		gen.Int64(), gen.IntRange(0, 20), gen.UIntRange(0, 700),
	))

	properties.Property("downshift matches Rsh", prop.ForAll(
		func(seed int64, n int, distance uint) bool {
			x := randomWords[uint64](newRand(seed), n)
			want := new(big.Int).Rsh(toBig(x), distance)
			DownshiftBits(x, distance, 0)
			return toBig(x).Cmp(want) == 0
		},
		gen.Int64(), gen.IntRange(0, 20), gen.UIntRange(0, 1400),
	))

	properties.Property("downshift undoes a lossless upshift", prop.ForAll(
		func(seed int64, n int, distance uint) bool {
			x := randomWords[uint16](newRand(seed), n)
			w := uint(n) * Width[uint16]()
			if distance > w {
				distance = w
			}
			// Clear the bits the upshift would drop.
			DownshiftBits(x, distance, 0)
			want := append([]uint16(nil), x...)
			UpshiftBits(x, distance, 0)
			DownshiftBits(x, distance, 0)
			return equalWords(x, want)
		},
		gen.Int64(), gen.IntRange(1, 16), gen.UIntRange(0, 300),
	))

	properties.Property("arithmetic downshift keeps the one appendix", prop.ForAll(
		func(seed int64, n int, distance uint) bool {
			x := randomWords[uint8](newRand(seed), n)
			x[n-1] |= 0x80
			// Two's-complement value of x, floor-divided by 2^distance.
			v := new(big.Int).Sub(toBig(x), modulus[uint8](n))
			v.Rsh(v, distance)
			v.Mod(v, modulus[uint8](n))
			DownshiftBits(x, distance, 0xFF)
			return toBig(x).Cmp(v) == 0
		},
		gen.Int64(), gen.IntRange(1, 12), gen.UIntRange(0, 120),
	))

	properties.TestingRun(t)
}

func FuzzShiftInverse(f *testing.F) {
	f.Add([]byte{0xFF, 0x00, 0xAA, 0x55, 0x01}, uint16(13))
	f.Add(make([]byte, 24), uint16(64))
	f.Add([]byte{1}, uint16(0))

	f.Fuzz(func(t *testing.T, data []byte, d uint16) {
		x := bytesToWords(data)
		if len(x) == 0 {
			return
		}
		distance := uint(d) % (uint(len(x))*64 + 1)
		DownshiftBits(x, distance, 0)
		want := append([]uint64(nil), x...)
		UpshiftBits(x, distance, 0)
		DownshiftBits(x, distance, 0)
		if !equalWords(x, want) {
			t.Fatalf("shift by %d: got %#x, want %#x", distance, x, want)
		}
	})
}
