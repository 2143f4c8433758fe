package kernel

// Shift is a shift distance split into whole words (Major) and bits within a
// word (Minor). Minor is always less than the word width.
type Shift struct {
	Major int
	Minor uint
}

// NewShift splits a bit distance into its word and bit components for T.
func NewShift[T Element](distance uint) Shift {
	w := Width[T]()
	return Shift{Major: int(distance / w), Minor: distance % w}
}

// Bits returns the total distance in bits for words of type T.
func (s Shift) Bits(width uint) uint {
	return uint(s.Major)*width + s.Minor
}

// Upshift shifts x toward its most-significant end by major words and minor
// bits, in place. Vacated low bits take the bits of environment, which is
// normally all zeros or all ones. Bits shifted past the top are discarded.
//
// Destination words are produced from the most-significant down: each one
// pushes the low bits of its source word up by minor and pulls in the high
// bits of the next lower source word.
func Upshift[T Element](x []T, major int, minor uint, environment T) {
	w := Width[T]()
	assert(major >= 0, "negative major shift %d", major)
	assert(minor < w, "minor shift %d out of range", minor)

	n := len(x)
	if major >= n {
		Fill(x, environment)
		return
	}
	if minor == 0 {
		for i := n - 1; i >= major; i-- {
			x[i] = x[i-major]
		}
	} else {
		pull := w - minor
		for i := n - 1; i > major; i-- {
			x[i] = x[i-major]<<minor | x[i-major-1]>>pull
		}
		x[major] = x[0]<<minor | environment>>pull
	}
	Fill(x[:major], environment)
}

// Downshift shifts x toward its least-significant end by major words and
// minor bits, in place. Vacated high bits take the bits of environment, which
// should match the appendix of x for an arithmetic shift.
func Downshift[T Element](x []T, major int, minor uint, environment T) {
	w := Width[T]()
	assert(major >= 0, "negative major shift %d", major)
	assert(minor < w, "minor shift %d out of range", minor)

	n := len(x)
	if major >= n {
		Fill(x, environment)
		return
	}
	top := n - major
	if minor == 0 {
		for i := 0; i < top; i++ {
			x[i] = x[i+major]
		}
	} else {
		pull := w - minor
		for i := 0; i < top-1; i++ {
			x[i] = x[i+major]>>minor | x[i+major+1]<<pull
		}
		x[top-1] = x[n-1]>>minor | environment<<pull
	}
	Fill(x[top:], environment)
}

// UpshiftBits shifts x up by distance bits, filling with environment.
func UpshiftBits[T Element](x []T, distance uint, environment T) {
	s := NewShift[T](distance)
	Upshift(x, s.Major, s.Minor, environment)
}

// DownshiftBits shifts x down by distance bits, filling with environment.
func DownshiftBits[T Element](x []T, distance uint, environment T) {
	s := NewShift[T](distance)
	Downshift(x, s.Major, s.Minor, environment)
}
