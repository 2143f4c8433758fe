package calibration

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/mpkernel/internal/kernel"
	"github.com/agbru/mpkernel/internal/logging"
	"github.com/agbru/mpkernel/internal/sysmon"
)

const (
	// DefaultRounds is the number of timings per algorithm and size; the
	// median is kept.
	DefaultRounds = 5
	// DefaultMinDuration is the minimum wall time of a single timing.
	DefaultMinDuration = 2 * time.Millisecond
)

// ErrNoMeasurements is returned when no size could be measured.
var ErrNoMeasurements = errors.New("calibration produced no measurements")

// Measurement is the cost of one multiplication at a given operand size.
type Measurement struct {
	// Words is the size of both operands.
	Words int `json:"words"`
	// Schoolbook is the median time of a schoolbook multiplication.
	Schoolbook time.Duration `json:"schoolbook_ns"`
	// Karatsuba is the median time of a one-level Karatsuba multiplication.
	Karatsuba time.Duration `json:"karatsuba_ns"`
	// Err is set when the size could not be measured.
	Err error `json:"-"`
}

// Calibrator compares schoolbook and Karatsuba multiplication over a range
// of operand sizes.
type Calibrator struct {
	// Sizes are the operand sizes in words (default: GenerateCandidateSizes).
	Sizes []int
	// Rounds is the number of timings per algorithm and size.
	Rounds int
	// MinDuration is the minimum wall time per timing.
	MinDuration time.Duration
	// Logger receives per-size debug output.
	Logger logging.Logger
}

// NewCalibrator creates a Calibrator with default settings.
func NewCalibrator(logger logging.Logger) *Calibrator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Calibrator{
		Sizes:       GenerateCandidateSizes(),
		Rounds:      DefaultRounds,
		MinDuration: DefaultMinDuration,
		Logger:      logger,
	}
}

// Run measures every size in ascending order and returns a profile holding
// the selected threshold. progress, if non-nil, is called after each size.
//
// The Karatsuba timings use a private cutover above the largest size, so
// recursion bottoms out in schoolbook after one split. The process-wide
// threshold is never touched.
func (c *Calibrator) Run(ctx context.Context, progress func(done, total int)) (*Profile, error) {
	start := time.Now()
	sizes := slices.Clone(c.Sizes)
	slices.Sort(sizes)
	if len(sizes) == 0 {
		return nil, ErrNoMeasurements
	}

	load := sysmon.Sample()
	if load.Busy() {
		c.Logger.Info("system is busy, calibration timings may be noisy",
			logging.Float64("cpu_percent", load.CPUPercent))
	}

	cutover := sizes[len(sizes)-1] + 1

	tracer := otel.Tracer("calibration")
	rng := rand.New(rand.NewPCG(1, 2))
	measurements := make([]Measurement, 0, len(sizes))
	for i, words := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, span := tracer.Start(ctx, "Measure")
		span.SetAttributes(attribute.Int("words", words))
		m := c.measure(ctx, rng, words, cutover)
		span.End()
		if errors.Is(m.Err, context.Canceled) || errors.Is(m.Err, context.DeadlineExceeded) {
			return nil, m.Err
		}
		measurements = append(measurements, m)

		c.Logger.Debug("calibration size measured",
			logging.Int("words", words),
			logging.Duration("schoolbook", m.Schoolbook),
			logging.Duration("karatsuba", m.Karatsuba),
		)
		if progress != nil {
			progress(i+1, len(sizes))
		}
	}

	threshold := SelectThreshold(measurements)
	if threshold == 0 {
		return nil, ErrNoMeasurements
	}
	profile := NewProfile()
	profile.KaratsubaThreshold = threshold
	profile.Measurements = measurements
	profile.SystemCPUPercent = load.CPUPercent
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	return profile, nil
}

func (c *Calibrator) measure(ctx context.Context, rng *rand.Rand, words, cutover int) Measurement {
	m := Measurement{Words: words}
	if words < 2 {
		m.Err = errors.New("operands too small to split")
		return m
	}
	a := make([]uint, words)
	b := make([]uint, words)
	for i := range a {
		a[i] = uint(rng.Uint64())
		b[i] = uint(rng.Uint64())
	}
	dst := make([]uint, 2*words)
	scratch := make([]uint, kernel.ScratchLen(words, words))

	m.Schoolbook, m.Err = c.timeOp(ctx, func() { kernel.SchoolbookMultiplyInto(dst, a, b, 0) })
	if m.Err != nil {
		return m
	}
	m.Karatsuba, m.Err = c.timeOp(ctx, func() { kernel.KaratsubaMultiplyWithThreshold(dst, a, b, 0, scratch, cutover) })
	return m
}

// timeOp returns the median per-call time of op over c.Rounds timings.
func (c *Calibrator) timeOp(ctx context.Context, op func()) (time.Duration, error) {
	rounds := max(c.Rounds, 1)
	samples := make([]time.Duration, 0, rounds)
	for range rounds {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		calls := 0
		start := time.Now()
		for {
			op()
			calls++
			if elapsed := time.Since(start); elapsed >= c.MinDuration {
				samples = append(samples, elapsed/time.Duration(calls))
				break
			}
		}
	}
	slices.Sort(samples)
	return samples[len(samples)/2], nil
}
