package verify

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/mpkernel/internal/kernel"
)

func runNamed(t *testing.T, name string, run func(*Case) error, rounds int) *Case {
	t.Helper()
	c := newCase(context.Background(), name, Options{Rounds: rounds, Seed: 7})
	if err := run(c); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return c
}

func TestChecksPassIndividually(t *testing.T) {
	t.Parallel()
	for _, chk := range Checks() {
		t.Run(chk.Name, func(t *testing.T) {
			t.Parallel()
			runNamed(t, chk.Name, chk.Run, 40)
		})
	}
}

func TestDividerExhaustiveCountsEveryPair(t *testing.T) {
	t.Parallel()
	c := runNamed(t, "divider-exhaustive-8bit", checkDividerExhaustive8, 0)
	if c.n != 255*256 {
		t.Errorf("cases = %d, want %d", c.n, 255*256)
	}
}

func TestMultiplyEquivalenceCoversCutover(t *testing.T) {
	t.Parallel()
	c := runNamed(t, "multiply-equivalence", checkMultiplyEquivalence, len(multiplySizes))
	if c.n != len(multiplySizes) {
		t.Errorf("cases = %d, want %d", c.n, len(multiplySizes))
	}
	found := false
	for _, s := range multiplySizes {
		if s == kernel.DefaultKaratsubaThreshold {
			found = true
		}
	}
	if !found {
		t.Errorf("sizes %v do not include the default cutover %d", multiplySizes, kernel.DefaultKaratsubaThreshold)
	}
}

func TestCaseNextHonoursRounds(t *testing.T) {
	t.Parallel()
	c := newCase(context.Background(), "x", Options{Rounds: 3})
	n := 0
	for c.Next() {
		n++
	}
	if n != 3 || c.Err() != nil {
		t.Errorf("Next ran %d times, err %v", n, c.Err())
	}
}

func TestRandomDivisorNonzero(t *testing.T) {
	t.Parallel()
	c := newCase(context.Background(), "d", Options{Seed: 3})
	for range 10000 {
		if randomDivisor(c.Rand) == 0 {
			t.Fatal("randomDivisor returned zero")
		}
	}
}

func TestExecuteCountsInterruptedChecksAsCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	const name = "interrupted-loop"
	checks := []Check{{Name: name, Run: func(c *Case) error {
		for c.Next() {
		}
		return c.Err()
	}}}
	Execute(ctx, checks, Options{Rounds: 10}, nil)

	if got := testutil.ToFloat64(checksTotal.WithLabelValues(name, "canceled")); got != 1 {
		t.Errorf("canceled count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(checksTotal.WithLabelValues(name, "fail")); got != 0 {
		t.Errorf("fail count = %v, want 0", got)
	}
}
