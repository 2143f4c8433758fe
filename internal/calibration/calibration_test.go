package calibration

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/mpkernel/internal/kernel"
)

func quickCalibrator() *Calibrator {
	c := NewCalibrator(nil)
	c.Sizes = []int{16, 4, 8}
	c.Rounds = 1
	c.MinDuration = 50 * time.Microsecond
	return c
}

func TestCalibratorRun(t *testing.T) {
	kernel.SetKaratsubaThreshold(7)
	t.Cleanup(func() { kernel.SetKaratsubaThreshold(0) })

	var calls []int
	profile, err := quickCalibrator().Run(context.Background(), func(done, total int) {
		if total != 3 {
			t.Errorf("total = %d, want 3", total)
		}
		if th := kernel.KaratsubaThreshold(); th != 7 {
			t.Errorf("global threshold changed during the run: %d", th)
		}
		calls = append(calls, done)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 3 || calls[2] != 3 {
		t.Errorf("progress calls = %v", calls)
	}
	if profile.CPUModel == "" {
		t.Error("CPUModel is empty")
	}
	if profile.SystemCPUPercent < 0 || profile.SystemCPUPercent > 100 {
		t.Errorf("SystemCPUPercent = %f out of range", profile.SystemCPUPercent)
	}
	if th := kernel.KaratsubaThreshold(); th != 7 {
		t.Errorf("global threshold = %d after Run, want 7", th)
	}

	if len(profile.Measurements) != 3 {
		t.Fatalf("measurements = %d, want 3", len(profile.Measurements))
	}
	for i, want := range []int{4, 8, 16} {
		m := profile.Measurements[i]
		if m.Words != want || m.Err != nil || m.Schoolbook <= 0 || m.Karatsuba <= 0 {
			t.Errorf("measurement %d = %+v", i, m)
		}
	}
	if th := profile.KaratsubaThreshold; th != 4 && th != 8 && th != 16 && th != 17 {
		t.Errorf("threshold %d is not a measured size or the fallback", th)
	}
	if !profile.IsValid() {
		t.Error("calibrated profile should be valid")
	}

	var out bytes.Buffer
	PrintResults(&out, profile, "/tmp/profile.json")
	if !strings.Contains(out.String(), "Karatsuba threshold") || !strings.Contains(out.String(), "/tmp/profile.json") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}

func TestCalibratorRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := quickCalibrator().Run(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestCalibratorRunNoSizes(t *testing.T) {
	c := quickCalibrator()
	c.Sizes = nil
	if _, err := c.Run(context.Background(), nil); !errors.Is(err, ErrNoMeasurements) {
		t.Errorf("Run error = %v, want ErrNoMeasurements", err)
	}
}
