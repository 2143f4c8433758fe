package cli

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/agbru/mpkernel/internal/ui"
	"github.com/agbru/mpkernel/internal/verify"
)

// MockSpinner for testing
type MockSpinner struct {
	mu      sync.Mutex
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

func (m *MockSpinner) Suffix() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.suffix
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "░░░░░░░░░░"},
		{0.5, "█████░░░░░"},
		{1, "██████████"},
		{1.5, "██████████"},
		{-1, "░░░░░░░░░░"},
	}
	for _, tc := range tests {
		if got := progressBar(tc.progress, 10); got != tc.want {
			t.Errorf("progressBar(%v) = %q, want %q", tc.progress, got, tc.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()
	short := strings.Repeat("7", TruncationLimit)
	if got := FormatValue(short); got != short {
		t.Errorf("value at the limit was truncated: %q", got)
	}
	long := "-" + strings.Repeat("1", DisplayEdges) + strings.Repeat("5", 200) + strings.Repeat("9", DisplayEdges)
	want := "-" + strings.Repeat("1", DisplayEdges) + "..." + strings.Repeat("9", DisplayEdges)
	if got := FormatValue(long); got != want {
		t.Errorf("FormatValue(long) = %q, want %q", got, want)
	}
}

func TestVerifyProgress(t *testing.T) {
	prevTheme := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	mock := &MockSpinner{}
	prevSpinner := newSpinner
	newSpinner = func(io.Writer) Spinner { return mock }
	t.Cleanup(func() {
		newSpinner = prevSpinner
		ui.SetCurrentTheme(prevTheme)
	})

	p := NewVerifyProgress(2, io.Discard)
	p.Start()
	if !mock.started {
		t.Error("spinner not started")
	}

	p.CheckStarted("shift-inverse")
	if s := mock.Suffix(); !strings.Contains(s, "0/2") || !strings.Contains(s, "shift-inverse") {
		t.Errorf("suffix after start = %q", s)
	}
	p.CheckFinished(verify.Result{Name: "shift-inverse"})
	p.CheckFinished(verify.Result{Name: "bezout-identity", Err: errors.New("boom")})
	if s := mock.Suffix(); !strings.Contains(s, "2/2") || !strings.Contains(s, "(1 failed)") {
		t.Errorf("suffix after finish = %q", s)
	}

	p.Stop()
	if !mock.stopped {
		t.Error("spinner not stopped")
	}
}
