package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/agbru/mpkernel/internal/ui"
	"github.com/agbru/mpkernel/internal/verify"
)

// StepProgress shows a spinner with a progress bar for a task made of a
// known number of steps. It is safe for concurrent use.
type StepProgress struct {
	mu    sync.Mutex
	label string
	s     Spinner
}

// NewStepProgress creates a progress display writing to out.
func NewStepProgress(label string, out io.Writer) *StepProgress {
	return &StepProgress{label: label, s: newSpinner(out)}
}

// Start begins the spinner animation.
func (p *StepProgress) Start() {
	p.Update(0, 0, "")
	p.s.Start()
}

// Stop halts the spinner animation.
func (p *StepProgress) Stop() {
	p.s.Stop()
}

// Update shows done out of total steps, with an optional detail.
func (p *StepProgress) Update(done, total int, detail string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.s.UpdateSuffix(formatStep(p.label, done, total, detail))
}

func formatStep(label string, done, total int, detail string) string {
	t := ui.GetCurrentTheme()
	frac := 0.0
	if total > 0 {
		frac = float64(done) / float64(total)
	}
	s := fmt.Sprintf(" %s %s%s%s %d/%d", label, t.Primary, progressBar(frac, ProgressBarWidth), t.Reset, done, total)
	if detail != "" {
		s += " " + t.Secondary + detail + t.Reset
	}
	return s
}

// VerifyProgress adapts StepProgress to verify.Reporter, counting finished
// checks and failures.
type VerifyProgress struct {
	*StepProgress

	mu     sync.Mutex
	total  int
	done   int
	failed int
}

var _ verify.Reporter = (*VerifyProgress)(nil)

// NewVerifyProgress creates a reporter for a run of total checks.
func NewVerifyProgress(total int, out io.Writer) *VerifyProgress {
	return &VerifyProgress{StepProgress: NewStepProgress("Verifying", out), total: total}
}

// CheckStarted shows the name of the check that just started.
func (p *VerifyProgress) CheckStarted(name string) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	p.Update(done, p.total, name)
}

// CheckFinished advances the bar.
func (p *VerifyProgress) CheckFinished(result verify.Result) {
	p.mu.Lock()
	p.done++
	if result.Err != nil {
		p.failed++
	}
	done, failed := p.done, p.failed
	p.mu.Unlock()

	detail := ""
	if failed > 0 {
		detail = fmt.Sprintf("(%d failed)", failed)
	}
	p.Update(done, p.total, detail)
}
