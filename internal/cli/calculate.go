package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/mpkernel/internal/config"
	"github.com/agbru/mpkernel/internal/format"
	"github.com/agbru/mpkernel/internal/sysmon"
	"github.com/agbru/mpkernel/internal/ui"
)

// PrintExecutionConfig displays the run configuration: what is computed,
// the environment and the active Karatsuba threshold.
func PrintExecutionConfig(cfg config.AppConfig, karatsubaThreshold int, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	switch cfg.Mode() {
	case "verify":
		fmt.Fprintf(out, "Verifying the arithmetic kernel with %s%d%s rounds per check (seed %s%d%s).\n",
			t.Info, cfg.Rounds, t.Reset, t.Info, cfg.Seed, t.Reset)
	case "calibrate":
		fmt.Fprintf(out, "Calibrating the Karatsuba cutover.\n")
	default:
		fmt.Fprintf(out, "Evaluating %s%s%s in base %d with a timeout of %s%s%s.\n",
			t.Info, cfg.Op, t.Reset, cfg.Base, t.Warning, cfg.Timeout, t.Reset)
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %d-bit words.\n",
		t.Primary, runtime.NumCPU(), t.Reset, t.Primary, runtime.Version(), t.Reset, 32<<(^uint(0)>>63))
	if sys := sysmon.Sample(); sys.MemTotal > 0 {
		fmt.Fprintf(out, "Memory: %s%s%s total, %.0f%% in use.\n",
			t.Primary, format.FormatBytes(sys.MemTotal), t.Reset, sys.MemPercent)
	}
	fmt.Fprintf(out, "Karatsuba threshold: %s%d%s words.\n", t.Primary, karatsubaThreshold, t.Reset)
}
