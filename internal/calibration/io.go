package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/mpkernel/internal/format"
	"github.com/agbru/mpkernel/internal/ui"
)

// PrintResults formats and prints the calibration table followed by the
// selected threshold and where the profile was saved.
func PrintResults(out io.Writer, profile *Profile, path string) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "\n%s\n", styles.Title.Render("--- Calibration Summary ---"))

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %s\t│ %s\t│ %s\t\n", styles.Header.Render("Words"), styles.Header.Render("Schoolbook"), styles.Header.Render("Karatsuba"))
	fmt.Fprintf(tw, "  %s\t┼%s\t┼%s\t\n", strings.Repeat("─", 8), strings.Repeat("─", 14), strings.Repeat("─", 20))
	for _, m := range profile.Measurements {
		school, kara := styles.Fail.Render("N/A"), styles.Fail.Render("N/A")
		if m.Err == nil {
			school = format.FormatExecutionDuration(m.Schoolbook)
			kara = format.FormatExecutionDuration(m.Karatsuba)
		}
		highlight := ""
		if m.Words == profile.KaratsubaThreshold {
			highlight = " " + styles.Pass.Render("(cutover)")
		}
		fmt.Fprintf(tw, "  %d\t│ %s\t│ %s%s\t\n", m.Words, school, kara, highlight)
	}
	tw.Flush()

	fmt.Fprintf(out, "\n%s %s\n", styles.Label.Render("Karatsuba threshold"), styles.Value.Render(fmt.Sprintf("%d words", profile.KaratsubaThreshold)))
	fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Calibration time"), styles.Value.Render(profile.CalibrationTime))
	fmt.Fprintf(out, "%s %s\n", styles.Label.Render("CPU"), styles.Value.Render(fmt.Sprintf("%s (%.0f%% busy)", profile.CPUModel, profile.SystemCPUPercent)))
	if path != "" {
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Profile"), styles.Dim.Render(path))
	}
}
