package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/mpkernel/internal/format"
	"github.com/agbru/mpkernel/internal/metrics"
	"github.com/agbru/mpkernel/internal/ui"
	"github.com/agbru/mpkernel/internal/verify"
)

// DisplayComputeResult prints the values of res. Long values are truncated
// unless verbose is set; verbose also prints operand sizes and timing.
func DisplayComputeResult(out io.Writer, res ComputeResult, verbose bool) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "\n%s\n", styles.Title.Render("--- Result ---"))
	for _, v := range res.Values {
		text := v.Text
		if !verbose {
			text = FormatValue(text)
		}
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render(v.Label), styles.Value.Render(text))
	}
	if !verbose {
		return
	}
	for i, w := range res.OperandWords {
		label := fmt.Sprintf("Operand %c", 'a'+i)
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render(label), styles.Dim.Render(format.FormatWords(w, res.WordBits)))
	}
	fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Time"), styles.Dim.Render(format.FormatExecutionDuration(res.Duration)))
}

// DisplayVerifyReport prints one line per check and a summary line.
func DisplayVerifyReport(out io.Writer, results []verify.Result) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "\n%s\n", styles.Title.Render("--- Verification Summary ---"))

	nameWidth := len("Check")
	for _, r := range results {
		nameWidth = max(nameWidth, len(r.Name))
	}
	fmt.Fprintf(out, "%s%s   %s   %s   %s\n",
		styles.Header.Render("Check"), strings.Repeat(" ", nameWidth-len("Check")),
		styles.Header.Render("Cases"), styles.Header.Render("Duration"), styles.Header.Render("Status"))

	failed := 0
	for _, r := range results {
		status := styles.Pass.Render("PASS")
		if r.Err != nil {
			failed++
			status = styles.Fail.Render("FAIL") + " " + r.Err.Error()
		}
		fmt.Fprintf(out, "%s%s   %5d   %8s   %s\n",
			r.Name, strings.Repeat(" ", nameWidth-len(r.Name)),
			r.Cases, format.FormatExecutionDuration(r.Duration), status)
	}

	if failed == 0 {
		fmt.Fprintf(out, "\nGlobal Status: %s. All %d checks passed.\n", styles.Pass.Render("Success"), len(results))
		return
	}
	fmt.Fprintf(out, "\nGlobal Status: %s. %d of %d checks failed.\n", styles.Fail.Render("Failure"), failed, len(results))
}

// DisplayMemoryStats shows what the run allocated.
func DisplayMemoryStats(out io.Writer, delta metrics.AllocationDelta) {
	styles := ui.CurrentStyles()
	fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Allocated"),
		styles.Dim.Render(fmt.Sprintf("%s in %d objects, %d GC cycles", format.FormatBytes(delta.Bytes), delta.Objects, delta.GCs)))
}

// DisplayError prints err in the error color.
func DisplayError(out io.Writer, err error) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "%sError:%s %v\n", t.Error, t.Reset, err)
}
