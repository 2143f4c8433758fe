// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayComputeResult], [DisplayQuietResult], [DisplayVerifyReport].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatValue].

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Value is one named output of an operation, already rendered in the
// requested base.
type Value struct {
	Label string
	Text  string
}

// ComputeResult is the outcome of a single operation in compute mode.
type ComputeResult struct {
	// Op is the operation name, e.g. "div".
	Op string
	// Values are the outputs in display order: the result, or the quotient
	// and remainder for div, or the gcd and its coefficients for gcd.
	Values []Value
	// OperandWords are the sizes of the operands in words.
	OperandWords []int
	// WordBits is the word width the natural layer runs on.
	WordBits int
	// Duration is the time the arithmetic took.
	Duration time.Duration
}

// FormatQuietResult formats a result for quiet mode output: the values
// separated by spaces on one line, suitable for scripting.
func FormatQuietResult(res ComputeResult) string {
	parts := make([]string, len(res.Values))
	for i, v := range res.Values {
		parts[i] = v.Text
	}
	return strings.Join(parts, " ")
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res ComputeResult) {
	fmt.Fprintln(out, FormatQuietResult(res))
}
